package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent records the outcome of one closed game session.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// ItemOutcomeRecord is the serialized form of a per-item result.
type ItemOutcomeRecord struct {
	ItemID    string   `json:"item_id"`
	Outcome   string   `json:"outcome"`
	Assists   []string `json:"assists,omitempty"`
	ElapsedMs int64    `json:"elapsed_ms"`
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session that produced this result"),
		field.String("kind").
			NotEmpty().
			Comment("Game kind: recall, ladder, board, match"),
		field.String("lesson_id").
			Default("").
			Comment("Lesson the content came from"),
		field.Int("total").
			Default(0).
			Comment("Items presented"),
		field.Int("correct").
			Default(0),
		field.Int("incorrect").
			Default(0),
		field.Int("skipped").
			Default(0),
		field.Int64("score").
			Default(0).
			Comment("Final score or winnings in points"),
		field.Float("accuracy").
			Default(0).
			Comment("Fraction correct in [0,1]"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session length"),
		field.Bool("completed").
			Comment("False when abandoned or walked away early"),
		field.JSON("assists_used", []string{}).
			Optional().
			Comment("Lifelines consumed, in first-use order"),
		field.JSON("items", []ItemOutcomeRecord{}).
			Optional().
			Comment("Per-item outcomes in resolution order"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("kind"),
		index.Fields("completed"),
	}
}
