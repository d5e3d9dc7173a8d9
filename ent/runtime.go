// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quizarcade/quizarcade/ent/llmrequestevent"
	"github.com/quizarcade/quizarcade/ent/resultevent"
	"github.com/quizarcade/quizarcade/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	resulteventMixin := schema.ResultEvent{}.Mixin()
	resulteventMixinFields0 := resulteventMixin[0].Fields()
	_ = resulteventMixinFields0
	resulteventFields := schema.ResultEvent{}.Fields()
	_ = resulteventFields
	// resulteventDescTimestamp is the schema descriptor for timestamp field.
	resulteventDescTimestamp := resulteventMixinFields0[1].Descriptor()
	// resultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resultevent.DefaultTimestamp = resulteventDescTimestamp.Default.(func() time.Time)
	// resulteventDescSessionID is the schema descriptor for session_id field.
	resulteventDescSessionID := resulteventFields[0].Descriptor()
	// resultevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	resultevent.SessionIDValidator = resulteventDescSessionID.Validators[0].(func(string) error)
	// resulteventDescKind is the schema descriptor for kind field.
	resulteventDescKind := resulteventFields[1].Descriptor()
	// resultevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	resultevent.KindValidator = resulteventDescKind.Validators[0].(func(string) error)
	// resulteventDescLessonID is the schema descriptor for lesson_id field.
	resulteventDescLessonID := resulteventFields[2].Descriptor()
	// resultevent.DefaultLessonID holds the default value on creation for the lesson_id field.
	resultevent.DefaultLessonID = resulteventDescLessonID.Default.(string)
	// resulteventDescTotal is the schema descriptor for total field.
	resulteventDescTotal := resulteventFields[3].Descriptor()
	// resultevent.DefaultTotal holds the default value on creation for the total field.
	resultevent.DefaultTotal = resulteventDescTotal.Default.(int)
	// resulteventDescCorrect is the schema descriptor for correct field.
	resulteventDescCorrect := resulteventFields[4].Descriptor()
	// resultevent.DefaultCorrect holds the default value on creation for the correct field.
	resultevent.DefaultCorrect = resulteventDescCorrect.Default.(int)
	// resulteventDescIncorrect is the schema descriptor for incorrect field.
	resulteventDescIncorrect := resulteventFields[5].Descriptor()
	// resultevent.DefaultIncorrect holds the default value on creation for the incorrect field.
	resultevent.DefaultIncorrect = resulteventDescIncorrect.Default.(int)
	// resulteventDescSkipped is the schema descriptor for skipped field.
	resulteventDescSkipped := resulteventFields[6].Descriptor()
	// resultevent.DefaultSkipped holds the default value on creation for the skipped field.
	resultevent.DefaultSkipped = resulteventDescSkipped.Default.(int)
	// resulteventDescScore is the schema descriptor for score field.
	resulteventDescScore := resulteventFields[7].Descriptor()
	// resultevent.DefaultScore holds the default value on creation for the score field.
	resultevent.DefaultScore = resulteventDescScore.Default.(int64)
	// resulteventDescAccuracy is the schema descriptor for accuracy field.
	resulteventDescAccuracy := resulteventFields[8].Descriptor()
	// resultevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	resultevent.DefaultAccuracy = resulteventDescAccuracy.Default.(float64)
	// resulteventDescDurationSecs is the schema descriptor for duration_secs field.
	resulteventDescDurationSecs := resulteventFields[9].Descriptor()
	// resultevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	resultevent.DefaultDurationSecs = resulteventDescDurationSecs.Default.(int)
}
