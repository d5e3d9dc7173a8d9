package content

import (
	"fmt"
	"strings"

	"github.com/quizarcade/quizarcade/internal/game"
)

const systemPrompt = `You are a quiz author creating game content for an educational arcade.

Rules:
- Generate content strictly about the given lesson topic.
- Use plain ASCII text. No LaTeX, no Unicode symbols, no markdown.
- Prompts must be clear, self-contained, and factually correct.
- Answers must be short and unambiguous.
- Never repeat a prompt or answer within one response.
- For multiple choice, provide exactly 4 options where exactly one is
  correct. Distractors should be plausible, not random.
- For ladder questions, order from easiest to hardest.
- For board categories, order each column's cells from easiest to hardest
  and mark exactly one cell in the whole grid as wagered.
- For match pairs, each right side must match exactly one left side.`

// buildUserMessage constructs the generation request for one kind.
func buildUserMessage(lessonID string, kind game.Kind, cfg GenConfig) string {
	topic := strings.ReplaceAll(lessonID, "-", " ")

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)

	switch kind {
	case game.KindRecall:
		fmt.Fprintf(&b, "Produce a flashcard deck of exactly %d cards.\n", cfg.CardCount)
		b.WriteString("Each card has a prompt and a short typed answer.")
	case game.KindLadder:
		fmt.Fprintf(&b, "Produce exactly %d multiple-choice questions, easiest first.\n", cfg.QuestionCount)
		b.WriteString("Each question has 4 options and one correct index.")
	case game.KindBoard:
		fmt.Fprintf(&b, "Produce a board of exactly %d categories with %d cells each.\n",
			cfg.CategoryCount, cfg.CellsPerCategory)
		b.WriteString("Each cell has a clue and an answer; mark exactly one cell wagered.")
	case game.KindMatch:
		fmt.Fprintf(&b, "Produce exactly %d term/definition pairs.\n", cfg.PairCount)
		b.WriteString("Left sides are terms, right sides are their definitions.")
	}

	return b.String()
}

// purposeFor labels the LLM request for telemetry.
func purposeFor(kind game.Kind) string {
	switch kind {
	case game.KindRecall:
		return "deck-gen"
	case game.KindLadder:
		return "question-gen"
	case game.KindBoard:
		return "board-gen"
	case game.KindMatch:
		return "pair-gen"
	}
	return "content-gen"
}
