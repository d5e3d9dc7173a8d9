package content

// GenConfig bounds LLM content generation.
type GenConfig struct {
	// MaxTokens caps the response size per request.
	MaxTokens int

	// Temperature controls output variety.
	Temperature float64

	// CardCount is the flashcard deck size.
	CardCount int

	// QuestionCount is the ladder length; one question per rung.
	QuestionCount int

	// CategoryCount and CellsPerCategory shape the board grid.
	CategoryCount    int
	CellsPerCategory int

	// PairCount is the number of match pairs.
	PairCount int
}

// DefaultGenConfig returns the standard generation bounds.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MaxTokens:        8192,
		Temperature:      0.7,
		CardCount:        10,
		QuestionCount:    15,
		CategoryCount:    4,
		CellsPerCategory: 5,
		PairCount:        6,
	}
}
