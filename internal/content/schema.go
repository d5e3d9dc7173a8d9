package content

import (
	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/llm"
)

// DeckSchema defines the LLM response shape for flashcard decks.
var DeckSchema = &llm.Schema{
	Name:        "flashcard-deck",
	Description: "A deck of free-recall flashcards for one lesson topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question or term shown to the learner",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The reference answer, short enough to type",
						},
					},
					"required":             []any{"prompt", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}

// QuestionsSchema defines the LLM response shape for ladder questions.
var QuestionsSchema = &llm.Schema{
	Name:        "ladder-questions",
	Description: "Multiple-choice questions ordered from easiest to hardest",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options",
						},
						"correct": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index of the correct option",
						},
					},
					"required":             []any{"prompt", "options", "correct"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// BoardSchema defines the LLM response shape for a category/value grid.
var BoardSchema = &llm.Schema{
	Name:        "quiz-board",
	Description: "A category/value clue grid with rising difficulty per column",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"categories": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Short category title",
						},
						"cells": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"clue": map[string]any{
										"type":        "string",
										"description": "The clue shown when the cell is picked",
									},
									"answer": map[string]any{
										"type":        "string",
										"description": "The expected answer",
									},
									"wagered": map[string]any{
										"type":        "boolean",
										"description": "Whether this cell requires a wager before the clue is shown",
									},
								},
								"required":             []any{"clue", "answer", "wagered"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"name", "cells"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"categories"},
		"additionalProperties": false,
	},
}

// PairsSchema defines the LLM response shape for match pairs.
var PairsSchema = &llm.Schema{
	Name:        "match-pairs",
	Description: "Two-column term/definition pairs for the matching game",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"pairs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"left": map[string]any{
							"type":        "string",
							"description": "The term side",
						},
						"right": map[string]any{
							"type":        "string",
							"description": "The matching definition side",
						},
					},
					"required":             []any{"left", "right"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"pairs"},
		"additionalProperties": false,
	},
}

// schemaFor maps a game kind to its response schema.
func schemaFor(kind game.Kind) *llm.Schema {
	switch kind {
	case game.KindRecall:
		return DeckSchema
	case game.KindLadder:
		return QuestionsSchema
	case game.KindBoard:
		return BoardSchema
	case game.KindMatch:
		return PairsSchema
	}
	return nil
}
