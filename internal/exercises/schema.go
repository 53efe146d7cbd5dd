package exercises

import "github.com/eduforge/eduforge/internal/llm"

// Each exercise kind has its own schema so structured output can be
// strict about the fields that kind requires.

var commonExerciseProps = map[string]any{
	"topic": map[string]any{
		"type":        "string",
		"description": "The topic or subject area of the exercise",
	},
	"difficulty": map[string]any{
		"type":        "string",
		"description": "Difficulty level (Easy, Medium, Hard)",
	},
	"explanation": map[string]any{
		"type":        "string",
		"description": "Explanation of why the answer is correct",
	},
	"learning_objective": map[string]any{
		"type":        "string",
		"description": "The learning objective tested by the exercise",
	},
}

func exerciseSetSchema(name, description string, itemProps map[string]any, required []any) *llm.Schema {
	props := map[string]any{}
	for k, v := range commonExerciseProps {
		props[k] = v
	}
	for k, v := range itemProps {
		props[k] = v
	}

	return &llm.Schema{
		Name:        name,
		Description: description,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"exercises": map[string]any{
					"type":        "array",
					"description": "List of exercises in the set",
					"items": map[string]any{
						"type":                 "object",
						"properties":           props,
						"required":             required,
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"exercises"},
			"additionalProperties": false,
		},
	}
}

var MultipleChoiceSchema = exerciseSetSchema(
	"multiple-choice-exercises",
	"A set of multiple-choice exercises",
	map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question of the exercise",
		},
		"choices": map[string]any{
			"type":        "array",
			"description": "List of possible answer choices",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "The text of the option",
					},
					"is_correct": map[string]any{
						"type":        "boolean",
						"description": "Indicates whether this option is the correct answer",
					},
				},
				"required":             []any{"text", "is_correct"},
				"additionalProperties": false,
			},
		},
	},
	[]any{"question", "choices"},
)

var FillInTheBlankSchema = exerciseSetSchema(
	"fill-in-the-blank-exercises",
	"A set of fill-in-the-blank exercises",
	map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question with a blank space (e.g., 'The capital of France is __.')",
		},
		"answer": map[string]any{
			"type":        "string",
			"description": "The correct answer text",
		},
	},
	[]any{"question", "answer"},
)

var TrueFalseSchema = exerciseSetSchema(
	"true-false-exercises",
	"A set of true/false exercises",
	map[string]any{
		"statement": map[string]any{
			"type":        "string",
			"description": "The statement to be evaluated",
		},
		"is_true": map[string]any{
			"type":        "boolean",
			"description": "Indicates whether the statement is true",
		},
	},
	[]any{"statement", "is_true"},
)

var ShortAnswerSchema = exerciseSetSchema(
	"short-answer-exercises",
	"A set of short-answer exercises",
	map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question of the exercise",
		},
		"answer": map[string]any{
			"type":        "string",
			"description": "The ideal or correct short answer",
		},
	},
	[]any{"question", "answer"},
)

var MatchingSchema = exerciseSetSchema(
	"matching-exercises",
	"A set of matching exercises",
	map[string]any{
		"instructions": map[string]any{
			"type":        "string",
			"description": "Instructions, e.g., 'Match the concepts with their definitions.'",
		},
		"premises": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Column A: the list of items to be matched",
		},
		"responses": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Column B: the list of matching options",
		},
		"correct_matches": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
			"description":          "Map from an item in premises to the corresponding item in responses",
		},
	},
	[]any{"instructions", "premises", "responses", "correct_matches"},
)
