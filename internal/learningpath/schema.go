package learningpath

import "github.com/eduforge/eduforge/internal/llm"

// PathOutputSchema constrains structure-only generation. The modules
// live in a JSON-encoded string field so the outer schema stays flat;
// full-content runs skip the schema and use plain JSON mode instead.
var PathOutputSchema = &llm.Schema{
	Name:        "learning-path",
	Description: "A structured learning path with modules encoded as a JSON string",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Title of the learning path",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Brief overview",
			},
			"modules_json": map[string]any{
				"type":        "string",
				"description": "Complete modules structure as JSON string",
			},
		},
		"required":             []any{"title", "description", "modules_json"},
		"additionalProperties": false,
	},
}
