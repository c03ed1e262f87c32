package itembank

// BankSchema defines the JSON schema that item bank files must satisfy.
var BankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Display name for this bank",
		},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"choices": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"answer": map[string]any{
						"type": "string",
					},
					"accept": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"p_obj": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 1,
					},
					"arm": map[string]any{
						"type": "string",
						"enum": []any{"control", "experimental"},
					},
				},
				"required":             []any{"id", "prompt", "answer", "arm"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"items"},
	"additionalProperties": false,
}
