package loader

// questionSchema constrains one question object. Unknown keys are allowed;
// they become custom-rule-addressable extra fields after decoding.
var questionSchema = map[string]any{
	"type":     "object",
	"required": []any{"question"},
	"properties": map[string]any{
		"id": map[string]any{
			"type": []any{"string", "number"},
		},
		"question": map[string]any{
			"type": "string",
		},
		"options": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"correctAnswer": map[string]any{
			"type": "string",
		},
		"explanation": map[string]any{
			"type": "string",
		},
		"category": map[string]any{
			"type": "string",
		},
		"difficulty": map[string]any{
			"type": []any{"string", "number"},
		},
	},
}

// documentSchema accepts either a bare array of questions or an object
// wrapping the array under a "questions" key.
var documentSchema = map[string]any{
	"oneOf": []any{
		map[string]any{
			"type":  "array",
			"items": questionSchema,
		},
		map[string]any{
			"type":     "object",
			"required": []any{"questions"},
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": questionSchema,
				},
			},
		},
	},
}
