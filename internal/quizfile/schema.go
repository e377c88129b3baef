package quizfile

// Schemas for the two document kinds quizforge reads back from disk.
// Validation happens before unmarshaling so a hand-edited file fails
// with a precise schema error instead of a half-populated struct.

var quizSchema = &schema{
	Name: "quiz-set",
	Definition: map[string]any{
		"type":                 "object",
		"required":             []any{"type", "difficulty", "seed", "questions"},
		"additionalProperties": false,
		"properties": map[string]any{
			"title":        map[string]any{"type": "string"},
			"type":         map[string]any{"enum": []any{"mcq", "fillup", "qa"}},
			"difficulty":   map[string]any{"enum": []any{"easy", "medium", "hard"}},
			"sourceLength": map[string]any{"type": "integer", "minimum": 0},
			"seed":         map[string]any{"type": "integer", "minimum": 0},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"required":             []any{"id", "type", "prompt", "correctAnswer", "difficulty", "concept", "points"},
					"additionalProperties": false,
					"properties": map[string]any{
						"id":     map[string]any{"type": "string", "minLength": 1},
						"type":   map[string]any{"enum": []any{"mcq", "fillup", "qa"}},
						"prompt": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":        "array",
							"minItems":    4,
							"maxItems":    4,
							"uniqueItems": true,
							"items":       map[string]any{"type": "string"},
						},
						"correctAnswer": map[string]any{"type": "string", "minLength": 1},
						"explanation":   map[string]any{"type": "string"},
						"difficulty":    map[string]any{"enum": []any{"easy", "medium", "hard"}},
						"concept":       map[string]any{"type": "string"},
						"points":        map[string]any{"type": "integer", "minimum": 1},
					},
				},
			},
		},
	},
}

var answersSchema = &schema{
	Name: "answer-record",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "string"},
	},
}
