package llm

func narrativeTestSchema() *Schema {
	return &Schema{
		Name:        "test-note",
		Description: "A short note",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"score": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"tone":  map[string]any{"type": "string", "enum": []any{"warm", "neutral"}},
				"tags": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required":             []any{"title", "score"},
			"additionalProperties": false,
		},
	}
}
