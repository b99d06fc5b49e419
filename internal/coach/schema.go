package coach

import "github.com/abhisek/pathcheck/internal/llm"

func bulletList(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// NarrativeSchema is the structured output the coach asks for.
var NarrativeSchema = &llm.Schema{
	Name:        "career-fit-narrative",
	Description: "A short, encouraging reading of a financial analyst career-fit assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-4 sentence overview addressed to the candidate",
			},
			"strengths":  bulletList("2-3 strengths shown by the results (5-12 words each)"),
			"gaps":       bulletList("1-3 areas to develop (5-12 words each)"),
			"next_steps": bulletList("2-3 concrete next steps for the coming month"),
		},
		"required":             []any{"summary", "strengths", "gaps", "next_steps"},
		"additionalProperties": false,
	},
}
