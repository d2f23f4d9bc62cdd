package itemgen

import "github.com/nmalhotra/drill/internal/llm"

// ItemSchema defines the JSON shape expected from the LLM for a generated
// question. Providers with native structured output enforce it server-side;
// the rest validate after the fact.
var ItemSchema = &llm.Schema{
	Name:        "practice-item",
	Description: "A single practice question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text shown to the learner, plain text",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Exactly 4 options for mcq. Omit or empty for other types.",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For mcq: the option letter or text.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Step-by-step worked solution",
			},
			"estimated_difficulty": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Self-assessed difficulty from 0 (easy) to 1 (hard)",
			},
		},
		"required":             []any{"question", "correct_answer", "explanation"},
		"additionalProperties": true,
	},
}
