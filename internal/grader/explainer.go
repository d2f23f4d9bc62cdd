package grader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/llm"
)

// Explanation is the tutor's response to a wrong answer.
type Explanation struct {
	Encouragement string `json:"encouragement"`
	Explanation   string `json:"explanation"`
	KeyConcept    string `json:"key_concept"`
	Tip           string `json:"tip"`
}

const explainSystemPrompt = `You are a patient tutor explaining a concept after a wrong answer.

Return ONLY valid JSON:
{
  "encouragement": "Brief positive message",
  "explanation": "Clear step-by-step explanation of the correct solution",
  "key_concept": "The core concept the student should understand",
  "tip": "A practical tip for similar questions"
}

Return ONLY the JSON, no other text.`

// explainSchema is the JSON shape of the wrong-answer explanation.
var explainSchema = &llm.Schema{
	Name:        "wrong-answer-explanation",
	Description: "Tutor explanation after a wrong answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"encouragement": map[string]any{"type": "string"},
			"explanation":   map[string]any{"type": "string"},
			"key_concept":   map[string]any{"type": "string"},
			"tip":           map[string]any{"type": "string"},
		},
		"required":             []any{"encouragement", "explanation"},
		"additionalProperties": true,
	},
}

// Explain asks the LLM to explain the correct solution after a wrong
// answer. On any failure it returns the static fallback rather than an
// error; the learner always gets something.
func (g *Grader) Explain(ctx context.Context, item *itemgen.Item, learnerAnswer string) Explanation {
	ctx = llm.WithPurpose(ctx, "explanation")

	userMsg := fmt.Sprintf(`The student got this wrong:
Question: %s
Student's answer: %s
Correct answer: %s

Explain clearly. Return JSON only.`, item.Content, learnerAnswer, item.CorrectAnswer)

	req := llm.Request{
		System:      explainSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      explainSchema,
		MaxTokens:   512,
		Temperature: 0.5,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return fallbackExplanation(item)
	}

	raw, err := itemgen.ParseObject(string(resp.Content))
	if err != nil {
		return fallbackExplanation(item)
	}

	var out Explanation
	b, _ := json.Marshal(raw)
	if err := json.Unmarshal(b, &out); err != nil || out.Explanation == "" {
		return fallbackExplanation(item)
	}
	return out
}

func fallbackExplanation(item *itemgen.Item) Explanation {
	return Explanation{
		Encouragement: "Keep going!",
		Explanation:   fmt.Sprintf("The correct answer was: %s", item.CorrectAnswer),
	}
}
