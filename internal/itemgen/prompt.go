package itemgen

import (
	"fmt"
	"strings"
)

// systemPrompt sets the generation contract. Several rules repeat what the
// validator checks; that duplication is deliberate defense in depth against
// free-form model output.
const systemPrompt = `You are an expert tutor creating adaptive practice questions for a single student.

Return ONLY valid JSON:
{
  "question": "The question text",
  "options": ["A) ...", "B) ...", "C) ...", "D) ..."],
  "correct_answer": "The answer",
  "explanation": "Step-by-step solution",
  "estimated_difficulty": 0.65
}

Rules:
1. Match the target difficulty level precisely.
2. Never repeat or rephrase a question from the avoid list.
3. For mcq: exactly 4 options, and correct_answer must be one of the option letters (A, B, C, or D).
4. For short_answer: correct_answer is a concise string. Omit the options field.
5. For problem: ask a multi-step problem and put the worked solution in explanation. Omit options.
6. The question must be answerable from its text alone. Never reference pictures, graphs, figures, or diagrams.
7. Never include placeholder text like "[image]" or "[shows a picture]".
8. Keep the correct answer under 200 characters.
9. No HTML, no markdown, no code fences.
10. Options must be pairwise distinct. Never use "all of the above" or "none of the above".
11. The answer must not appear verbatim in the question text unless the question is a computation or comparison.
12. Every question ends with "?", ":" or "." or contains a fill-in blank "__".
13. Double-check your arithmetic before answering. The explanation's final result must equal correct_answer.
14. Plain text only: use digits and the symbols + - * / for math, no LaTeX.
Return ONLY the JSON, no other text.`

// maxPromptHints caps how many avoid-texts are listed in the prompt.
const maxPromptHints = 40

// BuildPrompt constructs the user message for item generation.
// The rating-scale difficulty is normalized to 0..1 for the model.
func BuildPrompt(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a %s question for:\n", input.Type)
	fmt.Fprintf(&b, "- Topic: %s\n", input.TopicName)
	fmt.Fprintf(&b, "- Concept: %s\n", input.Concept.Name)
	fmt.Fprintf(&b, "- Concept description: %s\n", input.Concept.Description)
	fmt.Fprintf(&b, "- Difficulty: %.2f (0.0=easiest, 1.0=hardest)\n", NormalizeDifficulty(input.TargetDifficulty))

	b.WriteString("- Recent questions (DO NOT repeat):\n")
	hints := input.DedupHints
	if len(hints) > maxPromptHints {
		hints = hints[:maxPromptHints]
	}
	if len(hints) == 0 {
		b.WriteString("None\n")
	} else {
		for _, h := range hints {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}

	b.WriteString("\nReturn JSON only.")
	return b.String()
}

// SystemPrompt exposes the generation system prompt for logging.
func SystemPrompt() string { return systemPrompt }

// NormalizeDifficulty maps a rating-scale difficulty into [0,1].
func NormalizeDifficulty(d float64) float64 {
	n := (d - 400) / 800
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
