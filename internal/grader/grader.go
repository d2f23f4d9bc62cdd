// Package grader scores learner answers.
//
// MCQ and short answers are graded locally: letter resolution, numeric
// tolerance, and containment checks. Open problems go to the LLM for a
// structured verdict with partial credit, falling back to local exact
// match on any failure.
package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/llm"
)

// Result is the outcome of grading one answer.
type Result struct {
	IsCorrect    bool
	IsClose      bool
	PartialScore float64
	Feedback     string
}

// containmentRatio is the min/max length ratio above which a containment
// match counts as correct.
const containmentRatio = 0.8

// closeOverlap is the character-overlap ratio above which a wrong answer is
// flagged as close.
const closeOverlap = 0.7

// Grader grades answers, using the provider for open problems.
type Grader struct {
	provider llm.Provider
}

// New creates a Grader backed by the given provider.
func New(provider llm.Provider) *Grader {
	return &Grader{provider: provider}
}

// Grade scores the learner's answer against the item.
func (g *Grader) Grade(ctx context.Context, item *itemgen.Item, answer string) (Result, error) {
	if item.Type == itemgen.TypeProblem {
		return g.gradeProblem(ctx, item, answer), nil
	}

	correct, close := CheckAnswer(answer, item.CorrectAnswer, item.Type, item.Options)
	res := Result{IsCorrect: correct, IsClose: close}
	if correct {
		res.PartialScore = 1.0
	}
	return res, nil
}

// CheckAnswer is the local matcher. Returns (is_correct, is_close).
func CheckAnswer(learnerAnswer, correctAnswer string, typ itemgen.Type, options []string) (bool, bool) {
	if strings.TrimSpace(learnerAnswer) == "" || strings.TrimSpace(correctAnswer) == "" {
		return false, false
	}

	if typ == itemgen.TypeMCQ {
		return checkMCQ(learnerAnswer, correctAnswer, options), false
	}

	learner := normalize(learnerAnswer)
	correct := normalize(correctAnswer)

	if learner == correct {
		return true, false
	}

	// Numeric equivalence within tolerance.
	if ln, lok := itemgen.ParseNumeric(learner); lok {
		if cn, cok := itemgen.ParseNumeric(correct); cok {
			if math.Abs(ln-cn) < 1e-9 {
				return true, false
			}
			// Within 1%: close, not correct.
			if cn != 0 && math.Abs(ln-cn)/math.Abs(cn) < 0.01 {
				return false, true
			}
			return false, false
		}
	}

	// Containment with comparable lengths.
	if strings.Contains(learner, correct) || strings.Contains(correct, learner) {
		shorter, longer := len(learner), len(correct)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		if longer > 0 && float64(shorter)/float64(longer) > containmentRatio {
			return true, false
		}
	}

	return false, isClose(learner, correct)
}

// checkMCQ resolves both sides to option letters when possible and
// compares; text answers are cross-resolved against the options.
func checkMCQ(learnerAnswer, correctAnswer string, options []string) bool {
	lLetter := resolveToLetter(learnerAnswer, options)
	cLetter := resolveToLetter(correctAnswer, options)
	if lLetter != "" && cLetter != "" {
		return lLetter == cLetter
	}

	// Fall back to resolved text comparison.
	lText := normalize(itemgen.ResolveAnswerText(learnerAnswer, options))
	cText := normalize(itemgen.ResolveAnswerText(correctAnswer, options))
	return lText != "" && lText == cText
}

// resolveToLetter maps an answer to its option letter: a bare letter, a
// letter-prefixed option, or a text matching one of the options.
func resolveToLetter(answer string, options []string) string {
	s := strings.TrimSpace(answer)
	if s == "" {
		return ""
	}

	upper := strings.ToUpper(s)
	if len(upper) == 1 && upper >= "A" && upper <= "D" {
		return upper
	}
	if m := letterAnswerRe.FindStringSubmatch(s); m != nil {
		return strings.ToUpper(m[1])
	}

	norm := normalize(itemgen.StripLetterPrefix(s))
	for i, o := range options {
		if normalize(itemgen.StripLetterPrefix(o)) == norm {
			return string(rune('A' + i))
		}
	}
	return ""
}

var (
	letterAnswerRe   = regexp.MustCompile(`^([A-Da-d])[.)\s]`)
	normalizeStripRe = regexp.MustCompile(`[^a-z0-9/%$.\-\s]`)
)

// normalize lowercases, trims, and strips punctuation except the
// characters that carry meaning in answers (/, %, $, ., -).
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = normalizeStripRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// isClose flags answers with heavy character overlap.
func isClose(learner, correct string) bool {
	if learner == "" || correct == "" {
		return false
	}
	correctSet := make(map[rune]bool)
	for _, r := range correct {
		correctSet[r] = true
	}
	common := make(map[rune]bool)
	for _, r := range learner {
		if correctSet[r] {
			common[r] = true
		}
	}
	return float64(len(common))/float64(len(correctSet)) > closeOverlap
}

// ---------------------------------------------------------------------------
// LLM grading for open problems
// ---------------------------------------------------------------------------

const gradingSystemPrompt = `You are grading a student's answer. Compare it to the correct answer.

Return ONLY valid JSON:
{
  "is_correct": true,
  "partial_score": 0.85,
  "feedback": "Explanation of what was right/wrong"
}

Be generous with partial credit for answers that show understanding.
Return ONLY the JSON, no other text.`

// VerdictSchema is the JSON shape of the grading verdict.
var VerdictSchema = &llm.Schema{
	Name:        "grading-verdict",
	Description: "Verdict on a student's answer with partial credit",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct":    map[string]any{"type": "boolean"},
			"partial_score": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"feedback":      map[string]any{"type": "string"},
		},
		"required":             []any{"is_correct", "partial_score"},
		"additionalProperties": true,
	},
}

// gradeProblem asks the LLM for a verdict. Any failure degrades to local
// exact matching.
func (g *Grader) gradeProblem(ctx context.Context, item *itemgen.Item, answer string) Result {
	ctx = llm.WithPurpose(ctx, "answer-grading")

	userMsg := fmt.Sprintf(`Question: %s
Correct answer: %s
Student answer: %s

Grade this answer. Return JSON only.`, item.Content, item.CorrectAnswer, answer)

	req := llm.Request{
		System:      gradingSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      VerdictSchema,
		MaxTokens:   384,
		Temperature: 0.3,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return g.localFallback(item, answer)
	}

	raw, err := itemgen.ParseObject(string(resp.Content))
	if err != nil {
		return g.localFallback(item, answer)
	}

	var verdict struct {
		IsCorrect    bool    `json:"is_correct"`
		PartialScore float64 `json:"partial_score"`
		Feedback     string  `json:"feedback"`
	}
	b, _ := json.Marshal(raw)
	if err := json.Unmarshal(b, &verdict); err != nil {
		return g.localFallback(item, answer)
	}

	score := verdict.PartialScore
	if score == 0 && verdict.IsCorrect {
		score = 1.0
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return Result{
		IsCorrect:    verdict.IsCorrect,
		PartialScore: score,
		Feedback:     verdict.Feedback,
	}
}

func (g *Grader) localFallback(item *itemgen.Item, answer string) Result {
	correct, close := CheckAnswer(answer, item.CorrectAnswer, itemgen.TypeShortAnswer, nil)
	res := Result{IsCorrect: correct, IsClose: close}
	if correct {
		res.PartialScore = 1.0
	}
	return res
}
