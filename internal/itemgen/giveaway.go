package itemgen

import (
	"regexp"
	"strings"
)

// mathExpressionRe matches "what is <arithmetic>" questions, where the
// answer legitimately appears among the operands.
var mathExpressionRe = regexp.MustCompile(`what is\s+[\d\s+\-*/×÷.]+`)

// comparisonPhrases mark questions that pick between stated values, so the
// answer necessarily appears in the text.
var comparisonPhrases = []string{
	"which is bigger", "which is larger", "which is smaller",
	"which is greater", "which is less", "which is more",
}

// GiveawayValidator rejects items whose correct answer is literally present
// in the question text, outside the patterns where that is expected.
type GiveawayValidator struct{}

func (v *GiveawayValidator) Name() string { return "giveaway" }

func (v *GiveawayValidator) Validate(item *Item, _ GenerateInput) *ValidationError {
	answer := strings.TrimSpace(item.CorrectAnswer)
	if len(item.Options) > 0 {
		answer = StripLetterPrefix(answer)
	}
	// Single-character answers are too common to flag.
	if len(answer) <= 1 {
		return nil
	}

	qLower := strings.ToLower(item.Content)
	aLower := strings.ToLower(answer)
	if !strings.Contains(qLower, aLower) {
		return nil
	}

	// Expected patterns: math expressions, comparisons, classification,
	// and what/which identification questions.
	if mathExpressionRe.MatchString(qLower) {
		return nil
	}
	for _, p := range comparisonPhrases {
		if strings.Contains(qLower, p) {
			return nil
		}
	}
	for _, prefix := range []string{"is ", "are ", "does ", "do ", "can ", "will ", "what ", "which "} {
		if strings.HasPrefix(qLower, prefix) {
			return nil
		}
	}

	return &ValidationError{
		Validator: v.Name(),
		Message:   "answer given away in question text",
		Retryable: true,
	}
}
