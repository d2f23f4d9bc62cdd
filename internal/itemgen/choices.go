package itemgen

import (
	"fmt"
	"strings"
)

// bannedChoices reject catch-all options that undermine distractor quality.
var bannedChoices = map[string]bool{
	"all of the above":  true,
	"none of the above": true,
	"all the above":     true,
	"none of these":     true,
	"all of these":      true,
}

// Length-bias thresholds: the correct choice stands out when it is both
// several times the average distractor length and clearly longer than the
// longest distractor.
const (
	lengthBiasRatio  = 3.0
	lengthBiasMargin = 15
)

// ChoicesValidator checks MCQ option sets: uniqueness, answer resolution,
// banned catch-alls, and length bias.
type ChoicesValidator struct{}

func (v *ChoicesValidator) Name() string { return "choices" }

func (v *ChoicesValidator) Validate(item *Item, _ GenerateInput) *ValidationError {
	if len(item.Options) == 0 {
		return nil
	}
	answer := strings.TrimSpace(item.CorrectAnswer)

	// Choices must be pairwise unique after letter-prefix strip.
	seen := make(map[string]bool, len(item.Options))
	for _, c := range item.Options {
		norm := strings.ToLower(StripLetterPrefix(c))
		if seen[norm] {
			return v.fail("duplicate choices")
		}
		seen[norm] = true
	}

	// The declared answer must resolve into the choices by text, letter,
	// or index.
	answerLower := strings.ToLower(answer)
	textMatch := false
	for _, c := range item.Options {
		if strings.ToLower(strings.TrimSpace(c)) == answerLower ||
			strings.ToLower(StripLetterPrefix(c)) == strings.ToLower(StripLetterPrefix(answer)) {
			textMatch = true
			break
		}
	}
	idx := letterIndex(answer)
	letterMatch := idx >= 0 && idx < len(item.Options)
	if !textMatch && !letterMatch {
		return v.fail("correct answer not found in choices")
	}

	// No "all/none of the above" variants.
	for _, c := range item.Options {
		stripped := strings.ToLower(StripLetterPrefix(c))
		if bannedChoices[stripped] || bannedChoices[strings.ToLower(strings.TrimSpace(c))] {
			return v.fail(fmt.Sprintf("banned choice: %q", strings.TrimSpace(c)))
		}
	}

	// Length bias: the correct answer must not dwarf the distractors.
	resolved := ResolveAnswerText(answer, item.Options)
	var distractorLens []int
	for _, c := range item.Options {
		if !strings.EqualFold(StripLetterPrefix(c), resolved) {
			distractorLens = append(distractorLens, len(strings.TrimSpace(c)))
		}
	}
	if len(distractorLens) > 0 {
		sum, longest := 0, 0
		for _, l := range distractorLens {
			sum += l
			if l > longest {
				longest = l
			}
		}
		avg := float64(sum) / float64(len(distractorLens))
		if float64(len(resolved)) >= avg*lengthBiasRatio && len(resolved) >= longest+lengthBiasMargin {
			return v.fail("correct answer much longer than distractors (length bias)")
		}
	}

	return nil
}

func (v *ChoicesValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
