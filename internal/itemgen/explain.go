package itemgen

import (
	"fmt"
	"regexp"
)

var (
	// Final-result patterns in explanations: "= 9", "to get 9", "which is 9".
	finalResultRes = []*regexp.Regexp{
		regexp.MustCompile(`=\s*(-?\d+(?:\.\d+)?)`),
		regexp.MustCompile(`to\s+get\s+(-?\d+(?:\.\d+)?)`),
		regexp.MustCompile(`which\s+is\s+(-?\d+(?:\.\d+)?)`),
	}

	// Worked steps: a full left-hand expression followed by "= C".
	workedStepRe = regexp.MustCompile(`(-?\d+(?:\.\d+)?(?:\s*[-+*/]\s*-?\d+(?:\.\d+)?)+)\s*=\s*(-?\d+(?:\.\d+)?)`)
)

// ExplanationValidator cross-checks the explanation against the declared
// answer and verifies the arithmetic of every worked step it contains.
type ExplanationValidator struct{}

func (v *ExplanationValidator) Name() string { return "explanation" }

func (v *ExplanationValidator) Validate(item *Item, _ GenerateInput) *ValidationError {
	if item.Explanation == "" {
		return nil
	}
	expl := normalizeMathText(item.Explanation)

	// Every "A op B = C" step must be arithmetically correct.
	for _, m := range workedStepRe.FindAllStringSubmatch(expl, -1) {
		lhs, err := evalExpr(m[1])
		if err != nil {
			continue
		}
		rhs, ok := ParseNumeric(m[2])
		if !ok {
			continue
		}
		if !numbersEqual(lhs, rhs) {
			return v.fail(fmt.Sprintf("explanation contains bad arithmetic: %s = %s", m[1], m[2]))
		}
	}

	// The final numeric result must match the declared answer, when the
	// answer itself is numeric.
	resolved := ResolveAnswerText(item.CorrectAnswer, item.Options)
	stated, ok := ParseNumeric(resolved)
	if !ok {
		return nil
	}

	// Take the result that appears last in the text.
	final, found, lastPos := 0.0, false, -1
	for _, re := range finalResultRes {
		for _, idx := range re.FindAllStringSubmatchIndex(expl, -1) {
			if idx[0] <= lastPos {
				continue
			}
			if f, ok := ParseNumeric(expl[idx[2]:idx[3]]); ok {
				final, found, lastPos = f, true, idx[0]
			}
		}
	}
	if found && !numbersEqual(final, stated) {
		return v.fail(fmt.Sprintf("explanation concludes %s but stated answer is %q",
			formatNumber(final), resolved))
	}

	return nil
}

func (v *ExplanationValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
