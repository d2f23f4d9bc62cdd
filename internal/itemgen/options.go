package itemgen

import (
	"fmt"
	"regexp"
	"strings"
)

// mcqLetters are the option letter prefixes in display order.
var mcqLetters = []string{"A", "B", "C", "D"}

// letterPrefixRe matches an option letter prefix like "A) ", "b. ", "C ".
var letterPrefixRe = regexp.MustCompile(`^[A-Da-d][).\s]+\s*`)

// htmlArtifactRe matches markup fragments that must never survive
// sanitization (tags, event handlers, script URLs).
var htmlArtifactRe = regexp.MustCompile(`(?i)<[a-z/!]|on\w+\s*=|javascript:`)

// maxSanitizedAnswerLen caps the correct answer before it is interpolated
// into placeholder options.
const maxSanitizedAnswerLen = 120

// StripLetterPrefix removes a leading "A) " style prefix from an option or
// answer string.
func StripLetterPrefix(s string) string {
	return strings.TrimSpace(letterPrefixRe.ReplaceAllString(s, ""))
}

// SanitizeAnswer normalizes an answer for interpolation into options:
// strips the letter prefix, drops control characters, strips markup
// fragments, and caps the length.
func SanitizeAnswer(s string) string {
	s = StripLetterPrefix(s)
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	s = htmlArtifactRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if len(s) > maxSanitizedAnswerLen {
		s = s[:maxSanitizedAnswerLen]
	}
	return s
}

// PlaceholderOptions builds temporary MCQ options so the option-dependent
// validation rules have data to check before real distractors are computed.
// attemptNum keeps placeholders unique across generation retries.
func PlaceholderOptions(correctAnswer string, attemptNum int) []string {
	sanitized := SanitizeAnswer(correctAnswer)
	return []string{
		fmt.Sprintf("A) %s", sanitized),
		fmt.Sprintf("B) alt%da", attemptNum),
		fmt.Sprintf("C) alt%db", attemptNum),
		fmt.Sprintf("D) alt%dc", attemptNum),
	}
}

// placeholderOptionRe matches the placeholder distractor pattern so tests
// and the pipeline can confirm none survive into persisted items.
var placeholderOptionRe = regexp.MustCompile(`^alt\d+[abc]$`)

// HasPlaceholderOptions reports whether any option still carries a
// placeholder distractor.
func HasPlaceholderOptions(options []string) bool {
	for _, o := range options {
		if placeholderOptionRe.MatchString(StripLetterPrefix(o)) {
			return true
		}
	}
	return false
}

// ResolveAnswerText resolves a declared correct answer to its option text:
// "D) 9" -> "9", "D" -> options[3] stripped, "9" -> "9".
func ResolveAnswerText(answer string, options []string) string {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return answer
	}

	stripped := StripLetterPrefix(answer)
	if stripped != "" && stripped != answer {
		return stripped
	}

	if idx := letterIndex(answer); idx >= 0 && idx < len(options) {
		return StripLetterPrefix(options[idx])
	}

	return answer
}

// letterIndex maps a bare "A".."D" (either case) to 0..3, or -1.
func letterIndex(s string) int {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return -1
	}
	c := strings.ToUpper(s)[0]
	if c < 'A' || c > 'D' {
		return -1
	}
	return int(c - 'A')
}

// WithLetterPrefixes formats option texts as "A) ...", "B) ...".
func WithLetterPrefixes(options []string) []string {
	out := make([]string, 0, len(options))
	for i, o := range options {
		letter := mcqLetters[i%len(mcqLetters)]
		out = append(out, fmt.Sprintf("%s) %s", letter, StripLetterPrefix(o)))
	}
	return out
}
