package itemgen

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minQuestionLength = 10
	maxAnswerLength   = 200
	minChoices        = 3
)

// placeholderAnswers are declared answers that carry no content.
var placeholderAnswers = map[string]bool{
	"":        true,
	"?":       true,
	"...":     true,
	"n/a":     true,
	"none":    true,
	"null":    true,
	"tbd":     true,
	"unknown": true,
}

// imperativeVerbs open well-formed instruction questions that need no
// terminal punctuation.
var imperativeVerbs = map[string]bool{
	"simplify": true, "solve": true, "calculate": true, "count": true,
	"find": true, "convert": true, "round": true, "name": true,
	"list": true, "spell": true, "write": true, "read": true,
	"say": true, "translate": true, "match": true, "determine": true,
	"evaluate": true, "compute": true, "identify": true, "explain": true,
	"describe": true, "compare": true,
}

var punctuationRe = regexp.MustCompile(`[?:.]`)

// StructuralValidator checks field presence, lengths, and question shape.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(item *Item, _ GenerateInput) *ValidationError {
	question := strings.TrimSpace(item.Content)
	answer := strings.TrimSpace(item.CorrectAnswer)

	// Minimum question length.
	if len(question) < minQuestionLength {
		return v.fail(fmt.Sprintf("question too short (%d chars, min %d)", len(question), minQuestionLength))
	}

	// Answer must not be empty or a placeholder.
	if placeholderAnswers[strings.ToLower(answer)] {
		return v.fail(fmt.Sprintf("answer is empty or placeholder: %q", answer))
	}

	// Answer length cap.
	if len(answer) > maxAnswerLength {
		return v.fail(fmt.Sprintf("answer too long (%d chars, max %d)", len(answer), maxAnswerLength))
	}

	// No HTML or fenced-code artifacts.
	if strings.Contains(question, "</") || strings.Contains(question, "```") {
		return v.fail("HTML or markdown artifacts in question")
	}
	if strings.Contains(answer, "</") || strings.Contains(answer, "```") {
		return v.fail("HTML or markdown artifacts in answer")
	}

	// Options, when present, must number at least three.
	if len(item.Options) > 0 && len(item.Options) < minChoices {
		return v.fail(fmt.Sprintf("too few choices (%d, min %d)", len(item.Options), minChoices))
	}

	// The question must contain a '?', ':' or '.' (anywhere in the text, not
	// only at the end), contain a fill-in blank, or start with an imperative
	// verb.
	hasPunctuation := punctuationRe.MatchString(question)
	hasBlank := strings.Contains(question, "__")
	firstWord := ""
	if fields := strings.Fields(question); len(fields) > 0 {
		firstWord = strings.TrimSuffix(strings.ToLower(fields[0]), ":")
	}
	if !hasPunctuation && !hasBlank && !imperativeVerbs[firstWord] {
		return v.fail("question lacks punctuation, blank, or imperative verb")
	}

	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
