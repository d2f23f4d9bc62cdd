package itemgen

import (
	"strings"
	"testing"
)

func validMCQ() *Item {
	return &Item{
		Content:       "What is 5 + 3?",
		Type:          TypeMCQ,
		Options:       []string{"A) 6", "B) 7", "C) 8", "D) 9"},
		CorrectAnswer: "C",
		Explanation:   "Count on from 5: 5 + 3 = 8.",
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "structural", Message: "question too short", Retryable: true}
	want := `validator "structural": question too short`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestDefaultValidators_PassValidItem(t *testing.T) {
	item := validMCQ()
	if err := RunValidators(DefaultValidators(), item, GenerateInput{}); err != nil {
		t.Errorf("valid item rejected: %v", err)
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	tests := []struct {
		name string
		item Item
		want string // substring of rejection message, "" = pass
	}{
		{"too short", Item{Content: "2+2?", CorrectAnswer: "4"}, "too short"},
		{"placeholder answer", Item{Content: "What is five plus three?", CorrectAnswer: "N/A"}, "placeholder"},
		{"empty answer", Item{Content: "What is five plus three?", CorrectAnswer: ""}, "placeholder"},
		{"answer too long", Item{Content: "What is five plus three?", CorrectAnswer: strings.Repeat("x", 201)}, "too long"},
		{"html in question", Item{Content: "What is <b>5</b> plus three?", CorrectAnswer: "8"}, "artifacts"},
		{"code fence", Item{Content: "Solve this: ```5+3```", CorrectAnswer: "8"}, "artifacts"},
		{"two options only", Item{Content: "What is five plus three?", CorrectAnswer: "8", Options: []string{"A) 8", "B) 9"}}, "too few choices"},
		{"no punctuation", Item{Content: "the number after seven", CorrectAnswer: "8"}, "lacks punctuation"},
		{"imperative ok", Item{Content: "Calculate five plus three", CorrectAnswer: "8"}, ""},
		{"blank ok", Item{Content: "5 + __ = 8 fill the blank", CorrectAnswer: "3"}, ""},
	}
	for _, tt := range tests {
		err := v.Validate(&tt.item, GenerateInput{})
		if tt.want == "" {
			if err != nil {
				t.Errorf("%s: unexpected rejection: %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Message, tt.want) {
			t.Errorf("%s: got %v, want message containing %q", tt.name, err, tt.want)
		}
	}
}

func TestChoicesValidator(t *testing.T) {
	v := &ChoicesValidator{}

	dup := validMCQ()
	dup.Options = []string{"A) 8", "B) 8", "C) 9", "D) 10"}
	if err := v.Validate(dup, GenerateInput{}); err == nil {
		t.Error("duplicate choices accepted")
	}

	// Duplicates hidden behind different letter prefixes.
	dupPrefix := validMCQ()
	dupPrefix.Options = []string{"A) cat", "B) Cat", "C) dog", "D) bird"}
	if err := v.Validate(dupPrefix, GenerateInput{}); err == nil {
		t.Error("case-variant duplicate choices accepted")
	}

	missing := validMCQ()
	missing.CorrectAnswer = "42"
	if err := v.Validate(missing, GenerateInput{}); err == nil {
		t.Error("answer not among choices accepted")
	}

	banned := validMCQ()
	banned.Options = []string{"A) 6", "B) 7", "C) 8", "D) All of the above"}
	if err := v.Validate(banned, GenerateInput{}); err == nil {
		t.Error("banned catch-all choice accepted")
	}

	biased := validMCQ()
	biased.Options = []string{
		"A) 6",
		"B) 7",
		"C) the answer is eight because five and three together make eight",
		"D) 9",
	}
	biased.CorrectAnswer = "the answer is eight because five and three together make eight"
	if err := v.Validate(biased, GenerateInput{}); err == nil {
		t.Error("length-biased correct answer accepted")
	}

	// Text answer matching a choice is fine.
	textAns := validMCQ()
	textAns.CorrectAnswer = "8"
	if err := v.Validate(textAns, GenerateInput{}); err != nil {
		t.Errorf("text answer matching a choice rejected: %v", err)
	}
}

func TestGiveawayValidator(t *testing.T) {
	v := &GiveawayValidator{}

	leak := &Item{
		Content:       "The capital of France is Paris. Name the capital of France.",
		Type:          TypeShortAnswer,
		CorrectAnswer: "Paris",
	}
	if err := v.Validate(leak, GenerateInput{}); err == nil {
		t.Error("answer leaked in question accepted")
	}

	// Math expressions naturally contain their operands.
	math := &Item{
		Content:       "What is 86 - 43?",
		Type:          TypeShortAnswer,
		CorrectAnswer: "43",
	}
	if err := v.Validate(math, GenerateInput{}); err != nil {
		t.Errorf("math operand overlap rejected: %v", err)
	}

	cmp := &Item{
		Content:       "Which is bigger: 2/5 or 4/5?",
		Type:          TypeMCQ,
		CorrectAnswer: "4/5",
	}
	if err := v.Validate(cmp, GenerateInput{}); err != nil {
		t.Errorf("comparison question rejected: %v", err)
	}

	ident := &Item{
		Content:       "Which of these animals is a cat?",
		Type:          TypeMCQ,
		CorrectAnswer: "cat",
	}
	if err := v.Validate(ident, GenerateInput{}); err != nil {
		t.Errorf("identification question rejected: %v", err)
	}
}

func TestVisualValidator(t *testing.T) {
	v := &VisualValidator{}
	rejects := []string{
		"Count the apples. [shows a picture of 5 apples]",
		"Look at the picture and count the dots.",
		"The figure shows a rectangle. What is its area?",
		"Which is longer: the pencil or the crayon?",
		"On a number line there is an open circle at 3 with shading to the right. Write the inequality.",
		"Draw a square with sides of 4 units.",
	}
	for _, content := range rejects {
		item := &Item{Content: content, CorrectAnswer: "4"}
		if err := v.Validate(item, GenerateInput{}); err == nil {
			t.Errorf("visual-bound question accepted: %q", content)
		}
	}

	ok := &Item{Content: "What is 5 + 3?", CorrectAnswer: "8"}
	if err := v.Validate(ok, GenerateInput{}); err != nil {
		t.Errorf("plain question rejected: %v", err)
	}

	// Locally generated items carry their own visual spec and are exempt.
	local := &Item{
		Content:       "What time does this clock show? [3:00]",
		CorrectAnswer: "3:00",
		Visual:        &VisualSpec{Kind: "clock"},
	}
	if err := v.Validate(local, GenerateInput{}); err != nil {
		t.Errorf("local visual item rejected: %v", err)
	}
}

func TestExplanationValidator(t *testing.T) {
	v := &ExplanationValidator{}

	badStep := validMCQ()
	badStep.Explanation = "First 5 + 3 = 9, so the answer is 8."
	if err := v.Validate(badStep, GenerateInput{}); err == nil {
		t.Error("explanation with bad arithmetic accepted")
	}

	badFinal := validMCQ()
	badFinal.Explanation = "Add them together to get 9."
	if err := v.Validate(badFinal, GenerateInput{}); err == nil {
		t.Error("explanation concluding with wrong result accepted")
	}

	good := validMCQ()
	good.Explanation = "Count on from 5: 5 + 3 = 8, which is 8."
	if err := v.Validate(good, GenerateInput{}); err != nil {
		t.Errorf("consistent explanation rejected: %v", err)
	}

	none := validMCQ()
	none.Explanation = ""
	if err := v.Validate(none, GenerateInput{}); err != nil {
		t.Errorf("missing explanation should pass: %v", err)
	}
}
