package itemgen

import (
	"math"
	"testing"
)

func TestComputeAnswer(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		// Direct expressions with precedence.
		{"What is 5 + 3?", 8, true},
		{"What is 86 - 43?", 43, true},
		{"Compute 2 + 3 * 4.", 14, true},
		{"What is 12 / 3 - 1?", 3, true},
		{"What is 15 × 3?", 45, true},
		{"What is 84 ÷ 4?", 21, true},
		{"What is 86 − 43?", 43, true}, // unicode minus

		// Missing-number equations.
		{"Fill in the blank: __ + 8 = 11", 3, true},
		{"8 + __ = 11", 3, true},
		{"__ - 4 = 9", 13, true},
		{"12 - __ = 5", 7, true},
		{"__ * 3 = 12", 4, true},
		{"20 / __ = 5", 4, true},

		// Phrased operations.
		{"What is 7 plus 5?", 12, true},
		{"What is 2 plus 3 plus 4?", 9, true},
		{"What is 15 minus 6?", 9, true},
		{"What is 6 times 7?", 42, true},
		{"What is 20 divided by 4?", 5, true},
		{"What is the sum of 3 and 9?", 12, true},
		{"Find the sum of 2, 3, and 4.", 9, true},
		{"What is the product of 6 and 4?", 24, true},
		{"What is the difference between 9 and 4?", 5, true},

		// Reversed phrasings.
		{"What is 3 more than 5?", 8, true},
		{"What is 7 less than 15?", 8, true},
		{"Subtract 4 from 19.", 15, true},

		// Multi-step chains.
		{"What do you get by multiplying 6 by 4 then dividing by 3?", 8, true},

		// Word problems.
		{"Tom has 9 apples and eats 2 of them. How many are left?", 7, true},
		{"Maya had 12 stickers and gave 5 to her friend. How many now?", 7, true},
		{"Sam has 4 marbles and finds 3 more. How many does he have?", 7, true},
		{"There are 10 birds on a tree and 4 fly away. How many remain?", 6, true},

		// Not computable.
		{"Which is larger: 3/4 or 2/3?", 0, false},
		{"What shape has three sides?", 0, false},
		{"Compare 15 and 51.", 0, false},
	}
	for _, tt := range tests {
		got, ok := ComputeAnswer(tt.text)
		if ok != tt.ok {
			t.Errorf("ComputeAnswer(%q) applicable = %v, want %v", tt.text, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ComputeAnswer(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestMathCheckValidator_RejectsWrongAnswer(t *testing.T) {
	v := &MathCheckValidator{}
	item := &Item{
		Content:       "What is 7 less than 15?",
		Type:          TypeShortAnswer,
		CorrectAnswer: "9",
	}
	err := v.Validate(item, GenerateInput{})
	if err == nil {
		t.Fatal("expected rejection for 7 less than 15 != 9")
	}

	item.CorrectAnswer = "8"
	if err := v.Validate(item, GenerateInput{}); err != nil {
		t.Errorf("correct answer rejected: %v", err)
	}
}

func TestMathCheckValidator_ResolvesMCQLetters(t *testing.T) {
	v := &MathCheckValidator{}
	item := &Item{
		Content:       "What is 5 + 3?",
		Type:          TypeMCQ,
		Options:       []string{"A) 6", "B) 7", "C) 8", "D) 9"},
		CorrectAnswer: "C",
	}
	if err := v.Validate(item, GenerateInput{}); err != nil {
		t.Errorf("letter answer resolving to correct option rejected: %v", err)
	}

	item.CorrectAnswer = "D"
	if err := v.Validate(item, GenerateInput{}); err == nil {
		t.Error("letter answer resolving to wrong option accepted")
	}
}

func TestMathCheckValidator_SkipsNonArithmetic(t *testing.T) {
	v := &MathCheckValidator{}
	item := &Item{
		Content:       "What is the name of a three-sided shape?",
		Type:          TypeShortAnswer,
		CorrectAnswer: "triangle",
	}
	if err := v.Validate(item, GenerateInput{}); err != nil {
		t.Errorf("non-arithmetic item rejected: %v", err)
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{"3.5", 3.5, true},
		{"3/4", 0.75, true},
		{"1,234", 1234, true},
		{"triangle", 0, false},
		{"", 0, false},
		{"1/0", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumeric(tt.in)
		if ok != tt.ok || (ok && math.Abs(got-tt.want) > 1e-9) {
			t.Errorf("ParseNumeric(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEvalExpr_Precedence(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2 + 3 * 4", 14},
		{"10 - 4 / 2", 8},
		{"5 + 3 + 2", 10},
		{"100 / 5 / 2", 10},
	}
	for _, tt := range tests {
		got, err := evalExpr(tt.expr)
		if err != nil {
			t.Errorf("evalExpr(%q): %v", tt.expr, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("evalExpr(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
	if _, err := evalExpr("5 / 0"); err == nil {
		t.Error("division by zero not rejected")
	}
}
