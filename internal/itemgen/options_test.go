package itemgen

import (
	"math/rand"
	"strings"
	"testing"
)

func TestStripLetterPrefix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"A) 6", "6"},
		{"b. cat", "cat"},
		{"D)9", "9"},
		{"42", "42"},
		{"Answer", "Answer"}, // leading A without ) . or space is not a prefix
	}
	for _, tt := range tests {
		if got := StripLetterPrefix(tt.in); got != tt.want {
			t.Errorf("StripLetterPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeAnswer(t *testing.T) {
	if got := SanitizeAnswer("A) 6"); got != "6" {
		t.Errorf("prefix not stripped: %q", got)
	}
	if got := SanitizeAnswer("six\x00\x1f"); got != "six" {
		t.Errorf("control characters not removed: %q", got)
	}
	if got := SanitizeAnswer("<script>alert(1)</script>6"); strings.Contains(got, "<") {
		t.Errorf("markup survived sanitization: %q", got)
	}
	long := strings.Repeat("x", 500)
	if got := SanitizeAnswer(long); len(got) > maxSanitizedAnswerLen {
		t.Errorf("length not capped: %d", len(got))
	}
}

func TestPlaceholderOptions(t *testing.T) {
	opts := PlaceholderOptions("B) 7", 2)
	if len(opts) != 4 {
		t.Fatalf("got %d options", len(opts))
	}
	if opts[0] != "A) 7" {
		t.Errorf("opts[0] = %q, want sanitized correct answer first", opts[0])
	}
	if opts[1] != "B) alt2a" {
		t.Errorf("opts[1] = %q", opts[1])
	}
	if !HasPlaceholderOptions(opts) {
		t.Error("placeholders not detected")
	}
	if HasPlaceholderOptions([]string{"A) 6", "B) 7", "C) 8", "D) 9"}) {
		t.Error("real options flagged as placeholders")
	}
}

func TestResolveAnswerText(t *testing.T) {
	options := []string{"A) 6", "B) 7", "C) 8", "D) 9"}
	tests := []struct{ in, want string }{
		{"D) 9", "9"},
		{"D", "9"},
		{"b", "7"},
		{"9", "9"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ResolveAnswerText(tt.in, options); got != tt.want {
			t.Errorf("ResolveAnswerText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDistractorGen_Numeric(t *testing.T) {
	g := NewDistractorGen(rand.New(rand.NewSource(1)))
	ds := g.Compute("8", 4)
	if len(ds) != 3 {
		t.Fatalf("got %d distractors, want 3", len(ds))
	}
	seen := map[string]bool{"8": true}
	for _, d := range ds {
		if seen[d] {
			t.Errorf("duplicate or correct-answer distractor %q in %v", d, ds)
		}
		seen[d] = true
	}
}

func TestDistractorGen_FillOptionsReplacesPlaceholders(t *testing.T) {
	g := NewDistractorGen(rand.New(rand.NewSource(7)))
	item := &Item{
		Content:       "What is 5 + 3?",
		Type:          TypeMCQ,
		Options:       PlaceholderOptions("8", 0),
		CorrectAnswer: "8",
	}
	g.FillOptions(item)

	if HasPlaceholderOptions(item.Options) {
		t.Errorf("placeholders survived: %v", item.Options)
	}
	if len(item.Options) != 4 {
		t.Fatalf("got %d options", len(item.Options))
	}
	// The answer letter must point at the correct option text.
	idx := letterIndex(item.CorrectAnswer)
	if idx < 0 || StripLetterPrefix(item.Options[idx]) != "8" {
		t.Errorf("answer %q does not resolve to 8 in %v", item.CorrectAnswer, item.Options)
	}
}
