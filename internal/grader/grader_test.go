package grader

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/llm"
)

func TestCheckAnswer_ShortAnswer(t *testing.T) {
	tests := []struct {
		name    string
		learner string
		correct string
		want    bool
		close   bool
	}{
		{"exact", "triangle", "triangle", true, false},
		{"case and whitespace", "  Triangle ", "triangle", true, false},
		{"numeric equal", "8.0", "8", true, false},
		{"numeric fraction", "3/4", "0.75", true, false},
		{"numeric within 1% is close", "99.5", "100", false, true},
		{"numeric far off", "42", "100", false, false},
		{"containment", "triangles", "triangle", true, false},
		{"containment too short", "tri", "triangle", false, false},
		{"empty", "", "8", false, false},
	}
	for _, tt := range tests {
		got, close := CheckAnswer(tt.learner, tt.correct, itemgen.TypeShortAnswer, nil)
		if got != tt.want || close != tt.close {
			t.Errorf("%s: CheckAnswer(%q, %q) = (%v, %v), want (%v, %v)",
				tt.name, tt.learner, tt.correct, got, close, tt.want, tt.close)
		}
	}
}

func TestCheckAnswer_MCQLetterResolution(t *testing.T) {
	options := []string{"A) 6", "B) 7", "C) 8", "D) 9"}

	// Learner answers with the option text; the correct answer is a letter.
	if ok, _ := CheckAnswer("7", "B", itemgen.TypeMCQ, options); !ok {
		t.Error("text answer 7 should resolve to letter B")
	}
	if ok, _ := CheckAnswer("B", "B", itemgen.TypeMCQ, options); !ok {
		t.Error("letter-for-letter match failed")
	}
	if ok, _ := CheckAnswer("b) 7", "B", itemgen.TypeMCQ, options); !ok {
		t.Error("prefixed answer should resolve to letter B")
	}
	if ok, _ := CheckAnswer("9", "B", itemgen.TypeMCQ, options); ok {
		t.Error("wrong option accepted")
	}
	if ok, _ := CheckAnswer("7", "7", itemgen.TypeMCQ, options); !ok {
		t.Error("text-for-text match failed")
	}
}

func TestGrade_ProblemUsesLLMVerdict(t *testing.T) {
	verdict := `{"is_correct": true, "partial_score": 0.9, "feedback": "Good reasoning."}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(verdict)})
	g := New(mock)

	item := &itemgen.Item{
		Content:       "Explain how to split 12 apples between 3 kids.",
		Type:          itemgen.TypeProblem,
		CorrectAnswer: "4 each",
	}
	res, err := g.Grade(context.Background(), item, "each kid gets 4 because 12 / 3 = 4")
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect || res.PartialScore != 0.9 || res.Feedback == "" {
		t.Errorf("unexpected result: %+v", res)
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM called %d times, want 1", mock.CallCount())
	}
}

func TestGrade_ProblemFallsBackToLocal(t *testing.T) {
	// Empty mock queue: every call fails, so grading degrades to exact match.
	mock := llm.NewMockProvider()
	g := New(mock)

	item := &itemgen.Item{
		Content:       "What is 12 divided by 3?",
		Type:          itemgen.TypeProblem,
		CorrectAnswer: "4",
	}
	res, err := g.Grade(context.Background(), item, "4")
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect || res.PartialScore != 1.0 {
		t.Errorf("fallback grading failed: %+v", res)
	}

	res, err = g.Grade(context.Background(), item, "5")
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Errorf("wrong answer accepted by fallback: %+v", res)
	}
}

func TestExplain_FallbackOnFailure(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock)

	item := &itemgen.Item{Content: "What is 5 + 3?", CorrectAnswer: "8"}
	exp := g.Explain(context.Background(), item, "9")
	if exp.Encouragement != "Keep going!" {
		t.Errorf("encouragement = %q", exp.Encouragement)
	}
	if exp.Explanation == "" {
		t.Error("fallback explanation empty")
	}
}

func TestExplain_ParsesLLMOutput(t *testing.T) {
	payload := `{"encouragement": "Nice try!", "explanation": "Count on from 5.", "key_concept": "Addition", "tip": "Use your fingers."}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	g := New(mock)

	item := &itemgen.Item{Content: "What is 5 + 3?", CorrectAnswer: "8"}
	exp := g.Explain(context.Background(), item, "9")
	if exp.Encouragement != "Nice try!" || exp.KeyConcept != "Addition" {
		t.Errorf("unexpected explanation: %+v", exp)
	}
}
