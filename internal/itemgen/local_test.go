package itemgen

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/nmalhotra/drill/internal/curriculum"
)

func TestClockGenerator_Matches(t *testing.T) {
	g := &ClockGenerator{rng: rand.New(rand.NewSource(1))}
	if !g.Matches("Telling time", "Read analog clocks") {
		t.Error("clock concept not matched")
	}
	if g.Matches("Addition within 10", "") {
		t.Error("non-clock concept matched")
	}
}

func TestClockGenerator_AvoidsSeenTimes(t *testing.T) {
	g := &ClockGenerator{rng: rand.New(rand.NewSource(3))}
	input := GenerateInput{
		Concept: curriculum.Concept{ID: 8, Name: "Telling time to the hour", Description: "hour only"},
	}

	// Exhaust all but one hour-only variant.
	avoid := make(map[string]bool)
	for h := 1; h <= 11; h++ {
		avoid[NormalizeText(fmt.Sprintf("What time does this clock show? [%d:00]", h))] = true
	}

	item := g.Generate(input, avoid)
	if item == nil {
		t.Fatal("generator gave up with a variant remaining")
	}
	if item.Visual.Params["hour"] != 12 {
		t.Errorf("expected the only unseen hour 12, got %v", item.Visual.Params["hour"])
	}

	avoid[NormalizeText(item.Content)] = true
	if again := g.Generate(input, avoid); again != nil {
		t.Errorf("exhausted generator should return nil, got %q", again.Content)
	}
}

func TestNumberLineGenerator(t *testing.T) {
	g := &NumberLineGenerator{rng: rand.New(rand.NewSource(5))}
	if !g.Matches("Comparing numbers", "use a number line") {
		t.Error("number-line concept not matched")
	}

	item := g.Generate(GenerateInput{Concept: curriculum.Concept{ID: 2, Name: "Comparing numbers"}}, nil)
	if item == nil {
		t.Fatal("no item generated")
	}
	var a, b int
	if _, err := fmt.Sscanf(item.Content, "Which number is greater: %d or %d?", &a, &b); err != nil {
		t.Fatalf("unexpected content %q: %v", item.Content, err)
	}
	want := a
	if b > a {
		want = b
	}
	if item.CorrectAnswer != fmt.Sprintf("%d", want) {
		t.Errorf("answer = %q, want %d", item.CorrectAnswer, want)
	}
	if item.Visual == nil || item.Visual.Kind != "number-line" {
		t.Errorf("visual = %+v", item.Visual)
	}
}
