package curriculum

import (
	"strings"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	concepts := []Concept{
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b", Prerequisites: []int{1}},
		{ID: 3, Name: "c", Prerequisites: []int{1, 2}},
	}
	if err := Validate(concepts); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_Cycle(t *testing.T) {
	concepts := []Concept{
		{ID: 1, Name: "a", Prerequisites: []int{3}},
		{ID: 2, Name: "b", Prerequisites: []int{1}},
		{ID: 3, Name: "c", Prerequisites: []int{2}},
	}
	err := Validate(concepts)
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Errorf("expected cycle error, got %v", err)
	}
}

func TestValidate_DanglingAndDuplicate(t *testing.T) {
	concepts := []Concept{
		{ID: 1, Name: "a"},
		{ID: 1, Name: "dup"},
		{ID: 2, Name: "b", Prerequisites: []int{99}},
	}
	err := Validate(concepts)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"duplicate concept ID", "nonexistent prerequisite"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestNeedsVisuals(t *testing.T) {
	tests := []struct {
		concept Concept
		want    bool
	}{
		{Concept{Name: "Addition within 10"}, false},
		{Concept{Name: "Comparing lengths", VisualRequired: true}, true},
		{Concept{Name: "Reading a bar graph"}, true},
		{Concept{Name: "Geometry", Description: "identify shapes and symmetry"}, true},
	}
	for _, tt := range tests {
		if got := tt.concept.NeedsVisuals(); got != tt.want {
			t.Errorf("NeedsVisuals(%q) = %v, want %v", tt.concept.Name, got, tt.want)
		}
	}
}

func TestStarterConcepts(t *testing.T) {
	_, concepts, prereqs := StarterConcepts()
	if len(concepts) != len(prereqs) {
		t.Fatalf("concepts and prereqs length mismatch: %d vs %d", len(concepts), len(prereqs))
	}
	// Resolve index-based prereqs into IDs and validate the graph.
	for i := range concepts {
		concepts[i].ID = i + 1
	}
	for i, ps := range prereqs {
		for _, p := range ps {
			concepts[i].Prerequisites = append(concepts[i].Prerequisites, p+1)
		}
	}
	if err := Validate(concepts); err != nil {
		t.Errorf("starter curriculum invalid: %v", err)
	}
}
