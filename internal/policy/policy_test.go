package policy

import (
	"testing"

	"github.com/nmalhotra/drill/internal/config"
	"github.com/nmalhotra/drill/internal/curriculum"
	"github.com/nmalhotra/drill/internal/elo"
)

func threeConcepts() []curriculum.Concept {
	return []curriculum.Concept{
		{ID: 1, TopicID: 1, Name: "c1", OrderIndex: 0},
		{ID: 2, TopicID: 1, Name: "c2", OrderIndex: 1, Prerequisites: []int{1}},
		{ID: 3, TopicID: 1, Name: "c3", OrderIndex: 2, Prerequisites: []int{2}},
	}
}

func repeat(conceptID int, outcomes ...bool) []AttemptView {
	var out []AttemptView
	for _, o := range outcomes {
		out = append(out, AttemptView{ConceptID: conceptID, Correct: o})
	}
	return out
}

func TestAnalyze_Empty(t *testing.T) {
	a := Analyze(nil)
	if a.OverallAccuracy != 0 || a.TotalAttempts != 0 || a.Trend != TrendStable {
		t.Errorf("unexpected empty analysis: %+v", a)
	}
}

func TestAnalyze_PerConcept(t *testing.T) {
	recent := []AttemptView{
		{ConceptID: 1, Correct: true},
		{ConceptID: 1, Correct: false},
		{ConceptID: 2, Correct: true},
	}
	a := Analyze(recent)
	if a.OverallAccuracy < 0.66 || a.OverallAccuracy > 0.67 {
		t.Errorf("overall accuracy = %v", a.OverallAccuracy)
	}
	if a.PerConcept[1].Count != 2 || a.PerConcept[1].Correct != 1 {
		t.Errorf("concept 1 stats: %+v", a.PerConcept[1])
	}
	if a.PerConcept[2].Accuracy != 1.0 {
		t.Errorf("concept 2 accuracy = %v", a.PerConcept[2].Accuracy)
	}
}

func TestAnalyze_Trend(t *testing.T) {
	// Newest first: 3 recent correct, 3 older wrong -> improving.
	improving := append(repeat(1, true, true, true), repeat(1, false, false, false)...)
	if got := Analyze(improving).Trend; got != TrendImproving {
		t.Errorf("trend = %v, want improving", got)
	}

	declining := append(repeat(1, false, false, false), repeat(1, true, true, true)...)
	if got := Analyze(declining).Trend; got != TrendDeclining {
		t.Errorf("trend = %v, want declining", got)
	}

	// Too few attempts per half: stable regardless of direction.
	short := append(repeat(1, true, true), repeat(1, false, false)...)
	if got := Analyze(short).Trend; got != TrendStable {
		t.Errorf("trend for short window = %v, want stable", got)
	}
}

func TestSelectFocus_ColdStartPicksFirstUntouched(t *testing.T) {
	s := NewSelector(config.Default())
	got := s.SelectFocus(Analyze(nil), threeConcepts(), map[int]elo.State{}, 0)
	if got != 1 {
		t.Errorf("cold start focus = %d, want 1", got)
	}
}

func TestSelectFocus_StaysWithSparseEvidence(t *testing.T) {
	// One correct attempt on c1: accuracy 1.0 but only one data point.
	// c2 and c3 are still locked by the soft prerequisite, so the policy
	// keeps serving c1.
	cfg := config.Default()
	s := NewSelector(cfg)
	st := elo.Update(elo.NewState(cfg), true, 560, 0, cfg)
	st.Mastery = elo.Mastery(st.Rating, 1.0)
	skills := map[int]elo.State{1: st}

	got := s.SelectFocus(Analyze(repeat(1, true)), threeConcepts(), skills, 1)
	if got != 1 {
		t.Errorf("focus after one correct answer = %d, want 1", got)
	}
}

func TestSelectFocus_SweetSpotStaysWhenSoleCandidate(t *testing.T) {
	s := NewSelector(config.Default())
	skills := map[int]elo.State{
		1: {Rating: 850, Uncertainty: 300, Mastery: 0.4, TotalAttempts: 1, CorrectAttempts: 1},
	}
	// c2/c3 locked: c1's single attempt is below the soft-prereq bar.
	recent := repeat(1, true, false, true, true) // accuracy 0.75
	got := s.SelectFocus(Analyze(recent), threeConcepts(), skills, 1)
	if got != 1 {
		t.Errorf("sweet spot focus = %d, want 1", got)
	}
}

func TestSelectFocus_PrereqFallback(t *testing.T) {
	// Scenario: current c3 at accuracy 0.40, prereqs {c1, c2}, c1 mastered
	// and c2 not. Focus must be c2.
	s := NewSelector(config.Default())
	concepts := []curriculum.Concept{
		{ID: 1, TopicID: 1, Name: "c1", OrderIndex: 0},
		{ID: 2, TopicID: 1, Name: "c2", OrderIndex: 1},
		{ID: 3, TopicID: 1, Name: "c3", OrderIndex: 2, Prerequisites: []int{1, 2}},
	}
	skills := map[int]elo.State{
		1: {Rating: 1300, Mastery: 0.85, TotalAttempts: 20, CorrectAttempts: 18},
		2: {Rating: 900, Mastery: 0.50, TotalAttempts: 10, CorrectAttempts: 6},
		3: {Rating: 800, Mastery: 0.30, TotalAttempts: 5, CorrectAttempts: 2},
	}
	recent := repeat(3, false, false, true, false, true) // accuracy 0.40
	got := s.SelectFocus(Analyze(recent), concepts, skills, 3)
	if got != 2 {
		t.Errorf("prereq fallback focus = %d, want 2", got)
	}
}

func TestSelectFocus_MasteryAdvance(t *testing.T) {
	// Scenario: c1 at rating 1300, mastery computed at accuracy 0.95 ->
	// mastered (recent window 9/10 correct); advance to c2, the earliest
	// unmastered by order_index.
	cfg := config.Default()
	s := NewSelector(cfg)
	m := elo.Mastery(1300, 0.95)
	if !elo.IsMastered(m, cfg) {
		t.Fatalf("precondition: mastery %v should clear threshold", m)
	}
	skills := map[int]elo.State{
		1: {Rating: 1300, Mastery: m, TotalAttempts: 20, CorrectAttempts: 19},
	}
	recent := append(repeat(1, true, true, true, true), repeat(1, true, true, true, true, true, false)...)
	got := s.SelectFocus(Analyze(recent), threeConcepts(), skills, 1)
	if got != 2 {
		t.Errorf("advance focus = %d, want 2", got)
	}
}

func TestSelectFocus_WeakestRecentlyPracticed(t *testing.T) {
	s := NewSelector(config.Default())
	concepts := threeConcepts()
	skills := map[int]elo.State{
		1: {Mastery: 0.5, TotalAttempts: 6, CorrectAttempts: 3},
		2: {Mastery: 0.4, TotalAttempts: 6, CorrectAttempts: 2},
	}
	recent := append(repeat(1, true, true, false), repeat(2, false, false, true)...)
	// No current concept: rule 4 picks the lowest-accuracy unmastered one.
	got := s.SelectFocus(Analyze(recent), concepts, skills, 0)
	if got != 2 {
		t.Errorf("weakest focus = %d, want 2", got)
	}
}

func TestSelectFocus_VarietyAvoidsRepeatWhenAlternativeQualifies(t *testing.T) {
	s := NewSelector(config.Default())
	concepts := threeConcepts()
	// c1 practiced enough to unlock c2. c1 sits in the sweet spot, but c2
	// qualifies, so the variety constraint swaps the pick.
	skills := map[int]elo.State{
		1: {Mastery: 0.5, TotalAttempts: 8, CorrectAttempts: 6},
	}
	recent := repeat(1, true, false, true, true) // 0.75 sweet spot
	got := s.SelectFocus(Analyze(recent), concepts, skills, 1)
	if got != 2 {
		t.Errorf("variety focus = %d, want 2", got)
	}
}

func TestSelectFocus_SkipsVisualConcepts(t *testing.T) {
	s := NewSelector(config.Default())
	concepts := []curriculum.Concept{
		{ID: 1, TopicID: 1, Name: "measuring with a picture graph", OrderIndex: 0, VisualRequired: true},
		{ID: 2, TopicID: 1, Name: "counting", OrderIndex: 1},
	}
	got := s.SelectFocus(Analyze(nil), concepts, map[int]elo.State{}, 0)
	if got != 2 {
		t.Errorf("focus = %d, want 2 (visual concept skipped)", got)
	}
}

func TestSelectFocus_FinalFallbackLeastMastered(t *testing.T) {
	s := NewSelector(config.Default())
	concepts := threeConcepts()
	skills := map[int]elo.State{
		1: {Mastery: 0.9, TotalAttempts: 20, CorrectAttempts: 19},
		2: {Mastery: 0.8, TotalAttempts: 20, CorrectAttempts: 17},
		3: {Mastery: 0.78, TotalAttempts: 20, CorrectAttempts: 16},
	}
	got := s.SelectFocus(Analyze(nil), concepts, skills, 0)
	if got != 3 {
		t.Errorf("fallback focus = %d, want 3 (least mastered)", got)
	}
}
