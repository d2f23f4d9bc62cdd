// Package policy selects the focus concept for the next item.
//
// It analyzes the learner's recent attempts, walks a priority ladder
// (stay / prerequisite fallback / advance / weakest / untouched / least
// mastered), and applies a variety constraint so the same concept is not
// served twice in a row when an alternative qualifies.
package policy

// AttemptView is the slice of attempt data the policy needs, newest first.
type AttemptView struct {
	ConceptID  int
	Correct    bool
	Difficulty float64
}

// Trend describes the accuracy direction over the recent window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// ConceptStats aggregates recent outcomes for one concept.
type ConceptStats struct {
	// Results holds outcomes newest first.
	Results  []bool
	Count    int
	Correct  int
	Accuracy float64
}

// Analysis summarizes the recent attempt window.
type Analysis struct {
	OverallAccuracy float64
	PerConcept      map[int]*ConceptStats
	Trend           Trend
	TotalAttempts   int
}

// trendDelta is the accuracy gap between window halves that counts as a
// real change rather than noise.
const trendDelta = 0.10

// minHalf is the minimum attempts per half for the trend comparison.
const minHalf = 3

// Analyze computes per-concept stats and the improvement trend from the
// recent attempts, which must be ordered newest first.
func Analyze(recent []AttemptView) Analysis {
	a := Analysis{
		PerConcept:    make(map[int]*ConceptStats),
		Trend:         TrendStable,
		TotalAttempts: len(recent),
	}
	if len(recent) == 0 {
		return a
	}

	correct := 0
	for _, at := range recent {
		if at.Correct {
			correct++
		}
		cs := a.PerConcept[at.ConceptID]
		if cs == nil {
			cs = &ConceptStats{}
			a.PerConcept[at.ConceptID] = cs
		}
		cs.Results = append(cs.Results, at.Correct)
		cs.Count++
		if at.Correct {
			cs.Correct++
		}
	}
	a.OverallAccuracy = float64(correct) / float64(len(recent))

	for _, cs := range a.PerConcept {
		cs.Accuracy = float64(cs.Correct) / float64(cs.Count)
	}

	// Trend: compare the newer half against the older half.
	half := len(recent) / 2
	if half >= minHalf {
		newer := accuracy(recent[:half])
		older := accuracy(recent[half:])
		switch {
		case newer-older > trendDelta:
			a.Trend = TrendImproving
		case older-newer > trendDelta:
			a.Trend = TrendDeclining
		}
	}

	return a
}

func accuracy(attempts []AttemptView) float64 {
	if len(attempts) == 0 {
		return 0
	}
	c := 0
	for _, a := range attempts {
		if a.Correct {
			c++
		}
	}
	return float64(c) / float64(len(attempts))
}
