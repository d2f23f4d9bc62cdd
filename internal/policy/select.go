package policy

import (
	"sort"

	"github.com/nmalhotra/drill/internal/config"
	"github.com/nmalhotra/drill/internal/curriculum"
	"github.com/nmalhotra/drill/internal/elo"
)

const (
	// softPrereqAttempts is how many attempts on each prerequisite unlock
	// a concept, independent of mastery.
	softPrereqAttempts = 2

	// minAccuracyEvidence is the recent attempt count below which a
	// concept's accuracy is too noisy to drive a stay/fallback/advance
	// decision.
	minAccuracyEvidence = 3

	sweetSpotLow  = 0.60
	sweetSpotHigh = 0.90

	// Variety scoring weights.
	recencyPenalty = 0.3
	virginBonus    = 0.2
)

// Selector picks focus concepts for a topic.
type Selector struct {
	cfg config.Config
}

// NewSelector returns a Selector using the given engine configuration.
func NewSelector(cfg config.Config) *Selector {
	return &Selector{cfg: cfg}
}

// SelectFocus picks the concept for the next item. currentConceptID is the
// concept of the item last shown (0 if none). skills maps concept id to the
// learner's skill state; absent entries mean defaults.
// Returns 0 when the topic has no usable concept.
func (s *Selector) SelectFocus(analysis Analysis, concepts []curriculum.Concept, skills map[int]elo.State, currentConceptID int) int {
	if len(concepts) == 0 {
		return 0
	}

	byID := make(map[int]curriculum.Concept, len(concepts))
	for _, c := range concepts {
		byID[c.ID] = c
	}

	available := s.availableConcepts(concepts, skills)
	pick := s.ladder(analysis, concepts, byID, available, skills, currentConceptID)

	// Variety: never repeat the previous concept when an alternative
	// qualifies. The replacement is chosen by additive scoring over the
	// available set.
	if pick != 0 && pick == currentConceptID && len(available) > 1 {
		if alt := s.bestScored(available, skills, currentConceptID); alt != 0 && alt != pick {
			return alt
		}
	}
	return pick
}

// ladder walks the priority rules; first match wins.
func (s *Selector) ladder(analysis Analysis, concepts []curriculum.Concept, byID map[int]curriculum.Concept, available []curriculum.Concept, skills map[int]elo.State, currentConceptID int) int {
	cur, haveCurrent := byID[currentConceptID]

	if haveCurrent && !cur.NeedsVisuals() {
		st := s.skillFor(skills, cur.ID)
		mastered := s.mastered(cur, st)
		stats := analysis.PerConcept[cur.ID]

		if stats != nil && stats.Count >= minAccuracyEvidence {
			acc := stats.Accuracy
			// Sweet spot: keep practicing.
			if acc >= sweetSpotLow && acc <= sweetSpotHigh && !mastered {
				return cur.ID
			}
			// Struggling: fall back to the first unmastered prerequisite.
			if acc < sweetSpotLow {
				if pid := s.firstUnmasteredPrereq(cur, byID, skills); pid != 0 {
					return pid
				}
			}
			// Mastered or too easy: advance.
			if mastered || acc > sweetSpotHigh {
				if next := s.nextUnmastered(concepts, cur.ID, skills); next != 0 {
					return next
				}
			}
		} else if !mastered {
			// Too little evidence to leave the current concept.
			return cur.ID
		} else if next := s.nextUnmastered(concepts, cur.ID, skills); next != 0 {
			return next
		}
	}

	// Weakest recently-practiced unmastered concept.
	weakestID, weakestAcc := 0, 1.01
	for _, c := range available {
		stats := analysis.PerConcept[c.ID]
		if stats == nil {
			continue
		}
		st := s.skillFor(skills, c.ID)
		if s.mastered(c, st) {
			continue
		}
		if stats.Accuracy < weakestAcc {
			weakestAcc = stats.Accuracy
			weakestID = c.ID
		}
	}
	if weakestID != 0 {
		return weakestID
	}

	// Next untouched concept in curriculum order.
	for _, c := range sortedByOrder(available) {
		if s.skillFor(skills, c.ID).TotalAttempts == 0 {
			return c.ID
		}
	}

	// Final fallback: least mastered concept.
	pool := available
	if len(pool) == 0 {
		for _, c := range concepts {
			if !c.NeedsVisuals() {
				pool = append(pool, c)
			}
		}
	}
	leastID, leastMastery := 0, 1.01
	for _, c := range sortedByOrder(pool) {
		m := s.skillFor(skills, c.ID).Mastery
		if m < leastMastery {
			leastMastery = m
			leastID = c.ID
		}
	}
	return leastID
}

// availableConcepts filters to concepts the policy may serve: not
// visual-bound, with every prerequisite attempted at least
// softPrereqAttempts times.
func (s *Selector) availableConcepts(concepts []curriculum.Concept, skills map[int]elo.State) []curriculum.Concept {
	var out []curriculum.Concept
	for _, c := range concepts {
		if c.NeedsVisuals() {
			continue
		}
		ok := true
		for _, pid := range c.Prerequisites {
			if s.skillFor(skills, pid).TotalAttempts < softPrereqAttempts {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, c)
		}
	}
	return out
}

// bestScored ranks candidates by need (1 - mastery), a recency penalty for
// the previously practiced concept, and a bonus for untouched concepts.
func (s *Selector) bestScored(candidates []curriculum.Concept, skills map[int]elo.State, lastConceptID int) int {
	bestID, bestScore := 0, -1.0e9
	for _, c := range sortedByOrder(candidates) {
		st := s.skillFor(skills, c.ID)
		score := 1.0 - st.Mastery
		if c.ID == lastConceptID {
			score -= recencyPenalty
		}
		if st.TotalAttempts == 0 {
			score += virginBonus
		}
		if score > bestScore {
			bestScore = score
			bestID = c.ID
		}
	}
	// Prefer any alternative over the last concept when one exists.
	if bestID == lastConceptID {
		for _, c := range sortedByOrder(candidates) {
			if c.ID != lastConceptID {
				return c.ID
			}
		}
	}
	return bestID
}

// firstUnmasteredPrereq returns the first prerequisite (by concept id) the
// learner has not mastered, skipping visual-bound concepts.
func (s *Selector) firstUnmasteredPrereq(c curriculum.Concept, byID map[int]curriculum.Concept, skills map[int]elo.State) int {
	prereqs := append([]int(nil), c.Prerequisites...)
	sort.Ints(prereqs)
	for _, pid := range prereqs {
		pc, ok := byID[pid]
		if !ok || pc.NeedsVisuals() {
			continue
		}
		if !s.mastered(pc, s.skillFor(skills, pid)) {
			return pid
		}
	}
	return 0
}

// nextUnmastered returns the next unmastered concept after current in
// order_index order.
func (s *Selector) nextUnmastered(concepts []curriculum.Concept, currentID int, skills map[int]elo.State) int {
	ordered := sortedByOrder(concepts)
	found := false
	for _, c := range ordered {
		if c.ID == currentID {
			found = true
			continue
		}
		if !found || c.NeedsVisuals() {
			continue
		}
		if !s.mastered(c, s.skillFor(skills, c.ID)) {
			return c.ID
		}
	}
	return 0
}

func (s *Selector) skillFor(skills map[int]elo.State, conceptID int) elo.State {
	if st, ok := skills[conceptID]; ok {
		return st
	}
	return elo.NewState(s.cfg)
}

func (s *Selector) mastered(c curriculum.Concept, st elo.State) bool {
	threshold := c.MasteryThreshold
	if threshold == 0 {
		threshold = s.cfg.MasteryThreshold
	}
	return st.Mastery >= threshold
}

func sortedByOrder(concepts []curriculum.Concept) []curriculum.Concept {
	out := append([]curriculum.Concept(nil), concepts...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out
}
