package itemgen

import (
	"regexp"
	"strings"
	"sync"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeText canonicalizes question text for dedup comparison:
// lowercase with collapsed whitespace.
func NormalizeText(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// DedupRegistry tracks the three exclusion layers:
//
//  1. session: every question shown in the current session, including the
//     currently displayed, unanswered one
//  2. lifetime: every question the learner has ever answered correctly
//  3. prompt hints: the union of both, advisory only, passed to the LLM
//
// Layers 1 and 2 are hard post-generation rejections.
type DedupRegistry struct {
	mu       sync.Mutex
	session  map[string]bool
	lifetime map[string]bool
}

// NewDedupRegistry creates a registry seeded with the learner's lifetime
// correct-answer texts (already normalized or not; they are re-normalized).
func NewDedupRegistry(lifetimeCorrect []string) *DedupRegistry {
	r := &DedupRegistry{
		session:  make(map[string]bool),
		lifetime: make(map[string]bool, len(lifetimeCorrect)),
	}
	for _, t := range lifetimeCorrect {
		r.lifetime[NormalizeText(t)] = true
	}
	return r
}

// RecordShown adds a question to the session layer. Call this the moment an
// item is displayed, before it is answered.
func (r *DedupRegistry) RecordShown(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session[NormalizeText(text)] = true
}

// RecordCorrect adds a question to the lifetime layer after a correct
// answer.
func (r *DedupRegistry) RecordCorrect(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lifetime[NormalizeText(text)] = true
}

// IsDuplicate reports whether the candidate matches the session or lifetime
// layer. This is the hard rejection check.
func (r *DedupRegistry) IsDuplicate(text string) bool {
	norm := NormalizeText(text)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session[norm] || r.lifetime[norm]
}

// PromptHints returns the union of both layers for the LLM prompt, capped
// at max entries (0 = unlimited). Session questions come first so the most
// immediately repeatable texts survive the cap.
func (r *DedupRegistry) PromptHints(max int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	hints := make([]string, 0, len(r.session)+len(r.lifetime))
	for t := range r.session {
		hints = append(hints, t)
	}
	for t := range r.lifetime {
		if !r.session[t] {
			hints = append(hints, t)
		}
	}
	if max > 0 && len(hints) > max {
		hints = hints[:max]
	}
	return hints
}
