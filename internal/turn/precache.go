package turn

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nmalhotra/drill/internal/elo"
	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/policy"
	"github.com/nmalhotra/drill/internal/store"
)

// Branch labels the two speculative outcomes of the current item.
type Branch string

const (
	branchCorrect Branch = "correct"
	branchWrong   Branch = "wrong"
)

type precacheKey struct {
	learnerID int
	sessionID string
	branch    Branch
}

type precacheEntry struct {
	conceptID int
	item      *itemgen.Item
}

// precache holds speculative next items keyed by (learner, session,
// branch). Last writer wins per key; a foreground pop clears both branches.
type precache struct {
	mu      sync.Mutex
	entries map[precacheKey]precacheEntry
}

func newPrecache() *precache {
	return &precache{entries: make(map[precacheKey]precacheEntry)}
}

func (p *precache) put(learnerID int, sessionID string, branch Branch, conceptID int, item *itemgen.Item) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[precacheKey{learnerID, sessionID, branch}] = precacheEntry{conceptID, item}
}

// pop removes BOTH branch entries for the session and returns the
// requested branch's item when its concept matches the expected focus.
// Stale entries (wrong branch, wrong concept) are discarded, not reused.
func (p *precache) pop(learnerID int, sessionID string, branch Branch, expectedConceptID int) (hit *itemgen.Item, missed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	want := precacheKey{learnerID, sessionID, branch}
	entry, ok := p.entries[want]

	delete(p.entries, precacheKey{learnerID, sessionID, branchCorrect})
	delete(p.entries, precacheKey{learnerID, sessionID, branchWrong})

	if !ok {
		return nil, true
	}
	if expectedConceptID != 0 && entry.conceptID != expectedConceptID {
		return nil, true
	}
	return entry.item, false
}

func (p *precache) clearSession(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.entries {
		if k.sessionID == sessionID {
			delete(p.entries, k)
		}
	}
}

// len reports the number of cached entries; used by tests.
func (p *precache) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// PrecacheTrigger speculatively generates the next item for both possible
// outcomes of the session's current item. It is idempotent, runs in the
// background, and never blocks or fails the foreground turn; a branch that
// errors simply produces no entry.
func (e *Engine) PrecacheTrigger(ctx context.Context, sessionID string) {
	if e.precacheDisabled {
		return
	}
	go func() {
		sess, err := e.repos.Sessions.ByID(ctx, sessionID)
		if err != nil || sess == nil || sess.CurrentItemID == 0 {
			return
		}
		current, err := e.repos.Items.ByID(ctx, sess.CurrentItemID)
		if err != nil {
			return
		}

		var g errgroup.Group
		for _, branch := range []Branch{branchCorrect, branchWrong} {
			branch := branch
			g.Go(func() error {
				e.precacheBranch(ctx, sess, current, branch)
				return nil
			})
		}
		// Errors are swallowed: speculation is an optimization, never a
		// correctness dependency.
		_ = g.Wait()
	}()
}

// precacheBranch simulates the skill update for one assumed outcome,
// selects the focus under the simulated state, generates an item, and
// caches it. The item row is committed before the cache entry appears.
func (e *Engine) precacheBranch(ctx context.Context, sess *store.Session, current *itemgen.Item, branch Branch) {
	assumeCorrect := branch == branchCorrect

	recent, err := e.repos.Attempts.RecentEnriched(ctx, sess.LearnerID, e.cfg.RecentWindow)
	if err != nil {
		return
	}
	skills, err := e.repos.Skills.ListForLearner(ctx, sess.LearnerID)
	if err != nil {
		return
	}
	concepts, err := e.repos.Concepts.ListByTopic(ctx, sess.TopicID)
	if err != nil {
		return
	}

	// Simulate the pending outcome on top of the persisted state.
	state, ok := skills[current.ConceptID]
	if !ok {
		state = elo.NewState(e.cfg)
	}
	streak := 0
	for _, a := range recent {
		if !a.IsCorrect {
			break
		}
		streak++
	}
	simState := elo.Update(state, assumeCorrect, current.Difficulty, streak, e.cfg)

	correct := 0
	count := 0
	for _, a := range recent {
		if a.ConceptID != current.ConceptID {
			continue
		}
		count++
		if a.IsCorrect {
			correct++
		}
	}
	if assumeCorrect {
		correct++
	}
	simState.Mastery = elo.Mastery(simState.Rating, float64(correct)/float64(count+1))

	simSkills := make(map[int]elo.State, len(skills)+1)
	for k, v := range skills {
		simSkills[k] = v
	}
	simSkills[current.ConceptID] = simState

	simViews := append([]policy.AttemptView{{
		ConceptID:  current.ConceptID,
		Correct:    assumeCorrect,
		Difficulty: current.Difficulty,
	}}, attemptViews(recent)...)
	if len(simViews) > e.cfg.RecentWindow {
		simViews = simViews[:e.cfg.RecentWindow]
	}
	analysis := policy.Analyze(simViews)

	focusID := e.selector.SelectFocus(analysis, concepts, simSkills, current.ConceptID)
	if focusID == 0 {
		return
	}

	item, err := e.generateFor(ctx, sess, focusID, simSkills, analysis)
	if err != nil {
		return
	}
	e.precache.put(sess.LearnerID, sess.ID, branch, focusID, item)
}
