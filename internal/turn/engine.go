// Package turn orchestrates the per-interaction loop: focus selection,
// difficulty targeting, item generation, grading, skill updates, and the
// speculative dual pre-cache.
package turn

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nmalhotra/drill/internal/config"
	"github.com/nmalhotra/drill/internal/elo"
	"github.com/nmalhotra/drill/internal/grader"
	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/policy"
	"github.com/nmalhotra/drill/internal/store"
)

// ErrNoActiveItem is returned by Submit when the session has no current
// item to grade.
var ErrNoActiveItem = errors.New("session has no active item")

// ErrSessionNotFound is returned for unknown session ids.
var ErrSessionNotFound = errors.New("session not found")

// ItemGenerator produces one accepted (but not yet persisted) item.
type ItemGenerator interface {
	Generate(ctx context.Context, input itemgen.GenerateInput, dedup *itemgen.DedupRegistry) (*itemgen.Item, error)
}

// AnswerGrader scores a learner's answer against an item.
type AnswerGrader interface {
	Grade(ctx context.Context, item *itemgen.Item, answer string) (grader.Result, error)
	Explain(ctx context.Context, item *itemgen.Item, learnerAnswer string) grader.Explanation
}

// Repos bundles the repository interfaces the engine depends on.
type Repos struct {
	Learners store.LearnerRepo
	Concepts store.ConceptRepo
	Skills   store.SkillRepo
	Attempts store.AttemptRepo
	Recorder store.AttemptRecorder
	Items    store.ItemRepo
	Sessions store.SessionRepo
}

// Result is what Submit reports back to the presentation layer.
type Result struct {
	IsCorrect    bool                `json:"is_correct"`
	IsClose      bool                `json:"is_close,omitempty"`
	PartialScore float64             `json:"partial_score,omitempty"`
	RatingBefore float64             `json:"rating_before"`
	RatingAfter  float64             `json:"rating_after"`
	Mastery      float64             `json:"mastery"`
	Feedback     string              `json:"feedback,omitempty"`
	Explanation  *grader.Explanation `json:"explanation,omitempty"`

	CorrectAnswer string `json:"correct_answer"`
	AnswerGiven   string `json:"answer_given"`
	ConceptID     int    `json:"concept_id"`
}

// Engine implements the session turn API.
type Engine struct {
	repos     Repos
	generator ItemGenerator
	grader    AnswerGrader
	selector  *policy.Selector
	cfg       config.Config

	precache         *precache
	precacheDisabled bool

	// Per-session dedup registries, rebuilt lazily from the store.
	mu         sync.Mutex
	registries map[string]*itemgen.DedupRegistry
}

// DisablePrecache turns speculative generation off. The turn loop is
// correct without it; every Next falls through to synchronous generation.
func (e *Engine) DisablePrecache() {
	e.precacheDisabled = true
}

// NewEngine wires the turn engine.
func NewEngine(repos Repos, generator ItemGenerator, answerGrader AnswerGrader, cfg config.Config) *Engine {
	return &Engine{
		repos:      repos,
		generator:  generator,
		grader:     answerGrader,
		selector:   policy.NewSelector(cfg),
		cfg:        cfg,
		precache:   newPrecache(),
		registries: make(map[string]*itemgen.DedupRegistry),
	}
}

// Start opens a session for the learner on a topic and generates the first
// item. The returned item may be nil when generation is exhausted; the
// caller shows a retry surface.
func (e *Engine) Start(ctx context.Context, learnerID, topicID int) (*store.Session, *itemgen.Item, error) {
	sess, err := e.repos.Sessions.Create(ctx, learnerID, topicID)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	item, err := e.generateAndShow(ctx, sess, 0)
	if err != nil && !errors.Is(err, itemgen.ErrNoItem) {
		return nil, nil, err
	}
	return sess, item, nil
}

// Submit grades the session's current item, updates skill state and
// history in one transaction, and fires the dual pre-cache.
func (e *Engine) Submit(ctx context.Context, sessionID, answerGiven string, responseTimeS float64) (*Result, error) {
	sess, err := e.repos.Sessions.ByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if sess.CurrentItemID == 0 {
		return nil, ErrNoActiveItem
	}

	item, err := e.repos.Items.ByID(ctx, sess.CurrentItemID)
	if err != nil {
		return nil, fmt.Errorf("load current item: %w", err)
	}

	graded, err := e.grader.Grade(ctx, item, answerGiven)
	if err != nil {
		return nil, fmt.Errorf("grade answer: %w", err)
	}

	state, err := e.repos.Skills.Get(ctx, sess.LearnerID, item.ConceptID)
	if err != nil {
		return nil, err
	}
	ratingBefore := state.Rating

	// Streak across all concepts, from the most recent attempts backward.
	recent, err := e.repos.Attempts.RecentEnriched(ctx, sess.LearnerID, e.cfg.RecentWindow)
	if err != nil {
		return nil, err
	}
	streak := 0
	for _, a := range recent {
		if !a.IsCorrect {
			break
		}
		streak++
	}

	newState := elo.Update(state, graded.IsCorrect, item.Difficulty, streak, e.cfg)

	// Mastery blends the new rating with recent accuracy on this concept,
	// including the outcome just observed.
	conceptRecent, err := e.repos.Attempts.RecentForConcept(ctx, sess.LearnerID, item.ConceptID, e.cfg.RecentWindow)
	if err != nil {
		return nil, err
	}
	correct := 0
	for _, a := range conceptRecent {
		if a.IsCorrect {
			correct++
		}
	}
	if graded.IsCorrect {
		correct++
	}
	recentAccuracy := float64(correct) / float64(len(conceptRecent)+1)
	newState.Mastery = elo.Mastery(newState.Rating, recentAccuracy)

	// The accept path is one transaction: attempt + skill + history.
	// On failure nothing is recorded and the error surfaces to the caller.
	_, err = e.repos.Recorder.RecordAttempt(ctx, store.AttemptRecord{
		ItemID:        item.ID,
		LearnerID:     sess.LearnerID,
		SessionID:     sess.ID,
		ConceptID:     item.ConceptID,
		AnswerGiven:   answerGiven,
		IsCorrect:     graded.IsCorrect,
		PartialScore:  graded.PartialScore,
		ResponseTimeS: responseTimeS,
		RatingBefore:  ratingBefore,
		RatingAfter:   newState.Rating,
	}, newState)
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	if graded.IsCorrect {
		e.registryFor(ctx, sess).RecordCorrect(item.Content)
	}

	result := &Result{
		IsCorrect:     graded.IsCorrect,
		IsClose:       graded.IsClose,
		PartialScore:  graded.PartialScore,
		RatingBefore:  ratingBefore,
		RatingAfter:   newState.Rating,
		Mastery:       newState.Mastery,
		Feedback:      graded.Feedback,
		CorrectAnswer: item.CorrectAnswer,
		AnswerGiven:   answerGiven,
		ConceptID:     item.ConceptID,
	}
	if !graded.IsCorrect {
		expl := e.grader.Explain(ctx, item, answerGiven)
		result.Explanation = &expl
	}

	if err := e.repos.Sessions.SetCurrent(ctx, sess.ID, item.ID, resultBlob(result)); err != nil {
		return nil, err
	}

	// Speculation for the next turn; never blocks this one.
	e.PrecacheTrigger(context.WithoutCancel(ctx), sess.ID)

	return result, nil
}

// Next produces the next item for the session: the matching pre-cache
// branch when it exists, otherwise a synchronous generation. Returns
// (nil, nil) when generation is exhausted.
func (e *Engine) Next(ctx context.Context, sessionID string) (*itemgen.Item, error) {
	sess, err := e.repos.Sessions.ByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	lastConceptID, lastCorrect, answered := e.lastOutcome(ctx, sess)

	// Recompute the focus under the already-persisted state so a cached
	// item is only used when it targets the right concept.
	focusID, _, err := e.chooseFocus(ctx, sess, lastConceptID)
	if err != nil {
		return nil, err
	}

	if answered {
		branch := branchWrong
		if lastCorrect {
			branch = branchCorrect
		}
		if hit, _ := e.precache.pop(sess.LearnerID, sess.ID, branch, focusID); hit != nil {
			if err := e.show(ctx, sess, hit); err != nil {
				return nil, err
			}
			return hit, nil
		}
	}

	item, err := e.generateAndShow(ctx, sess, lastConceptID)
	if errors.Is(err, itemgen.ErrNoItem) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// End closes the session and reports totals.
func (e *Engine) End(ctx context.Context, sessionID string) (*store.SessionTotals, error) {
	totals, err := e.repos.Sessions.End(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	e.precache.clearSession(sessionID)
	e.mu.Lock()
	delete(e.registries, sessionID)
	e.mu.Unlock()

	return totals, nil
}

// lastOutcome reads the session's last result blob.
func (e *Engine) lastOutcome(ctx context.Context, sess *store.Session) (conceptID int, correct, answered bool) {
	if sess.LastResult == nil {
		return 0, false, false
	}
	if v, ok := sess.LastResult["concept_id"].(float64); ok {
		conceptID = int(v)
	}
	if v, ok := sess.LastResult["is_correct"].(bool); ok {
		correct = v
	}
	return conceptID, correct, true
}

func resultBlob(r *Result) map[string]any {
	return map[string]any{
		"is_correct":    r.IsCorrect,
		"is_close":      r.IsClose,
		"partial_score": r.PartialScore,
		"rating_before": r.RatingBefore,
		"rating_after":  r.RatingAfter,
		"concept_id":    float64(r.ConceptID),
	}
}
