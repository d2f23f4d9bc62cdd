package turn

import (
	"context"
	"fmt"

	"github.com/nmalhotra/drill/internal/elo"
	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/policy"
	"github.com/nmalhotra/drill/internal/store"
)

// chooseFocus runs the policy over the learner's current persisted state.
// Returns the focus concept id (0 = none) and the learner's skill map.
func (e *Engine) chooseFocus(ctx context.Context, sess *store.Session, lastConceptID int) (int, map[int]elo.State, error) {
	recent, err := e.repos.Attempts.RecentEnriched(ctx, sess.LearnerID, e.cfg.RecentWindow)
	if err != nil {
		return 0, nil, err
	}
	skills, err := e.repos.Skills.ListForLearner(ctx, sess.LearnerID)
	if err != nil {
		return 0, nil, err
	}
	concepts, err := e.repos.Concepts.ListByTopic(ctx, sess.TopicID)
	if err != nil {
		return 0, nil, err
	}

	analysis := policy.Analyze(attemptViews(recent))
	focus := e.selector.SelectFocus(analysis, concepts, skills, lastConceptID)
	return focus, skills, nil
}

// buildInput computes the target difficulty and item type for a focus
// concept under the given skill state and recent analysis.
func (e *Engine) buildInput(ctx context.Context, sess *store.Session, focusID int, skills map[int]elo.State, analysis policy.Analysis) (itemgen.GenerateInput, error) {
	concept, err := e.repos.Concepts.ByID(ctx, focusID)
	if err != nil {
		return itemgen.GenerateInput{}, err
	}

	topicName := ""
	if topics, err := e.repos.Concepts.ListTopics(ctx); err == nil {
		for _, t := range topics {
			if t.ID == concept.TopicID {
				topicName = t.Name
				break
			}
		}
	}

	state, ok := skills[focusID]
	if !ok {
		state = elo.NewState(e.cfg)
	}

	target := elo.TargetDifficulty(state.Rating, e.cfg)
	if stats := analysis.PerConcept[focusID]; stats != nil {
		target = elo.Calibrate(target, stats.Accuracy, stats.Count, e.cfg)
	}

	return itemgen.GenerateInput{
		Concept:          concept,
		TopicName:        topicName,
		TargetDifficulty: target,
		Type:             itemgen.TypeForMastery(state.Mastery),
	}, nil
}

// generateAndShow runs a full synchronous generation for the session and
// marks the result as the current item.
func (e *Engine) generateAndShow(ctx context.Context, sess *store.Session, lastConceptID int) (*itemgen.Item, error) {
	recent, err := e.repos.Attempts.RecentEnriched(ctx, sess.LearnerID, e.cfg.RecentWindow)
	if err != nil {
		return nil, err
	}
	skills, err := e.repos.Skills.ListForLearner(ctx, sess.LearnerID)
	if err != nil {
		return nil, err
	}
	concepts, err := e.repos.Concepts.ListByTopic(ctx, sess.TopicID)
	if err != nil {
		return nil, err
	}

	analysis := policy.Analyze(attemptViews(recent))
	focusID := e.selector.SelectFocus(analysis, concepts, skills, lastConceptID)
	if focusID == 0 {
		return nil, itemgen.ErrNoItem
	}

	item, err := e.generateFor(ctx, sess, focusID, skills, analysis)
	if err != nil {
		return nil, err
	}
	if err := e.show(ctx, sess, item); err != nil {
		return nil, err
	}
	return item, nil
}

// generateFor produces and persists one item for the focus concept.
func (e *Engine) generateFor(ctx context.Context, sess *store.Session, focusID int, skills map[int]elo.State, analysis policy.Analysis) (*itemgen.Item, error) {
	input, err := e.buildInput(ctx, sess, focusID, skills, analysis)
	if err != nil {
		return nil, err
	}

	dedup := e.registryFor(ctx, sess)
	item, err := e.generator.Generate(ctx, input, dedup)
	if err != nil {
		return nil, err
	}

	state, ok := skills[focusID]
	if !ok {
		state = elo.NewState(e.cfg)
	}
	item.EstimatedP = elo.Probability(state.Rating, item.Difficulty, e.cfg)

	if _, err := e.repos.Items.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("persist item: %w", err)
	}
	return item, nil
}

// show marks the item as the session's current one and records it in the
// session dedup layer immediately, before it is answered.
func (e *Engine) show(ctx context.Context, sess *store.Session, item *itemgen.Item) error {
	if err := e.repos.Sessions.SetCurrent(ctx, sess.ID, item.ID, nil); err != nil {
		return err
	}
	sess.CurrentItemID = item.ID
	e.registryFor(ctx, sess).RecordShown(item.Content)
	return nil
}

// registryFor returns the session's dedup registry, rebuilding it from the
// store on first access (session texts plus lifetime-correct texts).
func (e *Engine) registryFor(ctx context.Context, sess *store.Session) *itemgen.DedupRegistry {
	e.mu.Lock()
	if r, ok := e.registries[sess.ID]; ok {
		e.mu.Unlock()
		return r
	}
	e.mu.Unlock()

	lifetime, err := e.repos.Attempts.CorrectTexts(ctx, sess.LearnerID)
	if err != nil {
		lifetime = nil
	}
	r := itemgen.NewDedupRegistry(lifetime)

	if shown, err := e.repos.Attempts.ForSession(ctx, sess.ID); err == nil {
		for _, a := range shown {
			r.RecordShown(a.Content)
		}
	}
	// The currently displayed, unanswered item must be excluded too.
	if sess.CurrentItemID != 0 {
		if item, err := e.repos.Items.ByID(ctx, sess.CurrentItemID); err == nil {
			r.RecordShown(item.Content)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if existing, ok := e.registries[sess.ID]; ok {
		return existing
	}
	e.registries[sess.ID] = r
	return r
}

func attemptViews(recent []store.EnrichedAttempt) []policy.AttemptView {
	out := make([]policy.AttemptView, 0, len(recent))
	for _, a := range recent {
		out = append(out, policy.AttemptView{
			ConceptID:  a.ConceptID,
			Correct:    a.IsCorrect,
			Difficulty: a.Difficulty,
		})
	}
	return out
}
