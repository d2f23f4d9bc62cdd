package store

import (
	"context"
	"fmt"

	"github.com/nmalhotra/drill/ent"
	"github.com/nmalhotra/drill/ent/attempt"
	"github.com/nmalhotra/drill/ent/item"
	"github.com/nmalhotra/drill/internal/elo"
	"github.com/nmalhotra/drill/internal/itemgen"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) RecentEnriched(ctx context.Context, learnerID, limit int) ([]EnrichedAttempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.LearnerID(learnerID)).
		Order(ent.Desc(attempt.FieldTimestamp), ent.Desc(attempt.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	return r.enrich(ctx, rows)
}

func (r *attemptRepo) RecentForConcept(ctx context.Context, learnerID, conceptID, limit int) ([]EnrichedAttempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(
			attempt.LearnerID(learnerID),
			attempt.ConceptID(conceptID),
		).
		Order(ent.Desc(attempt.FieldTimestamp), ent.Desc(attempt.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concept attempts: %w", err)
	}
	return r.enrich(ctx, rows)
}

func (r *attemptRepo) ForSession(ctx context.Context, sessionID string) ([]EnrichedAttempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.SessionID(sessionID)).
		Order(ent.Asc(attempt.FieldTimestamp), ent.Asc(attempt.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session attempts: %w", err)
	}
	return r.enrich(ctx, rows)
}

func (r *attemptRepo) CorrectTexts(ctx context.Context, learnerID int) ([]string, error) {
	itemIDs, err := r.client.Attempt.Query().
		Where(
			attempt.LearnerID(learnerID),
			attempt.IsCorrect(true),
		).
		Select(attempt.FieldItemID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("query correct item ids: %w", err)
	}
	if len(itemIDs) == 0 {
		return nil, nil
	}

	contents, err := r.client.Item.Query().
		Where(item.IDIn(itemIDs...)).
		Select(item.FieldContent).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query correct item texts: %w", err)
	}

	seen := make(map[string]bool, len(contents))
	var out []string
	for _, c := range contents {
		norm := itemgen.NormalizeText(c)
		if !seen[norm] {
			seen[norm] = true
			out = append(out, norm)
		}
	}
	return out, nil
}

// enrich joins attempt rows with their items' content fields.
func (r *attemptRepo) enrich(ctx context.Context, rows []*ent.Attempt) ([]EnrichedAttempt, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(rows))
	for _, a := range rows {
		ids = append(ids, a.ItemID)
	}
	items, err := r.client.Item.Query().
		Where(item.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt items: %w", err)
	}
	byID := make(map[int]*ent.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	out := make([]EnrichedAttempt, 0, len(rows))
	for _, a := range rows {
		ea := EnrichedAttempt{
			ID:            a.ID,
			ItemID:        a.ItemID,
			LearnerID:     a.LearnerID,
			SessionID:     a.SessionID,
			ConceptID:     a.ConceptID,
			AnswerGiven:   a.AnswerGiven,
			PartialScore:  a.PartialScore,
			ResponseTimeS: a.ResponseTimeS,
			IsCorrect:     a.IsCorrect,
			RatingBefore:  a.RatingBefore,
			RatingAfter:   a.RatingAfter,
			Timestamp:     a.Timestamp,
		}
		if it, ok := byID[a.ItemID]; ok {
			ea.Content = it.Content
			ea.CorrectAnswer = it.CorrectAnswer
			ea.Difficulty = it.Difficulty
			ea.ItemType = string(it.Type)
			ea.Options = it.Options
		}
		out = append(out, ea)
	}
	return out, nil
}

// attemptRecorder implements the transactional accept path.
type attemptRecorder struct {
	client *ent.Client
}

// RecordAttempt inserts the attempt, upserts the skill state, and writes a
// history snapshot in a single transaction. On any failure nothing is
// recorded.
func (r *attemptRecorder) RecordAttempt(ctx context.Context, rec AttemptRecord, newState elo.State) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin accept tx: %w", err)
	}

	builder := tx.Attempt.Create().
		SetItemID(rec.ItemID).
		SetLearnerID(rec.LearnerID).
		SetConceptID(rec.ConceptID).
		SetAnswerGiven(rec.AnswerGiven).
		SetIsCorrect(rec.IsCorrect).
		SetPartialScore(rec.PartialScore).
		SetResponseTimeS(rec.ResponseTimeS).
		SetRatingBefore(rec.RatingBefore).
		SetRatingAfter(rec.RatingAfter)
	if rec.SessionID != "" {
		builder = builder.SetSessionID(rec.SessionID)
	}

	attemptRow, err := builder.Save(ctx)
	if err != nil {
		return 0, rollback(tx, fmt.Errorf("insert attempt: %w", err))
	}

	if err := upsertSkill(ctx, tx.SkillState, rec.LearnerID, rec.ConceptID, newState); err != nil {
		return 0, rollback(tx, err)
	}

	_, err = tx.SkillHistory.Create().
		SetLearnerID(rec.LearnerID).
		SetConceptID(rec.ConceptID).
		SetAttemptID(attemptRow.ID).
		SetRating(newState.Rating).
		SetUncertainty(newState.Uncertainty).
		SetMastery(newState.Mastery).
		Save(ctx)
	if err != nil {
		return 0, rollback(tx, fmt.Errorf("insert skill history: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit accept tx: %w", err)
	}
	return attemptRow.ID, nil
}
