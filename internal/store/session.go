package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nmalhotra/drill/ent"
	"github.com/nmalhotra/drill/ent/attempt"
	"github.com/nmalhotra/drill/ent/session"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, learnerID, topicID int) (*Session, error) {
	builder := r.client.Session.Create().
		SetID(uuid.NewString()).
		SetLearnerID(learnerID)
	if topicID != 0 {
		builder = builder.SetTopicID(topicID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return entSessionToSession(row), nil
}

func (r *sessionRepo) ByID(ctx context.Context, id string) (*Session, error) {
	row, err := r.client.Session.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return entSessionToSession(row), nil
}

func (r *sessionRepo) SetCurrent(ctx context.Context, sessionID string, itemID int, lastResult map[string]any) error {
	builder := r.client.Session.UpdateOneID(sessionID).
		SetCurrentItemID(itemID)
	if lastResult != nil {
		builder = builder.SetLastResult(lastResult)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("set current item: %w", err)
	}
	return nil
}

func (r *sessionRepo) End(ctx context.Context, sessionID string) (*SessionTotals, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session attempts: %w", err)
	}

	total := len(rows)
	correct := 0
	for _, a := range rows {
		if a.IsCorrect {
			correct++
		}
	}

	_, err = r.client.Session.UpdateOneID(sessionID).
		SetEndedAt(time.Now().UTC()).
		SetTotalQuestions(total).
		SetTotalCorrect(correct).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("end session: %w", err)
	}

	totals := &SessionTotals{Total: total, Correct: correct}
	if total > 0 {
		totals.Accuracy = float64(correct) / float64(total)
	}
	return totals, nil
}

// RecentForLearner returns the learner's latest sessions, newest first.
func (r *sessionRepo) RecentForLearner(ctx context.Context, learnerID, limit int) ([]*Session, error) {
	rows, err := r.client.Session.Query().
		Where(session.LearnerID(learnerID)).
		Order(ent.Desc(session.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	out := make([]*Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, entSessionToSession(row))
	}
	return out, nil
}

func entSessionToSession(row *ent.Session) *Session {
	return &Session{
		ID:             row.ID,
		LearnerID:      row.LearnerID,
		TopicID:        row.TopicID,
		StartedAt:      row.StartedAt,
		EndedAt:        row.EndedAt,
		TotalQuestions: row.TotalQuestions,
		TotalCorrect:   row.TotalCorrect,
		CurrentItemID:  row.CurrentItemID,
		LastResult:     row.LastResult,
	}
}
