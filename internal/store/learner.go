package store

import (
	"context"
	"fmt"

	"github.com/nmalhotra/drill/ent"
	"github.com/nmalhotra/drill/ent/learner"
)

// learnerRepo implements LearnerRepo using the ent client.
type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) CreateOrGet(ctx context.Context, name string) (*Learner, error) {
	if name == "" {
		return nil, fmt.Errorf("learner name must not be empty")
	}

	existing, err := r.client.Learner.Query().
		Where(learner.Name(name)).
		Only(ctx)
	if err == nil {
		return entLearnerToLearner(existing), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query learner: %w", err)
	}

	created, err := r.client.Learner.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		// A concurrent create may have won the unique-name race.
		if ent.IsConstraintError(err) {
			existing, qerr := r.client.Learner.Query().
				Where(learner.Name(name)).
				Only(ctx)
			if qerr == nil {
				return entLearnerToLearner(existing), nil
			}
		}
		return nil, fmt.Errorf("create learner: %w", err)
	}
	return entLearnerToLearner(created), nil
}

func entLearnerToLearner(l *ent.Learner) *Learner {
	return &Learner{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
	}
}
