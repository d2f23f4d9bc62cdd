package store

import (
	"context"
	"fmt"

	"github.com/nmalhotra/drill/ent"
	"github.com/nmalhotra/drill/ent/concept"
	"github.com/nmalhotra/drill/ent/topic"
	"github.com/nmalhotra/drill/internal/curriculum"
)

// conceptRepo implements ConceptRepo using the ent client.
type conceptRepo struct {
	client *ent.Client
}

func (r *conceptRepo) ListTopics(ctx context.Context) ([]curriculum.Topic, error) {
	rows, err := r.client.Topic.Query().
		Order(ent.Asc(topic.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	out := make([]curriculum.Topic, 0, len(rows))
	for _, t := range rows {
		out = append(out, curriculum.Topic{ID: t.ID, Name: t.Name, Description: t.Description})
	}
	return out, nil
}

func (r *conceptRepo) TopicByName(ctx context.Context, name string) (*curriculum.Topic, error) {
	t, err := r.client.Topic.Query().
		Where(topic.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query topic: %w", err)
	}
	return &curriculum.Topic{ID: t.ID, Name: t.Name, Description: t.Description}, nil
}

func (r *conceptRepo) ListByTopic(ctx context.Context, topicID int) ([]curriculum.Concept, error) {
	rows, err := r.client.Concept.Query().
		Where(concept.TopicID(topicID)).
		Order(ent.Asc(concept.FieldOrderIndex), ent.Asc(concept.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}
	out := make([]curriculum.Concept, 0, len(rows))
	for _, c := range rows {
		out = append(out, entConceptToConcept(c))
	}
	return out, nil
}

func (r *conceptRepo) ByID(ctx context.Context, id int) (curriculum.Concept, error) {
	c, err := r.client.Concept.Get(ctx, id)
	if err != nil {
		return curriculum.Concept{}, fmt.Errorf("get concept %d: %w", id, err)
	}
	return entConceptToConcept(c), nil
}

func (r *conceptRepo) SeedTopic(ctx context.Context, t curriculum.Topic, concepts []curriculum.Concept, prereqs [][]int) (int, error) {
	if len(concepts) != len(prereqs) {
		return 0, fmt.Errorf("concepts and prereqs length mismatch: %d vs %d", len(concepts), len(prereqs))
	}

	// Idempotent by topic name.
	if existing, err := r.TopicByName(ctx, t.Name); err != nil {
		return 0, err
	} else if existing != nil {
		return existing.ID, nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}

	topicRow, err := tx.Topic.Create().
		SetName(t.Name).
		SetDescription(t.Description).
		Save(ctx)
	if err != nil {
		return 0, rollback(tx, fmt.Errorf("create topic: %w", err))
	}

	// First pass: insert concepts without prerequisites to learn their IDs.
	ids := make([]int, len(concepts))
	for i, c := range concepts {
		threshold := c.MasteryThreshold
		if threshold == 0 {
			threshold = 0.75
		}
		row, err := tx.Concept.Create().
			SetTopicID(topicRow.ID).
			SetName(c.Name).
			SetDescription(c.Description).
			SetOrderIndex(c.OrderIndex).
			SetMasteryThreshold(threshold).
			SetVisualRequired(c.VisualRequired).
			Save(ctx)
		if err != nil {
			return 0, rollback(tx, fmt.Errorf("create concept %q: %w", c.Name, err))
		}
		ids[i] = row.ID
	}

	// Second pass: rewrite index-based prerequisites into assigned IDs.
	for i, ps := range prereqs {
		if len(ps) == 0 {
			continue
		}
		resolved := make([]int, 0, len(ps))
		for _, p := range ps {
			if p < 0 || p >= len(ids) {
				return 0, rollback(tx, fmt.Errorf("concept %q prerequisite index %d out of range", concepts[i].Name, p))
			}
			resolved = append(resolved, ids[p])
		}
		if _, err := tx.Concept.UpdateOneID(ids[i]).
			SetPrerequisites(resolved).
			Save(ctx); err != nil {
			return 0, rollback(tx, fmt.Errorf("set prerequisites for %q: %w", concepts[i].Name, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed tx: %w", err)
	}
	return topicRow.ID, nil
}

func entConceptToConcept(c *ent.Concept) curriculum.Concept {
	return curriculum.Concept{
		ID:               c.ID,
		TopicID:          c.TopicID,
		Name:             c.Name,
		Description:      c.Description,
		OrderIndex:       c.OrderIndex,
		Prerequisites:    c.Prerequisites,
		MasteryThreshold: c.MasteryThreshold,
		VisualRequired:   c.VisualRequired,
	}
}

// rollback rolls the transaction back and wraps the original error.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}
