package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nmalhotra/drill/ent"
	"github.com/nmalhotra/drill/ent/item"
	"github.com/nmalhotra/drill/internal/itemgen"
)

// itemRepo implements ItemRepo using the ent client.
type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) Insert(ctx context.Context, it *itemgen.Item) (int, error) {
	builder := r.client.Item.Create().
		SetConceptID(it.ConceptID).
		SetContent(it.Content).
		SetType(item.Type(it.Type)).
		SetCorrectAnswer(it.CorrectAnswer).
		SetDifficulty(it.Difficulty).
		SetEstimatedPCorrect(it.EstimatedP)
	if len(it.Options) > 0 {
		builder = builder.SetOptions(it.Options)
	}
	if it.Explanation != "" {
		builder = builder.SetExplanation(it.Explanation)
	}
	if it.PromptUsed != "" {
		builder = builder.SetPromptUsed(it.PromptUsed)
	}
	if it.ModelUsed != "" {
		builder = builder.SetModelUsed(it.ModelUsed)
	}
	if it.Visual != nil {
		visual, err := visualToMap(it.Visual)
		if err != nil {
			return 0, fmt.Errorf("marshal visual spec: %w", err)
		}
		builder = builder.SetVisual(visual)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("insert item: %w", err)
	}
	it.ID = row.ID
	return row.ID, nil
}

func (r *itemRepo) ByID(ctx context.Context, id int) (*itemgen.Item, error) {
	row, err := r.client.Item.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return entItemToItem(row)
}

func (r *itemRepo) MarkRejected(ctx context.Context, id int, reason string) error {
	_, err := r.client.Item.UpdateOneID(id).
		SetIsRejected(true).
		SetRejectionReason(reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark item %d rejected: %w", id, err)
	}
	return nil
}

func entItemToItem(row *ent.Item) (*itemgen.Item, error) {
	it := &itemgen.Item{
		ID:            row.ID,
		ConceptID:     row.ConceptID,
		Content:       row.Content,
		Type:          itemgen.Type(row.Type),
		Options:       row.Options,
		CorrectAnswer: row.CorrectAnswer,
		Explanation:   row.Explanation,
		Difficulty:    row.Difficulty,
		EstimatedP:    row.EstimatedPCorrect,
		PromptUsed:    row.PromptUsed,
		ModelUsed:     row.ModelUsed,
	}
	if len(row.Visual) > 0 {
		visual, err := mapToVisual(row.Visual)
		if err != nil {
			return nil, fmt.Errorf("unmarshal visual spec for item %d: %w", row.ID, err)
		}
		it.Visual = visual
	}
	return it, nil
}

func visualToMap(v *itemgen.VisualSpec) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func mapToVisual(m map[string]any) (*itemgen.VisualSpec, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var v itemgen.VisualSpec
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
