package store

import (
	"context"
	"fmt"

	"github.com/nmalhotra/drill/ent"
	"github.com/nmalhotra/drill/ent/skillstate"
	"github.com/nmalhotra/drill/internal/config"
	"github.com/nmalhotra/drill/internal/elo"
)

// skillRepo implements SkillRepo using the ent client.
type skillRepo struct {
	client *ent.Client
}

func (r *skillRepo) Get(ctx context.Context, learnerID, conceptID int) (elo.State, error) {
	row, err := r.client.SkillState.Query().
		Where(
			skillstate.LearnerID(learnerID),
			skillstate.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Absent row is semantically the default state.
			return elo.NewState(config.Default()), nil
		}
		return elo.State{}, fmt.Errorf("query skill state: %w", err)
	}
	return entSkillToState(row), nil
}

func (r *skillRepo) ListForLearner(ctx context.Context, learnerID int) (map[int]elo.State, error) {
	rows, err := r.client.SkillState.Query().
		Where(skillstate.LearnerID(learnerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skill states: %w", err)
	}
	out := make(map[int]elo.State, len(rows))
	for _, row := range rows {
		out[row.ConceptID] = entSkillToState(row)
	}
	return out, nil
}

func (r *skillRepo) Upsert(ctx context.Context, learnerID, conceptID int, st elo.State) error {
	return upsertSkill(ctx, r.client.SkillState, learnerID, conceptID, st)
}

// upsertSkill writes a skill state through any SkillState client (plain or
// transactional).
func upsertSkill(ctx context.Context, c *ent.SkillStateClient, learnerID, conceptID int, st elo.State) error {
	existing, err := c.Query().
		Where(
			skillstate.LearnerID(learnerID),
			skillstate.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query skill state: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = c.Create().
			SetLearnerID(learnerID).
			SetConceptID(conceptID).
			SetRating(st.Rating).
			SetUncertainty(st.Uncertainty).
			SetMastery(st.Mastery).
			SetTotalAttempts(st.TotalAttempts).
			SetCorrectAttempts(st.CorrectAttempts).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create skill state: %w", err)
		}
		return nil
	}

	_, err = c.UpdateOne(existing).
		SetRating(st.Rating).
		SetUncertainty(st.Uncertainty).
		SetMastery(st.Mastery).
		SetTotalAttempts(st.TotalAttempts).
		SetCorrectAttempts(st.CorrectAttempts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update skill state: %w", err)
	}
	return nil
}

func entSkillToState(row *ent.SkillState) elo.State {
	return elo.State{
		Rating:          row.Rating,
		Uncertainty:     row.Uncertainty,
		Mastery:         row.Mastery,
		TotalAttempts:   row.TotalAttempts,
		CorrectAttempts: row.CorrectAttempts,
		LastUpdated:     row.LastUpdated,
	}
}
