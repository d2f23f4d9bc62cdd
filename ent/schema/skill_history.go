package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillHistory is an immutable time series of skill-state snapshots, one
// per accepted attempt.
type SkillHistory struct {
	ent.Schema
}

func (SkillHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id").Immutable(),
		field.Int("concept_id").Immutable(),
		field.Int("attempt_id").
			Immutable().
			Comment("The attempt that triggered this snapshot"),
		field.Float("rating").Immutable(),
		field.Float("uncertainty").Immutable(),
		field.Float("mastery").Immutable(),
		field.Time("timestamp").Default(time.Now).Immutable(),
	}
}

func (SkillHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept_id", "timestamp"),
		index.Fields("attempt_id"),
	}
}
