package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillState is the learner's current rating on one concept. A derived
// aggregate: reconstructible from attempt history up to rounding drift in
// the uncertainty decay chain. An absent row means defaults.
type SkillState struct {
	ent.Schema
}

func (SkillState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id"),
		field.Int("concept_id"),
		field.Float("rating").Default(800.0),
		field.Float("uncertainty").Default(350.0),
		field.Float("mastery").Default(0.0),
		field.Int("total_attempts").Default(0),
		field.Int("correct_attempts").Default(0),
		field.Time("last_updated").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SkillState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept_id").Unique(),
	}
}
