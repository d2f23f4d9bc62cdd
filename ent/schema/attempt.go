package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one answered item. The table is append-only.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("item_id").Immutable(),
		field.Int("learner_id").Immutable(),
		field.String("session_id").Optional().Immutable(),
		field.Int("concept_id").Immutable(),
		field.String("answer_given").Optional().Immutable(),
		field.Bool("is_correct").Immutable(),
		field.Float("partial_score").Optional().Immutable(),
		field.Float("response_time_s").Optional().Immutable(),
		field.Float("rating_before").Immutable(),
		field.Float("rating_after").Immutable(),
		field.Time("timestamp").Default(time.Now).Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "timestamp"),
		index.Fields("session_id"),
		index.Fields("concept_id"),
	}
}
