package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one sitting of practice. Active while ended_at is null.
// current_item_id and last_result form a benign cycle with Attempt; both
// are stored as opaque references, never embedded.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Opaque UUID assigned by the engine"),
		field.Int("learner_id").Immutable(),
		field.Int("topic_id").Optional().Immutable(),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("ended_at").Optional().Nillable(),
		field.Int("total_questions").Optional(),
		field.Int("total_correct").Optional(),
		field.Int("current_item_id").Optional(),
		field.JSON("last_result", map[string]any{}).Optional(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "started_at"),
	}
}
