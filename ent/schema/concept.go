package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Concept is a curriculum node. Prerequisites reference concept IDs within
// the same topic; the graph is validated acyclic at seed time.
type Concept struct {
	ent.Schema
}

func (Concept) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_id"),
		field.String("name").NotEmpty(),
		field.String("description").Optional(),
		field.Int("order_index").
			Default(0).
			Comment("Partial-order hint used for fallback selection"),
		field.JSON("prerequisites", []int{}).
			Optional().
			Comment("Concept IDs within the same topic"),
		field.Float("mastery_threshold").
			Default(0.75),
		field.Bool("visual_required").
			Default(false).
			Comment("Skipped by the policy; items would need images"),
	}
}

func (Concept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id", "order_index"),
	}
}
