package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemReport is a learner-filed quality report against an item.
type ItemReport struct {
	ent.Schema
}

func (ItemReport) Fields() []ent.Field {
	return []ent.Field{
		field.Int("item_id").Immutable(),
		field.Int("learner_id").Optional().Immutable(),
		field.String("reason").NotEmpty().Immutable(),
		field.Text("details").Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ItemReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
	}
}
