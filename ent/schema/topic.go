package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Topic groups curriculum concepts into a course of study.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty().Unique(),
		field.String("description").Optional(),
	}
}
