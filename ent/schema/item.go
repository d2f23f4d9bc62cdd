package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is an accepted question. Rows are write-once; they are never
// mutated after acceptance, except for the rejected flag set by quality
// reports.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.Int("concept_id").Immutable(),
		field.Text("content").NotEmpty().Immutable(),
		field.Enum("type").
			Values("mcq", "short_answer", "problem").
			Immutable(),
		field.JSON("options", []string{}).
			Optional().
			Immutable().
			Comment("Ordered MCQ options; empty for other types"),
		field.String("correct_answer").NotEmpty().Immutable(),
		field.Text("explanation").Optional().Immutable(),
		field.Float("difficulty").
			Immutable().
			Comment("Rating-scale difficulty the item was generated at"),
		field.Float("estimated_p_correct").Immutable(),
		field.Text("prompt_used").Optional().Immutable(),
		field.String("model_used").Optional().Immutable(),
		field.JSON("visual", map[string]any{}).
			Optional().
			Immutable().
			Comment("Visual spec for locally generated items"),
		field.Bool("is_rejected").Default(false),
		field.String("rejection_reason").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
	}
}
