package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records every LLM API call for audit and cost tracking.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").NotEmpty().Immutable(),
		field.String("model").Optional().Immutable(),
		field.String("purpose").
			Optional().
			Immutable().
			Comment("item-gen, answer-grading, explanation"),
		field.Int("input_tokens").Default(0).Immutable(),
		field.Int("output_tokens").Default(0).Immutable(),
		field.Int64("latency_ms").Default(0).Immutable(),
		field.Bool("success").Immutable(),
		field.String("error_message").Optional().Immutable(),
		field.Text("request_body").Optional().Immutable(),
		field.Text("response_body").Optional().Immutable(),
		field.Time("timestamp").Default(time.Now).Immutable(),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("purpose"),
	}
}
