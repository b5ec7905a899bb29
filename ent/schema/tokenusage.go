package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenUsage holds the schema definition for per-call LLM token
// accounting, aggregated per research for the metrics endpoint.
type TokenUsage struct {
	ent.Schema
}

// Fields of the TokenUsage.
func (TokenUsage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("research_id").
			Immutable(),
		field.String("model"),
		field.String("provider"),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.String("call_kind").
			Optional().
			Comment("question_generation, synthesis, compression, outline, ..."),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TokenUsage.
func (TokenUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("research", ResearchRecord.Type).
			Ref("token_usages").
			Field("research_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TokenUsage.
func (TokenUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("research_id"),
		index.Fields("model"),
	}
}

func (TokenUsage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "token_usage"},
	}
}
