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

// ResearchStrategy holds the schema definition recording which strategy
// drove a research run, for the history view and strategy analytics.
type ResearchStrategy struct {
	ent.Schema
}

// Fields of the ResearchStrategy.
func (ResearchStrategy) Fields() []ent.Field {
	return []ent.Field{
		field.Int("research_id").
			Unique().
			Immutable(),
		field.String("strategy_name"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ResearchStrategy.
func (ResearchStrategy) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("research", ResearchRecord.Type).
			Ref("strategy").
			Field("research_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ResearchStrategy.
func (ResearchStrategy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("strategy_name"),
	}
}

func (ResearchStrategy) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "research_strategy"},
	}
}
