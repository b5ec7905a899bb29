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

// ResearchRecord holds the schema definition for one research run. The
// integer id doubles as the public research identifier.
type ResearchRecord struct {
	ent.Schema
}

// Fields of the ResearchRecord.
func (ResearchRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Text("query").
			Comment("Original research query (full-text searchable)"),
		field.Enum("mode").
			Values("quick", "detailed").
			Default("quick"),
		field.Enum("status").
			Values("in_progress", "completed", "failed", "suspended").
			Default("in_progress"),
		field.Int("progress").
			Default(0).
			Comment("0-100; reaches 100 only when status is completed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Float("duration_seconds").
			Optional().
			Nillable().
			Comment("Computed from created_at and completed_at on finalize"),
		field.String("report_path").
			Optional().
			Nillable().
			Comment("research_outputs file; points at the error report on failure"),
		field.JSON("research_meta", map[string]interface{}{}).
			Optional().
			Comment("Model, provider, search engine, iterations, token counts, error context"),
		field.JSON("progress_log", []map[string]interface{}{}).
			Optional().
			Comment("Legacy ordered ProgressEntry array, duplicated by research_logs"),
	}
}

// Edges of the ResearchRecord.
func (ResearchRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("logs", ResearchLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("resources", ResearchResource.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("strategy", ResearchStrategy.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("token_usages", TokenUsage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ResearchRecord.
func (ResearchRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("mode"),
		index.Fields("status", "created_at"),
		index.Fields("created_at"),
	}
}

// Annotations for PostgreSQL-specific features.
// The GIN index for query full-text search is created in
// pkg/database/migrations.go.
func (ResearchRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "research_history"},
	}
}
