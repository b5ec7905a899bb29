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

// ResearchLog holds the schema definition for persisted progress log
// entries. Only milestones are written here; the full in-memory log lives
// on the record's progress_log column until finalize.
type ResearchLog struct {
	ent.Schema
}

// Fields of the ResearchLog.
func (ResearchLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("research_id").
			Immutable(),
		field.Time("time").
			Default(time.Now).
			Immutable(),
		field.Text("message"),
		field.Enum("level").
			Values("info", "milestone", "error").
			Default("info"),
		field.Int("progress").
			Optional().
			Nillable().
			Comment("0-100 snapshot at the time of the entry"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Structured context, typically carrying phase"),
	}
}

// Edges of the ResearchLog.
func (ResearchLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("research", ResearchRecord.Type).
			Ref("logs").
			Field("research_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ResearchLog.
func (ResearchLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("research_id", "time"),
		index.Fields("level"),
	}
}

func (ResearchLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "research_logs"},
	}
}
