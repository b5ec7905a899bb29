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

// ResearchResource holds the schema definition for a citable source
// collected during a research run.
type ResearchResource struct {
	ent.Schema
}

// Fields of the ResearchResource.
func (ResearchResource) Fields() []ent.Field {
	return []ent.Field{
		field.Int("research_id").
			Immutable(),
		field.String("title").
			Default("Untitled"),
		field.Text("url"),
		field.Text("content_preview").
			Optional().
			Comment("Snippet shown in the resource list"),
		field.String("source_type").
			Default("web").
			Comment("web, local_collection, archive"),
		field.Int("citation_index").
			Optional().
			Nillable().
			Comment("Global [n] number assigned during the run"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ResearchResource.
func (ResearchResource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("research", ResearchRecord.Type).
			Ref("resources").
			Field("research_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ResearchResource.
func (ResearchResource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("research_id"),
		index.Fields("research_id", "citation_index"),
	}
}

func (ResearchResource) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "research_resources"},
	}
}
