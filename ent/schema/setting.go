package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Setting holds the schema definition for one settings key. Values are
// stored as JSON so strings, numbers, and booleans round-trip untouched.
type Setting struct {
	ent.Schema
}

// Fields of the Setting.
func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable().
			Comment("Dotted path, e.g. search.iterations"),
		field.JSON("value", map[string]interface{}{}).
			Comment(`Wrapped as {"v": <value>} to allow scalar values`),
		field.String("category").
			Optional().
			Comment("llm, search, report, app"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Setting.
func (Setting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").
			Unique(),
		index.Fields("category"),
	}
}

func (Setting) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "settings"},
	}
}
