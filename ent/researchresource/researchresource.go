// Code generated by ent, DO NOT EDIT.

package researchresource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the researchresource type in the database.
	Label = "research_resource"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResearchID holds the string denoting the research_id field in the database.
	FieldResearchID = "research_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldContentPreview holds the string denoting the content_preview field in the database.
	FieldContentPreview = "content_preview"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldCitationIndex holds the string denoting the citation_index field in the database.
	FieldCitationIndex = "citation_index"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeResearch holds the string denoting the research edge name in mutations.
	EdgeResearch = "research"
	// Table holds the table name of the researchresource in the database.
	Table = "research_resources"
	// ResearchTable is the table that holds the research relation/edge.
	ResearchTable = "research_resources"
	// ResearchInverseTable is the table name for the ResearchRecord entity.
	// It exists in this package in order to avoid circular dependency with the "researchrecord" package.
	ResearchInverseTable = "research_history"
	// ResearchColumn is the table column denoting the research relation/edge.
	ResearchColumn = "research_id"
)

// Columns holds all SQL columns for researchresource fields.
var Columns = []string{
	FieldID,
	FieldResearchID,
	FieldTitle,
	FieldURL,
	FieldContentPreview,
	FieldSourceType,
	FieldCitationIndex,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DefaultSourceType holds the default value on creation for the "source_type" field.
	DefaultSourceType string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ResearchResource queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResearchID orders the results by the research_id field.
func ByResearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearchID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByContentPreview orders the results by the content_preview field.
func ByContentPreview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentPreview, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByCitationIndex orders the results by the citation_index field.
func ByCitationIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCitationIndex, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResearchField orders the results by research field.
func ByResearchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResearchStep(), sql.OrderByField(field, opts...))
	}
}
func newResearchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResearchInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ResearchTable, ResearchColumn),
	)
}
