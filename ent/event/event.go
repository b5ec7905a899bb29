// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResearchID holds the string denoting the research_id field in the database.
	FieldResearchID = "research_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeResearch holds the string denoting the research edge name in mutations.
	EdgeResearch = "research"
	// Table holds the table name of the event in the database.
	Table = "events"
	// ResearchTable is the table that holds the research relation/edge.
	ResearchTable = "events"
	// ResearchInverseTable is the table name for the ResearchRecord entity.
	// It exists in this package in order to avoid circular dependency with the "researchrecord" package.
	ResearchInverseTable = "research_history"
	// ResearchColumn is the table column denoting the research relation/edge.
	ResearchColumn = "research_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldResearchID,
	FieldChannel,
	FieldPayload,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResearchID orders the results by the research_id field.
func ByResearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearchID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
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
