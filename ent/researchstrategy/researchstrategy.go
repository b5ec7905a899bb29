// Code generated by ent, DO NOT EDIT.

package researchstrategy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the researchstrategy type in the database.
	Label = "research_strategy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResearchID holds the string denoting the research_id field in the database.
	FieldResearchID = "research_id"
	// FieldStrategyName holds the string denoting the strategy_name field in the database.
	FieldStrategyName = "strategy_name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeResearch holds the string denoting the research edge name in mutations.
	EdgeResearch = "research"
	// Table holds the table name of the researchstrategy in the database.
	Table = "research_strategy"
	// ResearchTable is the table that holds the research relation/edge.
	ResearchTable = "research_strategy"
	// ResearchInverseTable is the table name for the ResearchRecord entity.
	// It exists in this package in order to avoid circular dependency with the "researchrecord" package.
	ResearchInverseTable = "research_history"
	// ResearchColumn is the table column denoting the research relation/edge.
	ResearchColumn = "research_id"
)

// Columns holds all SQL columns for researchstrategy fields.
var Columns = []string{
	FieldID,
	FieldResearchID,
	FieldStrategyName,
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

// OrderOption defines the ordering options for the ResearchStrategy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResearchID orders the results by the research_id field.
func ByResearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearchID, opts...).ToFunc()
}

// ByStrategyName orders the results by the strategy_name field.
func ByStrategyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategyName, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, ResearchTable, ResearchColumn),
	)
}
