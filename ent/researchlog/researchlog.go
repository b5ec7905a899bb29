// Code generated by ent, DO NOT EDIT.

package researchlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the researchlog type in the database.
	Label = "research_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResearchID holds the string denoting the research_id field in the database.
	FieldResearchID = "research_id"
	// FieldTime holds the string denoting the time field in the database.
	FieldTime = "time"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// EdgeResearch holds the string denoting the research edge name in mutations.
	EdgeResearch = "research"
	// Table holds the table name of the researchlog in the database.
	Table = "research_logs"
	// ResearchTable is the table that holds the research relation/edge.
	ResearchTable = "research_logs"
	// ResearchInverseTable is the table name for the ResearchRecord entity.
	// It exists in this package in order to avoid circular dependency with the "researchrecord" package.
	ResearchInverseTable = "research_history"
	// ResearchColumn is the table column denoting the research relation/edge.
	ResearchColumn = "research_id"
)

// Columns holds all SQL columns for researchlog fields.
var Columns = []string{
	FieldID,
	FieldResearchID,
	FieldTime,
	FieldMessage,
	FieldLevel,
	FieldProgress,
	FieldMetadata,
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
	// DefaultTime holds the default value on creation for the "time" field.
	DefaultTime func() time.Time
)

// Level defines the type for the "level" enum field.
type Level string

// LevelInfo is the default value of the Level enum.
const DefaultLevel = LevelInfo

// Level values.
const (
	LevelInfo      Level = "info"
	LevelMilestone Level = "milestone"
	LevelError     Level = "error"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelInfo, LevelMilestone, LevelError:
		return nil
	default:
		return fmt.Errorf("researchlog: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the ResearchLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResearchID orders the results by the research_id field.
func ByResearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearchID, opts...).ToFunc()
}

// ByTime orders the results by the time field.
func ByTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTime, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
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
