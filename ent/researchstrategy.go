// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
)

// ResearchStrategy is the model entity for the ResearchStrategy schema.
type ResearchStrategy struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ResearchID holds the value of the "research_id" field.
	ResearchID int `json:"research_id,omitempty"`
	// StrategyName holds the value of the "strategy_name" field.
	StrategyName string `json:"strategy_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchStrategyQuery when eager-loading is set.
	Edges        ResearchStrategyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchStrategyEdges holds the relations/edges for other nodes in the graph.
type ResearchStrategyEdges struct {
	// Research holds the value of the research edge.
	Research *ResearchRecord `json:"research,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResearchOrErr returns the Research value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchStrategyEdges) ResearchOrErr() (*ResearchRecord, error) {
	if e.Research != nil {
		return e.Research, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchrecord.Label}
	}
	return nil, &NotLoadedError{edge: "research"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchStrategy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchstrategy.FieldID, researchstrategy.FieldResearchID:
			values[i] = new(sql.NullInt64)
		case researchstrategy.FieldStrategyName:
			values[i] = new(sql.NullString)
		case researchstrategy.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchStrategy fields.
func (_m *ResearchStrategy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchstrategy.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case researchstrategy.FieldResearchID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field research_id", values[i])
			} else if value.Valid {
				_m.ResearchID = int(value.Int64)
			}
		case researchstrategy.FieldStrategyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_name", values[i])
			} else if value.Valid {
				_m.StrategyName = value.String
			}
		case researchstrategy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchStrategy.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchStrategy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResearch queries the "research" edge of the ResearchStrategy entity.
func (_m *ResearchStrategy) QueryResearch() *ResearchRecordQuery {
	return NewResearchStrategyClient(_m.config).QueryResearch(_m)
}

// Update returns a builder for updating this ResearchStrategy.
// Note that you need to call ResearchStrategy.Unwrap() before calling this method if this ResearchStrategy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchStrategy) Update() *ResearchStrategyUpdateOne {
	return NewResearchStrategyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchStrategy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchStrategy) Unwrap() *ResearchStrategy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchStrategy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchStrategy) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchStrategy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("research_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResearchID))
	builder.WriteString(", ")
	builder.WriteString("strategy_name=")
	builder.WriteString(_m.StrategyName)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ResearchStrategies is a parsable slice of ResearchStrategy.
type ResearchStrategies []*ResearchStrategy
