// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchlog"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
)

// ResearchLog is the model entity for the ResearchLog schema.
type ResearchLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ResearchID holds the value of the "research_id" field.
	ResearchID int `json:"research_id,omitempty"`
	// Time holds the value of the "time" field.
	Time time.Time `json:"time,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Level holds the value of the "level" field.
	Level researchlog.Level `json:"level,omitempty"`
	// 0-100 snapshot at the time of the entry
	Progress *int `json:"progress,omitempty"`
	// Structured context, typically carrying phase
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchLogQuery when eager-loading is set.
	Edges        ResearchLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchLogEdges holds the relations/edges for other nodes in the graph.
type ResearchLogEdges struct {
	// Research holds the value of the research edge.
	Research *ResearchRecord `json:"research,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResearchOrErr returns the Research value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchLogEdges) ResearchOrErr() (*ResearchRecord, error) {
	if e.Research != nil {
		return e.Research, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchrecord.Label}
	}
	return nil, &NotLoadedError{edge: "research"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchlog.FieldMetadata:
			values[i] = new([]byte)
		case researchlog.FieldID, researchlog.FieldResearchID, researchlog.FieldProgress:
			values[i] = new(sql.NullInt64)
		case researchlog.FieldMessage, researchlog.FieldLevel:
			values[i] = new(sql.NullString)
		case researchlog.FieldTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchLog fields.
func (_m *ResearchLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case researchlog.FieldResearchID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field research_id", values[i])
			} else if value.Valid {
				_m.ResearchID = int(value.Int64)
			}
		case researchlog.FieldTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field time", values[i])
			} else if value.Valid {
				_m.Time = value.Time
			}
		case researchlog.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case researchlog.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = researchlog.Level(value.String)
			}
		case researchlog.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = new(int)
				*_m.Progress = int(value.Int64)
			}
		case researchlog.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchLog.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResearch queries the "research" edge of the ResearchLog entity.
func (_m *ResearchLog) QueryResearch() *ResearchRecordQuery {
	return NewResearchLogClient(_m.config).QueryResearch(_m)
}

// Update returns a builder for updating this ResearchLog.
// Note that you need to call ResearchLog.Unwrap() before calling this method if this ResearchLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchLog) Update() *ResearchLogUpdateOne {
	return NewResearchLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchLog) Unwrap() *ResearchLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchLog) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("research_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResearchID))
	builder.WriteString(", ")
	builder.WriteString("time=")
	builder.WriteString(_m.Time.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	if v := _m.Progress; v != nil {
		builder.WriteString("progress=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// ResearchLogs is a parsable slice of ResearchLog.
type ResearchLogs []*ResearchLog
