// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
)

// ResearchRecord is the model entity for the ResearchRecord schema.
type ResearchRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Original research query (full-text searchable)
	Query string `json:"query,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode researchrecord.Mode `json:"mode,omitempty"`
	// Status holds the value of the "status" field.
	Status researchrecord.Status `json:"status,omitempty"`
	// 0-100; reaches 100 only when status is completed
	Progress int `json:"progress,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Computed from created_at and completed_at on finalize
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	// research_outputs file; points at the error report on failure
	ReportPath *string `json:"report_path,omitempty"`
	// Model, provider, search engine, iterations, token counts, error context
	ResearchMeta map[string]interface{} `json:"research_meta,omitempty"`
	// Legacy ordered ProgressEntry array, duplicated by research_logs
	ProgressLog []map[string]interface{} `json:"progress_log,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchRecordQuery when eager-loading is set.
	Edges        ResearchRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchRecordEdges holds the relations/edges for other nodes in the graph.
type ResearchRecordEdges struct {
	// Logs holds the value of the logs edge.
	Logs []*ResearchLog `json:"logs,omitempty"`
	// Resources holds the value of the resources edge.
	Resources []*ResearchResource `json:"resources,omitempty"`
	// Strategy holds the value of the strategy edge.
	Strategy *ResearchStrategy `json:"strategy,omitempty"`
	// TokenUsages holds the value of the token_usages edge.
	TokenUsages []*TokenUsage `json:"token_usages,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// LogsOrErr returns the Logs value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchRecordEdges) LogsOrErr() ([]*ResearchLog, error) {
	if e.loadedTypes[0] {
		return e.Logs, nil
	}
	return nil, &NotLoadedError{edge: "logs"}
}

// ResourcesOrErr returns the Resources value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchRecordEdges) ResourcesOrErr() ([]*ResearchResource, error) {
	if e.loadedTypes[1] {
		return e.Resources, nil
	}
	return nil, &NotLoadedError{edge: "resources"}
}

// StrategyOrErr returns the Strategy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchRecordEdges) StrategyOrErr() (*ResearchStrategy, error) {
	if e.Strategy != nil {
		return e.Strategy, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: researchstrategy.Label}
	}
	return nil, &NotLoadedError{edge: "strategy"}
}

// TokenUsagesOrErr returns the TokenUsages value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchRecordEdges) TokenUsagesOrErr() ([]*TokenUsage, error) {
	if e.loadedTypes[3] {
		return e.TokenUsages, nil
	}
	return nil, &NotLoadedError{edge: "token_usages"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchRecordEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[4] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchrecord.FieldResearchMeta, researchrecord.FieldProgressLog:
			values[i] = new([]byte)
		case researchrecord.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case researchrecord.FieldID, researchrecord.FieldProgress:
			values[i] = new(sql.NullInt64)
		case researchrecord.FieldQuery, researchrecord.FieldMode, researchrecord.FieldStatus, researchrecord.FieldReportPath:
			values[i] = new(sql.NullString)
		case researchrecord.FieldCreatedAt, researchrecord.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchRecord fields.
func (_m *ResearchRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case researchrecord.FieldQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query", values[i])
			} else if value.Valid {
				_m.Query = value.String
			}
		case researchrecord.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = researchrecord.Mode(value.String)
			}
		case researchrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = researchrecord.Status(value.String)
			}
		case researchrecord.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case researchrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researchrecord.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case researchrecord.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(float64)
				*_m.DurationSeconds = value.Float64
			}
		case researchrecord.FieldReportPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_path", values[i])
			} else if value.Valid {
				_m.ReportPath = new(string)
				*_m.ReportPath = value.String
			}
		case researchrecord.FieldResearchMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field research_meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResearchMeta); err != nil {
					return fmt.Errorf("unmarshal field research_meta: %w", err)
				}
			}
		case researchrecord.FieldProgressLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field progress_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProgressLog); err != nil {
					return fmt.Errorf("unmarshal field progress_log: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLogs queries the "logs" edge of the ResearchRecord entity.
func (_m *ResearchRecord) QueryLogs() *ResearchLogQuery {
	return NewResearchRecordClient(_m.config).QueryLogs(_m)
}

// QueryResources queries the "resources" edge of the ResearchRecord entity.
func (_m *ResearchRecord) QueryResources() *ResearchResourceQuery {
	return NewResearchRecordClient(_m.config).QueryResources(_m)
}

// QueryStrategy queries the "strategy" edge of the ResearchRecord entity.
func (_m *ResearchRecord) QueryStrategy() *ResearchStrategyQuery {
	return NewResearchRecordClient(_m.config).QueryStrategy(_m)
}

// QueryTokenUsages queries the "token_usages" edge of the ResearchRecord entity.
func (_m *ResearchRecord) QueryTokenUsages() *TokenUsageQuery {
	return NewResearchRecordClient(_m.config).QueryTokenUsages(_m)
}

// QueryEvents queries the "events" edge of the ResearchRecord entity.
func (_m *ResearchRecord) QueryEvents() *EventQuery {
	return NewResearchRecordClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this ResearchRecord.
// Note that you need to call ResearchRecord.Unwrap() before calling this method if this ResearchRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchRecord) Update() *ResearchRecordUpdateOne {
	return NewResearchRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchRecord) Unwrap() *ResearchRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("query=")
	builder.WriteString(_m.Query)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReportPath; v != nil {
		builder.WriteString("report_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("research_meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResearchMeta))
	builder.WriteString(", ")
	builder.WriteString("progress_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressLog))
	builder.WriteByte(')')
	return builder.String()
}

// ResearchRecords is a parsable slice of ResearchRecord.
type ResearchRecords []*ResearchRecord
