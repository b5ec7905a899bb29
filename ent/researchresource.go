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
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchresource"
)

// ResearchResource is the model entity for the ResearchResource schema.
type ResearchResource struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ResearchID holds the value of the "research_id" field.
	ResearchID int `json:"research_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Snippet shown in the resource list
	ContentPreview string `json:"content_preview,omitempty"`
	// web, local_collection, archive
	SourceType string `json:"source_type,omitempty"`
	// Global [n] number assigned during the run
	CitationIndex *int `json:"citation_index,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchResourceQuery when eager-loading is set.
	Edges        ResearchResourceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchResourceEdges holds the relations/edges for other nodes in the graph.
type ResearchResourceEdges struct {
	// Research holds the value of the research edge.
	Research *ResearchRecord `json:"research,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResearchOrErr returns the Research value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchResourceEdges) ResearchOrErr() (*ResearchRecord, error) {
	if e.Research != nil {
		return e.Research, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchrecord.Label}
	}
	return nil, &NotLoadedError{edge: "research"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchResource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchresource.FieldMetadata:
			values[i] = new([]byte)
		case researchresource.FieldID, researchresource.FieldResearchID, researchresource.FieldCitationIndex:
			values[i] = new(sql.NullInt64)
		case researchresource.FieldTitle, researchresource.FieldURL, researchresource.FieldContentPreview, researchresource.FieldSourceType:
			values[i] = new(sql.NullString)
		case researchresource.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchResource fields.
func (_m *ResearchResource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchresource.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case researchresource.FieldResearchID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field research_id", values[i])
			} else if value.Valid {
				_m.ResearchID = int(value.Int64)
			}
		case researchresource.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case researchresource.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case researchresource.FieldContentPreview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_preview", values[i])
			} else if value.Valid {
				_m.ContentPreview = value.String
			}
		case researchresource.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case researchresource.FieldCitationIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field citation_index", values[i])
			} else if value.Valid {
				_m.CitationIndex = new(int)
				*_m.CitationIndex = int(value.Int64)
			}
		case researchresource.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case researchresource.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchResource.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchResource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResearch queries the "research" edge of the ResearchResource entity.
func (_m *ResearchResource) QueryResearch() *ResearchRecordQuery {
	return NewResearchResourceClient(_m.config).QueryResearch(_m)
}

// Update returns a builder for updating this ResearchResource.
// Note that you need to call ResearchResource.Unwrap() before calling this method if this ResearchResource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchResource) Update() *ResearchResourceUpdateOne {
	return NewResearchResourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchResource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchResource) Unwrap() *ResearchResource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchResource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchResource) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchResource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("research_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResearchID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("content_preview=")
	builder.WriteString(_m.ContentPreview)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	if v := _m.CitationIndex; v != nil {
		builder.WriteString("citation_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ResearchResources is a parsable slice of ResearchResource.
type ResearchResources []*ResearchResource
