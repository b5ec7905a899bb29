// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/predicate"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchresource"
)

// ResearchResourceUpdate is the builder for updating ResearchResource entities.
type ResearchResourceUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchResourceMutation
}

// Where appends a list predicates to the ResearchResourceUpdate builder.
func (_u *ResearchResourceUpdate) Where(ps ...predicate.ResearchResource) *ResearchResourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ResearchResourceUpdate) SetTitle(v string) *ResearchResourceUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResearchResourceUpdate) SetNillableTitle(v *string) *ResearchResourceUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ResearchResourceUpdate) SetURL(v string) *ResearchResourceUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ResearchResourceUpdate) SetNillableURL(v *string) *ResearchResourceUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetContentPreview sets the "content_preview" field.
func (_u *ResearchResourceUpdate) SetContentPreview(v string) *ResearchResourceUpdate {
	_u.mutation.SetContentPreview(v)
	return _u
}

// SetNillableContentPreview sets the "content_preview" field if the given value is not nil.
func (_u *ResearchResourceUpdate) SetNillableContentPreview(v *string) *ResearchResourceUpdate {
	if v != nil {
		_u.SetContentPreview(*v)
	}
	return _u
}

// ClearContentPreview clears the value of the "content_preview" field.
func (_u *ResearchResourceUpdate) ClearContentPreview() *ResearchResourceUpdate {
	_u.mutation.ClearContentPreview()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *ResearchResourceUpdate) SetSourceType(v string) *ResearchResourceUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *ResearchResourceUpdate) SetNillableSourceType(v *string) *ResearchResourceUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetCitationIndex sets the "citation_index" field.
func (_u *ResearchResourceUpdate) SetCitationIndex(v int) *ResearchResourceUpdate {
	_u.mutation.ResetCitationIndex()
	_u.mutation.SetCitationIndex(v)
	return _u
}

// SetNillableCitationIndex sets the "citation_index" field if the given value is not nil.
func (_u *ResearchResourceUpdate) SetNillableCitationIndex(v *int) *ResearchResourceUpdate {
	if v != nil {
		_u.SetCitationIndex(*v)
	}
	return _u
}

// AddCitationIndex adds value to the "citation_index" field.
func (_u *ResearchResourceUpdate) AddCitationIndex(v int) *ResearchResourceUpdate {
	_u.mutation.AddCitationIndex(v)
	return _u
}

// ClearCitationIndex clears the value of the "citation_index" field.
func (_u *ResearchResourceUpdate) ClearCitationIndex() *ResearchResourceUpdate {
	_u.mutation.ClearCitationIndex()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ResearchResourceUpdate) SetMetadata(v map[string]interface{}) *ResearchResourceUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ResearchResourceUpdate) ClearMetadata() *ResearchResourceUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ResearchResourceMutation object of the builder.
func (_u *ResearchResourceUpdate) Mutation() *ResearchResourceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchResourceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchResourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchResourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchResourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchResourceUpdate) check() error {
	if _u.mutation.ResearchCleared() && len(_u.mutation.ResearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchResource.research"`)
	}
	return nil
}

func (_u *ResearchResourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchresource.Table, researchresource.Columns, sqlgraph.NewFieldSpec(researchresource.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(researchresource.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(researchresource.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentPreview(); ok {
		_spec.SetField(researchresource.FieldContentPreview, field.TypeString, value)
	}
	if _u.mutation.ContentPreviewCleared() {
		_spec.ClearField(researchresource.FieldContentPreview, field.TypeString)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(researchresource.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CitationIndex(); ok {
		_spec.SetField(researchresource.FieldCitationIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCitationIndex(); ok {
		_spec.AddField(researchresource.FieldCitationIndex, field.TypeInt, value)
	}
	if _u.mutation.CitationIndexCleared() {
		_spec.ClearField(researchresource.FieldCitationIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(researchresource.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(researchresource.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchresource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchResourceUpdateOne is the builder for updating a single ResearchResource entity.
type ResearchResourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchResourceMutation
}

// SetTitle sets the "title" field.
func (_u *ResearchResourceUpdateOne) SetTitle(v string) *ResearchResourceUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResearchResourceUpdateOne) SetNillableTitle(v *string) *ResearchResourceUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ResearchResourceUpdateOne) SetURL(v string) *ResearchResourceUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ResearchResourceUpdateOne) SetNillableURL(v *string) *ResearchResourceUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetContentPreview sets the "content_preview" field.
func (_u *ResearchResourceUpdateOne) SetContentPreview(v string) *ResearchResourceUpdateOne {
	_u.mutation.SetContentPreview(v)
	return _u
}

// SetNillableContentPreview sets the "content_preview" field if the given value is not nil.
func (_u *ResearchResourceUpdateOne) SetNillableContentPreview(v *string) *ResearchResourceUpdateOne {
	if v != nil {
		_u.SetContentPreview(*v)
	}
	return _u
}

// ClearContentPreview clears the value of the "content_preview" field.
func (_u *ResearchResourceUpdateOne) ClearContentPreview() *ResearchResourceUpdateOne {
	_u.mutation.ClearContentPreview()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *ResearchResourceUpdateOne) SetSourceType(v string) *ResearchResourceUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *ResearchResourceUpdateOne) SetNillableSourceType(v *string) *ResearchResourceUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetCitationIndex sets the "citation_index" field.
func (_u *ResearchResourceUpdateOne) SetCitationIndex(v int) *ResearchResourceUpdateOne {
	_u.mutation.ResetCitationIndex()
	_u.mutation.SetCitationIndex(v)
	return _u
}

// SetNillableCitationIndex sets the "citation_index" field if the given value is not nil.
func (_u *ResearchResourceUpdateOne) SetNillableCitationIndex(v *int) *ResearchResourceUpdateOne {
	if v != nil {
		_u.SetCitationIndex(*v)
	}
	return _u
}

// AddCitationIndex adds value to the "citation_index" field.
func (_u *ResearchResourceUpdateOne) AddCitationIndex(v int) *ResearchResourceUpdateOne {
	_u.mutation.AddCitationIndex(v)
	return _u
}

// ClearCitationIndex clears the value of the "citation_index" field.
func (_u *ResearchResourceUpdateOne) ClearCitationIndex() *ResearchResourceUpdateOne {
	_u.mutation.ClearCitationIndex()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ResearchResourceUpdateOne) SetMetadata(v map[string]interface{}) *ResearchResourceUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ResearchResourceUpdateOne) ClearMetadata() *ResearchResourceUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ResearchResourceMutation object of the builder.
func (_u *ResearchResourceUpdateOne) Mutation() *ResearchResourceMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResearchResourceUpdate builder.
func (_u *ResearchResourceUpdateOne) Where(ps ...predicate.ResearchResource) *ResearchResourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchResourceUpdateOne) Select(field string, fields ...string) *ResearchResourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchResource entity.
func (_u *ResearchResourceUpdateOne) Save(ctx context.Context) (*ResearchResource, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchResourceUpdateOne) SaveX(ctx context.Context) *ResearchResource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchResourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchResourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchResourceUpdateOne) check() error {
	if _u.mutation.ResearchCleared() && len(_u.mutation.ResearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchResource.research"`)
	}
	return nil
}

func (_u *ResearchResourceUpdateOne) sqlSave(ctx context.Context) (_node *ResearchResource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchresource.Table, researchresource.Columns, sqlgraph.NewFieldSpec(researchresource.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchResource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchresource.FieldID)
		for _, f := range fields {
			if !researchresource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchresource.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(researchresource.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(researchresource.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentPreview(); ok {
		_spec.SetField(researchresource.FieldContentPreview, field.TypeString, value)
	}
	if _u.mutation.ContentPreviewCleared() {
		_spec.ClearField(researchresource.FieldContentPreview, field.TypeString)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(researchresource.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CitationIndex(); ok {
		_spec.SetField(researchresource.FieldCitationIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCitationIndex(); ok {
		_spec.AddField(researchresource.FieldCitationIndex, field.TypeInt, value)
	}
	if _u.mutation.CitationIndexCleared() {
		_spec.ClearField(researchresource.FieldCitationIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(researchresource.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(researchresource.FieldMetadata, field.TypeJSON)
	}
	_node = &ResearchResource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchresource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
