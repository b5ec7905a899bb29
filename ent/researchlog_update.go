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
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchlog"
)

// ResearchLogUpdate is the builder for updating ResearchLog entities.
type ResearchLogUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchLogMutation
}

// Where appends a list predicates to the ResearchLogUpdate builder.
func (_u *ResearchLogUpdate) Where(ps ...predicate.ResearchLog) *ResearchLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessage sets the "message" field.
func (_u *ResearchLogUpdate) SetMessage(v string) *ResearchLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ResearchLogUpdate) SetNillableMessage(v *string) *ResearchLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ResearchLogUpdate) SetLevel(v researchlog.Level) *ResearchLogUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ResearchLogUpdate) SetNillableLevel(v *researchlog.Level) *ResearchLogUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ResearchLogUpdate) SetProgress(v int) *ResearchLogUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ResearchLogUpdate) SetNillableProgress(v *int) *ResearchLogUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ResearchLogUpdate) AddProgress(v int) *ResearchLogUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// ClearProgress clears the value of the "progress" field.
func (_u *ResearchLogUpdate) ClearProgress() *ResearchLogUpdate {
	_u.mutation.ClearProgress()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ResearchLogUpdate) SetMetadata(v map[string]interface{}) *ResearchLogUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ResearchLogUpdate) ClearMetadata() *ResearchLogUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ResearchLogMutation object of the builder.
func (_u *ResearchLogUpdate) Mutation() *ResearchLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchLogUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := researchlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ResearchLog.level": %w`, err)}
		}
	}
	if _u.mutation.ResearchCleared() && len(_u.mutation.ResearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchLog.research"`)
	}
	return nil
}

func (_u *ResearchLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchlog.Table, researchlog.Columns, sqlgraph.NewFieldSpec(researchlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(researchlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(researchlog.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(researchlog.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(researchlog.FieldProgress, field.TypeInt, value)
	}
	if _u.mutation.ProgressCleared() {
		_spec.ClearField(researchlog.FieldProgress, field.TypeInt)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(researchlog.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(researchlog.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchLogUpdateOne is the builder for updating a single ResearchLog entity.
type ResearchLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchLogMutation
}

// SetMessage sets the "message" field.
func (_u *ResearchLogUpdateOne) SetMessage(v string) *ResearchLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ResearchLogUpdateOne) SetNillableMessage(v *string) *ResearchLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ResearchLogUpdateOne) SetLevel(v researchlog.Level) *ResearchLogUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ResearchLogUpdateOne) SetNillableLevel(v *researchlog.Level) *ResearchLogUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ResearchLogUpdateOne) SetProgress(v int) *ResearchLogUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ResearchLogUpdateOne) SetNillableProgress(v *int) *ResearchLogUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ResearchLogUpdateOne) AddProgress(v int) *ResearchLogUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// ClearProgress clears the value of the "progress" field.
func (_u *ResearchLogUpdateOne) ClearProgress() *ResearchLogUpdateOne {
	_u.mutation.ClearProgress()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ResearchLogUpdateOne) SetMetadata(v map[string]interface{}) *ResearchLogUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ResearchLogUpdateOne) ClearMetadata() *ResearchLogUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ResearchLogMutation object of the builder.
func (_u *ResearchLogUpdateOne) Mutation() *ResearchLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResearchLogUpdate builder.
func (_u *ResearchLogUpdateOne) Where(ps ...predicate.ResearchLog) *ResearchLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchLogUpdateOne) Select(field string, fields ...string) *ResearchLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchLog entity.
func (_u *ResearchLogUpdateOne) Save(ctx context.Context) (*ResearchLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchLogUpdateOne) SaveX(ctx context.Context) *ResearchLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchLogUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := researchlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ResearchLog.level": %w`, err)}
		}
	}
	if _u.mutation.ResearchCleared() && len(_u.mutation.ResearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchLog.research"`)
	}
	return nil
}

func (_u *ResearchLogUpdateOne) sqlSave(ctx context.Context) (_node *ResearchLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchlog.Table, researchlog.Columns, sqlgraph.NewFieldSpec(researchlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchlog.FieldID)
		for _, f := range fields {
			if !researchlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchlog.FieldID {
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
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(researchlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(researchlog.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(researchlog.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(researchlog.FieldProgress, field.TypeInt, value)
	}
	if _u.mutation.ProgressCleared() {
		_spec.ClearField(researchlog.FieldProgress, field.TypeInt)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(researchlog.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(researchlog.FieldMetadata, field.TypeJSON)
	}
	_node = &ResearchLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
