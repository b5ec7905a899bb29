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
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/tokenusage"
)

// TokenUsageUpdate is the builder for updating TokenUsage entities.
type TokenUsageUpdate struct {
	config
	hooks    []Hook
	mutation *TokenUsageMutation
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdate) Where(ps ...predicate.TokenUsage) *TokenUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *TokenUsageUpdate) SetModel(v string) *TokenUsageUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableModel(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *TokenUsageUpdate) SetProvider(v string) *TokenUsageUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableProvider(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *TokenUsageUpdate) SetPromptTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillablePromptTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *TokenUsageUpdate) AddPromptTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *TokenUsageUpdate) SetCompletionTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCompletionTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *TokenUsageUpdate) AddCompletionTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TokenUsageUpdate) SetTotalTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableTotalTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TokenUsageUpdate) AddTotalTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetCallKind sets the "call_kind" field.
func (_u *TokenUsageUpdate) SetCallKind(v string) *TokenUsageUpdate {
	_u.mutation.SetCallKind(v)
	return _u
}

// SetNillableCallKind sets the "call_kind" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCallKind(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetCallKind(*v)
	}
	return _u
}

// ClearCallKind clears the value of the "call_kind" field.
func (_u *TokenUsageUpdate) ClearCallKind() *TokenUsageUpdate {
	_u.mutation.ClearCallKind()
	return _u
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdate) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdate) check() error {
	if _u.mutation.ResearchCleared() && len(_u.mutation.ResearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenUsage.research"`)
	}
	return nil
}

func (_u *TokenUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(tokenusage.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(tokenusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(tokenusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(tokenusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(tokenusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CallKind(); ok {
		_spec.SetField(tokenusage.FieldCallKind, field.TypeString, value)
	}
	if _u.mutation.CallKindCleared() {
		_spec.ClearField(tokenusage.FieldCallKind, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenUsageUpdateOne is the builder for updating a single TokenUsage entity.
type TokenUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenUsageMutation
}

// SetModel sets the "model" field.
func (_u *TokenUsageUpdateOne) SetModel(v string) *TokenUsageUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableModel(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *TokenUsageUpdateOne) SetProvider(v string) *TokenUsageUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableProvider(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *TokenUsageUpdateOne) SetPromptTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillablePromptTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *TokenUsageUpdateOne) AddPromptTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *TokenUsageUpdateOne) SetCompletionTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCompletionTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *TokenUsageUpdateOne) AddCompletionTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TokenUsageUpdateOne) SetTotalTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableTotalTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TokenUsageUpdateOne) AddTotalTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetCallKind sets the "call_kind" field.
func (_u *TokenUsageUpdateOne) SetCallKind(v string) *TokenUsageUpdateOne {
	_u.mutation.SetCallKind(v)
	return _u
}

// SetNillableCallKind sets the "call_kind" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCallKind(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCallKind(*v)
	}
	return _u
}

// ClearCallKind clears the value of the "call_kind" field.
func (_u *TokenUsageUpdateOne) ClearCallKind() *TokenUsageUpdateOne {
	_u.mutation.ClearCallKind()
	return _u
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdateOne) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdateOne) Where(ps ...predicate.TokenUsage) *TokenUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenUsageUpdateOne) Select(field string, fields ...string) *TokenUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenUsage entity.
func (_u *TokenUsageUpdateOne) Save(ctx context.Context) (*TokenUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) SaveX(ctx context.Context) *TokenUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdateOne) check() error {
	if _u.mutation.ResearchCleared() && len(_u.mutation.ResearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenUsage.research"`)
	}
	return nil
}

func (_u *TokenUsageUpdateOne) sqlSave(ctx context.Context) (_node *TokenUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenusage.FieldID)
		for _, f := range fields {
			if !tokenusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenusage.FieldID {
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
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(tokenusage.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(tokenusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(tokenusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(tokenusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(tokenusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CallKind(); ok {
		_spec.SetField(tokenusage.FieldCallKind, field.TypeString, value)
	}
	if _u.mutation.CallKindCleared() {
		_spec.ClearField(tokenusage.FieldCallKind, field.TypeString)
	}
	_node = &TokenUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
