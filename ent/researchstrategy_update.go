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
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
)

// ResearchStrategyUpdate is the builder for updating ResearchStrategy entities.
type ResearchStrategyUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchStrategyMutation
}

// Where appends a list predicates to the ResearchStrategyUpdate builder.
func (_u *ResearchStrategyUpdate) Where(ps ...predicate.ResearchStrategy) *ResearchStrategyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStrategyName sets the "strategy_name" field.
func (_u *ResearchStrategyUpdate) SetStrategyName(v string) *ResearchStrategyUpdate {
	_u.mutation.SetStrategyName(v)
	return _u
}

// SetNillableStrategyName sets the "strategy_name" field if the given value is not nil.
func (_u *ResearchStrategyUpdate) SetNillableStrategyName(v *string) *ResearchStrategyUpdate {
	if v != nil {
		_u.SetStrategyName(*v)
	}
	return _u
}

// Mutation returns the ResearchStrategyMutation object of the builder.
func (_u *ResearchStrategyUpdate) Mutation() *ResearchStrategyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchStrategyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchStrategyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchStrategyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchStrategyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchStrategyUpdate) check() error {
	if _u.mutation.ResearchCleared() && len(_u.mutation.ResearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchStrategy.research"`)
	}
	return nil
}

func (_u *ResearchStrategyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchstrategy.Table, researchstrategy.Columns, sqlgraph.NewFieldSpec(researchstrategy.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StrategyName(); ok {
		_spec.SetField(researchstrategy.FieldStrategyName, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchstrategy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchStrategyUpdateOne is the builder for updating a single ResearchStrategy entity.
type ResearchStrategyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchStrategyMutation
}

// SetStrategyName sets the "strategy_name" field.
func (_u *ResearchStrategyUpdateOne) SetStrategyName(v string) *ResearchStrategyUpdateOne {
	_u.mutation.SetStrategyName(v)
	return _u
}

// SetNillableStrategyName sets the "strategy_name" field if the given value is not nil.
func (_u *ResearchStrategyUpdateOne) SetNillableStrategyName(v *string) *ResearchStrategyUpdateOne {
	if v != nil {
		_u.SetStrategyName(*v)
	}
	return _u
}

// Mutation returns the ResearchStrategyMutation object of the builder.
func (_u *ResearchStrategyUpdateOne) Mutation() *ResearchStrategyMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResearchStrategyUpdate builder.
func (_u *ResearchStrategyUpdateOne) Where(ps ...predicate.ResearchStrategy) *ResearchStrategyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchStrategyUpdateOne) Select(field string, fields ...string) *ResearchStrategyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchStrategy entity.
func (_u *ResearchStrategyUpdateOne) Save(ctx context.Context) (*ResearchStrategy, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchStrategyUpdateOne) SaveX(ctx context.Context) *ResearchStrategy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchStrategyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchStrategyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchStrategyUpdateOne) check() error {
	if _u.mutation.ResearchCleared() && len(_u.mutation.ResearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchStrategy.research"`)
	}
	return nil
}

func (_u *ResearchStrategyUpdateOne) sqlSave(ctx context.Context) (_node *ResearchStrategy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchstrategy.Table, researchstrategy.Columns, sqlgraph.NewFieldSpec(researchstrategy.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchStrategy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchstrategy.FieldID)
		for _, f := range fields {
			if !researchstrategy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchstrategy.FieldID {
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
	if value, ok := _u.mutation.StrategyName(); ok {
		_spec.SetField(researchstrategy.FieldStrategyName, field.TypeString, value)
	}
	_node = &ResearchStrategy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchstrategy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
