// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchlog"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
)

// ResearchLogCreate is the builder for creating a ResearchLog entity.
type ResearchLogCreate struct {
	config
	mutation *ResearchLogMutation
	hooks    []Hook
}

// SetResearchID sets the "research_id" field.
func (_c *ResearchLogCreate) SetResearchID(v int) *ResearchLogCreate {
	_c.mutation.SetResearchID(v)
	return _c
}

// SetTime sets the "time" field.
func (_c *ResearchLogCreate) SetTime(v time.Time) *ResearchLogCreate {
	_c.mutation.SetTime(v)
	return _c
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_c *ResearchLogCreate) SetNillableTime(v *time.Time) *ResearchLogCreate {
	if v != nil {
		_c.SetTime(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *ResearchLogCreate) SetMessage(v string) *ResearchLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ResearchLogCreate) SetLevel(v researchlog.Level) *ResearchLogCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ResearchLogCreate) SetNillableLevel(v *researchlog.Level) *ResearchLogCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *ResearchLogCreate) SetProgress(v int) *ResearchLogCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *ResearchLogCreate) SetNillableProgress(v *int) *ResearchLogCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ResearchLogCreate) SetMetadata(v map[string]interface{}) *ResearchLogCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetResearch sets the "research" edge to the ResearchRecord entity.
func (_c *ResearchLogCreate) SetResearch(v *ResearchRecord) *ResearchLogCreate {
	return _c.SetResearchID(v.ID)
}

// Mutation returns the ResearchLogMutation object of the builder.
func (_c *ResearchLogCreate) Mutation() *ResearchLogMutation {
	return _c.mutation
}

// Save creates the ResearchLog in the database.
func (_c *ResearchLogCreate) Save(ctx context.Context) (*ResearchLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchLogCreate) SaveX(ctx context.Context) *ResearchLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchLogCreate) defaults() {
	if _, ok := _c.mutation.Time(); !ok {
		v := researchlog.DefaultTime()
		_c.mutation.SetTime(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := researchlog.DefaultLevel
		_c.mutation.SetLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchLogCreate) check() error {
	if _, ok := _c.mutation.ResearchID(); !ok {
		return &ValidationError{Name: "research_id", err: errors.New(`ent: missing required field "ResearchLog.research_id"`)}
	}
	if _, ok := _c.mutation.Time(); !ok {
		return &ValidationError{Name: "time", err: errors.New(`ent: missing required field "ResearchLog.time"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ResearchLog.message"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ResearchLog.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := researchlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ResearchLog.level": %w`, err)}
		}
	}
	if len(_c.mutation.ResearchIDs()) == 0 {
		return &ValidationError{Name: "research", err: errors.New(`ent: missing required edge "ResearchLog.research"`)}
	}
	return nil
}

func (_c *ResearchLogCreate) sqlSave(ctx context.Context) (*ResearchLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchLogCreate) createSpec() (*ResearchLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchlog.Table, sqlgraph.NewFieldSpec(researchlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Time(); ok {
		_spec.SetField(researchlog.FieldTime, field.TypeTime, value)
		_node.Time = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(researchlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(researchlog.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(researchlog.FieldProgress, field.TypeInt, value)
		_node.Progress = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(researchlog.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.ResearchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   researchlog.ResearchTable,
			Columns: []string{researchlog.ResearchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ResearchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResearchLogCreateBulk is the builder for creating many ResearchLog entities in bulk.
type ResearchLogCreateBulk struct {
	config
	err      error
	builders []*ResearchLogCreate
}

// Save creates the ResearchLog entities in the database.
func (_c *ResearchLogCreateBulk) Save(ctx context.Context) ([]*ResearchLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResearchLogCreateBulk) SaveX(ctx context.Context) []*ResearchLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
