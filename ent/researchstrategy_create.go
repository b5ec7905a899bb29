// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
)

// ResearchStrategyCreate is the builder for creating a ResearchStrategy entity.
type ResearchStrategyCreate struct {
	config
	mutation *ResearchStrategyMutation
	hooks    []Hook
}

// SetResearchID sets the "research_id" field.
func (_c *ResearchStrategyCreate) SetResearchID(v int) *ResearchStrategyCreate {
	_c.mutation.SetResearchID(v)
	return _c
}

// SetStrategyName sets the "strategy_name" field.
func (_c *ResearchStrategyCreate) SetStrategyName(v string) *ResearchStrategyCreate {
	_c.mutation.SetStrategyName(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchStrategyCreate) SetCreatedAt(v time.Time) *ResearchStrategyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchStrategyCreate) SetNillableCreatedAt(v *time.Time) *ResearchStrategyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResearch sets the "research" edge to the ResearchRecord entity.
func (_c *ResearchStrategyCreate) SetResearch(v *ResearchRecord) *ResearchStrategyCreate {
	return _c.SetResearchID(v.ID)
}

// Mutation returns the ResearchStrategyMutation object of the builder.
func (_c *ResearchStrategyCreate) Mutation() *ResearchStrategyMutation {
	return _c.mutation
}

// Save creates the ResearchStrategy in the database.
func (_c *ResearchStrategyCreate) Save(ctx context.Context) (*ResearchStrategy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchStrategyCreate) SaveX(ctx context.Context) *ResearchStrategy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchStrategyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchStrategyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchStrategyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchstrategy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchStrategyCreate) check() error {
	if _, ok := _c.mutation.ResearchID(); !ok {
		return &ValidationError{Name: "research_id", err: errors.New(`ent: missing required field "ResearchStrategy.research_id"`)}
	}
	if _, ok := _c.mutation.StrategyName(); !ok {
		return &ValidationError{Name: "strategy_name", err: errors.New(`ent: missing required field "ResearchStrategy.strategy_name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchStrategy.created_at"`)}
	}
	if len(_c.mutation.ResearchIDs()) == 0 {
		return &ValidationError{Name: "research", err: errors.New(`ent: missing required edge "ResearchStrategy.research"`)}
	}
	return nil
}

func (_c *ResearchStrategyCreate) sqlSave(ctx context.Context) (*ResearchStrategy, error) {
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

func (_c *ResearchStrategyCreate) createSpec() (*ResearchStrategy, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchStrategy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchstrategy.Table, sqlgraph.NewFieldSpec(researchstrategy.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StrategyName(); ok {
		_spec.SetField(researchstrategy.FieldStrategyName, field.TypeString, value)
		_node.StrategyName = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchstrategy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ResearchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   researchstrategy.ResearchTable,
			Columns: []string{researchstrategy.ResearchColumn},
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

// ResearchStrategyCreateBulk is the builder for creating many ResearchStrategy entities in bulk.
type ResearchStrategyCreateBulk struct {
	config
	err      error
	builders []*ResearchStrategyCreate
}

// Save creates the ResearchStrategy entities in the database.
func (_c *ResearchStrategyCreateBulk) Save(ctx context.Context) ([]*ResearchStrategy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchStrategy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchStrategyMutation)
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
func (_c *ResearchStrategyCreateBulk) SaveX(ctx context.Context) []*ResearchStrategy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchStrategyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchStrategyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
