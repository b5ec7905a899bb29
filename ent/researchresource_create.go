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
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchresource"
)

// ResearchResourceCreate is the builder for creating a ResearchResource entity.
type ResearchResourceCreate struct {
	config
	mutation *ResearchResourceMutation
	hooks    []Hook
}

// SetResearchID sets the "research_id" field.
func (_c *ResearchResourceCreate) SetResearchID(v int) *ResearchResourceCreate {
	_c.mutation.SetResearchID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ResearchResourceCreate) SetTitle(v string) *ResearchResourceCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ResearchResourceCreate) SetNillableTitle(v *string) *ResearchResourceCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *ResearchResourceCreate) SetURL(v string) *ResearchResourceCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetContentPreview sets the "content_preview" field.
func (_c *ResearchResourceCreate) SetContentPreview(v string) *ResearchResourceCreate {
	_c.mutation.SetContentPreview(v)
	return _c
}

// SetNillableContentPreview sets the "content_preview" field if the given value is not nil.
func (_c *ResearchResourceCreate) SetNillableContentPreview(v *string) *ResearchResourceCreate {
	if v != nil {
		_c.SetContentPreview(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *ResearchResourceCreate) SetSourceType(v string) *ResearchResourceCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *ResearchResourceCreate) SetNillableSourceType(v *string) *ResearchResourceCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetCitationIndex sets the "citation_index" field.
func (_c *ResearchResourceCreate) SetCitationIndex(v int) *ResearchResourceCreate {
	_c.mutation.SetCitationIndex(v)
	return _c
}

// SetNillableCitationIndex sets the "citation_index" field if the given value is not nil.
func (_c *ResearchResourceCreate) SetNillableCitationIndex(v *int) *ResearchResourceCreate {
	if v != nil {
		_c.SetCitationIndex(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ResearchResourceCreate) SetMetadata(v map[string]interface{}) *ResearchResourceCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchResourceCreate) SetCreatedAt(v time.Time) *ResearchResourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchResourceCreate) SetNillableCreatedAt(v *time.Time) *ResearchResourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResearch sets the "research" edge to the ResearchRecord entity.
func (_c *ResearchResourceCreate) SetResearch(v *ResearchRecord) *ResearchResourceCreate {
	return _c.SetResearchID(v.ID)
}

// Mutation returns the ResearchResourceMutation object of the builder.
func (_c *ResearchResourceCreate) Mutation() *ResearchResourceMutation {
	return _c.mutation
}

// Save creates the ResearchResource in the database.
func (_c *ResearchResourceCreate) Save(ctx context.Context) (*ResearchResource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchResourceCreate) SaveX(ctx context.Context) *ResearchResource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchResourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchResourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchResourceCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := researchresource.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		v := researchresource.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchresource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchResourceCreate) check() error {
	if _, ok := _c.mutation.ResearchID(); !ok {
		return &ValidationError{Name: "research_id", err: errors.New(`ent: missing required field "ResearchResource.research_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ResearchResource.title"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "ResearchResource.url"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "ResearchResource.source_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchResource.created_at"`)}
	}
	if len(_c.mutation.ResearchIDs()) == 0 {
		return &ValidationError{Name: "research", err: errors.New(`ent: missing required edge "ResearchResource.research"`)}
	}
	return nil
}

func (_c *ResearchResourceCreate) sqlSave(ctx context.Context) (*ResearchResource, error) {
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

func (_c *ResearchResourceCreate) createSpec() (*ResearchResource, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchResource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchresource.Table, sqlgraph.NewFieldSpec(researchresource.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(researchresource.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(researchresource.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.ContentPreview(); ok {
		_spec.SetField(researchresource.FieldContentPreview, field.TypeString, value)
		_node.ContentPreview = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(researchresource.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.CitationIndex(); ok {
		_spec.SetField(researchresource.FieldCitationIndex, field.TypeInt, value)
		_node.CitationIndex = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(researchresource.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchresource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ResearchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   researchresource.ResearchTable,
			Columns: []string{researchresource.ResearchColumn},
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

// ResearchResourceCreateBulk is the builder for creating many ResearchResource entities in bulk.
type ResearchResourceCreateBulk struct {
	config
	err      error
	builders []*ResearchResourceCreate
}

// Save creates the ResearchResource entities in the database.
func (_c *ResearchResourceCreateBulk) Save(ctx context.Context) ([]*ResearchResource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchResource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchResourceMutation)
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
func (_c *ResearchResourceCreateBulk) SaveX(ctx context.Context) []*ResearchResource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchResourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchResourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
