// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/event"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchlog"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchresource"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/tokenusage"
)

// ResearchRecordCreate is the builder for creating a ResearchRecord entity.
type ResearchRecordCreate struct {
	config
	mutation *ResearchRecordMutation
	hooks    []Hook
}

// SetQuery sets the "query" field.
func (_c *ResearchRecordCreate) SetQuery(v string) *ResearchRecordCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ResearchRecordCreate) SetMode(v researchrecord.Mode) *ResearchRecordCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *ResearchRecordCreate) SetNillableMode(v *researchrecord.Mode) *ResearchRecordCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResearchRecordCreate) SetStatus(v researchrecord.Status) *ResearchRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ResearchRecordCreate) SetNillableStatus(v *researchrecord.Status) *ResearchRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *ResearchRecordCreate) SetProgress(v int) *ResearchRecordCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *ResearchRecordCreate) SetNillableProgress(v *int) *ResearchRecordCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchRecordCreate) SetCreatedAt(v time.Time) *ResearchRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchRecordCreate) SetNillableCreatedAt(v *time.Time) *ResearchRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ResearchRecordCreate) SetCompletedAt(v time.Time) *ResearchRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ResearchRecordCreate) SetNillableCompletedAt(v *time.Time) *ResearchRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *ResearchRecordCreate) SetDurationSeconds(v float64) *ResearchRecordCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *ResearchRecordCreate) SetNillableDurationSeconds(v *float64) *ResearchRecordCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetReportPath sets the "report_path" field.
func (_c *ResearchRecordCreate) SetReportPath(v string) *ResearchRecordCreate {
	_c.mutation.SetReportPath(v)
	return _c
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_c *ResearchRecordCreate) SetNillableReportPath(v *string) *ResearchRecordCreate {
	if v != nil {
		_c.SetReportPath(*v)
	}
	return _c
}

// SetResearchMeta sets the "research_meta" field.
func (_c *ResearchRecordCreate) SetResearchMeta(v map[string]interface{}) *ResearchRecordCreate {
	_c.mutation.SetResearchMeta(v)
	return _c
}

// SetProgressLog sets the "progress_log" field.
func (_c *ResearchRecordCreate) SetProgressLog(v []map[string]interface{}) *ResearchRecordCreate {
	_c.mutation.SetProgressLog(v)
	return _c
}

// AddLogIDs adds the "logs" edge to the ResearchLog entity by IDs.
func (_c *ResearchRecordCreate) AddLogIDs(ids ...int) *ResearchRecordCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the ResearchLog entity.
func (_c *ResearchRecordCreate) AddLogs(v ...*ResearchLog) *ResearchRecordCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// AddResourceIDs adds the "resources" edge to the ResearchResource entity by IDs.
func (_c *ResearchRecordCreate) AddResourceIDs(ids ...int) *ResearchRecordCreate {
	_c.mutation.AddResourceIDs(ids...)
	return _c
}

// AddResources adds the "resources" edges to the ResearchResource entity.
func (_c *ResearchRecordCreate) AddResources(v ...*ResearchResource) *ResearchRecordCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResourceIDs(ids...)
}

// SetStrategyID sets the "strategy" edge to the ResearchStrategy entity by ID.
func (_c *ResearchRecordCreate) SetStrategyID(id int) *ResearchRecordCreate {
	_c.mutation.SetStrategyID(id)
	return _c
}

// SetNillableStrategyID sets the "strategy" edge to the ResearchStrategy entity by ID if the given value is not nil.
func (_c *ResearchRecordCreate) SetNillableStrategyID(id *int) *ResearchRecordCreate {
	if id != nil {
		_c = _c.SetStrategyID(*id)
	}
	return _c
}

// SetStrategy sets the "strategy" edge to the ResearchStrategy entity.
func (_c *ResearchRecordCreate) SetStrategy(v *ResearchStrategy) *ResearchRecordCreate {
	return _c.SetStrategyID(v.ID)
}

// AddTokenUsageIDs adds the "token_usages" edge to the TokenUsage entity by IDs.
func (_c *ResearchRecordCreate) AddTokenUsageIDs(ids ...int) *ResearchRecordCreate {
	_c.mutation.AddTokenUsageIDs(ids...)
	return _c
}

// AddTokenUsages adds the "token_usages" edges to the TokenUsage entity.
func (_c *ResearchRecordCreate) AddTokenUsages(v ...*TokenUsage) *ResearchRecordCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTokenUsageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *ResearchRecordCreate) AddEventIDs(ids ...int) *ResearchRecordCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *ResearchRecordCreate) AddEvents(v ...*Event) *ResearchRecordCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the ResearchRecordMutation object of the builder.
func (_c *ResearchRecordCreate) Mutation() *ResearchRecordMutation {
	return _c.mutation
}

// Save creates the ResearchRecord in the database.
func (_c *ResearchRecordCreate) Save(ctx context.Context) (*ResearchRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchRecordCreate) SaveX(ctx context.Context) *ResearchRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchRecordCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := researchrecord.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := researchrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := researchrecord.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchRecordCreate) check() error {
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "ResearchRecord.query"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ResearchRecord.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := researchrecord.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ResearchRecord.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ResearchRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := researchrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "ResearchRecord.progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchRecord.created_at"`)}
	}
	return nil
}

func (_c *ResearchRecordCreate) sqlSave(ctx context.Context) (*ResearchRecord, error) {
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

func (_c *ResearchRecordCreate) createSpec() (*ResearchRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchrecord.Table, sqlgraph.NewFieldSpec(researchrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(researchrecord.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(researchrecord.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(researchrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(researchrecord.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(researchrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(researchrecord.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.ReportPath(); ok {
		_spec.SetField(researchrecord.FieldReportPath, field.TypeString, value)
		_node.ReportPath = &value
	}
	if value, ok := _c.mutation.ResearchMeta(); ok {
		_spec.SetField(researchrecord.FieldResearchMeta, field.TypeJSON, value)
		_node.ResearchMeta = value
	}
	if value, ok := _c.mutation.ProgressLog(); ok {
		_spec.SetField(researchrecord.FieldProgressLog, field.TypeJSON, value)
		_node.ProgressLog = value
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchrecord.LogsTable,
			Columns: []string{researchrecord.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchrecord.ResourcesTable,
			Columns: []string{researchrecord.ResourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchresource.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StrategyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchrecord.StrategyTable,
			Columns: []string{researchrecord.StrategyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchstrategy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TokenUsagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchrecord.TokenUsagesTable,
			Columns: []string{researchrecord.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchrecord.EventsTable,
			Columns: []string{researchrecord.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResearchRecordCreateBulk is the builder for creating many ResearchRecord entities in bulk.
type ResearchRecordCreateBulk struct {
	config
	err      error
	builders []*ResearchRecordCreate
}

// Save creates the ResearchRecord entities in the database.
func (_c *ResearchRecordCreateBulk) Save(ctx context.Context) ([]*ResearchRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchRecordMutation)
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
func (_c *ResearchRecordCreateBulk) SaveX(ctx context.Context) []*ResearchRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
