// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/event"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/predicate"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchlog"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchresource"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/tokenusage"
)

// ResearchRecordUpdate is the builder for updating ResearchRecord entities.
type ResearchRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchRecordMutation
}

// Where appends a list predicates to the ResearchRecordUpdate builder.
func (_u *ResearchRecordUpdate) Where(ps ...predicate.ResearchRecord) *ResearchRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuery sets the "query" field.
func (_u *ResearchRecordUpdate) SetQuery(v string) *ResearchRecordUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchRecordUpdate) SetNillableQuery(v *string) *ResearchRecordUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ResearchRecordUpdate) SetMode(v researchrecord.Mode) *ResearchRecordUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ResearchRecordUpdate) SetNillableMode(v *researchrecord.Mode) *ResearchRecordUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchRecordUpdate) SetStatus(v researchrecord.Status) *ResearchRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchRecordUpdate) SetNillableStatus(v *researchrecord.Status) *ResearchRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ResearchRecordUpdate) SetProgress(v int) *ResearchRecordUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ResearchRecordUpdate) SetNillableProgress(v *int) *ResearchRecordUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ResearchRecordUpdate) AddProgress(v int) *ResearchRecordUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchRecordUpdate) SetCompletedAt(v time.Time) *ResearchRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchRecordUpdate) SetNillableCompletedAt(v *time.Time) *ResearchRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchRecordUpdate) ClearCompletedAt() *ResearchRecordUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ResearchRecordUpdate) SetDurationSeconds(v float64) *ResearchRecordUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ResearchRecordUpdate) SetNillableDurationSeconds(v *float64) *ResearchRecordUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ResearchRecordUpdate) AddDurationSeconds(v float64) *ResearchRecordUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *ResearchRecordUpdate) ClearDurationSeconds() *ResearchRecordUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetReportPath sets the "report_path" field.
func (_u *ResearchRecordUpdate) SetReportPath(v string) *ResearchRecordUpdate {
	_u.mutation.SetReportPath(v)
	return _u
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_u *ResearchRecordUpdate) SetNillableReportPath(v *string) *ResearchRecordUpdate {
	if v != nil {
		_u.SetReportPath(*v)
	}
	return _u
}

// ClearReportPath clears the value of the "report_path" field.
func (_u *ResearchRecordUpdate) ClearReportPath() *ResearchRecordUpdate {
	_u.mutation.ClearReportPath()
	return _u
}

// SetResearchMeta sets the "research_meta" field.
func (_u *ResearchRecordUpdate) SetResearchMeta(v map[string]interface{}) *ResearchRecordUpdate {
	_u.mutation.SetResearchMeta(v)
	return _u
}

// ClearResearchMeta clears the value of the "research_meta" field.
func (_u *ResearchRecordUpdate) ClearResearchMeta() *ResearchRecordUpdate {
	_u.mutation.ClearResearchMeta()
	return _u
}

// SetProgressLog sets the "progress_log" field.
func (_u *ResearchRecordUpdate) SetProgressLog(v []map[string]interface{}) *ResearchRecordUpdate {
	_u.mutation.SetProgressLog(v)
	return _u
}

// AppendProgressLog appends value to the "progress_log" field.
func (_u *ResearchRecordUpdate) AppendProgressLog(v []map[string]interface{}) *ResearchRecordUpdate {
	_u.mutation.AppendProgressLog(v)
	return _u
}

// ClearProgressLog clears the value of the "progress_log" field.
func (_u *ResearchRecordUpdate) ClearProgressLog() *ResearchRecordUpdate {
	_u.mutation.ClearProgressLog()
	return _u
}

// AddLogIDs adds the "logs" edge to the ResearchLog entity by IDs.
func (_u *ResearchRecordUpdate) AddLogIDs(ids ...int) *ResearchRecordUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ResearchLog entity.
func (_u *ResearchRecordUpdate) AddLogs(v ...*ResearchLog) *ResearchRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// AddResourceIDs adds the "resources" edge to the ResearchResource entity by IDs.
func (_u *ResearchRecordUpdate) AddResourceIDs(ids ...int) *ResearchRecordUpdate {
	_u.mutation.AddResourceIDs(ids...)
	return _u
}

// AddResources adds the "resources" edges to the ResearchResource entity.
func (_u *ResearchRecordUpdate) AddResources(v ...*ResearchResource) *ResearchRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResourceIDs(ids...)
}

// SetStrategyID sets the "strategy" edge to the ResearchStrategy entity by ID.
func (_u *ResearchRecordUpdate) SetStrategyID(id int) *ResearchRecordUpdate {
	_u.mutation.SetStrategyID(id)
	return _u
}

// SetNillableStrategyID sets the "strategy" edge to the ResearchStrategy entity by ID if the given value is not nil.
func (_u *ResearchRecordUpdate) SetNillableStrategyID(id *int) *ResearchRecordUpdate {
	if id != nil {
		_u = _u.SetStrategyID(*id)
	}
	return _u
}

// SetStrategy sets the "strategy" edge to the ResearchStrategy entity.
func (_u *ResearchRecordUpdate) SetStrategy(v *ResearchStrategy) *ResearchRecordUpdate {
	return _u.SetStrategyID(v.ID)
}

// AddTokenUsageIDs adds the "token_usages" edge to the TokenUsage entity by IDs.
func (_u *ResearchRecordUpdate) AddTokenUsageIDs(ids ...int) *ResearchRecordUpdate {
	_u.mutation.AddTokenUsageIDs(ids...)
	return _u
}

// AddTokenUsages adds the "token_usages" edges to the TokenUsage entity.
func (_u *ResearchRecordUpdate) AddTokenUsages(v ...*TokenUsage) *ResearchRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTokenUsageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ResearchRecordUpdate) AddEventIDs(ids ...int) *ResearchRecordUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ResearchRecordUpdate) AddEvents(v ...*Event) *ResearchRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ResearchRecordMutation object of the builder.
func (_u *ResearchRecordUpdate) Mutation() *ResearchRecordMutation {
	return _u.mutation
}

// ClearLogs clears all "logs" edges to the ResearchLog entity.
func (_u *ResearchRecordUpdate) ClearLogs() *ResearchRecordUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ResearchLog entities by IDs.
func (_u *ResearchRecordUpdate) RemoveLogIDs(ids ...int) *ResearchRecordUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ResearchLog entities.
func (_u *ResearchRecordUpdate) RemoveLogs(v ...*ResearchLog) *ResearchRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// ClearResources clears all "resources" edges to the ResearchResource entity.
func (_u *ResearchRecordUpdate) ClearResources() *ResearchRecordUpdate {
	_u.mutation.ClearResources()
	return _u
}

// RemoveResourceIDs removes the "resources" edge to ResearchResource entities by IDs.
func (_u *ResearchRecordUpdate) RemoveResourceIDs(ids ...int) *ResearchRecordUpdate {
	_u.mutation.RemoveResourceIDs(ids...)
	return _u
}

// RemoveResources removes "resources" edges to ResearchResource entities.
func (_u *ResearchRecordUpdate) RemoveResources(v ...*ResearchResource) *ResearchRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResourceIDs(ids...)
}

// ClearStrategy clears the "strategy" edge to the ResearchStrategy entity.
func (_u *ResearchRecordUpdate) ClearStrategy() *ResearchRecordUpdate {
	_u.mutation.ClearStrategy()
	return _u
}

// ClearTokenUsages clears all "token_usages" edges to the TokenUsage entity.
func (_u *ResearchRecordUpdate) ClearTokenUsages() *ResearchRecordUpdate {
	_u.mutation.ClearTokenUsages()
	return _u
}

// RemoveTokenUsageIDs removes the "token_usages" edge to TokenUsage entities by IDs.
func (_u *ResearchRecordUpdate) RemoveTokenUsageIDs(ids ...int) *ResearchRecordUpdate {
	_u.mutation.RemoveTokenUsageIDs(ids...)
	return _u
}

// RemoveTokenUsages removes "token_usages" edges to TokenUsage entities.
func (_u *ResearchRecordUpdate) RemoveTokenUsages(v ...*TokenUsage) *ResearchRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTokenUsageIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ResearchRecordUpdate) ClearEvents() *ResearchRecordUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ResearchRecordUpdate) RemoveEventIDs(ids ...int) *ResearchRecordUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ResearchRecordUpdate) RemoveEvents(v ...*Event) *ResearchRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchRecordUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := researchrecord.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ResearchRecord.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := researchrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchrecord.Table, researchrecord.Columns, sqlgraph.NewFieldSpec(researchrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchrecord.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(researchrecord.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(researchrecord.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(researchrecord.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(researchrecord.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(researchrecord.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(researchrecord.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReportPath(); ok {
		_spec.SetField(researchrecord.FieldReportPath, field.TypeString, value)
	}
	if _u.mutation.ReportPathCleared() {
		_spec.ClearField(researchrecord.FieldReportPath, field.TypeString)
	}
	if value, ok := _u.mutation.ResearchMeta(); ok {
		_spec.SetField(researchrecord.FieldResearchMeta, field.TypeJSON, value)
	}
	if _u.mutation.ResearchMetaCleared() {
		_spec.ClearField(researchrecord.FieldResearchMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressLog(); ok {
		_spec.SetField(researchrecord.FieldProgressLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProgressLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchrecord.FieldProgressLog, value)
		})
	}
	if _u.mutation.ProgressLogCleared() {
		_spec.ClearField(researchrecord.FieldProgressLog, field.TypeJSON)
	}
	if _u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResourcesIDs(); len(nodes) > 0 && !_u.mutation.ResourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StrategyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StrategyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TokenUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTokenUsagesIDs(); len(nodes) > 0 && !_u.mutation.TokenUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TokenUsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchRecordUpdateOne is the builder for updating a single ResearchRecord entity.
type ResearchRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchRecordMutation
}

// SetQuery sets the "query" field.
func (_u *ResearchRecordUpdateOne) SetQuery(v string) *ResearchRecordUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchRecordUpdateOne) SetNillableQuery(v *string) *ResearchRecordUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ResearchRecordUpdateOne) SetMode(v researchrecord.Mode) *ResearchRecordUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ResearchRecordUpdateOne) SetNillableMode(v *researchrecord.Mode) *ResearchRecordUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchRecordUpdateOne) SetStatus(v researchrecord.Status) *ResearchRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchRecordUpdateOne) SetNillableStatus(v *researchrecord.Status) *ResearchRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ResearchRecordUpdateOne) SetProgress(v int) *ResearchRecordUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ResearchRecordUpdateOne) SetNillableProgress(v *int) *ResearchRecordUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ResearchRecordUpdateOne) AddProgress(v int) *ResearchRecordUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchRecordUpdateOne) SetCompletedAt(v time.Time) *ResearchRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *ResearchRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchRecordUpdateOne) ClearCompletedAt() *ResearchRecordUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ResearchRecordUpdateOne) SetDurationSeconds(v float64) *ResearchRecordUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ResearchRecordUpdateOne) SetNillableDurationSeconds(v *float64) *ResearchRecordUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ResearchRecordUpdateOne) AddDurationSeconds(v float64) *ResearchRecordUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *ResearchRecordUpdateOne) ClearDurationSeconds() *ResearchRecordUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetReportPath sets the "report_path" field.
func (_u *ResearchRecordUpdateOne) SetReportPath(v string) *ResearchRecordUpdateOne {
	_u.mutation.SetReportPath(v)
	return _u
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_u *ResearchRecordUpdateOne) SetNillableReportPath(v *string) *ResearchRecordUpdateOne {
	if v != nil {
		_u.SetReportPath(*v)
	}
	return _u
}

// ClearReportPath clears the value of the "report_path" field.
func (_u *ResearchRecordUpdateOne) ClearReportPath() *ResearchRecordUpdateOne {
	_u.mutation.ClearReportPath()
	return _u
}

// SetResearchMeta sets the "research_meta" field.
func (_u *ResearchRecordUpdateOne) SetResearchMeta(v map[string]interface{}) *ResearchRecordUpdateOne {
	_u.mutation.SetResearchMeta(v)
	return _u
}

// ClearResearchMeta clears the value of the "research_meta" field.
func (_u *ResearchRecordUpdateOne) ClearResearchMeta() *ResearchRecordUpdateOne {
	_u.mutation.ClearResearchMeta()
	return _u
}

// SetProgressLog sets the "progress_log" field.
func (_u *ResearchRecordUpdateOne) SetProgressLog(v []map[string]interface{}) *ResearchRecordUpdateOne {
	_u.mutation.SetProgressLog(v)
	return _u
}

// AppendProgressLog appends value to the "progress_log" field.
func (_u *ResearchRecordUpdateOne) AppendProgressLog(v []map[string]interface{}) *ResearchRecordUpdateOne {
	_u.mutation.AppendProgressLog(v)
	return _u
}

// ClearProgressLog clears the value of the "progress_log" field.
func (_u *ResearchRecordUpdateOne) ClearProgressLog() *ResearchRecordUpdateOne {
	_u.mutation.ClearProgressLog()
	return _u
}

// AddLogIDs adds the "logs" edge to the ResearchLog entity by IDs.
func (_u *ResearchRecordUpdateOne) AddLogIDs(ids ...int) *ResearchRecordUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ResearchLog entity.
func (_u *ResearchRecordUpdateOne) AddLogs(v ...*ResearchLog) *ResearchRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// AddResourceIDs adds the "resources" edge to the ResearchResource entity by IDs.
func (_u *ResearchRecordUpdateOne) AddResourceIDs(ids ...int) *ResearchRecordUpdateOne {
	_u.mutation.AddResourceIDs(ids...)
	return _u
}

// AddResources adds the "resources" edges to the ResearchResource entity.
func (_u *ResearchRecordUpdateOne) AddResources(v ...*ResearchResource) *ResearchRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResourceIDs(ids...)
}

// SetStrategyID sets the "strategy" edge to the ResearchStrategy entity by ID.
func (_u *ResearchRecordUpdateOne) SetStrategyID(id int) *ResearchRecordUpdateOne {
	_u.mutation.SetStrategyID(id)
	return _u
}

// SetNillableStrategyID sets the "strategy" edge to the ResearchStrategy entity by ID if the given value is not nil.
func (_u *ResearchRecordUpdateOne) SetNillableStrategyID(id *int) *ResearchRecordUpdateOne {
	if id != nil {
		_u = _u.SetStrategyID(*id)
	}
	return _u
}

// SetStrategy sets the "strategy" edge to the ResearchStrategy entity.
func (_u *ResearchRecordUpdateOne) SetStrategy(v *ResearchStrategy) *ResearchRecordUpdateOne {
	return _u.SetStrategyID(v.ID)
}

// AddTokenUsageIDs adds the "token_usages" edge to the TokenUsage entity by IDs.
func (_u *ResearchRecordUpdateOne) AddTokenUsageIDs(ids ...int) *ResearchRecordUpdateOne {
	_u.mutation.AddTokenUsageIDs(ids...)
	return _u
}

// AddTokenUsages adds the "token_usages" edges to the TokenUsage entity.
func (_u *ResearchRecordUpdateOne) AddTokenUsages(v ...*TokenUsage) *ResearchRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTokenUsageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ResearchRecordUpdateOne) AddEventIDs(ids ...int) *ResearchRecordUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ResearchRecordUpdateOne) AddEvents(v ...*Event) *ResearchRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ResearchRecordMutation object of the builder.
func (_u *ResearchRecordUpdateOne) Mutation() *ResearchRecordMutation {
	return _u.mutation
}

// ClearLogs clears all "logs" edges to the ResearchLog entity.
func (_u *ResearchRecordUpdateOne) ClearLogs() *ResearchRecordUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ResearchLog entities by IDs.
func (_u *ResearchRecordUpdateOne) RemoveLogIDs(ids ...int) *ResearchRecordUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ResearchLog entities.
func (_u *ResearchRecordUpdateOne) RemoveLogs(v ...*ResearchLog) *ResearchRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// ClearResources clears all "resources" edges to the ResearchResource entity.
func (_u *ResearchRecordUpdateOne) ClearResources() *ResearchRecordUpdateOne {
	_u.mutation.ClearResources()
	return _u
}

// RemoveResourceIDs removes the "resources" edge to ResearchResource entities by IDs.
func (_u *ResearchRecordUpdateOne) RemoveResourceIDs(ids ...int) *ResearchRecordUpdateOne {
	_u.mutation.RemoveResourceIDs(ids...)
	return _u
}

// RemoveResources removes "resources" edges to ResearchResource entities.
func (_u *ResearchRecordUpdateOne) RemoveResources(v ...*ResearchResource) *ResearchRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResourceIDs(ids...)
}

// ClearStrategy clears the "strategy" edge to the ResearchStrategy entity.
func (_u *ResearchRecordUpdateOne) ClearStrategy() *ResearchRecordUpdateOne {
	_u.mutation.ClearStrategy()
	return _u
}

// ClearTokenUsages clears all "token_usages" edges to the TokenUsage entity.
func (_u *ResearchRecordUpdateOne) ClearTokenUsages() *ResearchRecordUpdateOne {
	_u.mutation.ClearTokenUsages()
	return _u
}

// RemoveTokenUsageIDs removes the "token_usages" edge to TokenUsage entities by IDs.
func (_u *ResearchRecordUpdateOne) RemoveTokenUsageIDs(ids ...int) *ResearchRecordUpdateOne {
	_u.mutation.RemoveTokenUsageIDs(ids...)
	return _u
}

// RemoveTokenUsages removes "token_usages" edges to TokenUsage entities.
func (_u *ResearchRecordUpdateOne) RemoveTokenUsages(v ...*TokenUsage) *ResearchRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTokenUsageIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ResearchRecordUpdateOne) ClearEvents() *ResearchRecordUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ResearchRecordUpdateOne) RemoveEventIDs(ids ...int) *ResearchRecordUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ResearchRecordUpdateOne) RemoveEvents(v ...*Event) *ResearchRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the ResearchRecordUpdate builder.
func (_u *ResearchRecordUpdateOne) Where(ps ...predicate.ResearchRecord) *ResearchRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchRecordUpdateOne) Select(field string, fields ...string) *ResearchRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchRecord entity.
func (_u *ResearchRecordUpdateOne) Save(ctx context.Context) (*ResearchRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchRecordUpdateOne) SaveX(ctx context.Context) *ResearchRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := researchrecord.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ResearchRecord.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := researchrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchRecordUpdateOne) sqlSave(ctx context.Context) (_node *ResearchRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchrecord.Table, researchrecord.Columns, sqlgraph.NewFieldSpec(researchrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchrecord.FieldID)
		for _, f := range fields {
			if !researchrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchrecord.FieldID {
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
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchrecord.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(researchrecord.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(researchrecord.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(researchrecord.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(researchrecord.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(researchrecord.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(researchrecord.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReportPath(); ok {
		_spec.SetField(researchrecord.FieldReportPath, field.TypeString, value)
	}
	if _u.mutation.ReportPathCleared() {
		_spec.ClearField(researchrecord.FieldReportPath, field.TypeString)
	}
	if value, ok := _u.mutation.ResearchMeta(); ok {
		_spec.SetField(researchrecord.FieldResearchMeta, field.TypeJSON, value)
	}
	if _u.mutation.ResearchMetaCleared() {
		_spec.ClearField(researchrecord.FieldResearchMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressLog(); ok {
		_spec.SetField(researchrecord.FieldProgressLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProgressLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchrecord.FieldProgressLog, value)
		})
	}
	if _u.mutation.ProgressLogCleared() {
		_spec.ClearField(researchrecord.FieldProgressLog, field.TypeJSON)
	}
	if _u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResourcesIDs(); len(nodes) > 0 && !_u.mutation.ResourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StrategyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StrategyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TokenUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTokenUsagesIDs(); len(nodes) > 0 && !_u.mutation.TokenUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TokenUsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
