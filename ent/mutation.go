// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/event"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/predicate"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchlog"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchresource"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/setting"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/tokenusage"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent            = "Event"
	TypeResearchLog      = "ResearchLog"
	TypeResearchRecord   = "ResearchRecord"
	TypeResearchResource = "ResearchResource"
	TypeResearchStrategy = "ResearchStrategy"
	TypeSetting          = "Setting"
	TypeTokenUsage       = "TokenUsage"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	channel         *string
	payload         *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	research        *int
	clearedresearch bool
	done            bool
	oldValue        func(context.Context) (*Event, error)
	predicates      []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResearchID sets the "research_id" field.
func (m *EventMutation) SetResearchID(i int) {
	m.research = &i
}

// ResearchID returns the value of the "research_id" field in the mutation.
func (m *EventMutation) ResearchID() (r int, exists bool) {
	v := m.research
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchID returns the old "research_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldResearchID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchID: %w", err)
	}
	return oldValue.ResearchID, nil
}

// ResetResearchID resets all changes to the "research_id" field.
func (m *EventMutation) ResetResearchID() {
	m.research = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearResearch clears the "research" edge to the ResearchRecord entity.
func (m *EventMutation) ClearResearch() {
	m.clearedresearch = true
	m.clearedFields[event.FieldResearchID] = struct{}{}
}

// ResearchCleared reports if the "research" edge to the ResearchRecord entity was cleared.
func (m *EventMutation) ResearchCleared() bool {
	return m.clearedresearch
}

// ResearchIDs returns the "research" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResearchID instead. It exists only for internal usage by the builders.
func (m *EventMutation) ResearchIDs() (ids []int) {
	if id := m.research; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResearch resets all changes to the "research" edge.
func (m *EventMutation) ResetResearch() {
	m.research = nil
	m.clearedresearch = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.research != nil {
		fields = append(fields, event.FieldResearchID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldResearchID:
		return m.ResearchID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldResearchID:
		return m.OldResearchID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldResearchID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldResearchID:
		m.ResetResearchID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.research != nil {
		edges = append(edges, event.EdgeResearch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeResearch:
		if id := m.research; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresearch {
		edges = append(edges, event.EdgeResearch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeResearch:
		return m.clearedresearch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeResearch:
		m.ClearResearch()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeResearch:
		m.ResetResearch()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// ResearchLogMutation represents an operation that mutates the ResearchLog nodes in the graph.
type ResearchLogMutation struct {
	config
	op              Op
	typ             string
	id              *int
	time            *time.Time
	message         *string
	level           *researchlog.Level
	progress        *int
	addprogress     *int
	metadata        *map[string]interface{}
	clearedFields   map[string]struct{}
	research        *int
	clearedresearch bool
	done            bool
	oldValue        func(context.Context) (*ResearchLog, error)
	predicates      []predicate.ResearchLog
}

var _ ent.Mutation = (*ResearchLogMutation)(nil)

// researchlogOption allows management of the mutation configuration using functional options.
type researchlogOption func(*ResearchLogMutation)

// newResearchLogMutation creates new mutation for the ResearchLog entity.
func newResearchLogMutation(c config, op Op, opts ...researchlogOption) *ResearchLogMutation {
	m := &ResearchLogMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchLogID sets the ID field of the mutation.
func withResearchLogID(id int) researchlogOption {
	return func(m *ResearchLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchLog
		)
		m.oldValue = func(ctx context.Context) (*ResearchLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchLog sets the old ResearchLog of the mutation.
func withResearchLog(node *ResearchLog) researchlogOption {
	return func(m *ResearchLogMutation) {
		m.oldValue = func(context.Context) (*ResearchLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResearchID sets the "research_id" field.
func (m *ResearchLogMutation) SetResearchID(i int) {
	m.research = &i
}

// ResearchID returns the value of the "research_id" field in the mutation.
func (m *ResearchLogMutation) ResearchID() (r int, exists bool) {
	v := m.research
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchID returns the old "research_id" field's value of the ResearchLog entity.
// If the ResearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchLogMutation) OldResearchID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchID: %w", err)
	}
	return oldValue.ResearchID, nil
}

// ResetResearchID resets all changes to the "research_id" field.
func (m *ResearchLogMutation) ResetResearchID() {
	m.research = nil
}

// SetTime sets the "time" field.
func (m *ResearchLogMutation) SetTime(t time.Time) {
	m.time = &t
}

// Time returns the value of the "time" field in the mutation.
func (m *ResearchLogMutation) Time() (r time.Time, exists bool) {
	v := m.time
	if v == nil {
		return
	}
	return *v, true
}

// OldTime returns the old "time" field's value of the ResearchLog entity.
// If the ResearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchLogMutation) OldTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTime: %w", err)
	}
	return oldValue.Time, nil
}

// ResetTime resets all changes to the "time" field.
func (m *ResearchLogMutation) ResetTime() {
	m.time = nil
}

// SetMessage sets the "message" field.
func (m *ResearchLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ResearchLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ResearchLog entity.
// If the ResearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ResearchLogMutation) ResetMessage() {
	m.message = nil
}

// SetLevel sets the "level" field.
func (m *ResearchLogMutation) SetLevel(r researchlog.Level) {
	m.level = &r
}

// Level returns the value of the "level" field in the mutation.
func (m *ResearchLogMutation) Level() (r researchlog.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the ResearchLog entity.
// If the ResearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchLogMutation) OldLevel(ctx context.Context) (v researchlog.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *ResearchLogMutation) ResetLevel() {
	m.level = nil
}

// SetProgress sets the "progress" field.
func (m *ResearchLogMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *ResearchLogMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the ResearchLog entity.
// If the ResearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchLogMutation) OldProgress(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *ResearchLogMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *ResearchLogMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ClearProgress clears the value of the "progress" field.
func (m *ResearchLogMutation) ClearProgress() {
	m.progress = nil
	m.addprogress = nil
	m.clearedFields[researchlog.FieldProgress] = struct{}{}
}

// ProgressCleared returns if the "progress" field was cleared in this mutation.
func (m *ResearchLogMutation) ProgressCleared() bool {
	_, ok := m.clearedFields[researchlog.FieldProgress]
	return ok
}

// ResetProgress resets all changes to the "progress" field.
func (m *ResearchLogMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
	delete(m.clearedFields, researchlog.FieldProgress)
}

// SetMetadata sets the "metadata" field.
func (m *ResearchLogMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ResearchLogMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ResearchLog entity.
// If the ResearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchLogMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ResearchLogMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[researchlog.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ResearchLogMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[researchlog.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ResearchLogMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, researchlog.FieldMetadata)
}

// ClearResearch clears the "research" edge to the ResearchRecord entity.
func (m *ResearchLogMutation) ClearResearch() {
	m.clearedresearch = true
	m.clearedFields[researchlog.FieldResearchID] = struct{}{}
}

// ResearchCleared reports if the "research" edge to the ResearchRecord entity was cleared.
func (m *ResearchLogMutation) ResearchCleared() bool {
	return m.clearedresearch
}

// ResearchIDs returns the "research" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResearchID instead. It exists only for internal usage by the builders.
func (m *ResearchLogMutation) ResearchIDs() (ids []int) {
	if id := m.research; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResearch resets all changes to the "research" edge.
func (m *ResearchLogMutation) ResetResearch() {
	m.research = nil
	m.clearedresearch = false
}

// Where appends a list predicates to the ResearchLogMutation builder.
func (m *ResearchLogMutation) Where(ps ...predicate.ResearchLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchLog).
func (m *ResearchLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.research != nil {
		fields = append(fields, researchlog.FieldResearchID)
	}
	if m.time != nil {
		fields = append(fields, researchlog.FieldTime)
	}
	if m.message != nil {
		fields = append(fields, researchlog.FieldMessage)
	}
	if m.level != nil {
		fields = append(fields, researchlog.FieldLevel)
	}
	if m.progress != nil {
		fields = append(fields, researchlog.FieldProgress)
	}
	if m.metadata != nil {
		fields = append(fields, researchlog.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchlog.FieldResearchID:
		return m.ResearchID()
	case researchlog.FieldTime:
		return m.Time()
	case researchlog.FieldMessage:
		return m.Message()
	case researchlog.FieldLevel:
		return m.Level()
	case researchlog.FieldProgress:
		return m.Progress()
	case researchlog.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchlog.FieldResearchID:
		return m.OldResearchID(ctx)
	case researchlog.FieldTime:
		return m.OldTime(ctx)
	case researchlog.FieldMessage:
		return m.OldMessage(ctx)
	case researchlog.FieldLevel:
		return m.OldLevel(ctx)
	case researchlog.FieldProgress:
		return m.OldProgress(ctx)
	case researchlog.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchlog.FieldResearchID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchID(v)
		return nil
	case researchlog.FieldTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTime(v)
		return nil
	case researchlog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case researchlog.FieldLevel:
		v, ok := value.(researchlog.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case researchlog.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case researchlog.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchLogMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, researchlog.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchlog.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchlog.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchlog.FieldProgress) {
		fields = append(fields, researchlog.FieldProgress)
	}
	if m.FieldCleared(researchlog.FieldMetadata) {
		fields = append(fields, researchlog.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchLogMutation) ClearField(name string) error {
	switch name {
	case researchlog.FieldProgress:
		m.ClearProgress()
		return nil
	case researchlog.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ResearchLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchLogMutation) ResetField(name string) error {
	switch name {
	case researchlog.FieldResearchID:
		m.ResetResearchID()
		return nil
	case researchlog.FieldTime:
		m.ResetTime()
		return nil
	case researchlog.FieldMessage:
		m.ResetMessage()
		return nil
	case researchlog.FieldLevel:
		m.ResetLevel()
		return nil
	case researchlog.FieldProgress:
		m.ResetProgress()
		return nil
	case researchlog.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown ResearchLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.research != nil {
		edges = append(edges, researchlog.EdgeResearch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchlog.EdgeResearch:
		if id := m.research; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresearch {
		edges = append(edges, researchlog.EdgeResearch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchLogMutation) EdgeCleared(name string) bool {
	switch name {
	case researchlog.EdgeResearch:
		return m.clearedresearch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchLogMutation) ClearEdge(name string) error {
	switch name {
	case researchlog.EdgeResearch:
		m.ClearResearch()
		return nil
	}
	return fmt.Errorf("unknown ResearchLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchLogMutation) ResetEdge(name string) error {
	switch name {
	case researchlog.EdgeResearch:
		m.ResetResearch()
		return nil
	}
	return fmt.Errorf("unknown ResearchLog edge %s", name)
}

// ResearchRecordMutation represents an operation that mutates the ResearchRecord nodes in the graph.
type ResearchRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	query               *string
	mode                *researchrecord.Mode
	status              *researchrecord.Status
	progress            *int
	addprogress         *int
	created_at          *time.Time
	completed_at        *time.Time
	duration_seconds    *float64
	addduration_seconds *float64
	report_path         *string
	research_meta       *map[string]interface{}
	progress_log        *[]map[string]interface{}
	appendprogress_log  []map[string]interface{}
	clearedFields       map[string]struct{}
	logs                map[int]struct{}
	removedlogs         map[int]struct{}
	clearedlogs         bool
	resources           map[int]struct{}
	removedresources    map[int]struct{}
	clearedresources    bool
	strategy            *int
	clearedstrategy     bool
	token_usages        map[int]struct{}
	removedtoken_usages map[int]struct{}
	clearedtoken_usages bool
	events              map[int]struct{}
	removedevents       map[int]struct{}
	clearedevents       bool
	done                bool
	oldValue            func(context.Context) (*ResearchRecord, error)
	predicates          []predicate.ResearchRecord
}

var _ ent.Mutation = (*ResearchRecordMutation)(nil)

// researchrecordOption allows management of the mutation configuration using functional options.
type researchrecordOption func(*ResearchRecordMutation)

// newResearchRecordMutation creates new mutation for the ResearchRecord entity.
func newResearchRecordMutation(c config, op Op, opts ...researchrecordOption) *ResearchRecordMutation {
	m := &ResearchRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchRecordID sets the ID field of the mutation.
func withResearchRecordID(id int) researchrecordOption {
	return func(m *ResearchRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchRecord
		)
		m.oldValue = func(ctx context.Context) (*ResearchRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchRecord sets the old ResearchRecord of the mutation.
func withResearchRecord(node *ResearchRecord) researchrecordOption {
	return func(m *ResearchRecordMutation) {
		m.oldValue = func(context.Context) (*ResearchRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuery sets the "query" field.
func (m *ResearchRecordMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *ResearchRecordMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the ResearchRecord entity.
// If the ResearchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchRecordMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *ResearchRecordMutation) ResetQuery() {
	m.query = nil
}

// SetMode sets the "mode" field.
func (m *ResearchRecordMutation) SetMode(r researchrecord.Mode) {
	m.mode = &r
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ResearchRecordMutation) Mode() (r researchrecord.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ResearchRecord entity.
// If the ResearchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchRecordMutation) OldMode(ctx context.Context) (v researchrecord.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ResearchRecordMutation) ResetMode() {
	m.mode = nil
}

// SetStatus sets the "status" field.
func (m *ResearchRecordMutation) SetStatus(r researchrecord.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ResearchRecordMutation) Status() (r researchrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ResearchRecord entity.
// If the ResearchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchRecordMutation) OldStatus(ctx context.Context) (v researchrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ResearchRecordMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *ResearchRecordMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *ResearchRecordMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the ResearchRecord entity.
// If the ResearchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchRecordMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *ResearchRecordMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *ResearchRecordMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *ResearchRecordMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchRecord entity.
// If the ResearchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ResearchRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ResearchRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ResearchRecord entity.
// If the ResearchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchRecordMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ResearchRecordMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[researchrecord.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ResearchRecordMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[researchrecord.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ResearchRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, researchrecord.FieldCompletedAt)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *ResearchRecordMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *ResearchRecordMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the ResearchRecord entity.
// If the ResearchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchRecordMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *ResearchRecordMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *ResearchRecordMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *ResearchRecordMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[researchrecord.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *ResearchRecordMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[researchrecord.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *ResearchRecordMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, researchrecord.FieldDurationSeconds)
}

// SetReportPath sets the "report_path" field.
func (m *ResearchRecordMutation) SetReportPath(s string) {
	m.report_path = &s
}

// ReportPath returns the value of the "report_path" field in the mutation.
func (m *ResearchRecordMutation) ReportPath() (r string, exists bool) {
	v := m.report_path
	if v == nil {
		return
	}
	return *v, true
}

// OldReportPath returns the old "report_path" field's value of the ResearchRecord entity.
// If the ResearchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchRecordMutation) OldReportPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportPath: %w", err)
	}
	return oldValue.ReportPath, nil
}

// ClearReportPath clears the value of the "report_path" field.
func (m *ResearchRecordMutation) ClearReportPath() {
	m.report_path = nil
	m.clearedFields[researchrecord.FieldReportPath] = struct{}{}
}

// ReportPathCleared returns if the "report_path" field was cleared in this mutation.
func (m *ResearchRecordMutation) ReportPathCleared() bool {
	_, ok := m.clearedFields[researchrecord.FieldReportPath]
	return ok
}

// ResetReportPath resets all changes to the "report_path" field.
func (m *ResearchRecordMutation) ResetReportPath() {
	m.report_path = nil
	delete(m.clearedFields, researchrecord.FieldReportPath)
}

// SetResearchMeta sets the "research_meta" field.
func (m *ResearchRecordMutation) SetResearchMeta(value map[string]interface{}) {
	m.research_meta = &value
}

// ResearchMeta returns the value of the "research_meta" field in the mutation.
func (m *ResearchRecordMutation) ResearchMeta() (r map[string]interface{}, exists bool) {
	v := m.research_meta
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchMeta returns the old "research_meta" field's value of the ResearchRecord entity.
// If the ResearchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchRecordMutation) OldResearchMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchMeta: %w", err)
	}
	return oldValue.ResearchMeta, nil
}

// ClearResearchMeta clears the value of the "research_meta" field.
func (m *ResearchRecordMutation) ClearResearchMeta() {
	m.research_meta = nil
	m.clearedFields[researchrecord.FieldResearchMeta] = struct{}{}
}

// ResearchMetaCleared returns if the "research_meta" field was cleared in this mutation.
func (m *ResearchRecordMutation) ResearchMetaCleared() bool {
	_, ok := m.clearedFields[researchrecord.FieldResearchMeta]
	return ok
}

// ResetResearchMeta resets all changes to the "research_meta" field.
func (m *ResearchRecordMutation) ResetResearchMeta() {
	m.research_meta = nil
	delete(m.clearedFields, researchrecord.FieldResearchMeta)
}

// SetProgressLog sets the "progress_log" field.
func (m *ResearchRecordMutation) SetProgressLog(value []map[string]interface{}) {
	m.progress_log = &value
	m.appendprogress_log = nil
}

// ProgressLog returns the value of the "progress_log" field in the mutation.
func (m *ResearchRecordMutation) ProgressLog() (r []map[string]interface{}, exists bool) {
	v := m.progress_log
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressLog returns the old "progress_log" field's value of the ResearchRecord entity.
// If the ResearchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchRecordMutation) OldProgressLog(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressLog: %w", err)
	}
	return oldValue.ProgressLog, nil
}

// AppendProgressLog adds value to the "progress_log" field.
func (m *ResearchRecordMutation) AppendProgressLog(value []map[string]interface{}) {
	m.appendprogress_log = append(m.appendprogress_log, value...)
}

// AppendedProgressLog returns the list of values that were appended to the "progress_log" field in this mutation.
func (m *ResearchRecordMutation) AppendedProgressLog() ([]map[string]interface{}, bool) {
	if len(m.appendprogress_log) == 0 {
		return nil, false
	}
	return m.appendprogress_log, true
}

// ClearProgressLog clears the value of the "progress_log" field.
func (m *ResearchRecordMutation) ClearProgressLog() {
	m.progress_log = nil
	m.appendprogress_log = nil
	m.clearedFields[researchrecord.FieldProgressLog] = struct{}{}
}

// ProgressLogCleared returns if the "progress_log" field was cleared in this mutation.
func (m *ResearchRecordMutation) ProgressLogCleared() bool {
	_, ok := m.clearedFields[researchrecord.FieldProgressLog]
	return ok
}

// ResetProgressLog resets all changes to the "progress_log" field.
func (m *ResearchRecordMutation) ResetProgressLog() {
	m.progress_log = nil
	m.appendprogress_log = nil
	delete(m.clearedFields, researchrecord.FieldProgressLog)
}

// AddLogIDs adds the "logs" edge to the ResearchLog entity by ids.
func (m *ResearchRecordMutation) AddLogIDs(ids ...int) {
	if m.logs == nil {
		m.logs = make(map[int]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the ResearchLog entity.
func (m *ResearchRecordMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the ResearchLog entity was cleared.
func (m *ResearchRecordMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the ResearchLog entity by IDs.
func (m *ResearchRecordMutation) RemoveLogIDs(ids ...int) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the ResearchLog entity.
func (m *ResearchRecordMutation) RemovedLogsIDs() (ids []int) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *ResearchRecordMutation) LogsIDs() (ids []int) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *ResearchRecordMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// AddResourceIDs adds the "resources" edge to the ResearchResource entity by ids.
func (m *ResearchRecordMutation) AddResourceIDs(ids ...int) {
	if m.resources == nil {
		m.resources = make(map[int]struct{})
	}
	for i := range ids {
		m.resources[ids[i]] = struct{}{}
	}
}

// ClearResources clears the "resources" edge to the ResearchResource entity.
func (m *ResearchRecordMutation) ClearResources() {
	m.clearedresources = true
}

// ResourcesCleared reports if the "resources" edge to the ResearchResource entity was cleared.
func (m *ResearchRecordMutation) ResourcesCleared() bool {
	return m.clearedresources
}

// RemoveResourceIDs removes the "resources" edge to the ResearchResource entity by IDs.
func (m *ResearchRecordMutation) RemoveResourceIDs(ids ...int) {
	if m.removedresources == nil {
		m.removedresources = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.resources, ids[i])
		m.removedresources[ids[i]] = struct{}{}
	}
}

// RemovedResources returns the removed IDs of the "resources" edge to the ResearchResource entity.
func (m *ResearchRecordMutation) RemovedResourcesIDs() (ids []int) {
	for id := range m.removedresources {
		ids = append(ids, id)
	}
	return
}

// ResourcesIDs returns the "resources" edge IDs in the mutation.
func (m *ResearchRecordMutation) ResourcesIDs() (ids []int) {
	for id := range m.resources {
		ids = append(ids, id)
	}
	return
}

// ResetResources resets all changes to the "resources" edge.
func (m *ResearchRecordMutation) ResetResources() {
	m.resources = nil
	m.clearedresources = false
	m.removedresources = nil
}

// SetStrategyID sets the "strategy" edge to the ResearchStrategy entity by id.
func (m *ResearchRecordMutation) SetStrategyID(id int) {
	m.strategy = &id
}

// ClearStrategy clears the "strategy" edge to the ResearchStrategy entity.
func (m *ResearchRecordMutation) ClearStrategy() {
	m.clearedstrategy = true
}

// StrategyCleared reports if the "strategy" edge to the ResearchStrategy entity was cleared.
func (m *ResearchRecordMutation) StrategyCleared() bool {
	return m.clearedstrategy
}

// StrategyID returns the "strategy" edge ID in the mutation.
func (m *ResearchRecordMutation) StrategyID() (id int, exists bool) {
	if m.strategy != nil {
		return *m.strategy, true
	}
	return
}

// StrategyIDs returns the "strategy" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StrategyID instead. It exists only for internal usage by the builders.
func (m *ResearchRecordMutation) StrategyIDs() (ids []int) {
	if id := m.strategy; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStrategy resets all changes to the "strategy" edge.
func (m *ResearchRecordMutation) ResetStrategy() {
	m.strategy = nil
	m.clearedstrategy = false
}

// AddTokenUsageIDs adds the "token_usages" edge to the TokenUsage entity by ids.
func (m *ResearchRecordMutation) AddTokenUsageIDs(ids ...int) {
	if m.token_usages == nil {
		m.token_usages = make(map[int]struct{})
	}
	for i := range ids {
		m.token_usages[ids[i]] = struct{}{}
	}
}

// ClearTokenUsages clears the "token_usages" edge to the TokenUsage entity.
func (m *ResearchRecordMutation) ClearTokenUsages() {
	m.clearedtoken_usages = true
}

// TokenUsagesCleared reports if the "token_usages" edge to the TokenUsage entity was cleared.
func (m *ResearchRecordMutation) TokenUsagesCleared() bool {
	return m.clearedtoken_usages
}

// RemoveTokenUsageIDs removes the "token_usages" edge to the TokenUsage entity by IDs.
func (m *ResearchRecordMutation) RemoveTokenUsageIDs(ids ...int) {
	if m.removedtoken_usages == nil {
		m.removedtoken_usages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.token_usages, ids[i])
		m.removedtoken_usages[ids[i]] = struct{}{}
	}
}

// RemovedTokenUsages returns the removed IDs of the "token_usages" edge to the TokenUsage entity.
func (m *ResearchRecordMutation) RemovedTokenUsagesIDs() (ids []int) {
	for id := range m.removedtoken_usages {
		ids = append(ids, id)
	}
	return
}

// TokenUsagesIDs returns the "token_usages" edge IDs in the mutation.
func (m *ResearchRecordMutation) TokenUsagesIDs() (ids []int) {
	for id := range m.token_usages {
		ids = append(ids, id)
	}
	return
}

// ResetTokenUsages resets all changes to the "token_usages" edge.
func (m *ResearchRecordMutation) ResetTokenUsages() {
	m.token_usages = nil
	m.clearedtoken_usages = false
	m.removedtoken_usages = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ResearchRecordMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ResearchRecordMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ResearchRecordMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ResearchRecordMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ResearchRecordMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ResearchRecordMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ResearchRecordMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the ResearchRecordMutation builder.
func (m *ResearchRecordMutation) Where(ps ...predicate.ResearchRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchRecord).
func (m *ResearchRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.query != nil {
		fields = append(fields, researchrecord.FieldQuery)
	}
	if m.mode != nil {
		fields = append(fields, researchrecord.FieldMode)
	}
	if m.status != nil {
		fields = append(fields, researchrecord.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, researchrecord.FieldProgress)
	}
	if m.created_at != nil {
		fields = append(fields, researchrecord.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, researchrecord.FieldCompletedAt)
	}
	if m.duration_seconds != nil {
		fields = append(fields, researchrecord.FieldDurationSeconds)
	}
	if m.report_path != nil {
		fields = append(fields, researchrecord.FieldReportPath)
	}
	if m.research_meta != nil {
		fields = append(fields, researchrecord.FieldResearchMeta)
	}
	if m.progress_log != nil {
		fields = append(fields, researchrecord.FieldProgressLog)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchrecord.FieldQuery:
		return m.Query()
	case researchrecord.FieldMode:
		return m.Mode()
	case researchrecord.FieldStatus:
		return m.Status()
	case researchrecord.FieldProgress:
		return m.Progress()
	case researchrecord.FieldCreatedAt:
		return m.CreatedAt()
	case researchrecord.FieldCompletedAt:
		return m.CompletedAt()
	case researchrecord.FieldDurationSeconds:
		return m.DurationSeconds()
	case researchrecord.FieldReportPath:
		return m.ReportPath()
	case researchrecord.FieldResearchMeta:
		return m.ResearchMeta()
	case researchrecord.FieldProgressLog:
		return m.ProgressLog()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchrecord.FieldQuery:
		return m.OldQuery(ctx)
	case researchrecord.FieldMode:
		return m.OldMode(ctx)
	case researchrecord.FieldStatus:
		return m.OldStatus(ctx)
	case researchrecord.FieldProgress:
		return m.OldProgress(ctx)
	case researchrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchrecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case researchrecord.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case researchrecord.FieldReportPath:
		return m.OldReportPath(ctx)
	case researchrecord.FieldResearchMeta:
		return m.OldResearchMeta(ctx)
	case researchrecord.FieldProgressLog:
		return m.OldProgressLog(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchrecord.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case researchrecord.FieldMode:
		v, ok := value.(researchrecord.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case researchrecord.FieldStatus:
		v, ok := value.(researchrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case researchrecord.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case researchrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchrecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case researchrecord.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case researchrecord.FieldReportPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportPath(v)
		return nil
	case researchrecord.FieldResearchMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchMeta(v)
		return nil
	case researchrecord.FieldProgressLog:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressLog(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchRecordMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, researchrecord.FieldProgress)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, researchrecord.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchrecord.FieldProgress:
		return m.AddedProgress()
	case researchrecord.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchrecord.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case researchrecord.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchrecord.FieldCompletedAt) {
		fields = append(fields, researchrecord.FieldCompletedAt)
	}
	if m.FieldCleared(researchrecord.FieldDurationSeconds) {
		fields = append(fields, researchrecord.FieldDurationSeconds)
	}
	if m.FieldCleared(researchrecord.FieldReportPath) {
		fields = append(fields, researchrecord.FieldReportPath)
	}
	if m.FieldCleared(researchrecord.FieldResearchMeta) {
		fields = append(fields, researchrecord.FieldResearchMeta)
	}
	if m.FieldCleared(researchrecord.FieldProgressLog) {
		fields = append(fields, researchrecord.FieldProgressLog)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchRecordMutation) ClearField(name string) error {
	switch name {
	case researchrecord.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case researchrecord.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case researchrecord.FieldReportPath:
		m.ClearReportPath()
		return nil
	case researchrecord.FieldResearchMeta:
		m.ClearResearchMeta()
		return nil
	case researchrecord.FieldProgressLog:
		m.ClearProgressLog()
		return nil
	}
	return fmt.Errorf("unknown ResearchRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchRecordMutation) ResetField(name string) error {
	switch name {
	case researchrecord.FieldQuery:
		m.ResetQuery()
		return nil
	case researchrecord.FieldMode:
		m.ResetMode()
		return nil
	case researchrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case researchrecord.FieldProgress:
		m.ResetProgress()
		return nil
	case researchrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchrecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case researchrecord.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case researchrecord.FieldReportPath:
		m.ResetReportPath()
		return nil
	case researchrecord.FieldResearchMeta:
		m.ResetResearchMeta()
		return nil
	case researchrecord.FieldProgressLog:
		m.ResetProgressLog()
		return nil
	}
	return fmt.Errorf("unknown ResearchRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.logs != nil {
		edges = append(edges, researchrecord.EdgeLogs)
	}
	if m.resources != nil {
		edges = append(edges, researchrecord.EdgeResources)
	}
	if m.strategy != nil {
		edges = append(edges, researchrecord.EdgeStrategy)
	}
	if m.token_usages != nil {
		edges = append(edges, researchrecord.EdgeTokenUsages)
	}
	if m.events != nil {
		edges = append(edges, researchrecord.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchrecord.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	case researchrecord.EdgeResources:
		ids := make([]ent.Value, 0, len(m.resources))
		for id := range m.resources {
			ids = append(ids, id)
		}
		return ids
	case researchrecord.EdgeStrategy:
		if id := m.strategy; id != nil {
			return []ent.Value{*id}
		}
	case researchrecord.EdgeTokenUsages:
		ids := make([]ent.Value, 0, len(m.token_usages))
		for id := range m.token_usages {
			ids = append(ids, id)
		}
		return ids
	case researchrecord.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedlogs != nil {
		edges = append(edges, researchrecord.EdgeLogs)
	}
	if m.removedresources != nil {
		edges = append(edges, researchrecord.EdgeResources)
	}
	if m.removedtoken_usages != nil {
		edges = append(edges, researchrecord.EdgeTokenUsages)
	}
	if m.removedevents != nil {
		edges = append(edges, researchrecord.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchRecordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case researchrecord.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	case researchrecord.EdgeResources:
		ids := make([]ent.Value, 0, len(m.removedresources))
		for id := range m.removedresources {
			ids = append(ids, id)
		}
		return ids
	case researchrecord.EdgeTokenUsages:
		ids := make([]ent.Value, 0, len(m.removedtoken_usages))
		for id := range m.removedtoken_usages {
			ids = append(ids, id)
		}
		return ids
	case researchrecord.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedlogs {
		edges = append(edges, researchrecord.EdgeLogs)
	}
	if m.clearedresources {
		edges = append(edges, researchrecord.EdgeResources)
	}
	if m.clearedstrategy {
		edges = append(edges, researchrecord.EdgeStrategy)
	}
	if m.clearedtoken_usages {
		edges = append(edges, researchrecord.EdgeTokenUsages)
	}
	if m.clearedevents {
		edges = append(edges, researchrecord.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case researchrecord.EdgeLogs:
		return m.clearedlogs
	case researchrecord.EdgeResources:
		return m.clearedresources
	case researchrecord.EdgeStrategy:
		return m.clearedstrategy
	case researchrecord.EdgeTokenUsages:
		return m.clearedtoken_usages
	case researchrecord.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchRecordMutation) ClearEdge(name string) error {
	switch name {
	case researchrecord.EdgeStrategy:
		m.ClearStrategy()
		return nil
	}
	return fmt.Errorf("unknown ResearchRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchRecordMutation) ResetEdge(name string) error {
	switch name {
	case researchrecord.EdgeLogs:
		m.ResetLogs()
		return nil
	case researchrecord.EdgeResources:
		m.ResetResources()
		return nil
	case researchrecord.EdgeStrategy:
		m.ResetStrategy()
		return nil
	case researchrecord.EdgeTokenUsages:
		m.ResetTokenUsages()
		return nil
	case researchrecord.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown ResearchRecord edge %s", name)
}

// ResearchResourceMutation represents an operation that mutates the ResearchResource nodes in the graph.
type ResearchResourceMutation struct {
	config
	op                Op
	typ               string
	id                *int
	title             *string
	url               *string
	content_preview   *string
	source_type       *string
	citation_index    *int
	addcitation_index *int
	metadata          *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	research          *int
	clearedresearch   bool
	done              bool
	oldValue          func(context.Context) (*ResearchResource, error)
	predicates        []predicate.ResearchResource
}

var _ ent.Mutation = (*ResearchResourceMutation)(nil)

// researchresourceOption allows management of the mutation configuration using functional options.
type researchresourceOption func(*ResearchResourceMutation)

// newResearchResourceMutation creates new mutation for the ResearchResource entity.
func newResearchResourceMutation(c config, op Op, opts ...researchresourceOption) *ResearchResourceMutation {
	m := &ResearchResourceMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchResource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchResourceID sets the ID field of the mutation.
func withResearchResourceID(id int) researchresourceOption {
	return func(m *ResearchResourceMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchResource
		)
		m.oldValue = func(ctx context.Context) (*ResearchResource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchResource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchResource sets the old ResearchResource of the mutation.
func withResearchResource(node *ResearchResource) researchresourceOption {
	return func(m *ResearchResourceMutation) {
		m.oldValue = func(context.Context) (*ResearchResource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchResourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchResourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchResourceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchResourceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchResource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResearchID sets the "research_id" field.
func (m *ResearchResourceMutation) SetResearchID(i int) {
	m.research = &i
}

// ResearchID returns the value of the "research_id" field in the mutation.
func (m *ResearchResourceMutation) ResearchID() (r int, exists bool) {
	v := m.research
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchID returns the old "research_id" field's value of the ResearchResource entity.
// If the ResearchResource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchResourceMutation) OldResearchID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchID: %w", err)
	}
	return oldValue.ResearchID, nil
}

// ResetResearchID resets all changes to the "research_id" field.
func (m *ResearchResourceMutation) ResetResearchID() {
	m.research = nil
}

// SetTitle sets the "title" field.
func (m *ResearchResourceMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ResearchResourceMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ResearchResource entity.
// If the ResearchResource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchResourceMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ResearchResourceMutation) ResetTitle() {
	m.title = nil
}

// SetURL sets the "url" field.
func (m *ResearchResourceMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ResearchResourceMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ResearchResource entity.
// If the ResearchResource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchResourceMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ResearchResourceMutation) ResetURL() {
	m.url = nil
}

// SetContentPreview sets the "content_preview" field.
func (m *ResearchResourceMutation) SetContentPreview(s string) {
	m.content_preview = &s
}

// ContentPreview returns the value of the "content_preview" field in the mutation.
func (m *ResearchResourceMutation) ContentPreview() (r string, exists bool) {
	v := m.content_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldContentPreview returns the old "content_preview" field's value of the ResearchResource entity.
// If the ResearchResource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchResourceMutation) OldContentPreview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentPreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentPreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentPreview: %w", err)
	}
	return oldValue.ContentPreview, nil
}

// ClearContentPreview clears the value of the "content_preview" field.
func (m *ResearchResourceMutation) ClearContentPreview() {
	m.content_preview = nil
	m.clearedFields[researchresource.FieldContentPreview] = struct{}{}
}

// ContentPreviewCleared returns if the "content_preview" field was cleared in this mutation.
func (m *ResearchResourceMutation) ContentPreviewCleared() bool {
	_, ok := m.clearedFields[researchresource.FieldContentPreview]
	return ok
}

// ResetContentPreview resets all changes to the "content_preview" field.
func (m *ResearchResourceMutation) ResetContentPreview() {
	m.content_preview = nil
	delete(m.clearedFields, researchresource.FieldContentPreview)
}

// SetSourceType sets the "source_type" field.
func (m *ResearchResourceMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *ResearchResourceMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the ResearchResource entity.
// If the ResearchResource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchResourceMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *ResearchResourceMutation) ResetSourceType() {
	m.source_type = nil
}

// SetCitationIndex sets the "citation_index" field.
func (m *ResearchResourceMutation) SetCitationIndex(i int) {
	m.citation_index = &i
	m.addcitation_index = nil
}

// CitationIndex returns the value of the "citation_index" field in the mutation.
func (m *ResearchResourceMutation) CitationIndex() (r int, exists bool) {
	v := m.citation_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCitationIndex returns the old "citation_index" field's value of the ResearchResource entity.
// If the ResearchResource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchResourceMutation) OldCitationIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitationIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitationIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitationIndex: %w", err)
	}
	return oldValue.CitationIndex, nil
}

// AddCitationIndex adds i to the "citation_index" field.
func (m *ResearchResourceMutation) AddCitationIndex(i int) {
	if m.addcitation_index != nil {
		*m.addcitation_index += i
	} else {
		m.addcitation_index = &i
	}
}

// AddedCitationIndex returns the value that was added to the "citation_index" field in this mutation.
func (m *ResearchResourceMutation) AddedCitationIndex() (r int, exists bool) {
	v := m.addcitation_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearCitationIndex clears the value of the "citation_index" field.
func (m *ResearchResourceMutation) ClearCitationIndex() {
	m.citation_index = nil
	m.addcitation_index = nil
	m.clearedFields[researchresource.FieldCitationIndex] = struct{}{}
}

// CitationIndexCleared returns if the "citation_index" field was cleared in this mutation.
func (m *ResearchResourceMutation) CitationIndexCleared() bool {
	_, ok := m.clearedFields[researchresource.FieldCitationIndex]
	return ok
}

// ResetCitationIndex resets all changes to the "citation_index" field.
func (m *ResearchResourceMutation) ResetCitationIndex() {
	m.citation_index = nil
	m.addcitation_index = nil
	delete(m.clearedFields, researchresource.FieldCitationIndex)
}

// SetMetadata sets the "metadata" field.
func (m *ResearchResourceMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ResearchResourceMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ResearchResource entity.
// If the ResearchResource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchResourceMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ResearchResourceMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[researchresource.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ResearchResourceMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[researchresource.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ResearchResourceMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, researchresource.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchResourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchResourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchResource entity.
// If the ResearchResource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchResourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchResourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearResearch clears the "research" edge to the ResearchRecord entity.
func (m *ResearchResourceMutation) ClearResearch() {
	m.clearedresearch = true
	m.clearedFields[researchresource.FieldResearchID] = struct{}{}
}

// ResearchCleared reports if the "research" edge to the ResearchRecord entity was cleared.
func (m *ResearchResourceMutation) ResearchCleared() bool {
	return m.clearedresearch
}

// ResearchIDs returns the "research" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResearchID instead. It exists only for internal usage by the builders.
func (m *ResearchResourceMutation) ResearchIDs() (ids []int) {
	if id := m.research; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResearch resets all changes to the "research" edge.
func (m *ResearchResourceMutation) ResetResearch() {
	m.research = nil
	m.clearedresearch = false
}

// Where appends a list predicates to the ResearchResourceMutation builder.
func (m *ResearchResourceMutation) Where(ps ...predicate.ResearchResource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchResourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchResourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchResource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchResourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchResourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchResource).
func (m *ResearchResourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchResourceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.research != nil {
		fields = append(fields, researchresource.FieldResearchID)
	}
	if m.title != nil {
		fields = append(fields, researchresource.FieldTitle)
	}
	if m.url != nil {
		fields = append(fields, researchresource.FieldURL)
	}
	if m.content_preview != nil {
		fields = append(fields, researchresource.FieldContentPreview)
	}
	if m.source_type != nil {
		fields = append(fields, researchresource.FieldSourceType)
	}
	if m.citation_index != nil {
		fields = append(fields, researchresource.FieldCitationIndex)
	}
	if m.metadata != nil {
		fields = append(fields, researchresource.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, researchresource.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchResourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchresource.FieldResearchID:
		return m.ResearchID()
	case researchresource.FieldTitle:
		return m.Title()
	case researchresource.FieldURL:
		return m.URL()
	case researchresource.FieldContentPreview:
		return m.ContentPreview()
	case researchresource.FieldSourceType:
		return m.SourceType()
	case researchresource.FieldCitationIndex:
		return m.CitationIndex()
	case researchresource.FieldMetadata:
		return m.Metadata()
	case researchresource.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchResourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchresource.FieldResearchID:
		return m.OldResearchID(ctx)
	case researchresource.FieldTitle:
		return m.OldTitle(ctx)
	case researchresource.FieldURL:
		return m.OldURL(ctx)
	case researchresource.FieldContentPreview:
		return m.OldContentPreview(ctx)
	case researchresource.FieldSourceType:
		return m.OldSourceType(ctx)
	case researchresource.FieldCitationIndex:
		return m.OldCitationIndex(ctx)
	case researchresource.FieldMetadata:
		return m.OldMetadata(ctx)
	case researchresource.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchResource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchResourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchresource.FieldResearchID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchID(v)
		return nil
	case researchresource.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case researchresource.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case researchresource.FieldContentPreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentPreview(v)
		return nil
	case researchresource.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case researchresource.FieldCitationIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitationIndex(v)
		return nil
	case researchresource.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case researchresource.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchResource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchResourceMutation) AddedFields() []string {
	var fields []string
	if m.addcitation_index != nil {
		fields = append(fields, researchresource.FieldCitationIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchResourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchresource.FieldCitationIndex:
		return m.AddedCitationIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchResourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchresource.FieldCitationIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCitationIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchResource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchResourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchresource.FieldContentPreview) {
		fields = append(fields, researchresource.FieldContentPreview)
	}
	if m.FieldCleared(researchresource.FieldCitationIndex) {
		fields = append(fields, researchresource.FieldCitationIndex)
	}
	if m.FieldCleared(researchresource.FieldMetadata) {
		fields = append(fields, researchresource.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchResourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchResourceMutation) ClearField(name string) error {
	switch name {
	case researchresource.FieldContentPreview:
		m.ClearContentPreview()
		return nil
	case researchresource.FieldCitationIndex:
		m.ClearCitationIndex()
		return nil
	case researchresource.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ResearchResource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchResourceMutation) ResetField(name string) error {
	switch name {
	case researchresource.FieldResearchID:
		m.ResetResearchID()
		return nil
	case researchresource.FieldTitle:
		m.ResetTitle()
		return nil
	case researchresource.FieldURL:
		m.ResetURL()
		return nil
	case researchresource.FieldContentPreview:
		m.ResetContentPreview()
		return nil
	case researchresource.FieldSourceType:
		m.ResetSourceType()
		return nil
	case researchresource.FieldCitationIndex:
		m.ResetCitationIndex()
		return nil
	case researchresource.FieldMetadata:
		m.ResetMetadata()
		return nil
	case researchresource.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchResource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchResourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.research != nil {
		edges = append(edges, researchresource.EdgeResearch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchResourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchresource.EdgeResearch:
		if id := m.research; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchResourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchResourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchResourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresearch {
		edges = append(edges, researchresource.EdgeResearch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchResourceMutation) EdgeCleared(name string) bool {
	switch name {
	case researchresource.EdgeResearch:
		return m.clearedresearch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchResourceMutation) ClearEdge(name string) error {
	switch name {
	case researchresource.EdgeResearch:
		m.ClearResearch()
		return nil
	}
	return fmt.Errorf("unknown ResearchResource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchResourceMutation) ResetEdge(name string) error {
	switch name {
	case researchresource.EdgeResearch:
		m.ResetResearch()
		return nil
	}
	return fmt.Errorf("unknown ResearchResource edge %s", name)
}

// ResearchStrategyMutation represents an operation that mutates the ResearchStrategy nodes in the graph.
type ResearchStrategyMutation struct {
	config
	op              Op
	typ             string
	id              *int
	strategy_name   *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	research        *int
	clearedresearch bool
	done            bool
	oldValue        func(context.Context) (*ResearchStrategy, error)
	predicates      []predicate.ResearchStrategy
}

var _ ent.Mutation = (*ResearchStrategyMutation)(nil)

// researchstrategyOption allows management of the mutation configuration using functional options.
type researchstrategyOption func(*ResearchStrategyMutation)

// newResearchStrategyMutation creates new mutation for the ResearchStrategy entity.
func newResearchStrategyMutation(c config, op Op, opts ...researchstrategyOption) *ResearchStrategyMutation {
	m := &ResearchStrategyMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchStrategy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchStrategyID sets the ID field of the mutation.
func withResearchStrategyID(id int) researchstrategyOption {
	return func(m *ResearchStrategyMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchStrategy
		)
		m.oldValue = func(ctx context.Context) (*ResearchStrategy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchStrategy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchStrategy sets the old ResearchStrategy of the mutation.
func withResearchStrategy(node *ResearchStrategy) researchstrategyOption {
	return func(m *ResearchStrategyMutation) {
		m.oldValue = func(context.Context) (*ResearchStrategy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchStrategyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchStrategyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchStrategyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchStrategyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchStrategy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResearchID sets the "research_id" field.
func (m *ResearchStrategyMutation) SetResearchID(i int) {
	m.research = &i
}

// ResearchID returns the value of the "research_id" field in the mutation.
func (m *ResearchStrategyMutation) ResearchID() (r int, exists bool) {
	v := m.research
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchID returns the old "research_id" field's value of the ResearchStrategy entity.
// If the ResearchStrategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchStrategyMutation) OldResearchID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchID: %w", err)
	}
	return oldValue.ResearchID, nil
}

// ResetResearchID resets all changes to the "research_id" field.
func (m *ResearchStrategyMutation) ResetResearchID() {
	m.research = nil
}

// SetStrategyName sets the "strategy_name" field.
func (m *ResearchStrategyMutation) SetStrategyName(s string) {
	m.strategy_name = &s
}

// StrategyName returns the value of the "strategy_name" field in the mutation.
func (m *ResearchStrategyMutation) StrategyName() (r string, exists bool) {
	v := m.strategy_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategyName returns the old "strategy_name" field's value of the ResearchStrategy entity.
// If the ResearchStrategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchStrategyMutation) OldStrategyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategyName: %w", err)
	}
	return oldValue.StrategyName, nil
}

// ResetStrategyName resets all changes to the "strategy_name" field.
func (m *ResearchStrategyMutation) ResetStrategyName() {
	m.strategy_name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchStrategyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchStrategyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchStrategy entity.
// If the ResearchStrategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchStrategyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchStrategyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearResearch clears the "research" edge to the ResearchRecord entity.
func (m *ResearchStrategyMutation) ClearResearch() {
	m.clearedresearch = true
	m.clearedFields[researchstrategy.FieldResearchID] = struct{}{}
}

// ResearchCleared reports if the "research" edge to the ResearchRecord entity was cleared.
func (m *ResearchStrategyMutation) ResearchCleared() bool {
	return m.clearedresearch
}

// ResearchIDs returns the "research" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResearchID instead. It exists only for internal usage by the builders.
func (m *ResearchStrategyMutation) ResearchIDs() (ids []int) {
	if id := m.research; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResearch resets all changes to the "research" edge.
func (m *ResearchStrategyMutation) ResetResearch() {
	m.research = nil
	m.clearedresearch = false
}

// Where appends a list predicates to the ResearchStrategyMutation builder.
func (m *ResearchStrategyMutation) Where(ps ...predicate.ResearchStrategy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchStrategyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchStrategyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchStrategy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchStrategyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchStrategyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchStrategy).
func (m *ResearchStrategyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchStrategyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.research != nil {
		fields = append(fields, researchstrategy.FieldResearchID)
	}
	if m.strategy_name != nil {
		fields = append(fields, researchstrategy.FieldStrategyName)
	}
	if m.created_at != nil {
		fields = append(fields, researchstrategy.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchStrategyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchstrategy.FieldResearchID:
		return m.ResearchID()
	case researchstrategy.FieldStrategyName:
		return m.StrategyName()
	case researchstrategy.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchStrategyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchstrategy.FieldResearchID:
		return m.OldResearchID(ctx)
	case researchstrategy.FieldStrategyName:
		return m.OldStrategyName(ctx)
	case researchstrategy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchStrategy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchStrategyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchstrategy.FieldResearchID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchID(v)
		return nil
	case researchstrategy.FieldStrategyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategyName(v)
		return nil
	case researchstrategy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchStrategy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchStrategyMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchStrategyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchStrategyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResearchStrategy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchStrategyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchStrategyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchStrategyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ResearchStrategy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchStrategyMutation) ResetField(name string) error {
	switch name {
	case researchstrategy.FieldResearchID:
		m.ResetResearchID()
		return nil
	case researchstrategy.FieldStrategyName:
		m.ResetStrategyName()
		return nil
	case researchstrategy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchStrategy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchStrategyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.research != nil {
		edges = append(edges, researchstrategy.EdgeResearch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchStrategyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchstrategy.EdgeResearch:
		if id := m.research; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchStrategyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchStrategyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchStrategyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresearch {
		edges = append(edges, researchstrategy.EdgeResearch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchStrategyMutation) EdgeCleared(name string) bool {
	switch name {
	case researchstrategy.EdgeResearch:
		return m.clearedresearch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchStrategyMutation) ClearEdge(name string) error {
	switch name {
	case researchstrategy.EdgeResearch:
		m.ClearResearch()
		return nil
	}
	return fmt.Errorf("unknown ResearchStrategy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchStrategyMutation) ResetEdge(name string) error {
	switch name {
	case researchstrategy.EdgeResearch:
		m.ResetResearch()
		return nil
	}
	return fmt.Errorf("unknown ResearchStrategy edge %s", name)
}

// SettingMutation represents an operation that mutates the Setting nodes in the graph.
type SettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *map[string]interface{}
	category      *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Setting, error)
	predicates    []predicate.Setting
}

var _ ent.Mutation = (*SettingMutation)(nil)

// settingOption allows management of the mutation configuration using functional options.
type settingOption func(*SettingMutation)

// newSettingMutation creates new mutation for the Setting entity.
func newSettingMutation(c config, op Op, opts ...settingOption) *SettingMutation {
	m := &SettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingID sets the ID field of the mutation.
func withSettingID(id int) settingOption {
	return func(m *SettingMutation) {
		var (
			err   error
			once  sync.Once
			value *Setting
		)
		m.oldValue = func(ctx context.Context) (*Setting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Setting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSetting sets the old Setting of the mutation.
func withSetting(node *Setting) settingOption {
	return func(m *SettingMutation) {
		m.oldValue = func(context.Context) (*Setting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Setting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *SettingMutation) SetValue(value map[string]interface{}) {
	m.value = &value
}

// Value returns the value of the "value" field in the mutation.
func (m *SettingMutation) Value() (r map[string]interface{}, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SettingMutation) ResetValue() {
	m.value = nil
}

// SetCategory sets the "category" field.
func (m *SettingMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *SettingMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *SettingMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[setting.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *SettingMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[setting.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *SettingMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, setting.FieldCategory)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SettingMutation builder.
func (m *SettingMutation) Where(ps ...predicate.Setting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Setting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Setting).
func (m *SettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.key != nil {
		fields = append(fields, setting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, setting.FieldValue)
	}
	if m.category != nil {
		fields = append(fields, setting.FieldCategory)
	}
	if m.updated_at != nil {
		fields = append(fields, setting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldKey:
		return m.Key()
	case setting.FieldValue:
		return m.Value()
	case setting.FieldCategory:
		return m.Category()
	case setting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case setting.FieldKey:
		return m.OldKey(ctx)
	case setting.FieldValue:
		return m.OldValue(ctx)
	case setting.FieldCategory:
		return m.OldCategory(ctx)
	case setting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Setting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case setting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case setting.FieldValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case setting.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case setting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Setting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(setting.FieldCategory) {
		fields = append(fields, setting.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingMutation) ClearField(name string) error {
	switch name {
	case setting.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Setting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingMutation) ResetField(name string) error {
	switch name {
	case setting.FieldKey:
		m.ResetKey()
		return nil
	case setting.FieldValue:
		m.ResetValue()
		return nil
	case setting.FieldCategory:
		m.ResetCategory()
		return nil
	case setting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Setting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Setting edge %s", name)
}

// TokenUsageMutation represents an operation that mutates the TokenUsage nodes in the graph.
type TokenUsageMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	model                *string
	provider             *string
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	total_tokens         *int
	addtotal_tokens      *int
	call_kind            *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	research             *int
	clearedresearch      bool
	done                 bool
	oldValue             func(context.Context) (*TokenUsage, error)
	predicates           []predicate.TokenUsage
}

var _ ent.Mutation = (*TokenUsageMutation)(nil)

// tokenusageOption allows management of the mutation configuration using functional options.
type tokenusageOption func(*TokenUsageMutation)

// newTokenUsageMutation creates new mutation for the TokenUsage entity.
func newTokenUsageMutation(c config, op Op, opts ...tokenusageOption) *TokenUsageMutation {
	m := &TokenUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenUsageID sets the ID field of the mutation.
func withTokenUsageID(id int) tokenusageOption {
	return func(m *TokenUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenUsage
		)
		m.oldValue = func(ctx context.Context) (*TokenUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenUsage sets the old TokenUsage of the mutation.
func withTokenUsage(node *TokenUsage) tokenusageOption {
	return func(m *TokenUsageMutation) {
		m.oldValue = func(context.Context) (*TokenUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenUsageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenUsageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResearchID sets the "research_id" field.
func (m *TokenUsageMutation) SetResearchID(i int) {
	m.research = &i
}

// ResearchID returns the value of the "research_id" field in the mutation.
func (m *TokenUsageMutation) ResearchID() (r int, exists bool) {
	v := m.research
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchID returns the old "research_id" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldResearchID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchID: %w", err)
	}
	return oldValue.ResearchID, nil
}

// ResetResearchID resets all changes to the "research_id" field.
func (m *TokenUsageMutation) ResetResearchID() {
	m.research = nil
}

// SetModel sets the "model" field.
func (m *TokenUsageMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TokenUsageMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *TokenUsageMutation) ResetModel() {
	m.model = nil
}

// SetProvider sets the "provider" field.
func (m *TokenUsageMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *TokenUsageMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *TokenUsageMutation) ResetProvider() {
	m.provider = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *TokenUsageMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *TokenUsageMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *TokenUsageMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *TokenUsageMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *TokenUsageMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *TokenUsageMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *TokenUsageMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *TokenUsageMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *TokenUsageMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *TokenUsageMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *TokenUsageMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *TokenUsageMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetCallKind sets the "call_kind" field.
func (m *TokenUsageMutation) SetCallKind(s string) {
	m.call_kind = &s
}

// CallKind returns the value of the "call_kind" field in the mutation.
func (m *TokenUsageMutation) CallKind() (r string, exists bool) {
	v := m.call_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldCallKind returns the old "call_kind" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCallKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallKind: %w", err)
	}
	return oldValue.CallKind, nil
}

// ClearCallKind clears the value of the "call_kind" field.
func (m *TokenUsageMutation) ClearCallKind() {
	m.call_kind = nil
	m.clearedFields[tokenusage.FieldCallKind] = struct{}{}
}

// CallKindCleared returns if the "call_kind" field was cleared in this mutation.
func (m *TokenUsageMutation) CallKindCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldCallKind]
	return ok
}

// ResetCallKind resets all changes to the "call_kind" field.
func (m *TokenUsageMutation) ResetCallKind() {
	m.call_kind = nil
	delete(m.clearedFields, tokenusage.FieldCallKind)
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenUsageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenUsageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenUsageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearResearch clears the "research" edge to the ResearchRecord entity.
func (m *TokenUsageMutation) ClearResearch() {
	m.clearedresearch = true
	m.clearedFields[tokenusage.FieldResearchID] = struct{}{}
}

// ResearchCleared reports if the "research" edge to the ResearchRecord entity was cleared.
func (m *TokenUsageMutation) ResearchCleared() bool {
	return m.clearedresearch
}

// ResearchIDs returns the "research" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResearchID instead. It exists only for internal usage by the builders.
func (m *TokenUsageMutation) ResearchIDs() (ids []int) {
	if id := m.research; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResearch resets all changes to the "research" edge.
func (m *TokenUsageMutation) ResetResearch() {
	m.research = nil
	m.clearedresearch = false
}

// Where appends a list predicates to the TokenUsageMutation builder.
func (m *TokenUsageMutation) Where(ps ...predicate.TokenUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenUsage).
func (m *TokenUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenUsageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.research != nil {
		fields = append(fields, tokenusage.FieldResearchID)
	}
	if m.model != nil {
		fields = append(fields, tokenusage.FieldModel)
	}
	if m.provider != nil {
		fields = append(fields, tokenusage.FieldProvider)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, tokenusage.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, tokenusage.FieldCompletionTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, tokenusage.FieldTotalTokens)
	}
	if m.call_kind != nil {
		fields = append(fields, tokenusage.FieldCallKind)
	}
	if m.created_at != nil {
		fields = append(fields, tokenusage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokenusage.FieldResearchID:
		return m.ResearchID()
	case tokenusage.FieldModel:
		return m.Model()
	case tokenusage.FieldProvider:
		return m.Provider()
	case tokenusage.FieldPromptTokens:
		return m.PromptTokens()
	case tokenusage.FieldCompletionTokens:
		return m.CompletionTokens()
	case tokenusage.FieldTotalTokens:
		return m.TotalTokens()
	case tokenusage.FieldCallKind:
		return m.CallKind()
	case tokenusage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokenusage.FieldResearchID:
		return m.OldResearchID(ctx)
	case tokenusage.FieldModel:
		return m.OldModel(ctx)
	case tokenusage.FieldProvider:
		return m.OldProvider(ctx)
	case tokenusage.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case tokenusage.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case tokenusage.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case tokenusage.FieldCallKind:
		return m.OldCallKind(ctx)
	case tokenusage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokenusage.FieldResearchID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchID(v)
		return nil
	case tokenusage.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case tokenusage.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case tokenusage.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case tokenusage.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case tokenusage.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case tokenusage.FieldCallKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallKind(v)
		return nil
	case tokenusage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenUsageMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, tokenusage.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, tokenusage.FieldCompletionTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, tokenusage.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokenusage.FieldPromptTokens:
		return m.AddedPromptTokens()
	case tokenusage.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case tokenusage.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokenusage.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case tokenusage.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case tokenusage.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown TokenUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokenusage.FieldCallKind) {
		fields = append(fields, tokenusage.FieldCallKind)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenUsageMutation) ClearField(name string) error {
	switch name {
	case tokenusage.FieldCallKind:
		m.ClearCallKind()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenUsageMutation) ResetField(name string) error {
	switch name {
	case tokenusage.FieldResearchID:
		m.ResetResearchID()
		return nil
	case tokenusage.FieldModel:
		m.ResetModel()
		return nil
	case tokenusage.FieldProvider:
		m.ResetProvider()
		return nil
	case tokenusage.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case tokenusage.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case tokenusage.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case tokenusage.FieldCallKind:
		m.ResetCallKind()
		return nil
	case tokenusage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.research != nil {
		edges = append(edges, tokenusage.EdgeResearch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenUsageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tokenusage.EdgeResearch:
		if id := m.research; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresearch {
		edges = append(edges, tokenusage.EdgeResearch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenUsageMutation) EdgeCleared(name string) bool {
	switch name {
	case tokenusage.EdgeResearch:
		return m.clearedresearch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenUsageMutation) ClearEdge(name string) error {
	switch name {
	case tokenusage.EdgeResearch:
		m.ClearResearch()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenUsageMutation) ResetEdge(name string) error {
	switch name {
	case tokenusage.EdgeResearch:
		m.ResetResearch()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage edge %s", name)
}
