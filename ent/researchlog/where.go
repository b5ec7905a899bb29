// Code generated by ent, DO NOT EDIT.

package researchlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldLTE(FieldID, id))
}

// ResearchID applies equality check predicate on the "research_id" field. It's identical to ResearchIDEQ.
func ResearchID(v int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldResearchID, v))
}

// Time applies equality check predicate on the "time" field. It's identical to TimeEQ.
func Time(v time.Time) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldTime, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldMessage, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldProgress, v))
}

// ResearchIDEQ applies the EQ predicate on the "research_id" field.
func ResearchIDEQ(v int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldResearchID, v))
}

// ResearchIDNEQ applies the NEQ predicate on the "research_id" field.
func ResearchIDNEQ(v int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNEQ(FieldResearchID, v))
}

// ResearchIDIn applies the In predicate on the "research_id" field.
func ResearchIDIn(vs ...int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldIn(FieldResearchID, vs...))
}

// ResearchIDNotIn applies the NotIn predicate on the "research_id" field.
func ResearchIDNotIn(vs ...int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNotIn(FieldResearchID, vs...))
}

// TimeEQ applies the EQ predicate on the "time" field.
func TimeEQ(v time.Time) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldTime, v))
}

// TimeNEQ applies the NEQ predicate on the "time" field.
func TimeNEQ(v time.Time) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNEQ(FieldTime, v))
}

// TimeIn applies the In predicate on the "time" field.
func TimeIn(vs ...time.Time) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldIn(FieldTime, vs...))
}

// TimeNotIn applies the NotIn predicate on the "time" field.
func TimeNotIn(vs ...time.Time) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNotIn(FieldTime, vs...))
}

// TimeGT applies the GT predicate on the "time" field.
func TimeGT(v time.Time) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldGT(FieldTime, v))
}

// TimeGTE applies the GTE predicate on the "time" field.
func TimeGTE(v time.Time) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldGTE(FieldTime, v))
}

// TimeLT applies the LT predicate on the "time" field.
func TimeLT(v time.Time) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldLT(FieldTime, v))
}

// TimeLTE applies the LTE predicate on the "time" field.
func TimeLTE(v time.Time) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldLTE(FieldTime, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldContainsFold(FieldMessage, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNotIn(FieldLevel, vs...))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldLTE(FieldProgress, v))
}

// ProgressIsNil applies the IsNil predicate on the "progress" field.
func ProgressIsNil() predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldIsNull(FieldProgress))
}

// ProgressNotNil applies the NotNil predicate on the "progress" field.
func ProgressNotNil() predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNotNull(FieldProgress))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ResearchLog {
	return predicate.ResearchLog(sql.FieldNotNull(FieldMetadata))
}

// HasResearch applies the HasEdge predicate on the "research" edge.
func HasResearch() predicate.ResearchLog {
	return predicate.ResearchLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ResearchTable, ResearchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResearchWith applies the HasEdge predicate on the "research" edge with a given conditions (other predicates).
func HasResearchWith(preds ...predicate.ResearchRecord) predicate.ResearchLog {
	return predicate.ResearchLog(func(s *sql.Selector) {
		step := newResearchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchLog) predicate.ResearchLog {
	return predicate.ResearchLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchLog) predicate.ResearchLog {
	return predicate.ResearchLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchLog) predicate.ResearchLog {
	return predicate.ResearchLog(sql.NotPredicates(p))
}
