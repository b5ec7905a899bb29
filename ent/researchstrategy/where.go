// Code generated by ent, DO NOT EDIT.

package researchstrategy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldLTE(FieldID, id))
}

// ResearchID applies equality check predicate on the "research_id" field. It's identical to ResearchIDEQ.
func ResearchID(v int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldEQ(FieldResearchID, v))
}

// StrategyName applies equality check predicate on the "strategy_name" field. It's identical to StrategyNameEQ.
func StrategyName(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldEQ(FieldStrategyName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldEQ(FieldCreatedAt, v))
}

// ResearchIDEQ applies the EQ predicate on the "research_id" field.
func ResearchIDEQ(v int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldEQ(FieldResearchID, v))
}

// ResearchIDNEQ applies the NEQ predicate on the "research_id" field.
func ResearchIDNEQ(v int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldNEQ(FieldResearchID, v))
}

// ResearchIDIn applies the In predicate on the "research_id" field.
func ResearchIDIn(vs ...int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldIn(FieldResearchID, vs...))
}

// ResearchIDNotIn applies the NotIn predicate on the "research_id" field.
func ResearchIDNotIn(vs ...int) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldNotIn(FieldResearchID, vs...))
}

// StrategyNameEQ applies the EQ predicate on the "strategy_name" field.
func StrategyNameEQ(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldEQ(FieldStrategyName, v))
}

// StrategyNameNEQ applies the NEQ predicate on the "strategy_name" field.
func StrategyNameNEQ(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldNEQ(FieldStrategyName, v))
}

// StrategyNameIn applies the In predicate on the "strategy_name" field.
func StrategyNameIn(vs ...string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldIn(FieldStrategyName, vs...))
}

// StrategyNameNotIn applies the NotIn predicate on the "strategy_name" field.
func StrategyNameNotIn(vs ...string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldNotIn(FieldStrategyName, vs...))
}

// StrategyNameGT applies the GT predicate on the "strategy_name" field.
func StrategyNameGT(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldGT(FieldStrategyName, v))
}

// StrategyNameGTE applies the GTE predicate on the "strategy_name" field.
func StrategyNameGTE(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldGTE(FieldStrategyName, v))
}

// StrategyNameLT applies the LT predicate on the "strategy_name" field.
func StrategyNameLT(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldLT(FieldStrategyName, v))
}

// StrategyNameLTE applies the LTE predicate on the "strategy_name" field.
func StrategyNameLTE(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldLTE(FieldStrategyName, v))
}

// StrategyNameContains applies the Contains predicate on the "strategy_name" field.
func StrategyNameContains(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldContains(FieldStrategyName, v))
}

// StrategyNameHasPrefix applies the HasPrefix predicate on the "strategy_name" field.
func StrategyNameHasPrefix(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldHasPrefix(FieldStrategyName, v))
}

// StrategyNameHasSuffix applies the HasSuffix predicate on the "strategy_name" field.
func StrategyNameHasSuffix(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldHasSuffix(FieldStrategyName, v))
}

// StrategyNameEqualFold applies the EqualFold predicate on the "strategy_name" field.
func StrategyNameEqualFold(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldEqualFold(FieldStrategyName, v))
}

// StrategyNameContainsFold applies the ContainsFold predicate on the "strategy_name" field.
func StrategyNameContainsFold(v string) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldContainsFold(FieldStrategyName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.FieldLTE(FieldCreatedAt, v))
}

// HasResearch applies the HasEdge predicate on the "research" edge.
func HasResearch() predicate.ResearchStrategy {
	return predicate.ResearchStrategy(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ResearchTable, ResearchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResearchWith applies the HasEdge predicate on the "research" edge with a given conditions (other predicates).
func HasResearchWith(preds ...predicate.ResearchRecord) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(func(s *sql.Selector) {
		step := newResearchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchStrategy) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchStrategy) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchStrategy) predicate.ResearchStrategy {
	return predicate.ResearchStrategy(sql.NotPredicates(p))
}
