// Code generated by ent, DO NOT EDIT.

package tokenusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldID, id))
}

// ResearchID applies equality check predicate on the "research_id" field. It's identical to ResearchIDEQ.
func ResearchID(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldResearchID, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldModel, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldProvider, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCompletionTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldTotalTokens, v))
}

// CallKind applies equality check predicate on the "call_kind" field. It's identical to CallKindEQ.
func CallKind(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCallKind, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// ResearchIDEQ applies the EQ predicate on the "research_id" field.
func ResearchIDEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldResearchID, v))
}

// ResearchIDNEQ applies the NEQ predicate on the "research_id" field.
func ResearchIDNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldResearchID, v))
}

// ResearchIDIn applies the In predicate on the "research_id" field.
func ResearchIDIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldResearchID, vs...))
}

// ResearchIDNotIn applies the NotIn predicate on the "research_id" field.
func ResearchIDNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldResearchID, vs...))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldModel, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldProvider, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldCompletionTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldTotalTokens, v))
}

// CallKindEQ applies the EQ predicate on the "call_kind" field.
func CallKindEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCallKind, v))
}

// CallKindNEQ applies the NEQ predicate on the "call_kind" field.
func CallKindNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldCallKind, v))
}

// CallKindIn applies the In predicate on the "call_kind" field.
func CallKindIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldCallKind, vs...))
}

// CallKindNotIn applies the NotIn predicate on the "call_kind" field.
func CallKindNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldCallKind, vs...))
}

// CallKindGT applies the GT predicate on the "call_kind" field.
func CallKindGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldCallKind, v))
}

// CallKindGTE applies the GTE predicate on the "call_kind" field.
func CallKindGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldCallKind, v))
}

// CallKindLT applies the LT predicate on the "call_kind" field.
func CallKindLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldCallKind, v))
}

// CallKindLTE applies the LTE predicate on the "call_kind" field.
func CallKindLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldCallKind, v))
}

// CallKindContains applies the Contains predicate on the "call_kind" field.
func CallKindContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldCallKind, v))
}

// CallKindHasPrefix applies the HasPrefix predicate on the "call_kind" field.
func CallKindHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldCallKind, v))
}

// CallKindHasSuffix applies the HasSuffix predicate on the "call_kind" field.
func CallKindHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldCallKind, v))
}

// CallKindIsNil applies the IsNil predicate on the "call_kind" field.
func CallKindIsNil() predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIsNull(FieldCallKind))
}

// CallKindNotNil applies the NotNil predicate on the "call_kind" field.
func CallKindNotNil() predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotNull(FieldCallKind))
}

// CallKindEqualFold applies the EqualFold predicate on the "call_kind" field.
func CallKindEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldCallKind, v))
}

// CallKindContainsFold applies the ContainsFold predicate on the "call_kind" field.
func CallKindContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldCallKind, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasResearch applies the HasEdge predicate on the "research" edge.
func HasResearch() predicate.TokenUsage {
	return predicate.TokenUsage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ResearchTable, ResearchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResearchWith applies the HasEdge predicate on the "research" edge with a given conditions (other predicates).
func HasResearchWith(preds ...predicate.ResearchRecord) predicate.TokenUsage {
	return predicate.TokenUsage(func(s *sql.Selector) {
		step := newResearchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TokenUsage) predicate.TokenUsage {
	return predicate.TokenUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TokenUsage) predicate.TokenUsage {
	return predicate.TokenUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TokenUsage) predicate.TokenUsage {
	return predicate.TokenUsage(sql.NotPredicates(p))
}
