// Code generated by ent, DO NOT EDIT.

package researchresource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLTE(FieldID, id))
}

// ResearchID applies equality check predicate on the "research_id" field. It's identical to ResearchIDEQ.
func ResearchID(v int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldResearchID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldTitle, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldURL, v))
}

// ContentPreview applies equality check predicate on the "content_preview" field. It's identical to ContentPreviewEQ.
func ContentPreview(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldContentPreview, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldSourceType, v))
}

// CitationIndex applies equality check predicate on the "citation_index" field. It's identical to CitationIndexEQ.
func CitationIndex(v int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldCitationIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldCreatedAt, v))
}

// ResearchIDEQ applies the EQ predicate on the "research_id" field.
func ResearchIDEQ(v int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldResearchID, v))
}

// ResearchIDNEQ applies the NEQ predicate on the "research_id" field.
func ResearchIDNEQ(v int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNEQ(FieldResearchID, v))
}

// ResearchIDIn applies the In predicate on the "research_id" field.
func ResearchIDIn(vs ...int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIn(FieldResearchID, vs...))
}

// ResearchIDNotIn applies the NotIn predicate on the "research_id" field.
func ResearchIDNotIn(vs ...int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotIn(FieldResearchID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldContainsFold(FieldTitle, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldContainsFold(FieldURL, v))
}

// ContentPreviewEQ applies the EQ predicate on the "content_preview" field.
func ContentPreviewEQ(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldContentPreview, v))
}

// ContentPreviewNEQ applies the NEQ predicate on the "content_preview" field.
func ContentPreviewNEQ(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNEQ(FieldContentPreview, v))
}

// ContentPreviewIn applies the In predicate on the "content_preview" field.
func ContentPreviewIn(vs ...string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIn(FieldContentPreview, vs...))
}

// ContentPreviewNotIn applies the NotIn predicate on the "content_preview" field.
func ContentPreviewNotIn(vs ...string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotIn(FieldContentPreview, vs...))
}

// ContentPreviewGT applies the GT predicate on the "content_preview" field.
func ContentPreviewGT(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGT(FieldContentPreview, v))
}

// ContentPreviewGTE applies the GTE predicate on the "content_preview" field.
func ContentPreviewGTE(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGTE(FieldContentPreview, v))
}

// ContentPreviewLT applies the LT predicate on the "content_preview" field.
func ContentPreviewLT(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLT(FieldContentPreview, v))
}

// ContentPreviewLTE applies the LTE predicate on the "content_preview" field.
func ContentPreviewLTE(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLTE(FieldContentPreview, v))
}

// ContentPreviewContains applies the Contains predicate on the "content_preview" field.
func ContentPreviewContains(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldContains(FieldContentPreview, v))
}

// ContentPreviewHasPrefix applies the HasPrefix predicate on the "content_preview" field.
func ContentPreviewHasPrefix(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldHasPrefix(FieldContentPreview, v))
}

// ContentPreviewHasSuffix applies the HasSuffix predicate on the "content_preview" field.
func ContentPreviewHasSuffix(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldHasSuffix(FieldContentPreview, v))
}

// ContentPreviewIsNil applies the IsNil predicate on the "content_preview" field.
func ContentPreviewIsNil() predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIsNull(FieldContentPreview))
}

// ContentPreviewNotNil applies the NotNil predicate on the "content_preview" field.
func ContentPreviewNotNil() predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotNull(FieldContentPreview))
}

// ContentPreviewEqualFold applies the EqualFold predicate on the "content_preview" field.
func ContentPreviewEqualFold(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEqualFold(FieldContentPreview, v))
}

// ContentPreviewContainsFold applies the ContainsFold predicate on the "content_preview" field.
func ContentPreviewContainsFold(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldContainsFold(FieldContentPreview, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldContainsFold(FieldSourceType, v))
}

// CitationIndexEQ applies the EQ predicate on the "citation_index" field.
func CitationIndexEQ(v int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldCitationIndex, v))
}

// CitationIndexNEQ applies the NEQ predicate on the "citation_index" field.
func CitationIndexNEQ(v int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNEQ(FieldCitationIndex, v))
}

// CitationIndexIn applies the In predicate on the "citation_index" field.
func CitationIndexIn(vs ...int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIn(FieldCitationIndex, vs...))
}

// CitationIndexNotIn applies the NotIn predicate on the "citation_index" field.
func CitationIndexNotIn(vs ...int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotIn(FieldCitationIndex, vs...))
}

// CitationIndexGT applies the GT predicate on the "citation_index" field.
func CitationIndexGT(v int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGT(FieldCitationIndex, v))
}

// CitationIndexGTE applies the GTE predicate on the "citation_index" field.
func CitationIndexGTE(v int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGTE(FieldCitationIndex, v))
}

// CitationIndexLT applies the LT predicate on the "citation_index" field.
func CitationIndexLT(v int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLT(FieldCitationIndex, v))
}

// CitationIndexLTE applies the LTE predicate on the "citation_index" field.
func CitationIndexLTE(v int) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLTE(FieldCitationIndex, v))
}

// CitationIndexIsNil applies the IsNil predicate on the "citation_index" field.
func CitationIndexIsNil() predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIsNull(FieldCitationIndex))
}

// CitationIndexNotNil applies the NotNil predicate on the "citation_index" field.
func CitationIndexNotNil() predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotNull(FieldCitationIndex))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchResource {
	return predicate.ResearchResource(sql.FieldLTE(FieldCreatedAt, v))
}

// HasResearch applies the HasEdge predicate on the "research" edge.
func HasResearch() predicate.ResearchResource {
	return predicate.ResearchResource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ResearchTable, ResearchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResearchWith applies the HasEdge predicate on the "research" edge with a given conditions (other predicates).
func HasResearchWith(preds ...predicate.ResearchRecord) predicate.ResearchResource {
	return predicate.ResearchResource(func(s *sql.Selector) {
		step := newResearchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchResource) predicate.ResearchResource {
	return predicate.ResearchResource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchResource) predicate.ResearchResource {
	return predicate.ResearchResource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchResource) predicate.ResearchResource {
	return predicate.ResearchResource(sql.NotPredicates(p))
}
