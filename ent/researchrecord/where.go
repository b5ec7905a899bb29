// Code generated by ent, DO NOT EDIT.

package researchrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLTE(FieldID, id))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldQuery, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldProgress, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldDurationSeconds, v))
}

// ReportPath applies equality check predicate on the "report_path" field. It's identical to ReportPathEQ.
func ReportPath(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldReportPath, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldContainsFold(FieldQuery, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotIn(FieldMode, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLTE(FieldProgress, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotNull(FieldCompletedAt))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotNull(FieldDurationSeconds))
}

// ReportPathEQ applies the EQ predicate on the "report_path" field.
func ReportPathEQ(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEQ(FieldReportPath, v))
}

// ReportPathNEQ applies the NEQ predicate on the "report_path" field.
func ReportPathNEQ(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNEQ(FieldReportPath, v))
}

// ReportPathIn applies the In predicate on the "report_path" field.
func ReportPathIn(vs ...string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIn(FieldReportPath, vs...))
}

// ReportPathNotIn applies the NotIn predicate on the "report_path" field.
func ReportPathNotIn(vs ...string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotIn(FieldReportPath, vs...))
}

// ReportPathGT applies the GT predicate on the "report_path" field.
func ReportPathGT(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGT(FieldReportPath, v))
}

// ReportPathGTE applies the GTE predicate on the "report_path" field.
func ReportPathGTE(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldGTE(FieldReportPath, v))
}

// ReportPathLT applies the LT predicate on the "report_path" field.
func ReportPathLT(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLT(FieldReportPath, v))
}

// ReportPathLTE applies the LTE predicate on the "report_path" field.
func ReportPathLTE(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldLTE(FieldReportPath, v))
}

// ReportPathContains applies the Contains predicate on the "report_path" field.
func ReportPathContains(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldContains(FieldReportPath, v))
}

// ReportPathHasPrefix applies the HasPrefix predicate on the "report_path" field.
func ReportPathHasPrefix(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldHasPrefix(FieldReportPath, v))
}

// ReportPathHasSuffix applies the HasSuffix predicate on the "report_path" field.
func ReportPathHasSuffix(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldHasSuffix(FieldReportPath, v))
}

// ReportPathIsNil applies the IsNil predicate on the "report_path" field.
func ReportPathIsNil() predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIsNull(FieldReportPath))
}

// ReportPathNotNil applies the NotNil predicate on the "report_path" field.
func ReportPathNotNil() predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotNull(FieldReportPath))
}

// ReportPathEqualFold applies the EqualFold predicate on the "report_path" field.
func ReportPathEqualFold(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldEqualFold(FieldReportPath, v))
}

// ReportPathContainsFold applies the ContainsFold predicate on the "report_path" field.
func ReportPathContainsFold(v string) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldContainsFold(FieldReportPath, v))
}

// ResearchMetaIsNil applies the IsNil predicate on the "research_meta" field.
func ResearchMetaIsNil() predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIsNull(FieldResearchMeta))
}

// ResearchMetaNotNil applies the NotNil predicate on the "research_meta" field.
func ResearchMetaNotNil() predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotNull(FieldResearchMeta))
}

// ProgressLogIsNil applies the IsNil predicate on the "progress_log" field.
func ProgressLogIsNil() predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldIsNull(FieldProgressLog))
}

// ProgressLogNotNil applies the NotNil predicate on the "progress_log" field.
func ProgressLogNotNil() predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.FieldNotNull(FieldProgressLog))
}

// HasLogs applies the HasEdge predicate on the "logs" edge.
func HasLogs() predicate.ResearchRecord {
	return predicate.ResearchRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogsWith applies the HasEdge predicate on the "logs" edge with a given conditions (other predicates).
func HasLogsWith(preds ...predicate.ResearchLog) predicate.ResearchRecord {
	return predicate.ResearchRecord(func(s *sql.Selector) {
		step := newLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResources applies the HasEdge predicate on the "resources" edge.
func HasResources() predicate.ResearchRecord {
	return predicate.ResearchRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResourcesTable, ResourcesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResourcesWith applies the HasEdge predicate on the "resources" edge with a given conditions (other predicates).
func HasResourcesWith(preds ...predicate.ResearchResource) predicate.ResearchRecord {
	return predicate.ResearchRecord(func(s *sql.Selector) {
		step := newResourcesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStrategy applies the HasEdge predicate on the "strategy" edge.
func HasStrategy() predicate.ResearchRecord {
	return predicate.ResearchRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, StrategyTable, StrategyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStrategyWith applies the HasEdge predicate on the "strategy" edge with a given conditions (other predicates).
func HasStrategyWith(preds ...predicate.ResearchStrategy) predicate.ResearchRecord {
	return predicate.ResearchRecord(func(s *sql.Selector) {
		step := newStrategyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTokenUsages applies the HasEdge predicate on the "token_usages" edge.
func HasTokenUsages() predicate.ResearchRecord {
	return predicate.ResearchRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TokenUsagesTable, TokenUsagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTokenUsagesWith applies the HasEdge predicate on the "token_usages" edge with a given conditions (other predicates).
func HasTokenUsagesWith(preds ...predicate.TokenUsage) predicate.ResearchRecord {
	return predicate.ResearchRecord(func(s *sql.Selector) {
		step := newTokenUsagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.ResearchRecord {
	return predicate.ResearchRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.ResearchRecord {
	return predicate.ResearchRecord(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchRecord) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchRecord) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchRecord) predicate.ResearchRecord {
	return predicate.ResearchRecord(sql.NotPredicates(p))
}
