// Code generated by ent, DO NOT EDIT.

package calendarpage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/adeola-m/calendar-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLTE(FieldID, id))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldImagePath, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldStatus, v))
}

// Month applies equality check predicate on the "month" field. It's identical to MonthEQ.
func Month(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldMonth, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldYear, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldCreatedAt, v))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldContainsFold(FieldImagePath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldContainsFold(FieldStatus, v))
}

// MonthEQ applies the EQ predicate on the "month" field.
func MonthEQ(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldMonth, v))
}

// MonthNEQ applies the NEQ predicate on the "month" field.
func MonthNEQ(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNEQ(FieldMonth, v))
}

// MonthIn applies the In predicate on the "month" field.
func MonthIn(vs ...int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldIn(FieldMonth, vs...))
}

// MonthNotIn applies the NotIn predicate on the "month" field.
func MonthNotIn(vs ...int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNotIn(FieldMonth, vs...))
}

// MonthGT applies the GT predicate on the "month" field.
func MonthGT(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGT(FieldMonth, v))
}

// MonthGTE applies the GTE predicate on the "month" field.
func MonthGTE(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGTE(FieldMonth, v))
}

// MonthLT applies the LT predicate on the "month" field.
func MonthLT(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLT(FieldMonth, v))
}

// MonthLTE applies the LTE predicate on the "month" field.
func MonthLTE(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLTE(FieldMonth, v))
}

// MonthIsNil applies the IsNil predicate on the "month" field.
func MonthIsNil() predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldIsNull(FieldMonth))
}

// MonthNotNil applies the NotNil predicate on the "month" field.
func MonthNotNil() predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNotNull(FieldMonth))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLTE(FieldYear, v))
}

// YearIsNil applies the IsNil predicate on the "year" field.
func YearIsNil() predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldIsNull(FieldYear))
}

// YearNotNil applies the NotNil predicate on the "year" field.
func YearNotNil() predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNotNull(FieldYear))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNotNull(FieldNotes))
}

// RawResultIsNil applies the IsNil predicate on the "raw_result" field.
func RawResultIsNil() predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldIsNull(FieldRawResult))
}

// RawResultNotNil applies the NotNil predicate on the "raw_result" field.
func RawResultNotNil() predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNotNull(FieldRawResult))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarPage {
	return predicate.CalendarPage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.CalendarPage {
	return predicate.CalendarPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.CalendarEvent) predicate.CalendarPage {
	return predicate.CalendarPage(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarPage) predicate.CalendarPage {
	return predicate.CalendarPage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarPage) predicate.CalendarPage {
	return predicate.CalendarPage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarPage) predicate.CalendarPage {
	return predicate.CalendarPage(sql.NotPredicates(p))
}
