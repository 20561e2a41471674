// Code generated by ent, DO NOT EDIT.

package calendarevent

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/adeola-m/calendar-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldID, id))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldPageID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldDay, v))
}

// Hour applies equality check predicate on the "hour" field. It's identical to HourEQ.
func Hour(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldHour, v))
}

// Minute applies equality check predicate on the "minute" field. It's identical to MinuteEQ.
func Minute(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldMinute, v))
}

// AmPm applies equality check predicate on the "am_pm" field. It's identical to AmPmEQ.
func AmPm(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldAmPm, v))
}

// AllDay applies equality check predicate on the "all_day" field. It's identical to AllDayEQ.
func AllDay(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldAllDay, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldTitle, v))
}

// OriginalText applies equality check predicate on the "original_text" field. It's identical to OriginalTextEQ.
func OriginalText(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldOriginalText, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldColor, v))
}

// Featured applies equality check predicate on the "featured" field. It's identical to FeaturedEQ.
func Featured(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldFeatured, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldPosition, v))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldPageID, vs...))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldDay, v))
}

// HourEQ applies the EQ predicate on the "hour" field.
func HourEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldHour, v))
}

// HourNEQ applies the NEQ predicate on the "hour" field.
func HourNEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldHour, v))
}

// HourIn applies the In predicate on the "hour" field.
func HourIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldHour, vs...))
}

// HourNotIn applies the NotIn predicate on the "hour" field.
func HourNotIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldHour, vs...))
}

// HourGT applies the GT predicate on the "hour" field.
func HourGT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldHour, v))
}

// HourGTE applies the GTE predicate on the "hour" field.
func HourGTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldHour, v))
}

// HourLT applies the LT predicate on the "hour" field.
func HourLT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldHour, v))
}

// HourLTE applies the LTE predicate on the "hour" field.
func HourLTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldHour, v))
}

// HourIsNil applies the IsNil predicate on the "hour" field.
func HourIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldHour))
}

// HourNotNil applies the NotNil predicate on the "hour" field.
func HourNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldHour))
}

// MinuteEQ applies the EQ predicate on the "minute" field.
func MinuteEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldMinute, v))
}

// MinuteNEQ applies the NEQ predicate on the "minute" field.
func MinuteNEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldMinute, v))
}

// MinuteIn applies the In predicate on the "minute" field.
func MinuteIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldMinute, vs...))
}

// MinuteNotIn applies the NotIn predicate on the "minute" field.
func MinuteNotIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldMinute, vs...))
}

// MinuteGT applies the GT predicate on the "minute" field.
func MinuteGT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldMinute, v))
}

// MinuteGTE applies the GTE predicate on the "minute" field.
func MinuteGTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldMinute, v))
}

// MinuteLT applies the LT predicate on the "minute" field.
func MinuteLT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldMinute, v))
}

// MinuteLTE applies the LTE predicate on the "minute" field.
func MinuteLTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldMinute, v))
}

// MinuteIsNil applies the IsNil predicate on the "minute" field.
func MinuteIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldMinute))
}

// MinuteNotNil applies the NotNil predicate on the "minute" field.
func MinuteNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldMinute))
}

// AmPmEQ applies the EQ predicate on the "am_pm" field.
func AmPmEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldAmPm, v))
}

// AmPmNEQ applies the NEQ predicate on the "am_pm" field.
func AmPmNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldAmPm, v))
}

// AmPmIn applies the In predicate on the "am_pm" field.
func AmPmIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldAmPm, vs...))
}

// AmPmNotIn applies the NotIn predicate on the "am_pm" field.
func AmPmNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldAmPm, vs...))
}

// AmPmGT applies the GT predicate on the "am_pm" field.
func AmPmGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldAmPm, v))
}

// AmPmGTE applies the GTE predicate on the "am_pm" field.
func AmPmGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldAmPm, v))
}

// AmPmLT applies the LT predicate on the "am_pm" field.
func AmPmLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldAmPm, v))
}

// AmPmLTE applies the LTE predicate on the "am_pm" field.
func AmPmLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldAmPm, v))
}

// AmPmContains applies the Contains predicate on the "am_pm" field.
func AmPmContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldAmPm, v))
}

// AmPmHasPrefix applies the HasPrefix predicate on the "am_pm" field.
func AmPmHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldAmPm, v))
}

// AmPmHasSuffix applies the HasSuffix predicate on the "am_pm" field.
func AmPmHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldAmPm, v))
}

// AmPmIsNil applies the IsNil predicate on the "am_pm" field.
func AmPmIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldAmPm))
}

// AmPmNotNil applies the NotNil predicate on the "am_pm" field.
func AmPmNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldAmPm))
}

// AmPmEqualFold applies the EqualFold predicate on the "am_pm" field.
func AmPmEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldAmPm, v))
}

// AmPmContainsFold applies the ContainsFold predicate on the "am_pm" field.
func AmPmContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldAmPm, v))
}

// AllDayEQ applies the EQ predicate on the "all_day" field.
func AllDayEQ(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldAllDay, v))
}

// AllDayNEQ applies the NEQ predicate on the "all_day" field.
func AllDayNEQ(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldAllDay, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldTitle, v))
}

// OriginalTextEQ applies the EQ predicate on the "original_text" field.
func OriginalTextEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldOriginalText, v))
}

// OriginalTextNEQ applies the NEQ predicate on the "original_text" field.
func OriginalTextNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldOriginalText, v))
}

// OriginalTextIn applies the In predicate on the "original_text" field.
func OriginalTextIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldOriginalText, vs...))
}

// OriginalTextNotIn applies the NotIn predicate on the "original_text" field.
func OriginalTextNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldOriginalText, vs...))
}

// OriginalTextGT applies the GT predicate on the "original_text" field.
func OriginalTextGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldOriginalText, v))
}

// OriginalTextGTE applies the GTE predicate on the "original_text" field.
func OriginalTextGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldOriginalText, v))
}

// OriginalTextLT applies the LT predicate on the "original_text" field.
func OriginalTextLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldOriginalText, v))
}

// OriginalTextLTE applies the LTE predicate on the "original_text" field.
func OriginalTextLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldOriginalText, v))
}

// OriginalTextContains applies the Contains predicate on the "original_text" field.
func OriginalTextContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldOriginalText, v))
}

// OriginalTextHasPrefix applies the HasPrefix predicate on the "original_text" field.
func OriginalTextHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldOriginalText, v))
}

// OriginalTextHasSuffix applies the HasSuffix predicate on the "original_text" field.
func OriginalTextHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldOriginalText, v))
}

// OriginalTextEqualFold applies the EqualFold predicate on the "original_text" field.
func OriginalTextEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldOriginalText, v))
}

// OriginalTextContainsFold applies the ContainsFold predicate on the "original_text" field.
func OriginalTextContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldOriginalText, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldColor, v))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldColor, v))
}

// FeaturedEQ applies the EQ predicate on the "featured" field.
func FeaturedEQ(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldFeatured, v))
}

// FeaturedNEQ applies the NEQ predicate on the "featured" field.
func FeaturedNEQ(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldFeatured, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldPosition, v))
}

// HasPage applies the HasEdge predicate on the "page" edge.
func HasPage() predicate.CalendarEvent {
	return predicate.CalendarEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPageWith applies the HasEdge predicate on the "page" edge with a given conditions (other predicates).
func HasPageWith(preds ...predicate.CalendarPage) predicate.CalendarEvent {
	return predicate.CalendarEvent(func(s *sql.Selector) {
		step := newPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.NotPredicates(p))
}
