// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adeola-m/calendar-tracker/db/ent/schema"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarevent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	calendareventFields := schema.CalendarEvent{}.Fields()
	_ = calendareventFields
	// calendareventDescDay is the schema descriptor for day field.
	calendareventDescDay := calendareventFields[2].Descriptor()
	// calendarevent.DayValidator is a validator for the "day" field. It is called by the builders before save.
	calendarevent.DayValidator = func() func(int) error {
		validators := calendareventDescDay.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(day int) error {
			for _, fn := range fns {
				if err := fn(day); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calendareventDescAmPm is the schema descriptor for am_pm field.
	calendareventDescAmPm := calendareventFields[5].Descriptor()
	// calendarevent.AmPmValidator is a validator for the "am_pm" field. It is called by the builders before save.
	calendarevent.AmPmValidator = calendareventDescAmPm.Validators[0].(func(string) error)
	// calendareventDescAllDay is the schema descriptor for all_day field.
	calendareventDescAllDay := calendareventFields[6].Descriptor()
	// calendarevent.DefaultAllDay holds the default value on creation for the all_day field.
	calendarevent.DefaultAllDay = calendareventDescAllDay.Default.(bool)
	// calendareventDescColor is the schema descriptor for color field.
	calendareventDescColor := calendareventFields[9].Descriptor()
	// calendarevent.DefaultColor holds the default value on creation for the color field.
	calendarevent.DefaultColor = calendareventDescColor.Default.(string)
	// calendarevent.ColorValidator is a validator for the "color" field. It is called by the builders before save.
	calendarevent.ColorValidator = calendareventDescColor.Validators[0].(func(string) error)
	// calendareventDescFeatured is the schema descriptor for featured field.
	calendareventDescFeatured := calendareventFields[10].Descriptor()
	// calendarevent.DefaultFeatured holds the default value on creation for the featured field.
	calendarevent.DefaultFeatured = calendareventDescFeatured.Default.(bool)
	// calendareventDescPosition is the schema descriptor for position field.
	calendareventDescPosition := calendareventFields[11].Descriptor()
	// calendarevent.DefaultPosition holds the default value on creation for the position field.
	calendarevent.DefaultPosition = calendareventDescPosition.Default.(int)
	// calendareventDescID is the schema descriptor for id field.
	calendareventDescID := calendareventFields[0].Descriptor()
	// calendarevent.DefaultID holds the default value on creation for the id field.
	calendarevent.DefaultID = calendareventDescID.Default.(func() uuid.UUID)
	calendarpageFields := schema.CalendarPage{}.Fields()
	_ = calendarpageFields
	// calendarpageDescImagePath is the schema descriptor for image_path field.
	calendarpageDescImagePath := calendarpageFields[1].Descriptor()
	// calendarpage.ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	calendarpage.ImagePathValidator = calendarpageDescImagePath.Validators[0].(func(string) error)
	// calendarpageDescStatus is the schema descriptor for status field.
	calendarpageDescStatus := calendarpageFields[2].Descriptor()
	// calendarpage.DefaultStatus holds the default value on creation for the status field.
	calendarpage.DefaultStatus = calendarpageDescStatus.Default.(string)
	// calendarpageDescMonth is the schema descriptor for month field.
	calendarpageDescMonth := calendarpageFields[3].Descriptor()
	// calendarpage.MonthValidator is a validator for the "month" field. It is called by the builders before save.
	calendarpage.MonthValidator = func() func(int) error {
		validators := calendarpageDescMonth.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(month int) error {
			for _, fn := range fns {
				if err := fn(month); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calendarpageDescCreatedAt is the schema descriptor for created_at field.
	calendarpageDescCreatedAt := calendarpageFields[7].Descriptor()
	// calendarpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarpage.DefaultCreatedAt = calendarpageDescCreatedAt.Default.(func() time.Time)
	// calendarpageDescID is the schema descriptor for id field.
	calendarpageDescID := calendarpageFields[0].Descriptor()
	// calendarpage.DefaultID holds the default value on creation for the id field.
	calendarpage.DefaultID = calendarpageDescID.Default.(func() uuid.UUID)
}
