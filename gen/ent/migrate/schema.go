// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CalendarEventsColumns holds the columns for the "calendar_events" table.
	CalendarEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "day", Type: field.TypeInt},
		{Name: "hour", Type: field.TypeInt, Nullable: true},
		{Name: "minute", Type: field.TypeInt, Nullable: true},
		{Name: "am_pm", Type: field.TypeString, Nullable: true, Size: 4},
		{Name: "all_day", Type: field.TypeBool, Default: false},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "original_text", Type: field.TypeString, Size: 2147483647},
		{Name: "color", Type: field.TypeString, Size: 50, Default: "black"},
		{Name: "featured", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "page_id", Type: field.TypeUUID},
	}
	// CalendarEventsTable holds the schema information for the "calendar_events" table.
	CalendarEventsTable = &schema.Table{
		Name:       "calendar_events",
		Columns:    CalendarEventsColumns,
		PrimaryKey: []*schema.Column{CalendarEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "calendar_events_calendar_pages_events",
				Columns:    []*schema.Column{CalendarEventsColumns[11]},
				RefColumns: []*schema.Column{CalendarPagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "calendarevent_page_id_day",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[11], CalendarEventsColumns[1]},
			},
		},
	}
	// CalendarPagesColumns holds the columns for the "calendar_pages" table.
	CalendarPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "image_path", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "month", Type: field.TypeInt, Nullable: true},
		{Name: "year", Type: field.TypeInt, Nullable: true},
		{Name: "notes", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CalendarPagesTable holds the schema information for the "calendar_pages" table.
	CalendarPagesTable = &schema.Table{
		Name:       "calendar_pages",
		Columns:    CalendarPagesColumns,
		PrimaryKey: []*schema.Column{CalendarPagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calendarpage_year_month",
				Unique:  false,
				Columns: []*schema.Column{CalendarPagesColumns[4], CalendarPagesColumns[3]},
			},
			{
				Name:    "calendarpage_status",
				Unique:  false,
				Columns: []*schema.Column{CalendarPagesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CalendarEventsTable,
		CalendarPagesTable,
	}
)

func init() {
	CalendarEventsTable.ForeignKeys[0].RefTable = CalendarPagesTable
	CalendarEventsTable.Annotation = &entsql.Annotation{
		Table: "calendar_events",
	}
	CalendarPagesTable.Annotation = &entsql.Annotation{
		Table: "calendar_pages",
	}
}
