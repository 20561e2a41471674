package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/adeola-m/calendar-tracker/constants"
)

// CalendarPage is one submitted calendar photo and its extraction state.
type CalendarPage struct{ ent.Schema }

func (CalendarPage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "calendar_pages"},
	}
}

func (CalendarPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("image_path").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").
			Default(string(constants.PageStatusPending)),
		// month/year are both null until the success transition sets them.
		field.Int("month").Optional().Nillable().
			Min(1).Max(12),
		field.Int("year").Optional().Nillable(),
		field.JSON("notes", []string{}).Optional(),
		field.JSON("raw_result", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (CalendarPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", CalendarEvent.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (CalendarPage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("year", "month"),
		index.Fields("status"),
	}
}
