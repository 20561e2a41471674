package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// CalendarEvent is one extracted entry belonging to a CalendarPage.
type CalendarEvent struct{ ent.Schema }

func (CalendarEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "calendar_events"},
	}
}

func (CalendarEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("page_id", uuid.UUID{}),
		field.Int("day").Min(1).Max(31),
		field.Int("hour").Optional().Nillable(),
		field.Int("minute").Optional().Nillable(),
		field.String("am_pm").Optional().Nillable().MaxLen(4),
		field.Bool("all_day").Default(false),
		field.Text("title"),
		// exact raw snippet from the image; kept even when the time
		// could not be parsed.
		field.Text("original_text"),
		field.String("color").Default("black").MaxLen(50),
		field.Bool("featured").Default(false),
		// order within the extraction batch; sort tie-breaker.
		field.Int("position").Default(0),
	}
}

func (CalendarEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("page", CalendarPage.Type).
			Ref("events").
			Field("page_id").
			Unique().
			Required(),
	}
}

func (CalendarEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("page_id", "day"),
	}
}
