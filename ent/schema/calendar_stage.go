package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CalendarStage holds the schema definition for a stage of a satellite's
// manufacturing calendar. The stage's ordinal position (stageOrder) is not
// stored: it is derived on read from the satellite's full stage set.
type CalendarStage struct {
	ent.Schema
}

// Mixin of the CalendarStage.
func (CalendarStage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the CalendarStage.
func (CalendarStage) Fields() []ent.Field {
	return []ent.Field{
		field.String("name_of_stage").
			NotEmpty(),
		field.Time("time_of_frame"),
		field.Int("duration").
			NonNegative(),
	}
}

// Edges of the CalendarStage.
func (CalendarStage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("satellite", Satellite.Type).
			Ref("calendar_stages").
			Unique().
			Required(),
		edge.From("technical_specification", TechnicalSpecification.Type).
			Ref("calendar_stages").
			Unique().
			Required(),
	}
}

// Indexes of the CalendarStage.
func (CalendarStage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("time_of_frame"),
	}
}
