package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Sensor holds the schema definition for a sensor mounted on a test stand.
// value and unit are nullable: a sensor can be registered before it has
// produced a reading.
type Sensor struct {
	ent.Schema
}

// Mixin of the Sensor.
func (Sensor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Sensor.
func (Sensor) Fields() []ent.Field {
	return []ent.Field{
		field.String("location").
			NotEmpty(),
		field.Float("value").
			Optional().
			Nillable(),
		field.String("unit").
			Optional().
			Nillable(),
		field.String("description").
			NotEmpty(),
	}
}

// Edges of the Sensor.
func (Sensor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stand", Stand.Type).
			Ref("sensors").
			Unique().
			Required(),
	}
}
