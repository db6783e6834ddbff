package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// SatelliteOpCharacteristic holds an operational characteristic measured on
// a satellite (parameter name + value + unit).
type SatelliteOpCharacteristic struct {
	ent.Schema
}

// Mixin of the SatelliteOpCharacteristic.
func (SatelliteOpCharacteristic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the SatelliteOpCharacteristic.
func (SatelliteOpCharacteristic) Fields() []ent.Field {
	return []ent.Field{
		field.String("parameter_name").
			NotEmpty(),
		field.Float("value"),
		field.String("unit").
			NotEmpty(),
	}
}

// Edges of the SatelliteOpCharacteristic.
func (SatelliteOpCharacteristic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("satellite", Satellite.Type).
			Ref("op_characteristics").
			Unique().
			Required(),
	}
}
