package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Satellite holds the schema definition for a satellite under manufacture.
// It is the root of the tracking hierarchy: electronics, calendar stages,
// technical specifications, stands and operational characteristics all hang
// off a satellite.
type Satellite struct {
	ent.Schema
}

// Mixin of the Satellite.
func (Satellite) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Satellite.
func (Satellite) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("type").
			NotEmpty().
			MaxLen(255),
	}
}

// Edges of the Satellite.
func (Satellite) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("electronics", Electronics.Type),
		edge.To("calendar_stages", CalendarStage.Type),
		edge.To("technical_specifications", TechnicalSpecification.Type),
		edge.To("op_characteristics", SatelliteOpCharacteristic.Type),
		edge.To("stands", Stand.Type),
	}
}

// Indexes of the Satellite.
func (Satellite) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
