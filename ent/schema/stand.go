package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Stand holds the schema definition for a test stand (physical or virtual
// rig) attached to a satellite. A stand can only be created once the
// satellite has a technical specification to anchor it.
type Stand struct {
	ent.Schema
}

// Mixin of the Stand.
func (Stand) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Stand.
func (Stand) Fields() []ent.Field {
	return []ent.Field{
		field.String("name_of_stand").
			NotEmpty(),
		field.String("type_of_stand").
			NotEmpty(),
	}
}

// Edges of the Stand.
func (Stand) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("satellite", Satellite.Type).
			Ref("stands").
			Unique().
			Required(),
		edge.From("technical_specification", TechnicalSpecification.Type).
			Ref("stands").
			Unique().
			Required(),
		edge.To("sensors", Sensor.Type),
		edge.To("hardware_requirements", HardwareRequirement.Type),
		edge.To("physical_test_data", PhysicalTestData.Type),
		edge.To("material_op_characteristics", MaterialOperationalCharacteristic.Type),
	}
}
