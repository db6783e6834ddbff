package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// MaterialOperationalCharacteristic holds a property of a material measured
// under operation on a specific test stand.
type MaterialOperationalCharacteristic struct {
	ent.Schema
}

// Mixin of the MaterialOperationalCharacteristic.
func (MaterialOperationalCharacteristic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the MaterialOperationalCharacteristic.
func (MaterialOperationalCharacteristic) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit").
			NotEmpty(),
		field.Float("value"),
		field.String("description").
			Optional().
			Nillable(),
	}
}

// Edges of the MaterialOperationalCharacteristic.
func (MaterialOperationalCharacteristic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("material", Material.Type).
			Ref("operational_characteristics").
			Unique().
			Required(),
		edge.From("stand", Stand.Type).
			Ref("material_op_characteristics").
			Unique().
			Required(),
	}
}
