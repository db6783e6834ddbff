package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// MaterialFunctionalCharacteristic holds a measured functional property of a
// material (density, tensile strength, ...).
type MaterialFunctionalCharacteristic struct {
	ent.Schema
}

// Mixin of the MaterialFunctionalCharacteristic.
func (MaterialFunctionalCharacteristic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the MaterialFunctionalCharacteristic.
func (MaterialFunctionalCharacteristic) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit").
			NotEmpty(),
		field.Float("value"),
		field.String("description").
			NotEmpty(),
	}
}

// Edges of the MaterialFunctionalCharacteristic.
func (MaterialFunctionalCharacteristic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("material", Material.Type).
			Ref("functional_characteristics").
			Unique().
			Required(),
	}
}
