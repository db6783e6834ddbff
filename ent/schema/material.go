package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Material holds the schema definition for a manufacturing material.
// Materials are not tied to a single satellite; they are a shared catalog
// with functional and operational characteristics.
type Material struct {
	ent.Schema
}

// Mixin of the Material.
func (Material) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Material.
func (Material) Fields() []ent.Field {
	return []ent.Field{
		field.String("type_of_material").
			NotEmpty(),
		field.Float("amount"),
		field.String("unit").
			NotEmpty(),
	}
}

// Edges of the Material.
func (Material) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("functional_characteristics", MaterialFunctionalCharacteristic.Type),
		edge.To("operational_characteristics", MaterialOperationalCharacteristic.Type),
	}
}
