package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// HardwareRequirement holds a hardware capacity requirement of a test stand.
type HardwareRequirement struct {
	ent.Schema
}

// Mixin of the HardwareRequirement.
func (HardwareRequirement) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the HardwareRequirement.
func (HardwareRequirement) Fields() []ent.Field {
	return []ent.Field{
		field.Float("value"),
		field.String("unit").
			NotEmpty(),
	}
}

// Edges of the HardwareRequirement.
func (HardwareRequirement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stand", Stand.Type).
			Ref("hardware_requirements").
			Unique().
			Required(),
	}
}
