package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// PhysicalTestData holds a physical test measurement recorded on a stand.
type PhysicalTestData struct {
	ent.Schema
}

// Mixin of the PhysicalTestData.
func (PhysicalTestData) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the PhysicalTestData.
func (PhysicalTestData) Fields() []ent.Field {
	return []ent.Field{
		field.Float("value"),
		field.String("unit").
			NotEmpty(),
		field.String("description").
			NotEmpty(),
	}
}

// Edges of the PhysicalTestData.
func (PhysicalTestData) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stand", Stand.Type).
			Ref("physical_test_data").
			Unique().
			Required(),
	}
}
