package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// TechnicalSpecification is the per-satellite anchor record. Stands and
// calendar stages require one to exist before they can be created.
type TechnicalSpecification struct {
	ent.Schema
}

// Mixin of the TechnicalSpecification.
func (TechnicalSpecification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the TechnicalSpecification.
func (TechnicalSpecification) Fields() []ent.Field {
	return []ent.Field{
		field.String("description").
			Optional().
			Nillable(),
	}
}

// Edges of the TechnicalSpecification.
func (TechnicalSpecification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("satellite", Satellite.Type).
			Ref("technical_specifications").
			Unique().
			Required(),
		edge.To("stands", Stand.Type),
		edge.To("calendar_stages", CalendarStage.Type),
	}
}
