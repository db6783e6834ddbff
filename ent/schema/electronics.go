package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Electronics holds the schema definition for an electronics unit installed
// on a satellite.
type Electronics struct {
	ent.Schema
}

// Mixin of the Electronics.
func (Electronics) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Electronics.
func (Electronics) Fields() []ent.Field {
	return []ent.Field{
		field.String("model").
			NotEmpty(),
		field.String("type").
			NotEmpty(),
		field.String("location").
			NotEmpty(),
		// Price is validated at the contract boundary (Min) and again by a
		// store-level CHECK constraint, so a negative value can never land
		// in the table regardless of the write path.
		field.Float("price").
			Min(0),
	}
}

// Edges of the Electronics.
func (Electronics) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("satellite", Satellite.Type).
			Ref("electronics").
			Unique().
			Required(),
	}
}

// Annotations of the Electronics.
func (Electronics) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Check("price >= 0"),
	}
}
