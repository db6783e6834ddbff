package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for a SatFab account. Each user carries
// exactly one role; the role claim in the issued token is what the contract
// layer authorizes against.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			MaxLen(255),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.Enum("role").
			Values("manager", "engineer", "admin"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
	}
}
