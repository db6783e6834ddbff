// Code generated by ent, DO NOT EDIT.

package materialfunctionalcharacteristic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"satfab.io/satfab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldUpdatedAt, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldUnit, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldValue, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLTE(FieldUpdatedAt, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldContainsFold(FieldUnit, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLTE(FieldValue, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.FieldContainsFold(FieldDescription, v))
}

// HasMaterial applies the HasEdge predicate on the "material" edge.
func HasMaterial() predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MaterialTable, MaterialColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMaterialWith applies the HasEdge predicate on the "material" edge with a given conditions (other predicates).
func HasMaterialWith(preds ...predicate.Material) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(func(s *sql.Selector) {
		step := newMaterialStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MaterialFunctionalCharacteristic) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MaterialFunctionalCharacteristic) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MaterialFunctionalCharacteristic) predicate.MaterialFunctionalCharacteristic {
	return predicate.MaterialFunctionalCharacteristic(sql.NotPredicates(p))
}
