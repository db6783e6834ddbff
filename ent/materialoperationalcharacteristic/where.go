// Code generated by ent, DO NOT EDIT.

package materialoperationalcharacteristic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"satfab.io/satfab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldUpdatedAt, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldUnit, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldValue, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLTE(FieldUpdatedAt, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldContainsFold(FieldUnit, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLTE(FieldValue, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.FieldContainsFold(FieldDescription, v))
}

// HasMaterial applies the HasEdge predicate on the "material" edge.
func HasMaterial() predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MaterialTable, MaterialColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMaterialWith applies the HasEdge predicate on the "material" edge with a given conditions (other predicates).
func HasMaterialWith(preds ...predicate.Material) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(func(s *sql.Selector) {
		step := newMaterialStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStand applies the HasEdge predicate on the "stand" edge.
func HasStand() predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StandTable, StandColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStandWith applies the HasEdge predicate on the "stand" edge with a given conditions (other predicates).
func HasStandWith(preds ...predicate.Stand) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(func(s *sql.Selector) {
		step := newStandStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MaterialOperationalCharacteristic) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MaterialOperationalCharacteristic) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MaterialOperationalCharacteristic) predicate.MaterialOperationalCharacteristic {
	return predicate.MaterialOperationalCharacteristic(sql.NotPredicates(p))
}
