// Code generated by ent, DO NOT EDIT.

package satelliteopcharacteristic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"satfab.io/satfab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldUpdatedAt, v))
}

// ParameterName applies equality check predicate on the "parameter_name" field. It's identical to ParameterNameEQ.
func ParameterName(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldParameterName, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldUnit, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLTE(FieldUpdatedAt, v))
}

// ParameterNameEQ applies the EQ predicate on the "parameter_name" field.
func ParameterNameEQ(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldParameterName, v))
}

// ParameterNameNEQ applies the NEQ predicate on the "parameter_name" field.
func ParameterNameNEQ(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNEQ(FieldParameterName, v))
}

// ParameterNameIn applies the In predicate on the "parameter_name" field.
func ParameterNameIn(vs ...string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldIn(FieldParameterName, vs...))
}

// ParameterNameNotIn applies the NotIn predicate on the "parameter_name" field.
func ParameterNameNotIn(vs ...string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNotIn(FieldParameterName, vs...))
}

// ParameterNameGT applies the GT predicate on the "parameter_name" field.
func ParameterNameGT(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGT(FieldParameterName, v))
}

// ParameterNameGTE applies the GTE predicate on the "parameter_name" field.
func ParameterNameGTE(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGTE(FieldParameterName, v))
}

// ParameterNameLT applies the LT predicate on the "parameter_name" field.
func ParameterNameLT(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLT(FieldParameterName, v))
}

// ParameterNameLTE applies the LTE predicate on the "parameter_name" field.
func ParameterNameLTE(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLTE(FieldParameterName, v))
}

// ParameterNameContains applies the Contains predicate on the "parameter_name" field.
func ParameterNameContains(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldContains(FieldParameterName, v))
}

// ParameterNameHasPrefix applies the HasPrefix predicate on the "parameter_name" field.
func ParameterNameHasPrefix(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldHasPrefix(FieldParameterName, v))
}

// ParameterNameHasSuffix applies the HasSuffix predicate on the "parameter_name" field.
func ParameterNameHasSuffix(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldHasSuffix(FieldParameterName, v))
}

// ParameterNameEqualFold applies the EqualFold predicate on the "parameter_name" field.
func ParameterNameEqualFold(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEqualFold(FieldParameterName, v))
}

// ParameterNameContainsFold applies the ContainsFold predicate on the "parameter_name" field.
func ParameterNameContainsFold(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldContainsFold(FieldParameterName, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLTE(FieldValue, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.FieldContainsFold(FieldUnit, v))
}

// HasSatellite applies the HasEdge predicate on the "satellite" edge.
func HasSatellite() predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SatelliteTable, SatelliteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSatelliteWith applies the HasEdge predicate on the "satellite" edge with a given conditions (other predicates).
func HasSatelliteWith(preds ...predicate.Satellite) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(func(s *sql.Selector) {
		step := newSatelliteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SatelliteOpCharacteristic) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SatelliteOpCharacteristic) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SatelliteOpCharacteristic) predicate.SatelliteOpCharacteristic {
	return predicate.SatelliteOpCharacteristic(sql.NotPredicates(p))
}
