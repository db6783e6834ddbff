// Code generated by ent, DO NOT EDIT.

package material

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"satfab.io/satfab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldUpdatedAt, v))
}

// TypeOfMaterial applies equality check predicate on the "type_of_material" field. It's identical to TypeOfMaterialEQ.
func TypeOfMaterial(v string) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldTypeOfMaterial, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldAmount, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldUnit, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldUpdatedAt, v))
}

// TypeOfMaterialEQ applies the EQ predicate on the "type_of_material" field.
func TypeOfMaterialEQ(v string) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldTypeOfMaterial, v))
}

// TypeOfMaterialNEQ applies the NEQ predicate on the "type_of_material" field.
func TypeOfMaterialNEQ(v string) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldTypeOfMaterial, v))
}

// TypeOfMaterialIn applies the In predicate on the "type_of_material" field.
func TypeOfMaterialIn(vs ...string) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldTypeOfMaterial, vs...))
}

// TypeOfMaterialNotIn applies the NotIn predicate on the "type_of_material" field.
func TypeOfMaterialNotIn(vs ...string) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldTypeOfMaterial, vs...))
}

// TypeOfMaterialGT applies the GT predicate on the "type_of_material" field.
func TypeOfMaterialGT(v string) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldTypeOfMaterial, v))
}

// TypeOfMaterialGTE applies the GTE predicate on the "type_of_material" field.
func TypeOfMaterialGTE(v string) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldTypeOfMaterial, v))
}

// TypeOfMaterialLT applies the LT predicate on the "type_of_material" field.
func TypeOfMaterialLT(v string) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldTypeOfMaterial, v))
}

// TypeOfMaterialLTE applies the LTE predicate on the "type_of_material" field.
func TypeOfMaterialLTE(v string) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldTypeOfMaterial, v))
}

// TypeOfMaterialContains applies the Contains predicate on the "type_of_material" field.
func TypeOfMaterialContains(v string) predicate.Material {
	return predicate.Material(sql.FieldContains(FieldTypeOfMaterial, v))
}

// TypeOfMaterialHasPrefix applies the HasPrefix predicate on the "type_of_material" field.
func TypeOfMaterialHasPrefix(v string) predicate.Material {
	return predicate.Material(sql.FieldHasPrefix(FieldTypeOfMaterial, v))
}

// TypeOfMaterialHasSuffix applies the HasSuffix predicate on the "type_of_material" field.
func TypeOfMaterialHasSuffix(v string) predicate.Material {
	return predicate.Material(sql.FieldHasSuffix(FieldTypeOfMaterial, v))
}

// TypeOfMaterialEqualFold applies the EqualFold predicate on the "type_of_material" field.
func TypeOfMaterialEqualFold(v string) predicate.Material {
	return predicate.Material(sql.FieldEqualFold(FieldTypeOfMaterial, v))
}

// TypeOfMaterialContainsFold applies the ContainsFold predicate on the "type_of_material" field.
func TypeOfMaterialContainsFold(v string) predicate.Material {
	return predicate.Material(sql.FieldContainsFold(FieldTypeOfMaterial, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldAmount, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.Material {
	return predicate.Material(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.Material {
	return predicate.Material(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.Material {
	return predicate.Material(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.Material {
	return predicate.Material(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.Material {
	return predicate.Material(sql.FieldContainsFold(FieldUnit, v))
}

// HasFunctionalCharacteristics applies the HasEdge predicate on the "functional_characteristics" edge.
func HasFunctionalCharacteristics() predicate.Material {
	return predicate.Material(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FunctionalCharacteristicsTable, FunctionalCharacteristicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFunctionalCharacteristicsWith applies the HasEdge predicate on the "functional_characteristics" edge with a given conditions (other predicates).
func HasFunctionalCharacteristicsWith(preds ...predicate.MaterialFunctionalCharacteristic) predicate.Material {
	return predicate.Material(func(s *sql.Selector) {
		step := newFunctionalCharacteristicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOperationalCharacteristics applies the HasEdge predicate on the "operational_characteristics" edge.
func HasOperationalCharacteristics() predicate.Material {
	return predicate.Material(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OperationalCharacteristicsTable, OperationalCharacteristicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOperationalCharacteristicsWith applies the HasEdge predicate on the "operational_characteristics" edge with a given conditions (other predicates).
func HasOperationalCharacteristicsWith(preds ...predicate.MaterialOperationalCharacteristic) predicate.Material {
	return predicate.Material(func(s *sql.Selector) {
		step := newOperationalCharacteristicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Material) predicate.Material {
	return predicate.Material(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Material) predicate.Material {
	return predicate.Material(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Material) predicate.Material {
	return predicate.Material(sql.NotPredicates(p))
}
