// Code generated by ent, DO NOT EDIT.

package stand

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"satfab.io/satfab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Stand {
	return predicate.Stand(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Stand {
	return predicate.Stand(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Stand {
	return predicate.Stand(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Stand {
	return predicate.Stand(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Stand {
	return predicate.Stand(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Stand {
	return predicate.Stand(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Stand {
	return predicate.Stand(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Stand {
	return predicate.Stand(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Stand {
	return predicate.Stand(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameOfStand applies equality check predicate on the "name_of_stand" field. It's identical to NameOfStandEQ.
func NameOfStand(v string) predicate.Stand {
	return predicate.Stand(sql.FieldEQ(FieldNameOfStand, v))
}

// TypeOfStand applies equality check predicate on the "type_of_stand" field. It's identical to TypeOfStandEQ.
func TypeOfStand(v string) predicate.Stand {
	return predicate.Stand(sql.FieldEQ(FieldTypeOfStand, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Stand {
	return predicate.Stand(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameOfStandEQ applies the EQ predicate on the "name_of_stand" field.
func NameOfStandEQ(v string) predicate.Stand {
	return predicate.Stand(sql.FieldEQ(FieldNameOfStand, v))
}

// NameOfStandNEQ applies the NEQ predicate on the "name_of_stand" field.
func NameOfStandNEQ(v string) predicate.Stand {
	return predicate.Stand(sql.FieldNEQ(FieldNameOfStand, v))
}

// NameOfStandIn applies the In predicate on the "name_of_stand" field.
func NameOfStandIn(vs ...string) predicate.Stand {
	return predicate.Stand(sql.FieldIn(FieldNameOfStand, vs...))
}

// NameOfStandNotIn applies the NotIn predicate on the "name_of_stand" field.
func NameOfStandNotIn(vs ...string) predicate.Stand {
	return predicate.Stand(sql.FieldNotIn(FieldNameOfStand, vs...))
}

// NameOfStandGT applies the GT predicate on the "name_of_stand" field.
func NameOfStandGT(v string) predicate.Stand {
	return predicate.Stand(sql.FieldGT(FieldNameOfStand, v))
}

// NameOfStandGTE applies the GTE predicate on the "name_of_stand" field.
func NameOfStandGTE(v string) predicate.Stand {
	return predicate.Stand(sql.FieldGTE(FieldNameOfStand, v))
}

// NameOfStandLT applies the LT predicate on the "name_of_stand" field.
func NameOfStandLT(v string) predicate.Stand {
	return predicate.Stand(sql.FieldLT(FieldNameOfStand, v))
}

// NameOfStandLTE applies the LTE predicate on the "name_of_stand" field.
func NameOfStandLTE(v string) predicate.Stand {
	return predicate.Stand(sql.FieldLTE(FieldNameOfStand, v))
}

// NameOfStandContains applies the Contains predicate on the "name_of_stand" field.
func NameOfStandContains(v string) predicate.Stand {
	return predicate.Stand(sql.FieldContains(FieldNameOfStand, v))
}

// NameOfStandHasPrefix applies the HasPrefix predicate on the "name_of_stand" field.
func NameOfStandHasPrefix(v string) predicate.Stand {
	return predicate.Stand(sql.FieldHasPrefix(FieldNameOfStand, v))
}

// NameOfStandHasSuffix applies the HasSuffix predicate on the "name_of_stand" field.
func NameOfStandHasSuffix(v string) predicate.Stand {
	return predicate.Stand(sql.FieldHasSuffix(FieldNameOfStand, v))
}

// NameOfStandEqualFold applies the EqualFold predicate on the "name_of_stand" field.
func NameOfStandEqualFold(v string) predicate.Stand {
	return predicate.Stand(sql.FieldEqualFold(FieldNameOfStand, v))
}

// NameOfStandContainsFold applies the ContainsFold predicate on the "name_of_stand" field.
func NameOfStandContainsFold(v string) predicate.Stand {
	return predicate.Stand(sql.FieldContainsFold(FieldNameOfStand, v))
}

// TypeOfStandEQ applies the EQ predicate on the "type_of_stand" field.
func TypeOfStandEQ(v string) predicate.Stand {
	return predicate.Stand(sql.FieldEQ(FieldTypeOfStand, v))
}

// TypeOfStandNEQ applies the NEQ predicate on the "type_of_stand" field.
func TypeOfStandNEQ(v string) predicate.Stand {
	return predicate.Stand(sql.FieldNEQ(FieldTypeOfStand, v))
}

// TypeOfStandIn applies the In predicate on the "type_of_stand" field.
func TypeOfStandIn(vs ...string) predicate.Stand {
	return predicate.Stand(sql.FieldIn(FieldTypeOfStand, vs...))
}

// TypeOfStandNotIn applies the NotIn predicate on the "type_of_stand" field.
func TypeOfStandNotIn(vs ...string) predicate.Stand {
	return predicate.Stand(sql.FieldNotIn(FieldTypeOfStand, vs...))
}

// TypeOfStandGT applies the GT predicate on the "type_of_stand" field.
func TypeOfStandGT(v string) predicate.Stand {
	return predicate.Stand(sql.FieldGT(FieldTypeOfStand, v))
}

// TypeOfStandGTE applies the GTE predicate on the "type_of_stand" field.
func TypeOfStandGTE(v string) predicate.Stand {
	return predicate.Stand(sql.FieldGTE(FieldTypeOfStand, v))
}

// TypeOfStandLT applies the LT predicate on the "type_of_stand" field.
func TypeOfStandLT(v string) predicate.Stand {
	return predicate.Stand(sql.FieldLT(FieldTypeOfStand, v))
}

// TypeOfStandLTE applies the LTE predicate on the "type_of_stand" field.
func TypeOfStandLTE(v string) predicate.Stand {
	return predicate.Stand(sql.FieldLTE(FieldTypeOfStand, v))
}

// TypeOfStandContains applies the Contains predicate on the "type_of_stand" field.
func TypeOfStandContains(v string) predicate.Stand {
	return predicate.Stand(sql.FieldContains(FieldTypeOfStand, v))
}

// TypeOfStandHasPrefix applies the HasPrefix predicate on the "type_of_stand" field.
func TypeOfStandHasPrefix(v string) predicate.Stand {
	return predicate.Stand(sql.FieldHasPrefix(FieldTypeOfStand, v))
}

// TypeOfStandHasSuffix applies the HasSuffix predicate on the "type_of_stand" field.
func TypeOfStandHasSuffix(v string) predicate.Stand {
	return predicate.Stand(sql.FieldHasSuffix(FieldTypeOfStand, v))
}

// TypeOfStandEqualFold applies the EqualFold predicate on the "type_of_stand" field.
func TypeOfStandEqualFold(v string) predicate.Stand {
	return predicate.Stand(sql.FieldEqualFold(FieldTypeOfStand, v))
}

// TypeOfStandContainsFold applies the ContainsFold predicate on the "type_of_stand" field.
func TypeOfStandContainsFold(v string) predicate.Stand {
	return predicate.Stand(sql.FieldContainsFold(FieldTypeOfStand, v))
}

// HasSatellite applies the HasEdge predicate on the "satellite" edge.
func HasSatellite() predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SatelliteTable, SatelliteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSatelliteWith applies the HasEdge predicate on the "satellite" edge with a given conditions (other predicates).
func HasSatelliteWith(preds ...predicate.Satellite) predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := newSatelliteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTechnicalSpecification applies the HasEdge predicate on the "technical_specification" edge.
func HasTechnicalSpecification() predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TechnicalSpecificationTable, TechnicalSpecificationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTechnicalSpecificationWith applies the HasEdge predicate on the "technical_specification" edge with a given conditions (other predicates).
func HasTechnicalSpecificationWith(preds ...predicate.TechnicalSpecification) predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := newTechnicalSpecificationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSensors applies the HasEdge predicate on the "sensors" edge.
func HasSensors() predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SensorsTable, SensorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSensorsWith applies the HasEdge predicate on the "sensors" edge with a given conditions (other predicates).
func HasSensorsWith(preds ...predicate.Sensor) predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := newSensorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHardwareRequirements applies the HasEdge predicate on the "hardware_requirements" edge.
func HasHardwareRequirements() predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HardwareRequirementsTable, HardwareRequirementsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHardwareRequirementsWith applies the HasEdge predicate on the "hardware_requirements" edge with a given conditions (other predicates).
func HasHardwareRequirementsWith(preds ...predicate.HardwareRequirement) predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := newHardwareRequirementsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPhysicalTestData applies the HasEdge predicate on the "physical_test_data" edge.
func HasPhysicalTestData() predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PhysicalTestDataTable, PhysicalTestDataColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhysicalTestDataWith applies the HasEdge predicate on the "physical_test_data" edge with a given conditions (other predicates).
func HasPhysicalTestDataWith(preds ...predicate.PhysicalTestData) predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := newPhysicalTestDataStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMaterialOpCharacteristics applies the HasEdge predicate on the "material_op_characteristics" edge.
func HasMaterialOpCharacteristics() predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MaterialOpCharacteristicsTable, MaterialOpCharacteristicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMaterialOpCharacteristicsWith applies the HasEdge predicate on the "material_op_characteristics" edge with a given conditions (other predicates).
func HasMaterialOpCharacteristicsWith(preds ...predicate.MaterialOperationalCharacteristic) predicate.Stand {
	return predicate.Stand(func(s *sql.Selector) {
		step := newMaterialOpCharacteristicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Stand) predicate.Stand {
	return predicate.Stand(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Stand) predicate.Stand {
	return predicate.Stand(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Stand) predicate.Stand {
	return predicate.Stand(sql.NotPredicates(p))
}
