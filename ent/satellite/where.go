// Code generated by ent, DO NOT EDIT.

package satellite

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"satfab.io/satfab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Satellite {
	return predicate.Satellite(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Satellite {
	return predicate.Satellite(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Satellite {
	return predicate.Satellite(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Satellite {
	return predicate.Satellite(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Satellite {
	return predicate.Satellite(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Satellite {
	return predicate.Satellite(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Satellite {
	return predicate.Satellite(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Satellite {
	return predicate.Satellite(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Satellite {
	return predicate.Satellite(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldEQ(FieldName, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldEQ(FieldType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Satellite {
	return predicate.Satellite(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Satellite {
	return predicate.Satellite(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Satellite {
	return predicate.Satellite(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldContainsFold(FieldName, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Satellite {
	return predicate.Satellite(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Satellite {
	return predicate.Satellite(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Satellite {
	return predicate.Satellite(sql.FieldContainsFold(FieldType, v))
}

// HasElectronics applies the HasEdge predicate on the "electronics" edge.
func HasElectronics() predicate.Satellite {
	return predicate.Satellite(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ElectronicsTable, ElectronicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasElectronicsWith applies the HasEdge predicate on the "electronics" edge with a given conditions (other predicates).
func HasElectronicsWith(preds ...predicate.Electronics) predicate.Satellite {
	return predicate.Satellite(func(s *sql.Selector) {
		step := newElectronicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCalendarStages applies the HasEdge predicate on the "calendar_stages" edge.
func HasCalendarStages() predicate.Satellite {
	return predicate.Satellite(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CalendarStagesTable, CalendarStagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCalendarStagesWith applies the HasEdge predicate on the "calendar_stages" edge with a given conditions (other predicates).
func HasCalendarStagesWith(preds ...predicate.CalendarStage) predicate.Satellite {
	return predicate.Satellite(func(s *sql.Selector) {
		step := newCalendarStagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTechnicalSpecifications applies the HasEdge predicate on the "technical_specifications" edge.
func HasTechnicalSpecifications() predicate.Satellite {
	return predicate.Satellite(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TechnicalSpecificationsTable, TechnicalSpecificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTechnicalSpecificationsWith applies the HasEdge predicate on the "technical_specifications" edge with a given conditions (other predicates).
func HasTechnicalSpecificationsWith(preds ...predicate.TechnicalSpecification) predicate.Satellite {
	return predicate.Satellite(func(s *sql.Selector) {
		step := newTechnicalSpecificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOpCharacteristics applies the HasEdge predicate on the "op_characteristics" edge.
func HasOpCharacteristics() predicate.Satellite {
	return predicate.Satellite(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OpCharacteristicsTable, OpCharacteristicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOpCharacteristicsWith applies the HasEdge predicate on the "op_characteristics" edge with a given conditions (other predicates).
func HasOpCharacteristicsWith(preds ...predicate.SatelliteOpCharacteristic) predicate.Satellite {
	return predicate.Satellite(func(s *sql.Selector) {
		step := newOpCharacteristicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStands applies the HasEdge predicate on the "stands" edge.
func HasStands() predicate.Satellite {
	return predicate.Satellite(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StandsTable, StandsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStandsWith applies the HasEdge predicate on the "stands" edge with a given conditions (other predicates).
func HasStandsWith(preds ...predicate.Stand) predicate.Satellite {
	return predicate.Satellite(func(s *sql.Selector) {
		step := newStandsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Satellite) predicate.Satellite {
	return predicate.Satellite(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Satellite) predicate.Satellite {
	return predicate.Satellite(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Satellite) predicate.Satellite {
	return predicate.Satellite(sql.NotPredicates(p))
}
