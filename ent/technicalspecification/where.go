// Code generated by ent, DO NOT EDIT.

package technicalspecification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"satfab.io/satfab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldEQ(FieldUpdatedAt, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldEQ(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldLTE(FieldUpdatedAt, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.FieldContainsFold(FieldDescription, v))
}

// HasSatellite applies the HasEdge predicate on the "satellite" edge.
func HasSatellite() predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SatelliteTable, SatelliteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSatelliteWith applies the HasEdge predicate on the "satellite" edge with a given conditions (other predicates).
func HasSatelliteWith(preds ...predicate.Satellite) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(func(s *sql.Selector) {
		step := newSatelliteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStands applies the HasEdge predicate on the "stands" edge.
func HasStands() predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StandsTable, StandsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStandsWith applies the HasEdge predicate on the "stands" edge with a given conditions (other predicates).
func HasStandsWith(preds ...predicate.Stand) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(func(s *sql.Selector) {
		step := newStandsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCalendarStages applies the HasEdge predicate on the "calendar_stages" edge.
func HasCalendarStages() predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CalendarStagesTable, CalendarStagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCalendarStagesWith applies the HasEdge predicate on the "calendar_stages" edge with a given conditions (other predicates).
func HasCalendarStagesWith(preds ...predicate.CalendarStage) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(func(s *sql.Selector) {
		step := newCalendarStagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TechnicalSpecification) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TechnicalSpecification) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TechnicalSpecification) predicate.TechnicalSpecification {
	return predicate.TechnicalSpecification(sql.NotPredicates(p))
}
