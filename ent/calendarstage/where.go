// Code generated by ent, DO NOT EDIT.

package calendarstage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"satfab.io/satfab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameOfStage applies equality check predicate on the "name_of_stage" field. It's identical to NameOfStageEQ.
func NameOfStage(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldNameOfStage, v))
}

// TimeOfFrame applies equality check predicate on the "time_of_frame" field. It's identical to TimeOfFrameEQ.
func TimeOfFrame(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldTimeOfFrame, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldDuration, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameOfStageEQ applies the EQ predicate on the "name_of_stage" field.
func NameOfStageEQ(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldNameOfStage, v))
}

// NameOfStageNEQ applies the NEQ predicate on the "name_of_stage" field.
func NameOfStageNEQ(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNEQ(FieldNameOfStage, v))
}

// NameOfStageIn applies the In predicate on the "name_of_stage" field.
func NameOfStageIn(vs ...string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldIn(FieldNameOfStage, vs...))
}

// NameOfStageNotIn applies the NotIn predicate on the "name_of_stage" field.
func NameOfStageNotIn(vs ...string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNotIn(FieldNameOfStage, vs...))
}

// NameOfStageGT applies the GT predicate on the "name_of_stage" field.
func NameOfStageGT(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGT(FieldNameOfStage, v))
}

// NameOfStageGTE applies the GTE predicate on the "name_of_stage" field.
func NameOfStageGTE(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGTE(FieldNameOfStage, v))
}

// NameOfStageLT applies the LT predicate on the "name_of_stage" field.
func NameOfStageLT(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLT(FieldNameOfStage, v))
}

// NameOfStageLTE applies the LTE predicate on the "name_of_stage" field.
func NameOfStageLTE(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLTE(FieldNameOfStage, v))
}

// NameOfStageContains applies the Contains predicate on the "name_of_stage" field.
func NameOfStageContains(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldContains(FieldNameOfStage, v))
}

// NameOfStageHasPrefix applies the HasPrefix predicate on the "name_of_stage" field.
func NameOfStageHasPrefix(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldHasPrefix(FieldNameOfStage, v))
}

// NameOfStageHasSuffix applies the HasSuffix predicate on the "name_of_stage" field.
func NameOfStageHasSuffix(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldHasSuffix(FieldNameOfStage, v))
}

// NameOfStageEqualFold applies the EqualFold predicate on the "name_of_stage" field.
func NameOfStageEqualFold(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEqualFold(FieldNameOfStage, v))
}

// NameOfStageContainsFold applies the ContainsFold predicate on the "name_of_stage" field.
func NameOfStageContainsFold(v string) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldContainsFold(FieldNameOfStage, v))
}

// TimeOfFrameEQ applies the EQ predicate on the "time_of_frame" field.
func TimeOfFrameEQ(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldTimeOfFrame, v))
}

// TimeOfFrameNEQ applies the NEQ predicate on the "time_of_frame" field.
func TimeOfFrameNEQ(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNEQ(FieldTimeOfFrame, v))
}

// TimeOfFrameIn applies the In predicate on the "time_of_frame" field.
func TimeOfFrameIn(vs ...time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldIn(FieldTimeOfFrame, vs...))
}

// TimeOfFrameNotIn applies the NotIn predicate on the "time_of_frame" field.
func TimeOfFrameNotIn(vs ...time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNotIn(FieldTimeOfFrame, vs...))
}

// TimeOfFrameGT applies the GT predicate on the "time_of_frame" field.
func TimeOfFrameGT(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGT(FieldTimeOfFrame, v))
}

// TimeOfFrameGTE applies the GTE predicate on the "time_of_frame" field.
func TimeOfFrameGTE(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGTE(FieldTimeOfFrame, v))
}

// TimeOfFrameLT applies the LT predicate on the "time_of_frame" field.
func TimeOfFrameLT(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLT(FieldTimeOfFrame, v))
}

// TimeOfFrameLTE applies the LTE predicate on the "time_of_frame" field.
func TimeOfFrameLTE(v time.Time) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLTE(FieldTimeOfFrame, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v int) predicate.CalendarStage {
	return predicate.CalendarStage(sql.FieldLTE(FieldDuration, v))
}

// HasSatellite applies the HasEdge predicate on the "satellite" edge.
func HasSatellite() predicate.CalendarStage {
	return predicate.CalendarStage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SatelliteTable, SatelliteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSatelliteWith applies the HasEdge predicate on the "satellite" edge with a given conditions (other predicates).
func HasSatelliteWith(preds ...predicate.Satellite) predicate.CalendarStage {
	return predicate.CalendarStage(func(s *sql.Selector) {
		step := newSatelliteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTechnicalSpecification applies the HasEdge predicate on the "technical_specification" edge.
func HasTechnicalSpecification() predicate.CalendarStage {
	return predicate.CalendarStage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TechnicalSpecificationTable, TechnicalSpecificationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTechnicalSpecificationWith applies the HasEdge predicate on the "technical_specification" edge with a given conditions (other predicates).
func HasTechnicalSpecificationWith(preds ...predicate.TechnicalSpecification) predicate.CalendarStage {
	return predicate.CalendarStage(func(s *sql.Selector) {
		step := newTechnicalSpecificationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarStage) predicate.CalendarStage {
	return predicate.CalendarStage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarStage) predicate.CalendarStage {
	return predicate.CalendarStage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarStage) predicate.CalendarStage {
	return predicate.CalendarStage(sql.NotPredicates(p))
}
