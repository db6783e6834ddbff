package service

import (
	"context"
	"fmt"

	"satfab.io/satfab/ent"
	"satfab.io/satfab/ent/hardwarerequirement"
	"satfab.io/satfab/ent/physicaltestdata"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/sensor"
	"satfab.io/satfab/ent/stand"
	apperrors "satfab.io/satfab/internal/pkg/errors"
)

// StandService handles test stands and their attached sensors, hardware
// requirements and physical test data.
type StandService struct {
	client *ent.Client
}

// NewStandService creates a new StandService.
func NewStandService(client *ent.Client) *StandService {
	return &StandService{client: client}
}

// StandScope selects which stand subtree a listing covers: one stand, all
// stands of one satellite, or everything. The modes are mutually exclusive
// and standID wins when both are set, matching the contract's argument
// precedence.
type StandScope struct {
	StandID     *int
	SatelliteID *int
}

// ListStands returns stands, filtered to one satellite when given.
func (s *StandService) ListStands(ctx context.Context, satelliteID *int) ([]*ent.Stand, error) {
	q := s.client.Stand.Query()
	if satelliteID != nil {
		q = q.Where(stand.HasSatelliteWith(satellite.ID(*satelliteID)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stands: %w", err)
	}
	return rows, nil
}

// ListSensors returns sensors in the given scope.
func (s *StandService) ListSensors(ctx context.Context, scope StandScope) ([]*ent.Sensor, error) {
	q := s.client.Sensor.Query()
	switch {
	case scope.StandID != nil:
		q = q.Where(sensor.HasStandWith(stand.ID(*scope.StandID)))
	case scope.SatelliteID != nil:
		q = q.Where(sensor.HasStandWith(stand.HasSatelliteWith(satellite.ID(*scope.SatelliteID))))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}
	return rows, nil
}

// ListHardwareRequirements returns hardware requirements in the given scope.
func (s *StandService) ListHardwareRequirements(ctx context.Context, scope StandScope) ([]*ent.HardwareRequirement, error) {
	q := s.client.HardwareRequirement.Query()
	switch {
	case scope.StandID != nil:
		q = q.Where(hardwarerequirement.HasStandWith(stand.ID(*scope.StandID)))
	case scope.SatelliteID != nil:
		q = q.Where(hardwarerequirement.HasStandWith(stand.HasSatelliteWith(satellite.ID(*scope.SatelliteID))))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hardware requirements: %w", err)
	}
	return rows, nil
}

// ListPhysicalTestData returns all test-data rows of one stand.
func (s *StandService) ListPhysicalTestData(ctx context.Context, standID int) ([]*ent.PhysicalTestData, error) {
	rows, err := s.client.PhysicalTestData.Query().
		Where(physicaltestdata.HasStandWith(stand.ID(standID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list physical test data: %w", err)
	}
	return rows, nil
}

// AddStand creates a stand for a satellite. Like calendar stages, stands
// require the satellite to already carry a technical specification.
func (s *StandService) AddStand(ctx context.Context, satelliteID int, nameOfStand, typeOfStand string) (*ent.Stand, error) {
	spec, err := firstTechSpec(ctx, s.client, satelliteID)
	if err != nil {
		return nil, err
	}

	row, err := s.client.Stand.Create().
		SetNameOfStand(nameOfStand).
		SetTypeOfStand(typeOfStand).
		SetSatelliteID(satelliteID).
		SetTechnicalSpecificationID(spec.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create stand: %w", err)
	}
	return row, nil
}

// DeleteStand removes a stand. Dependent sensors, requirements or test data
// make the delete fail with the store's referential-integrity error.
func (s *StandService) DeleteStand(ctx context.Context, id int) error {
	if err := s.client.Stand.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeStandNotFound, "stand not found")
		}
		return fmt.Errorf("delete stand: %w", err)
	}
	return nil
}

// AddSensor registers a sensor on a stand. value and unit may be nil and are
// stored as NULL.
func (s *StandService) AddSensor(ctx context.Context, standID int, location string, value *float64, unit *string, description string) (*ent.Sensor, error) {
	exists, err := s.client.Stand.Query().
		Where(stand.ID(standID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check stand: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound(apperrors.CodeStandNotFound, "stand not found")
	}

	create := s.client.Sensor.Create().
		SetLocation(location).
		SetDescription(description).
		SetStandID(standID).
		SetNillableValue(value).
		SetNillableUnit(unit)

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create sensor: %w", err)
	}
	return row, nil
}

// DeleteSensor removes a sensor.
func (s *StandService) DeleteSensor(ctx context.Context, id int) error {
	if err := s.client.Sensor.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeSensorNotFound, "sensor not found")
		}
		return fmt.Errorf("delete sensor: %w", err)
	}
	return nil
}
