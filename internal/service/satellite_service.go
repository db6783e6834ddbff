// Package service implements the business logic of the SatFab contract:
// entity CRUD, cost and duration aggregates, and the derived calendar stage
// ordering.
package service

import (
	"context"
	"fmt"

	"satfab.io/satfab/ent"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
	"satfab.io/satfab/ent/technicalspecification"
	apperrors "satfab.io/satfab/internal/pkg/errors"
)

// SatelliteService handles satellites, their technical specifications and
// operational characteristics.
type SatelliteService struct {
	client *ent.Client
}

// NewSatelliteService creates a new SatelliteService.
func NewSatelliteService(client *ent.Client) *SatelliteService {
	return &SatelliteService{client: client}
}

// List returns all satellites in store order.
func (s *SatelliteService) List(ctx context.Context) ([]*ent.Satellite, error) {
	rows, err := s.client.Satellite.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list satellites: %w", err)
	}
	return rows, nil
}

// Add creates a satellite.
func (s *SatelliteService) Add(ctx context.Context, name, typ string) (*ent.Satellite, error) {
	row, err := s.client.Satellite.Create().
		SetName(name).
		SetType(typ).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create satellite: %w", err)
	}
	return row, nil
}

// ListTechnicalSpecifications returns the specifications of a satellite.
func (s *SatelliteService) ListTechnicalSpecifications(ctx context.Context, satelliteID int) ([]*ent.TechnicalSpecification, error) {
	rows, err := s.client.TechnicalSpecification.Query().
		Where(technicalspecification.HasSatelliteWith(satellite.ID(satelliteID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list technical specifications: %w", err)
	}
	return rows, nil
}

// ListOpCharacteristics returns the operational characteristics of a satellite.
func (s *SatelliteService) ListOpCharacteristics(ctx context.Context, satelliteID int) ([]*ent.SatelliteOpCharacteristic, error) {
	rows, err := s.client.SatelliteOpCharacteristic.Query().
		Where(satelliteopcharacteristic.HasSatelliteWith(satellite.ID(satelliteID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list satellite op characteristics: %w", err)
	}
	return rows, nil
}

// AddOpCharacteristic records an operational characteristic on a satellite.
func (s *SatelliteService) AddOpCharacteristic(ctx context.Context, satelliteID int, parameterName string, value float64, unit string) (*ent.SatelliteOpCharacteristic, error) {
	exists, err := s.client.Satellite.Query().
		Where(satellite.ID(satelliteID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check satellite: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound(apperrors.CodeSatelliteNotFound, "satellite not found")
	}

	row, err := s.client.SatelliteOpCharacteristic.Create().
		SetParameterName(parameterName).
		SetValue(value).
		SetUnit(unit).
		SetSatelliteID(satelliteID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create satellite op characteristic: %w", err)
	}
	return row, nil
}
