package service

import (
	"context"
	"fmt"

	"satfab.io/satfab/ent"
	"satfab.io/satfab/ent/electronics"
	"satfab.io/satfab/ent/satellite"
	apperrors "satfab.io/satfab/internal/pkg/errors"
)

// ElectronicsService handles electronics rows and their cost aggregates.
type ElectronicsService struct {
	client *ent.Client
}

// NewElectronicsService creates a new ElectronicsService.
func NewElectronicsService(client *ent.Client) *ElectronicsService {
	return &ElectronicsService{client: client}
}

// MinMaxCost carries the cheapest and the most expensive electronics row of
// a satellite. All fields are nil when the satellite has no electronics.
type MinMaxCost struct {
	MinCost  *float64
	MinModel *string
	MaxCost  *float64
	MaxModel *string
}

// List returns the electronics rows of a satellite. An unknown satellite id
// yields an empty list, matching plain relational filtering.
func (s *ElectronicsService) List(ctx context.Context, satelliteID int) ([]*ent.Electronics, error) {
	rows, err := s.client.Electronics.Query().
		Where(electronics.HasSatelliteWith(satellite.ID(satelliteID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list electronics: %w", err)
	}
	return rows, nil
}

// TotalCost returns the sum of price over a satellite's electronics, 0 when
// there are none.
func (s *ElectronicsService) TotalCost(ctx context.Context, satelliteID int) (float64, error) {
	var rows []struct {
		Total *float64 `json:"total"`
	}
	err := s.client.Electronics.Query().
		Where(electronics.HasSatelliteWith(satellite.ID(satelliteID))).
		Aggregate(ent.As(ent.Sum(electronics.FieldPrice), "total")).
		Scan(ctx, &rows)
	if err != nil {
		return 0, fmt.Errorf("sum electronics price: %w", err)
	}
	// SUM over zero rows is NULL; the contract says 0.
	if len(rows) == 0 || rows[0].Total == nil {
		return 0, nil
	}
	return *rows[0].Total, nil
}

// AvgCost returns the arithmetic mean of price over a satellite's
// electronics, 0 when there are none.
func (s *ElectronicsService) AvgCost(ctx context.Context, satelliteID int) (float64, error) {
	var rows []struct {
		Avg *float64 `json:"avg"`
	}
	err := s.client.Electronics.Query().
		Where(electronics.HasSatelliteWith(satellite.ID(satelliteID))).
		Aggregate(ent.As(ent.Mean(electronics.FieldPrice), "avg")).
		Scan(ctx, &rows)
	if err != nil {
		return 0, fmt.Errorf("avg electronics price: %w", err)
	}
	if len(rows) == 0 || rows[0].Avg == nil {
		return 0, nil
	}
	return *rows[0].Avg, nil
}

// MinMax returns the rows with the lowest and highest price. Price ties are
// resolved by the store's default ordering.
func (s *ElectronicsService) MinMax(ctx context.Context, satelliteID int) (MinMaxCost, error) {
	var out MinMaxCost

	minRow, err := s.client.Electronics.Query().
		Where(electronics.HasSatelliteWith(satellite.ID(satelliteID))).
		Order(ent.Asc(electronics.FieldPrice)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return out, nil
		}
		return out, fmt.Errorf("min electronics price: %w", err)
	}

	maxRow, err := s.client.Electronics.Query().
		Where(electronics.HasSatelliteWith(satellite.ID(satelliteID))).
		Order(ent.Desc(electronics.FieldPrice)).
		First(ctx)
	if err != nil {
		return out, fmt.Errorf("max electronics price: %w", err)
	}

	out.MinCost = &minRow.Price
	out.MinModel = &minRow.Model
	out.MaxCost = &maxRow.Price
	out.MaxModel = &maxRow.Model
	return out, nil
}

// Add creates an electronics row for a satellite. A negative price is
// rejected before any write.
func (s *ElectronicsService) Add(ctx context.Context, satelliteID int, model, typ, location string, price float64) (*ent.Electronics, error) {
	if price < 0 {
		return nil, apperrors.ErrNegativePrice()
	}

	exists, err := s.client.Satellite.Query().
		Where(satellite.ID(satelliteID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check satellite: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound(apperrors.CodeSatelliteNotFound, "satellite not found")
	}

	row, err := s.client.Electronics.Create().
		SetModel(model).
		SetType(typ).
		SetLocation(location).
		SetPrice(price).
		SetSatelliteID(satelliteID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create electronics: %w", err)
	}
	return row, nil
}

// UpdatePrice sets a new price on an electronics row. The validation happens
// before the write, so a rejected update leaves the stored price untouched.
func (s *ElectronicsService) UpdatePrice(ctx context.Context, id int, price float64) (*ent.Electronics, error) {
	if price < 0 {
		return nil, apperrors.ErrNegativePrice()
	}

	row, err := s.client.Electronics.UpdateOneID(id).
		SetPrice(price).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeElectronicsNotFound, "electronics not found")
		}
		return nil, fmt.Errorf("update electronics price: %w", err)
	}
	return row, nil
}

// Delete removes an electronics row.
func (s *ElectronicsService) Delete(ctx context.Context, id int) error {
	if err := s.client.Electronics.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeElectronicsNotFound, "electronics not found")
		}
		return fmt.Errorf("delete electronics: %w", err)
	}
	return nil
}
