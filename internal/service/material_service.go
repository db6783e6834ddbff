package service

import (
	"context"
	"fmt"

	"satfab.io/satfab/ent"
	"satfab.io/satfab/ent/material"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/stand"
	apperrors "satfab.io/satfab/internal/pkg/errors"
)

// SortOrder selects ascending or descending ordering on list queries.
type SortOrder string

// Sort orders accepted by the contract.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Valid reports whether the sort order is one the contract accepts.
func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// MaterialService handles the material catalog and material characteristics.
type MaterialService struct {
	client *ent.Client
}

// NewMaterialService creates a new MaterialService.
func NewMaterialService(client *ent.Client) *MaterialService {
	return &MaterialService{client: client}
}

// OpCharFilter selects which material operational characteristics to list.
// Exactly one mode applies; the zero value means no filtering.
type OpCharFilter struct {
	StandID    *int
	MaterialID *int
}

// List returns all materials, optionally ordered by amount. A nil sortByAmount
// leaves the store's default order.
func (s *MaterialService) List(ctx context.Context, sortByAmount *SortOrder) ([]*ent.Material, error) {
	q := s.client.Material.Query()
	if sortByAmount != nil {
		switch *sortByAmount {
		case SortAsc:
			q = q.Order(ent.Asc(material.FieldAmount))
		case SortDesc:
			q = q.Order(ent.Desc(material.FieldAmount))
		}
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return rows, nil
}

// ListFull returns all materials with their functional characteristics and
// operational characteristics (each carrying its stand) eagerly loaded.
func (s *MaterialService) ListFull(ctx context.Context, sortByAmount *SortOrder) ([]*ent.Material, error) {
	q := s.client.Material.Query().
		WithFunctionalCharacteristics().
		WithOperationalCharacteristics(func(oq *ent.MaterialOperationalCharacteristicQuery) {
			oq.WithStand()
		})
	if sortByAmount != nil {
		switch *sortByAmount {
		case SortAsc:
			q = q.Order(ent.Asc(material.FieldAmount))
		case SortDesc:
			q = q.Order(ent.Desc(material.FieldAmount))
		}
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list materials full: %w", err)
	}
	return rows, nil
}

// ListOpCharacteristics returns material operational characteristics filtered
// by stand and/or material, each row carrying its stand.
func (s *MaterialService) ListOpCharacteristics(ctx context.Context, filter OpCharFilter) ([]*ent.MaterialOperationalCharacteristic, error) {
	q := s.client.MaterialOperationalCharacteristic.Query().WithStand()
	if filter.StandID != nil {
		q = q.Where(materialoperationalcharacteristic.HasStandWith(stand.ID(*filter.StandID)))
	}
	if filter.MaterialID != nil {
		q = q.Where(materialoperationalcharacteristic.HasMaterialWith(material.ID(*filter.MaterialID)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list material op characteristics: %w", err)
	}
	return rows, nil
}

// Add creates a material.
func (s *MaterialService) Add(ctx context.Context, typeOfMaterial string, amount float64, unit string) (*ent.Material, error) {
	row, err := s.client.Material.Create().
		SetTypeOfMaterial(typeOfMaterial).
		SetAmount(amount).
		SetUnit(unit).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create material: %w", err)
	}
	return row, nil
}

// Delete removes a material. Deleting a material that still has
// characteristics fails with the store's referential-integrity error.
func (s *MaterialService) Delete(ctx context.Context, id int) error {
	if err := s.client.Material.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeMaterialNotFound, "material not found")
		}
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}
