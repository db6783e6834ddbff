package query

import (
	"context"
	"encoding/json"

	apperrors "satfab.io/satfab/internal/pkg/errors"
	"satfab.io/satfab/internal/service"
)

// requireID unwraps a required id argument.
func requireID(v *int, name string) (int, error) {
	if v == nil {
		return 0, apperrors.BadRequest(apperrors.CodeValidationFailed, name+" is required")
	}
	return *v, nil
}

// sortOrder validates an optional sortByAmount argument.
func sortOrder(v *string) (*service.SortOrder, error) {
	if v == nil {
		return nil, nil
	}
	order := service.SortOrder(*v)
	if !order.Valid() {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "sortByAmount must be asc or desc")
	}
	return &order, nil
}

type satelliteIDArgs struct {
	SatelliteID *int `json:"satelliteId"`
}

type standIDArgs struct {
	StandID *int `json:"standId"`
}

type sortArgs struct {
	SortByAmount *string `json:"sortByAmount"`
}

type standScopeArgs struct {
	StandID     *int `json:"standId"`
	SatelliteID *int `json:"satelliteId"`
}

type opCharFilterArgs struct {
	StandID    *int `json:"standId"`
	MaterialID *int `json:"materialId"`
}

func (s *Server) listSatellites(ctx context.Context, args json.RawMessage) (any, error) {
	var a struct{}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	rows, err := s.satellites.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSatellites(rows), nil
}

func (s *Server) listTechnicalSpecifications(ctx context.Context, args json.RawMessage) (any, error) {
	var a satelliteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	rows, err := s.satellites.ListTechnicalSpecifications(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTechnicalSpecifications(rows), nil
}

func (s *Server) listSatelliteOperationalCharacteristics(ctx context.Context, args json.RawMessage) (any, error) {
	var a satelliteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	rows, err := s.satellites.ListOpCharacteristics(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSatelliteOpCharacteristics(rows), nil
}

func (s *Server) listElectronics(ctx context.Context, args json.RawMessage) (any, error) {
	var a satelliteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	rows, err := s.electronics.List(ctx, id)
	if err != nil {
		return nil, err
	}
	return toElectronicsList(rows), nil
}

func (s *Server) electronicsTotalCost(ctx context.Context, args json.RawMessage) (any, error) {
	var a satelliteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	return s.electronics.TotalCost(ctx, id)
}

func (s *Server) electronicsAvgCost(ctx context.Context, args json.RawMessage) (any, error) {
	var a satelliteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	return s.electronics.AvgCost(ctx, id)
}

func (s *Server) electronicsMinMaxCost(ctx context.Context, args json.RawMessage) (any, error) {
	var a satelliteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	mm, err := s.electronics.MinMax(ctx, id)
	if err != nil {
		return nil, err
	}
	return ElectronicsMinMax{
		MinCost:  mm.MinCost,
		MinModel: mm.MinModel,
		MaxCost:  mm.MaxCost,
		MaxModel: mm.MaxModel,
	}, nil
}

func (s *Server) listMaterials(ctx context.Context, args json.RawMessage) (any, error) {
	var a sortArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	order, err := sortOrder(a.SortByAmount)
	if err != nil {
		return nil, err
	}
	rows, err := s.materials.List(ctx, order)
	if err != nil {
		return nil, err
	}
	return toMaterials(rows), nil
}

func (s *Server) listMaterialsFull(ctx context.Context, args json.RawMessage) (any, error) {
	var a sortArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	order, err := sortOrder(a.SortByAmount)
	if err != nil {
		return nil, err
	}
	rows, err := s.materials.ListFull(ctx, order)
	if err != nil {
		return nil, err
	}
	return toMaterialsFull(rows), nil
}

func (s *Server) listMaterialOperationalCharacteristics(ctx context.Context, args json.RawMessage) (any, error) {
	var a opCharFilterArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	rows, err := s.materials.ListOpCharacteristics(ctx, service.OpCharFilter{
		StandID:    a.StandID,
		MaterialID: a.MaterialID,
	})
	if err != nil {
		return nil, err
	}
	return toMaterialOpCharacteristics(rows), nil
}

func (s *Server) listStands(ctx context.Context, args json.RawMessage) (any, error) {
	var a satelliteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	rows, err := s.stands.ListStands(ctx, a.SatelliteID)
	if err != nil {
		return nil, err
	}
	return toStands(rows), nil
}

func (s *Server) listSensors(ctx context.Context, args json.RawMessage) (any, error) {
	var a standScopeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	rows, err := s.stands.ListSensors(ctx, service.StandScope{
		StandID:     a.StandID,
		SatelliteID: a.SatelliteID,
	})
	if err != nil {
		return nil, err
	}
	return toSensors(rows), nil
}

func (s *Server) listHardwareRequirements(ctx context.Context, args json.RawMessage) (any, error) {
	var a standScopeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	rows, err := s.stands.ListHardwareRequirements(ctx, service.StandScope{
		StandID:     a.StandID,
		SatelliteID: a.SatelliteID,
	})
	if err != nil {
		return nil, err
	}
	return toHardwareRequirements(rows), nil
}

func (s *Server) listPhysicalTestData(ctx context.Context, args json.RawMessage) (any, error) {
	var a standIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.StandID, "standId")
	if err != nil {
		return nil, err
	}
	rows, err := s.stands.ListPhysicalTestData(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPhysicalTestData(rows), nil
}

func (s *Server) listCalendarStages(ctx context.Context, args json.RawMessage) (any, error) {
	var a satelliteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	rows, err := s.calendar.ListRanked(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCalendarStages(rows), nil
}

func (s *Server) calendarStageStats(ctx context.Context, args json.RawMessage) (any, error) {
	var a satelliteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	stats, err := s.calendar.Stats(ctx, id)
	if err != nil {
		return nil, err
	}
	return CalendarStageStats{
		AvgDuration:   stats.AvgDuration,
		MaxDuration:   stats.MaxDuration,
		MinDuration:   stats.MinDuration,
		TotalDuration: stats.TotalDuration,
	}, nil
}
