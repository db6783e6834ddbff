package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"satfab.io/satfab/ent"
	"satfab.io/satfab/ent/calendarstage"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/technicalspecification"
	apperrors "satfab.io/satfab/internal/pkg/errors"
	"satfab.io/satfab/internal/pkg/logger"
)

// CalendarService handles calendar stages and their derived ordering.
type CalendarService struct {
	client *ent.Client
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(client *ent.Client) *CalendarService {
	return &CalendarService{client: client}
}

// RankedStage is a calendar stage annotated with its 1-based position among
// the satellite's stages ordered by time_of_frame.
type RankedStage struct {
	*ent.CalendarStage
	StageOrder int
}

// StageStats carries duration aggregates over a satellite's stages. All
// values are 0 when the satellite has no stages; that is the documented
// contract even though min/max over zero rows has no mathematical value.
type StageStats struct {
	AvgDuration   float64
	MaxDuration   float64
	MinDuration   float64
	TotalDuration float64
}

// ListRanked returns a satellite's stages ordered by time_of_frame ascending
// with dense 1..N stage orders attached.
func (s *CalendarService) ListRanked(ctx context.Context, satelliteID int) ([]RankedStage, error) {
	rows, err := s.client.CalendarStage.Query().
		Where(calendarstage.HasSatelliteWith(satellite.ID(satelliteID))).
		Order(ent.Asc(calendarstage.FieldTimeOfFrame), ent.Asc(calendarstage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendar stages: %w", err)
	}
	return rankStages(rows), nil
}

// rankStages assigns 1-based orders to stages sorted by time_of_frame.
// Ties on time_of_frame are broken by ascending id, i.e. insertion order,
// which keeps the ranking stable across reads.
func rankStages(rows []*ent.CalendarStage) []RankedStage {
	sorted := make([]*ent.CalendarStage, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].TimeOfFrame.Equal(sorted[j].TimeOfFrame) {
			return sorted[i].TimeOfFrame.Before(sorted[j].TimeOfFrame)
		}
		return sorted[i].ID < sorted[j].ID
	})

	ranked := make([]RankedStage, len(sorted))
	for i, st := range sorted {
		ranked[i] = RankedStage{CalendarStage: st, StageOrder: i + 1}
	}
	return ranked
}

// Stats returns duration aggregates for a satellite's stages.
func (s *CalendarService) Stats(ctx context.Context, satelliteID int) (StageStats, error) {
	var rows []struct {
		Avg *float64 `json:"avg_duration"`
		Max *float64 `json:"max_duration"`
		Min *float64 `json:"min_duration"`
		Sum *float64 `json:"total_duration"`
	}
	err := s.client.CalendarStage.Query().
		Where(calendarstage.HasSatelliteWith(satellite.ID(satelliteID))).
		Aggregate(
			ent.As(ent.Mean(calendarstage.FieldDuration), "avg_duration"),
			ent.As(ent.Max(calendarstage.FieldDuration), "max_duration"),
			ent.As(ent.Min(calendarstage.FieldDuration), "min_duration"),
			ent.As(ent.Sum(calendarstage.FieldDuration), "total_duration"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return StageStats{}, fmt.Errorf("calendar stage stats: %w", err)
	}

	var stats StageStats
	if len(rows) == 0 {
		return stats, nil
	}
	// Aggregates over zero rows come back NULL; the contract says 0.
	if rows[0].Avg != nil {
		stats.AvgDuration = *rows[0].Avg
	}
	if rows[0].Max != nil {
		stats.MaxDuration = *rows[0].Max
	}
	if rows[0].Min != nil {
		stats.MinDuration = *rows[0].Min
	}
	if rows[0].Sum != nil {
		stats.TotalDuration = *rows[0].Sum
	}
	return stats, nil
}

// Add creates a stage for a satellite. The satellite must already carry a
// technical specification; the stage links to the first one. The returned
// stage carries its recomputed order; if the re-rank read fails after the
// create committed, the create still counts as successful and the order
// defaults to 1.
func (s *CalendarService) Add(ctx context.Context, satelliteID int, nameOfStage string, timeOfFrame time.Time, duration int) (RankedStage, error) {
	if duration < 0 {
		return RankedStage{}, apperrors.BadRequest(apperrors.CodeValidationFailed, "duration must not be negative")
	}

	spec, err := firstTechSpec(ctx, s.client, satelliteID)
	if err != nil {
		return RankedStage{}, err
	}

	created, err := s.client.CalendarStage.Create().
		SetNameOfStage(nameOfStage).
		SetTimeOfFrame(timeOfFrame).
		SetDuration(duration).
		SetSatelliteID(satelliteID).
		SetTechnicalSpecificationID(spec.ID).
		Save(ctx)
	if err != nil {
		return RankedStage{}, fmt.Errorf("create calendar stage: %w", err)
	}

	return s.withOrder(ctx, satelliteID, created), nil
}

// Update rewrites a stage's name, date and duration, then recomputes its
// order against the satellite's full stage set.
func (s *CalendarService) Update(ctx context.Context, id int, nameOfStage string, timeOfFrame time.Time, duration int) (RankedStage, error) {
	if duration < 0 {
		return RankedStage{}, apperrors.BadRequest(apperrors.CodeValidationFailed, "duration must not be negative")
	}

	updated, err := s.client.CalendarStage.UpdateOneID(id).
		SetNameOfStage(nameOfStage).
		SetTimeOfFrame(timeOfFrame).
		SetDuration(duration).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return RankedStage{}, apperrors.NotFound(apperrors.CodeStageNotFound, "calendar stage not found")
		}
		return RankedStage{}, fmt.Errorf("update calendar stage: %w", err)
	}

	satID, err := updated.QuerySatellite().OnlyID(ctx)
	if err != nil {
		logger.Warn("stage order recompute failed after update", zap.Int("stage_id", id), zap.Error(err))
		return RankedStage{CalendarStage: updated, StageOrder: 1}, nil
	}
	return s.withOrder(ctx, satID, updated), nil
}

// Delete removes a stage.
func (s *CalendarService) Delete(ctx context.Context, id int) error {
	if err := s.client.CalendarStage.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeStageNotFound, "calendar stage not found")
		}
		return fmt.Errorf("delete calendar stage: %w", err)
	}
	return nil
}

// withOrder re-ranks the satellite's stages and attaches the order of the
// given stage. The write has already committed, so a failed re-rank read is
// logged and the order falls back to 1 rather than failing the mutation.
func (s *CalendarService) withOrder(ctx context.Context, satelliteID int, stage *ent.CalendarStage) RankedStage {
	ranked, err := s.ListRanked(ctx, satelliteID)
	if err != nil {
		logger.Warn("stage order recompute failed",
			zap.Int("satellite_id", satelliteID),
			zap.Int("stage_id", stage.ID),
			zap.Error(err),
		)
		return RankedStage{CalendarStage: stage, StageOrder: 1}
	}
	for _, r := range ranked {
		if r.ID == stage.ID {
			return RankedStage{CalendarStage: stage, StageOrder: r.StageOrder}
		}
	}
	return RankedStage{CalendarStage: stage, StageOrder: 1}
}

// firstTechSpec resolves the anchor technical specification of a satellite.
// Stands share the same precondition as calendar stages: no specification,
// no creation.
func firstTechSpec(ctx context.Context, client *ent.Client, satelliteID int) (*ent.TechnicalSpecification, error) {
	exists, err := client.Satellite.Query().
		Where(satellite.ID(satelliteID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check satellite: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound(apperrors.CodeSatelliteNotFound, "satellite not found")
	}

	spec, err := client.TechnicalSpecification.Query().
		Where(technicalspecification.HasSatelliteWith(satellite.ID(satelliteID))).
		Order(ent.Asc(technicalspecification.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrTechSpecRequired()
		}
		return nil, fmt.Errorf("query technical specification: %w", err)
	}
	return spec, nil
}
