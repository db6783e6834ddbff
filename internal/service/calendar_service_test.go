package service

import (
	"context"
	"testing"
	"time"

	"satfab.io/satfab/ent"
	apperrors "satfab.io/satfab/internal/pkg/errors"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestRankStages_OrderAndDensity(t *testing.T) {
	t.Parallel()

	rows := []*ent.CalendarStage{
		{ID: 3, NameOfStage: "integration", TimeOfFrame: date("2024-01-05")},
		{ID: 1, NameOfStage: "assembly", TimeOfFrame: date("2024-01-01")},
		{ID: 2, NameOfStage: "testing", TimeOfFrame: date("2024-02-10")},
	}

	ranked := rankStages(rows)
	if len(ranked) != 3 {
		t.Fatalf("ranked %d stages, want 3", len(ranked))
	}
	wantOrder := []string{"assembly", "integration", "testing"}
	for i, name := range wantOrder {
		if ranked[i].NameOfStage != name {
			t.Fatalf("position %d = %s, want %s", i, ranked[i].NameOfStage, name)
		}
		if ranked[i].StageOrder != i+1 {
			t.Fatalf("stage %s order = %d, want %d", name, ranked[i].StageOrder, i+1)
		}
	}
}

func TestRankStages_TieBreakByID(t *testing.T) {
	t.Parallel()

	same := date("2024-03-01")
	rows := []*ent.CalendarStage{
		{ID: 9, NameOfStage: "late insert", TimeOfFrame: same},
		{ID: 4, NameOfStage: "early insert", TimeOfFrame: same},
	}

	ranked := rankStages(rows)
	if ranked[0].ID != 4 || ranked[0].StageOrder != 1 {
		t.Fatalf("tie-break gave first place to id %d", ranked[0].ID)
	}
	if ranked[1].ID != 9 || ranked[1].StageOrder != 2 {
		t.Fatalf("tie-break gave second place to id %d", ranked[1].ID)
	}
}

func TestRankStages_Empty(t *testing.T) {
	t.Parallel()

	if got := rankStages(nil); len(got) != 0 {
		t.Fatalf("rankStages(nil) = %d entries", len(got))
	}
}

func TestCalendarListRanked_OrderedByDate(t *testing.T) {
	client := newTestClient(t, "calendar_list_ranked")
	svc := NewCalendarService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")
	createTechSpec(t, client, sat.ID)

	// Inserted out of chronological order on purpose.
	if _, err := svc.Add(ctx, sat.ID, "integration", date("2024-01-05"), 21); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, sat.ID, "assembly", date("2024-01-01"), 14); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ranked, err := svc.ListRanked(ctx, sat.ID)
	if err != nil {
		t.Fatalf("ListRanked: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("ListRanked = %d stages, want 2", len(ranked))
	}
	if ranked[0].NameOfStage != "assembly" || ranked[0].StageOrder != 1 {
		t.Fatalf("first stage = %s order %d, want assembly order 1", ranked[0].NameOfStage, ranked[0].StageOrder)
	}
	if ranked[1].NameOfStage != "integration" || ranked[1].StageOrder != 2 {
		t.Fatalf("second stage = %s order %d, want integration order 2", ranked[1].NameOfStage, ranked[1].StageOrder)
	}
}

func TestCalendarAdd_RequiresTechSpec(t *testing.T) {
	client := newTestClient(t, "calendar_add_precondition")
	svc := NewCalendarService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "No-Spec")

	_, err := svc.Add(ctx, sat.ID, "assembly", date("2024-01-01"), 14)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeTechSpecRequired {
		t.Fatalf("Add without tech spec = %v, want %s", err, apperrors.CodeTechSpecRequired)
	}

	stages, listErr := svc.ListRanked(ctx, sat.ID)
	if listErr != nil {
		t.Fatalf("ListRanked: %v", listErr)
	}
	if len(stages) != 0 {
		t.Fatalf("rejected add wrote %d stages", len(stages))
	}
}

func TestCalendarAdd_UnknownSatellite(t *testing.T) {
	client := newTestClient(t, "calendar_add_unknown")
	svc := NewCalendarService(client)

	_, err := svc.Add(context.Background(), 999999, "assembly", date("2024-01-01"), 14)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeSatelliteNotFound {
		t.Fatalf("Add for unknown satellite = %v, want %s", err, apperrors.CodeSatelliteNotFound)
	}
}

func TestCalendarAddUpdate_AttachOrder(t *testing.T) {
	client := newTestClient(t, "calendar_attach_order")
	svc := NewCalendarService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")
	createTechSpec(t, client, sat.ID)

	first, err := svc.Add(ctx, sat.ID, "assembly", date("2024-01-10"), 14)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.StageOrder != 1 {
		t.Fatalf("first stage order = %d, want 1", first.StageOrder)
	}

	// An earlier stage displaces the existing one.
	earlier, err := svc.Add(ctx, sat.ID, "procurement", date("2024-01-02"), 7)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if earlier.StageOrder != 1 {
		t.Fatalf("earlier stage order = %d, want 1", earlier.StageOrder)
	}

	// Moving the first stage before the other restores it to the front.
	moved, err := svc.Update(ctx, first.ID, "assembly", date("2024-01-01"), 14)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if moved.StageOrder != 1 {
		t.Fatalf("moved stage order = %d, want 1", moved.StageOrder)
	}
	if moved.Duration != 14 || moved.NameOfStage != "assembly" {
		t.Fatalf("update lost fields: %+v", moved.CalendarStage)
	}
}

func TestCalendarAddUpdate_RejectsNegativeDuration(t *testing.T) {
	client := newTestClient(t, "calendar_negative_duration")
	svc := NewCalendarService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")
	createTechSpec(t, client, sat.ID)

	_, err := svc.Add(ctx, sat.ID, "assembly", date("2024-01-01"), -5)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeValidationFailed {
		t.Fatalf("Add with negative duration = %v, want %s", err, apperrors.CodeValidationFailed)
	}
	stages, listErr := svc.ListRanked(ctx, sat.ID)
	if listErr != nil {
		t.Fatalf("ListRanked: %v", listErr)
	}
	if len(stages) != 0 {
		t.Fatalf("rejected add wrote %d stages", len(stages))
	}

	stage, err := svc.Add(ctx, sat.ID, "assembly", date("2024-01-01"), 14)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	_, err = svc.Update(ctx, stage.ID, "assembly", date("2024-01-01"), -1)
	if appErr, ok = apperrors.IsAppError(err); !ok || appErr.Code != apperrors.CodeValidationFailed {
		t.Fatalf("Update with negative duration = %v, want %s", err, apperrors.CodeValidationFailed)
	}
	ranked, err := svc.ListRanked(ctx, sat.ID)
	if err != nil {
		t.Fatalf("ListRanked: %v", err)
	}
	if len(ranked) != 1 || ranked[0].Duration != 14 {
		t.Fatalf("rejected update changed duration: %+v", ranked)
	}
}

func TestCalendarStats_ZeroWhenEmptyAndAggregates(t *testing.T) {
	client := newTestClient(t, "calendar_stats")
	svc := NewCalendarService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")

	stats, err := svc.Stats(ctx, sat.ID)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats != (StageStats{}) {
		t.Fatalf("Stats over empty set = %+v, want zeros", stats)
	}

	createTechSpec(t, client, sat.ID)
	for _, st := range []struct {
		name     string
		day      string
		duration int
	}{
		{"assembly", "2024-01-01", 10},
		{"integration", "2024-01-05", 20},
		{"testing", "2024-02-10", 30},
	} {
		if _, err := svc.Add(ctx, sat.ID, st.name, date(st.day), st.duration); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	stats, err = svc.Stats(ctx, sat.ID)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	want := StageStats{AvgDuration: 20, MaxDuration: 30, MinDuration: 10, TotalDuration: 60}
	if stats != want {
		t.Fatalf("Stats = %+v, want %+v", stats, want)
	}
}

func TestCalendarUpdateDelete_NotFound(t *testing.T) {
	client := newTestClient(t, "calendar_not_found")
	svc := NewCalendarService(client)
	ctx := context.Background()

	_, err := svc.Update(ctx, 999999, "assembly", date("2024-01-01"), 14)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeStageNotFound {
		t.Fatalf("Update on missing id = %v, want %s", err, apperrors.CodeStageNotFound)
	}

	err = svc.Delete(ctx, 999999)
	if appErr, ok = apperrors.IsAppError(err); !ok || appErr.Code != apperrors.CodeStageNotFound {
		t.Fatalf("Delete on missing id = %v, want %s", err, apperrors.CodeStageNotFound)
	}
}
