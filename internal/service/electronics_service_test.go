package service

import (
	"context"
	"testing"

	apperrors "satfab.io/satfab/internal/pkg/errors"
)

func seedElectronics(t *testing.T, svc *ElectronicsService, satelliteID int, prices ...float64) {
	t.Helper()
	for i, p := range prices {
		model := string(rune('A' + i))
		if _, err := svc.Add(context.Background(), satelliteID, "model-"+model, "computer", "bay", p); err != nil {
			t.Fatalf("add electronics: %v", err)
		}
	}
}

func TestElectronicsAggregates_SentinelScenario(t *testing.T) {
	client := newTestClient(t, "electronics_aggregates")
	svc := NewElectronicsService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")
	seedElectronics(t, svc, sat.ID, 100, 200, 300)

	total, err := svc.TotalCost(ctx, sat.ID)
	if err != nil {
		t.Fatalf("TotalCost: %v", err)
	}
	if total != 600 {
		t.Fatalf("TotalCost = %v, want 600", total)
	}

	avg, err := svc.AvgCost(ctx, sat.ID)
	if err != nil {
		t.Fatalf("AvgCost: %v", err)
	}
	if avg != 200 {
		t.Fatalf("AvgCost = %v, want 200", avg)
	}

	mm, err := svc.MinMax(ctx, sat.ID)
	if err != nil {
		t.Fatalf("MinMax: %v", err)
	}
	if mm.MinCost == nil || *mm.MinCost != 100 {
		t.Fatalf("MinCost = %v, want 100", mm.MinCost)
	}
	if mm.MinModel == nil || *mm.MinModel != "model-A" {
		t.Fatalf("MinModel = %v, want model-A", mm.MinModel)
	}
	if mm.MaxCost == nil || *mm.MaxCost != 300 {
		t.Fatalf("MaxCost = %v, want 300", mm.MaxCost)
	}
	if mm.MaxModel == nil || *mm.MaxModel != "model-C" {
		t.Fatalf("MaxModel = %v, want model-C", mm.MaxModel)
	}
}

func TestElectronicsAggregates_EmptySatellite(t *testing.T) {
	client := newTestClient(t, "electronics_empty")
	svc := NewElectronicsService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Empty-1")

	total, err := svc.TotalCost(ctx, sat.ID)
	if err != nil {
		t.Fatalf("TotalCost: %v", err)
	}
	if total != 0 {
		t.Fatalf("TotalCost over empty set = %v, want 0", total)
	}

	avg, err := svc.AvgCost(ctx, sat.ID)
	if err != nil {
		t.Fatalf("AvgCost: %v", err)
	}
	if avg != 0 {
		t.Fatalf("AvgCost over empty set = %v, want 0", avg)
	}

	mm, err := svc.MinMax(ctx, sat.ID)
	if err != nil {
		t.Fatalf("MinMax: %v", err)
	}
	if mm.MinCost != nil || mm.MinModel != nil || mm.MaxCost != nil || mm.MaxModel != nil {
		t.Fatalf("MinMax over empty set = %+v, want all nil", mm)
	}
}

func TestElectronicsAddListDelete_RoundTrip(t *testing.T) {
	client := newTestClient(t, "electronics_roundtrip")
	svc := NewElectronicsService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Relay-7")

	created, err := svc.Add(ctx, sat.ID, "XTR-200", "transceiver", "comms module", 250)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	rows, err := svc.List(ctx, sat.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("List = %d rows, want 1", len(rows))
	}
	got := rows[0]
	if got.ID != created.ID || got.Model != "XTR-200" || got.Type != "transceiver" ||
		got.Location != "comms module" || got.Price != 250 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	rows, err = svc.List(ctx, sat.ID)
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("List after delete = %d rows, want 0", len(rows))
	}
}

func TestElectronicsAdd_NegativePriceRejected(t *testing.T) {
	client := newTestClient(t, "electronics_negative_add")
	svc := NewElectronicsService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-Y")

	_, err := svc.Add(ctx, sat.ID, "OBC-1", "computer", "bay", -5)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeNegativePrice {
		t.Fatalf("Add with negative price = %v, want %s", err, apperrors.CodeNegativePrice)
	}

	rows, err := svc.List(ctx, sat.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rejected add wrote %d rows", len(rows))
	}
}

func TestElectronicsUpdatePrice_ValidationBeforeWrite(t *testing.T) {
	client := newTestClient(t, "electronics_update_price")
	svc := NewElectronicsService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-Z")
	created, err := svc.Add(ctx, sat.ID, "PCU-9", "power", "power bay", 300)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	_, err = svc.UpdatePrice(ctx, created.ID, -1)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeNegativePrice {
		t.Fatalf("UpdatePrice(-1) = %v, want %s", err, apperrors.CodeNegativePrice)
	}

	current, err := client.Electronics.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if current.Price != 300 {
		t.Fatalf("price changed to %v after rejected update", current.Price)
	}

	updated, err := svc.UpdatePrice(ctx, created.ID, 450)
	if err != nil {
		t.Fatalf("UpdatePrice(450): %v", err)
	}
	if updated.Price != 450 {
		t.Fatalf("updated price = %v, want 450", updated.Price)
	}
}

func TestElectronicsUpdateDelete_NotFound(t *testing.T) {
	client := newTestClient(t, "electronics_not_found")
	svc := NewElectronicsService(client)
	ctx := context.Background()

	_, err := svc.UpdatePrice(ctx, 999999, 10)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeElectronicsNotFound {
		t.Fatalf("UpdatePrice on missing id = %v, want %s", err, apperrors.CodeElectronicsNotFound)
	}

	err = svc.Delete(ctx, 999999)
	if appErr, ok = apperrors.IsAppError(err); !ok || appErr.Code != apperrors.CodeElectronicsNotFound {
		t.Fatalf("Delete on missing id = %v, want %s", err, apperrors.CodeElectronicsNotFound)
	}
}
