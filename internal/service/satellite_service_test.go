package service

import (
	"context"
	"testing"

	apperrors "satfab.io/satfab/internal/pkg/errors"
)

func TestSatelliteAddAndList(t *testing.T) {
	client := newTestClient(t, "satellite_add_list")
	svc := NewSatelliteService(client)
	ctx := context.Background()

	created, err := svc.Add(ctx, "Sentinel-X", "earth-observation")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.Name != "Sentinel-X" || created.Type != "earth-observation" {
		t.Fatalf("created satellite = %+v", created)
	}

	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != created.ID {
		t.Fatalf("List = %+v", rows)
	}
}

func TestSatelliteTechnicalSpecifications(t *testing.T) {
	client := newTestClient(t, "satellite_specs")
	svc := NewSatelliteService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")
	other := createSatellite(t, client, "Relay-7")
	createTechSpec(t, client, sat.ID)
	createTechSpec(t, client, other.ID)

	rows, err := svc.ListTechnicalSpecifications(ctx, sat.ID)
	if err != nil {
		t.Fatalf("ListTechnicalSpecifications: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("specs = %d, want 1", len(rows))
	}
}

func TestSatelliteOpCharacteristics(t *testing.T) {
	client := newTestClient(t, "satellite_opchars")
	svc := NewSatelliteService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")

	created, err := svc.AddOpCharacteristic(ctx, sat.ID, "peak power draw", 820, "W")
	if err != nil {
		t.Fatalf("AddOpCharacteristic: %v", err)
	}
	if created.ParameterName != "peak power draw" || created.Value != 820 || created.Unit != "W" {
		t.Fatalf("created characteristic = %+v", created)
	}

	rows, err := svc.ListOpCharacteristics(ctx, sat.ID)
	if err != nil {
		t.Fatalf("ListOpCharacteristics: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("characteristics = %d, want 1", len(rows))
	}

	_, err = svc.AddOpCharacteristic(ctx, 999999, "mass", 1200, "kg")
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeSatelliteNotFound {
		t.Fatalf("AddOpCharacteristic on missing satellite = %v, want %s", err, apperrors.CodeSatelliteNotFound)
	}
}
