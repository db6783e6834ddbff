package service

import (
	"context"
	"testing"

	apperrors "satfab.io/satfab/internal/pkg/errors"
)

func TestAddStand_RequiresTechSpec(t *testing.T) {
	client := newTestClient(t, "stand_precondition")
	svc := NewStandService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "No-Spec")

	_, err := svc.AddStand(ctx, sat.ID, "vibration table A", "vibration")
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeTechSpecRequired {
		t.Fatalf("AddStand without tech spec = %v, want %s", err, apperrors.CodeTechSpecRequired)
	}

	createTechSpec(t, client, sat.ID)
	created, err := svc.AddStand(ctx, sat.ID, "vibration table A", "vibration")
	if err != nil {
		t.Fatalf("AddStand after spec: %v", err)
	}
	if created.NameOfStand != "vibration table A" || created.TypeOfStand != "vibration" {
		t.Fatalf("created stand = %+v", created)
	}
}

func TestListStands_FilterBySatellite(t *testing.T) {
	client := newTestClient(t, "stand_list_filter")
	svc := NewStandService(client)
	ctx := context.Background()

	satA := createSatellite(t, client, "A")
	specA := createTechSpec(t, client, satA.ID)
	satB := createSatellite(t, client, "B")
	specB := createTechSpec(t, client, satB.ID)

	createStand(t, client, satA.ID, specA.ID, "table A1")
	createStand(t, client, satA.ID, specA.ID, "table A2")
	createStand(t, client, satB.ID, specB.ID, "chamber B1")

	all, err := svc.ListStands(ctx, nil)
	if err != nil {
		t.Fatalf("ListStands(nil): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered stands = %d, want 3", len(all))
	}

	onlyA, err := svc.ListStands(ctx, &satA.ID)
	if err != nil {
		t.Fatalf("ListStands(A): %v", err)
	}
	if len(onlyA) != 2 {
		t.Fatalf("satellite A stands = %d, want 2", len(onlyA))
	}
}

func TestAddSensor_NullValueAndUnit(t *testing.T) {
	client := newTestClient(t, "sensor_nulls")
	svc := NewStandService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")
	spec := createTechSpec(t, client, sat.ID)
	st := createStand(t, client, sat.ID, spec.ID, "vibration table A")

	created, err := svc.AddSensor(ctx, st.ID, "bay-1", nil, nil, "temp sensor")
	if err != nil {
		t.Fatalf("AddSensor: %v", err)
	}
	if created.Value != nil || created.Unit != nil {
		t.Fatalf("sensor stored value=%v unit=%v, want both nil", created.Value, created.Unit)
	}

	stored, err := client.Sensor.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Value != nil || stored.Unit != nil {
		t.Fatalf("re-read sensor value=%v unit=%v, want both nil", stored.Value, stored.Unit)
	}

	value := 22.5
	unit := "C"
	withReading, err := svc.AddSensor(ctx, st.ID, "bay-2", &value, &unit, "calibrated thermocouple")
	if err != nil {
		t.Fatalf("AddSensor with reading: %v", err)
	}
	if withReading.Value == nil || *withReading.Value != 22.5 || withReading.Unit == nil || *withReading.Unit != "C" {
		t.Fatalf("sensor with reading = %+v", withReading)
	}
}

func TestAddSensor_UnknownStand(t *testing.T) {
	client := newTestClient(t, "sensor_unknown_stand")
	svc := NewStandService(client)

	_, err := svc.AddSensor(context.Background(), 999999, "bay-1", nil, nil, "thermocouple")
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeStandNotFound {
		t.Fatalf("AddSensor on missing stand = %v, want %s", err, apperrors.CodeStandNotFound)
	}
}

func TestListSensors_ScopeModes(t *testing.T) {
	client := newTestClient(t, "sensor_scopes")
	svc := NewStandService(client)
	ctx := context.Background()

	satA := createSatellite(t, client, "A")
	specA := createTechSpec(t, client, satA.ID)
	standA1 := createStand(t, client, satA.ID, specA.ID, "table A1")
	standA2 := createStand(t, client, satA.ID, specA.ID, "table A2")

	satB := createSatellite(t, client, "B")
	specB := createTechSpec(t, client, satB.ID)
	standB1 := createStand(t, client, satB.ID, specB.ID, "chamber B1")

	for _, standID := range []int{standA1.ID, standA2.ID, standB1.ID} {
		if _, err := svc.AddSensor(ctx, standID, "wall", nil, nil, "thermocouple"); err != nil {
			t.Fatalf("AddSensor: %v", err)
		}
	}

	all, err := svc.ListSensors(ctx, StandScope{})
	if err != nil {
		t.Fatalf("ListSensors(all): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all sensors = %d, want 3", len(all))
	}

	bySat, err := svc.ListSensors(ctx, StandScope{SatelliteID: &satA.ID})
	if err != nil {
		t.Fatalf("ListSensors(satellite): %v", err)
	}
	if len(bySat) != 2 {
		t.Fatalf("satellite A sensors = %d, want 2", len(bySat))
	}

	// standId wins over satelliteId.
	byStand, err := svc.ListSensors(ctx, StandScope{StandID: &standB1.ID, SatelliteID: &satA.ID})
	if err != nil {
		t.Fatalf("ListSensors(stand): %v", err)
	}
	if len(byStand) != 1 {
		t.Fatalf("stand B1 sensors = %d, want 1", len(byStand))
	}
}

func TestHardwareRequirementsAndPhysicalTestData(t *testing.T) {
	client := newTestClient(t, "stand_hw_ptd")
	svc := NewStandService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")
	spec := createTechSpec(t, client, sat.ID)
	st := createStand(t, client, sat.ID, spec.ID, "vibration table A")

	if _, err := client.HardwareRequirement.Create().
		SetValue(380).SetUnit("V").SetStandID(st.ID).Save(ctx); err != nil {
		t.Fatalf("create hardware requirement: %v", err)
	}
	if _, err := client.PhysicalTestData.Create().
		SetValue(9.4).SetUnit("g").SetDescription("peak acceleration").SetStandID(st.ID).Save(ctx); err != nil {
		t.Fatalf("create physical test data: %v", err)
	}

	hw, err := svc.ListHardwareRequirements(ctx, StandScope{StandID: &st.ID})
	if err != nil {
		t.Fatalf("ListHardwareRequirements: %v", err)
	}
	if len(hw) != 1 || hw[0].Value != 380 || hw[0].Unit != "V" {
		t.Fatalf("hardware requirements = %+v", hw)
	}

	ptd, err := svc.ListPhysicalTestData(ctx, st.ID)
	if err != nil {
		t.Fatalf("ListPhysicalTestData: %v", err)
	}
	if len(ptd) != 1 || ptd[0].Description != "peak acceleration" {
		t.Fatalf("physical test data = %+v", ptd)
	}
}

func TestDeleteStandAndSensor_NotFound(t *testing.T) {
	client := newTestClient(t, "stand_delete_not_found")
	svc := NewStandService(client)
	ctx := context.Background()

	err := svc.DeleteStand(ctx, 999999)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeStandNotFound {
		t.Fatalf("DeleteStand on missing id = %v, want %s", err, apperrors.CodeStandNotFound)
	}

	err = svc.DeleteSensor(ctx, 999999)
	if appErr, ok = apperrors.IsAppError(err); !ok || appErr.Code != apperrors.CodeSensorNotFound {
		t.Fatalf("DeleteSensor on missing id = %v, want %s", err, apperrors.CodeSensorNotFound)
	}
}
