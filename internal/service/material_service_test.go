package service

import (
	"context"
	"testing"

	apperrors "satfab.io/satfab/internal/pkg/errors"
)

func TestMaterialList_SortByAmount(t *testing.T) {
	client := newTestClient(t, "material_sort")
	svc := NewMaterialService(client)
	ctx := context.Background()

	for _, m := range []struct {
		typ    string
		amount float64
	}{
		{"aluminum 7075", 120},
		{"carbon fiber weave", 40},
		{"titanium grade 5", 80},
	} {
		if _, err := svc.Add(ctx, m.typ, m.amount, "kg"); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	asc := SortAsc
	rows, err := svc.List(ctx, &asc)
	if err != nil {
		t.Fatalf("List asc: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("List = %d rows, want 3", len(rows))
	}
	if rows[0].Amount != 40 || rows[2].Amount != 120 {
		t.Fatalf("ascending order broken: %v %v %v", rows[0].Amount, rows[1].Amount, rows[2].Amount)
	}

	desc := SortDesc
	rows, err = svc.List(ctx, &desc)
	if err != nil {
		t.Fatalf("List desc: %v", err)
	}
	if rows[0].Amount != 120 || rows[2].Amount != 40 {
		t.Fatalf("descending order broken: %v %v %v", rows[0].Amount, rows[1].Amount, rows[2].Amount)
	}

	rows, err = svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List unsorted: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("unsorted List = %d rows, want 3", len(rows))
	}
}

func TestSortOrder_Valid(t *testing.T) {
	t.Parallel()

	if !SortAsc.Valid() || !SortDesc.Valid() {
		t.Fatal("asc and desc must be valid")
	}
	if SortOrder("ASC").Valid() || SortOrder("random").Valid() || SortOrder("").Valid() {
		t.Fatal("unexpected sort orders accepted")
	}
}

func TestMaterialListFull_CarriesCharacteristics(t *testing.T) {
	client := newTestClient(t, "material_full")
	svc := NewMaterialService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")
	spec := createTechSpec(t, client, sat.ID)
	st := createStand(t, client, sat.ID, spec.ID, "thermal chamber 2")

	mat, err := svc.Add(ctx, "aluminum 7075", 120, "kg")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := client.MaterialFunctionalCharacteristic.Create().
		SetUnit("MPa").SetValue(503).SetDescription("tensile strength").
		SetMaterialID(mat.ID).Save(ctx); err != nil {
		t.Fatalf("create functional characteristic: %v", err)
	}
	if _, err := client.MaterialOperationalCharacteristic.Create().
		SetUnit("C").SetValue(150).
		SetMaterialID(mat.ID).SetStandID(st.ID).Save(ctx); err != nil {
		t.Fatalf("create operational characteristic: %v", err)
	}

	rows, err := svc.ListFull(ctx, nil)
	if err != nil {
		t.Fatalf("ListFull: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("ListFull = %d rows, want 1", len(rows))
	}
	full := rows[0]
	if len(full.Edges.FunctionalCharacteristics) != 1 {
		t.Fatalf("functional characteristics = %d, want 1", len(full.Edges.FunctionalCharacteristics))
	}
	ocs := full.Edges.OperationalCharacteristics
	if len(ocs) != 1 {
		t.Fatalf("operational characteristics = %d, want 1", len(ocs))
	}
	if ocs[0].Edges.Stand == nil || ocs[0].Edges.Stand.NameOfStand != "thermal chamber 2" {
		t.Fatalf("operational characteristic missing stand: %+v", ocs[0].Edges.Stand)
	}
	if ocs[0].Description != nil {
		t.Fatalf("description = %v, want nil", ocs[0].Description)
	}
}

func TestMaterialOpCharacteristics_Filtering(t *testing.T) {
	client := newTestClient(t, "material_opchar_filter")
	svc := NewMaterialService(client)
	ctx := context.Background()

	sat := createSatellite(t, client, "Sentinel-X")
	spec := createTechSpec(t, client, sat.ID)
	standA := createStand(t, client, sat.ID, spec.ID, "table A")
	standB := createStand(t, client, sat.ID, spec.ID, "table B")

	matA, err := svc.Add(ctx, "aluminum", 120, "kg")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	matB, err := svc.Add(ctx, "carbon fiber", 40, "m2")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	mk := func(materialID, standID int) {
		t.Helper()
		if _, err := client.MaterialOperationalCharacteristic.Create().
			SetUnit("C").SetValue(100).
			SetMaterialID(materialID).SetStandID(standID).Save(ctx); err != nil {
			t.Fatalf("create operational characteristic: %v", err)
		}
	}
	mk(matA.ID, standA.ID)
	mk(matA.ID, standB.ID)
	mk(matB.ID, standB.ID)

	all, err := svc.ListOpCharacteristics(ctx, OpCharFilter{})
	if err != nil {
		t.Fatalf("ListOpCharacteristics: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered = %d, want 3", len(all))
	}
	for _, oc := range all {
		if oc.Edges.Stand == nil {
			t.Fatalf("row %d missing stand edge", oc.ID)
		}
	}

	byStand, err := svc.ListOpCharacteristics(ctx, OpCharFilter{StandID: &standB.ID})
	if err != nil {
		t.Fatalf("filter by stand: %v", err)
	}
	if len(byStand) != 2 {
		t.Fatalf("stand B rows = %d, want 2", len(byStand))
	}

	both, err := svc.ListOpCharacteristics(ctx, OpCharFilter{StandID: &standB.ID, MaterialID: &matA.ID})
	if err != nil {
		t.Fatalf("filter by both: %v", err)
	}
	if len(both) != 1 {
		t.Fatalf("stand B + material A rows = %d, want 1", len(both))
	}
}

func TestMaterialDelete_NotFound(t *testing.T) {
	client := newTestClient(t, "material_delete_not_found")
	svc := NewMaterialService(client)

	err := svc.Delete(context.Background(), 999999)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeMaterialNotFound {
		t.Fatalf("Delete on missing id = %v, want %s", err, apperrors.CodeMaterialNotFound)
	}
}
