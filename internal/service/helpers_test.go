package service

import (
	"context"
	"testing"

	"satfab.io/satfab/ent"
	"satfab.io/satfab/internal/testutil"
)

func newTestClient(t *testing.T, prefix string) *ent.Client {
	t.Helper()
	return testutil.OpenEntPostgres(t, prefix)
}

func createSatellite(t *testing.T, client *ent.Client, name string) *ent.Satellite {
	t.Helper()
	sat, err := client.Satellite.Create().
		SetName(name).
		SetType("earth-observation").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create satellite: %v", err)
	}
	return sat
}

func createTechSpec(t *testing.T, client *ent.Client, satelliteID int) *ent.TechnicalSpecification {
	t.Helper()
	spec, err := client.TechnicalSpecification.Create().
		SetDescription("baseline platform").
		SetSatelliteID(satelliteID).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create technical specification: %v", err)
	}
	return spec
}

func createStand(t *testing.T, client *ent.Client, satelliteID, specID int, name string) *ent.Stand {
	t.Helper()
	st, err := client.Stand.Create().
		SetNameOfStand(name).
		SetTypeOfStand("vibration").
		SetSatelliteID(satelliteID).
		SetTechnicalSpecificationID(specID).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create stand: %v", err)
	}
	return st
}
