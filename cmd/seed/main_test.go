package main

import (
	"testing"
)

func TestParseDataset_EmbeddedDemo(t *testing.T) {
	t.Parallel()

	ds, err := parseDataset(defaultDataset)
	if err != nil {
		t.Fatalf("parse embedded dataset: %v", err)
	}

	if len(ds.Users) != 3 {
		t.Fatalf("users = %d, want 3", len(ds.Users))
	}
	roles := map[string]bool{}
	for _, u := range ds.Users {
		roles[u.Role] = true
	}
	for _, want := range []string{"manager", "engineer", "admin"} {
		if !roles[want] {
			t.Fatalf("missing demo account for role %s", want)
		}
	}

	var sentinel *seedSatellite
	for i := range ds.Satellites {
		if ds.Satellites[i].Name == "Sentinel-X" {
			sentinel = &ds.Satellites[i]
		}
	}
	if sentinel == nil {
		t.Fatal("missing Sentinel-X demo satellite")
	}
	if len(sentinel.TechnicalSpecifications) == 0 {
		t.Fatal("Sentinel-X needs a technical specification for its stages and stands")
	}
	if len(sentinel.Electronics) != 3 {
		t.Fatalf("Sentinel-X electronics = %d, want 3", len(sentinel.Electronics))
	}
	var total float64
	for _, e := range sentinel.Electronics {
		total += e.Price
	}
	if total != 600 {
		t.Fatalf("Sentinel-X electronics total = %v, want 600", total)
	}

	// Material operational characteristics must reference stands that the
	// satellite section actually defines.
	standNames := map[string]bool{}
	for _, sat := range ds.Satellites {
		for _, st := range sat.Stands {
			standNames[st.NameOfStand] = true
		}
	}
	for _, m := range ds.Materials {
		for _, oc := range m.Operational {
			if !standNames[oc.Stand] {
				t.Fatalf("material %q references unknown stand %q", m.TypeOfMaterial, oc.Stand)
			}
		}
	}
}

func TestParseDataset_RejectsBadDates(t *testing.T) {
	t.Parallel()

	raw := []byte(`
satellites:
  - name: Bad-Date
    type: test
    calendarStages:
      - nameOfStage: assembly
        timeOfFrame: "01/05/2024"
        duration: 5
`)
	if _, err := parseDataset(raw); err == nil {
		t.Fatal("expected error for non ISO date")
	}
}

func TestParseDataset_RejectsIncompleteUsers(t *testing.T) {
	t.Parallel()

	raw := []byte(`
users:
  - username: ghost
`)
	if _, err := parseDataset(raw); err == nil {
		t.Fatal("expected error for user without password")
	}
}

func TestParseSeedDate_Layouts(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"2024-01-05", "2024-01-05T10:30:00Z"} {
		if _, err := parseSeedDate(ok); err != nil {
			t.Fatalf("parseSeedDate(%q): %v", ok, err)
		}
	}
	if _, err := parseSeedDate("Jan 5 2024"); err == nil {
		t.Fatal("expected error for free-form date")
	}
}
