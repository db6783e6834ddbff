package query

import (
	"time"

	"satfab.io/satfab/ent"
	"satfab.io/satfab/internal/service"
)

// Wire types for the contract. Field names are part of the client contract
// and must not change; they mirror the mobile client's expectations exactly.

// Satellite is the wire shape of a satellite.
type Satellite struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Electronics is the wire shape of an electronics row.
type Electronics struct {
	ID       int     `json:"id"`
	Model    string  `json:"model"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
}

// Material is the wire shape of a material.
type Material struct {
	ID             int     `json:"id"`
	TypeOfMaterial string  `json:"typeOfMaterial"`
	Amount         float64 `json:"amount"`
	Unit           string  `json:"unit"`
}

// MaterialFunctionalCharacteristic is the wire shape of a functional
// characteristic.
type MaterialFunctionalCharacteristic struct {
	ID          int     `json:"id"`
	Unit        string  `json:"unit"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// MaterialOperationalCharacteristic is the wire shape of an operational
// characteristic, carrying its stand.
type MaterialOperationalCharacteristic struct {
	ID          int     `json:"id"`
	Unit        string  `json:"unit"`
	Value       float64 `json:"value"`
	Description *string `json:"description"`
	Stand       *Stand  `json:"stand"`
}

// MaterialFull joins a material with both characteristic sets.
type MaterialFull struct {
	Material    Material                            `json:"material"`
	Functional  []MaterialFunctionalCharacteristic  `json:"functional"`
	Operational []MaterialOperationalCharacteristic `json:"operational"`
}

// Stand is the wire shape of a test stand.
type Stand struct {
	ID          int    `json:"id"`
	NameOfStand string `json:"nameOfStand"`
	TypeOfStand string `json:"typeOfStand"`
}

// Sensor is the wire shape of a sensor. value and unit are null when the
// sensor has no reading yet.
type Sensor struct {
	ID          int      `json:"id"`
	Location    string   `json:"location"`
	Value       *float64 `json:"value"`
	Unit        *string  `json:"unit"`
	Description string   `json:"description"`
}

// HardwareRequirement is the wire shape of a hardware requirement.
type HardwareRequirement struct {
	ID    int     `json:"id"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// PhysicalTestData is the wire shape of a physical test measurement.
type PhysicalTestData struct {
	ID          int     `json:"id"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
}

// CalendarStage is the wire shape of a calendar stage with its derived order.
type CalendarStage struct {
	ID          int    `json:"id"`
	NameOfStage string `json:"nameOfStage"`
	TimeOfFrame string `json:"timeOfFrame"`
	Duration    int    `json:"duration"`
	StageOrder  int    `json:"stageOrder"`
}

// ElectronicsMinMax carries the cheapest and most expensive electronics of a
// satellite; all fields null when it has none.
type ElectronicsMinMax struct {
	MinCost  *float64 `json:"minCost"`
	MinModel *string  `json:"minModel"`
	MaxCost  *float64 `json:"maxCost"`
	MaxModel *string  `json:"maxModel"`
}

// CalendarStageStats carries duration aggregates; all zero for a satellite
// without stages (documented contract).
type CalendarStageStats struct {
	AvgDuration   float64 `json:"avgDuration"`
	MaxDuration   float64 `json:"maxDuration"`
	MinDuration   float64 `json:"minDuration"`
	TotalDuration float64 `json:"totalDuration"`
}

// TechnicalSpecification is the wire shape of a technical specification.
type TechnicalSpecification struct {
	ID          int     `json:"id"`
	Description *string `json:"description"`
}

// SatelliteOpCharacteristic is the wire shape of a satellite operational
// characteristic.
type SatelliteOpCharacteristic struct {
	ID            int     `json:"id"`
	ParameterName string  `json:"parameterName"`
	Value         float64 `json:"value"`
	Unit          string  `json:"unit"`
}

// Converters from ent entities to wire types.

func toSatellite(e *ent.Satellite) Satellite {
	return Satellite{ID: e.ID, Name: e.Name, Type: e.Type}
}

func toSatellites(rows []*ent.Satellite) []Satellite {
	out := make([]Satellite, len(rows))
	for i, e := range rows {
		out[i] = toSatellite(e)
	}
	return out
}

func toElectronics(e *ent.Electronics) Electronics {
	return Electronics{ID: e.ID, Model: e.Model, Type: e.Type, Location: e.Location, Price: e.Price}
}

func toElectronicsList(rows []*ent.Electronics) []Electronics {
	out := make([]Electronics, len(rows))
	for i, e := range rows {
		out[i] = toElectronics(e)
	}
	return out
}

func toMaterial(e *ent.Material) Material {
	return Material{ID: e.ID, TypeOfMaterial: e.TypeOfMaterial, Amount: e.Amount, Unit: e.Unit}
}

func toMaterials(rows []*ent.Material) []Material {
	out := make([]Material, len(rows))
	for i, e := range rows {
		out[i] = toMaterial(e)
	}
	return out
}

func toStand(e *ent.Stand) Stand {
	return Stand{ID: e.ID, NameOfStand: e.NameOfStand, TypeOfStand: e.TypeOfStand}
}

func toStands(rows []*ent.Stand) []Stand {
	out := make([]Stand, len(rows))
	for i, e := range rows {
		out[i] = toStand(e)
	}
	return out
}

func toSensor(e *ent.Sensor) Sensor {
	return Sensor{ID: e.ID, Location: e.Location, Value: e.Value, Unit: e.Unit, Description: e.Description}
}

func toSensors(rows []*ent.Sensor) []Sensor {
	out := make([]Sensor, len(rows))
	for i, e := range rows {
		out[i] = toSensor(e)
	}
	return out
}

func toHardwareRequirements(rows []*ent.HardwareRequirement) []HardwareRequirement {
	out := make([]HardwareRequirement, len(rows))
	for i, e := range rows {
		out[i] = HardwareRequirement{ID: e.ID, Unit: e.Unit, Value: e.Value}
	}
	return out
}

func toPhysicalTestData(rows []*ent.PhysicalTestData) []PhysicalTestData {
	out := make([]PhysicalTestData, len(rows))
	for i, e := range rows {
		out[i] = PhysicalTestData{ID: e.ID, Value: e.Value, Unit: e.Unit, Description: e.Description}
	}
	return out
}

func toTechnicalSpecifications(rows []*ent.TechnicalSpecification) []TechnicalSpecification {
	out := make([]TechnicalSpecification, len(rows))
	for i, e := range rows {
		out[i] = TechnicalSpecification{ID: e.ID, Description: e.Description}
	}
	return out
}

func toSatelliteOpCharacteristics(rows []*ent.SatelliteOpCharacteristic) []SatelliteOpCharacteristic {
	out := make([]SatelliteOpCharacteristic, len(rows))
	for i, e := range rows {
		out[i] = SatelliteOpCharacteristic{ID: e.ID, ParameterName: e.ParameterName, Value: e.Value, Unit: e.Unit}
	}
	return out
}

func toSatelliteOpCharacteristic(e *ent.SatelliteOpCharacteristic) SatelliteOpCharacteristic {
	return SatelliteOpCharacteristic{ID: e.ID, ParameterName: e.ParameterName, Value: e.Value, Unit: e.Unit}
}

func toMaterialOpCharacteristic(e *ent.MaterialOperationalCharacteristic) MaterialOperationalCharacteristic {
	out := MaterialOperationalCharacteristic{
		ID:          e.ID,
		Unit:        e.Unit,
		Value:       e.Value,
		Description: e.Description,
	}
	if e.Edges.Stand != nil {
		st := toStand(e.Edges.Stand)
		out.Stand = &st
	}
	return out
}

func toMaterialOpCharacteristics(rows []*ent.MaterialOperationalCharacteristic) []MaterialOperationalCharacteristic {
	out := make([]MaterialOperationalCharacteristic, len(rows))
	for i, e := range rows {
		out[i] = toMaterialOpCharacteristic(e)
	}
	return out
}

func toMaterialsFull(rows []*ent.Material) []MaterialFull {
	out := make([]MaterialFull, len(rows))
	for i, m := range rows {
		full := MaterialFull{
			Material:    toMaterial(m),
			Functional:  []MaterialFunctionalCharacteristic{},
			Operational: []MaterialOperationalCharacteristic{},
		}
		for _, fc := range m.Edges.FunctionalCharacteristics {
			full.Functional = append(full.Functional, MaterialFunctionalCharacteristic{
				ID: fc.ID, Unit: fc.Unit, Value: fc.Value, Description: fc.Description,
			})
		}
		for _, oc := range m.Edges.OperationalCharacteristics {
			full.Operational = append(full.Operational, toMaterialOpCharacteristic(oc))
		}
		out[i] = full
	}
	return out
}

func toCalendarStage(r service.RankedStage) CalendarStage {
	return CalendarStage{
		ID:          r.ID,
		NameOfStage: r.NameOfStage,
		TimeOfFrame: r.TimeOfFrame.UTC().Format(time.RFC3339),
		Duration:    r.Duration,
		StageOrder:  r.StageOrder,
	}
}

func toCalendarStages(rows []service.RankedStage) []CalendarStage {
	out := make([]CalendarStage, len(rows))
	for i, r := range rows {
		out[i] = toCalendarStage(r)
	}
	return out
}
