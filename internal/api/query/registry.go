package query

import (
	"context"
	"encoding/json"
)

// Roles known to the contract. They mirror the users table enum.
const (
	RoleManager  = "manager"
	RoleEngineer = "engineer"
	RoleAdmin    = "admin"
)

// opHandler executes one contract operation against already-decoded raw
// arguments and returns the operation's data payload.
type opHandler func(ctx context.Context, args json.RawMessage) (any, error)

// operation couples a handler with the roles allowed to invoke it.
type operation struct {
	roles   map[string]bool
	handler opHandler
}

func roleSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// Role tiers. Every role may read; engineers additionally own the material,
// stand and sensor subtrees; admins own everything.
var (
	readRoles     = roleSet(RoleManager, RoleEngineer, RoleAdmin)
	engineerRoles = roleSet(RoleEngineer, RoleAdmin)
	adminRoles    = roleSet(RoleAdmin)
)

// operations builds the dispatch table. Operation names are the contract's
// wire identifiers and must not be renamed.
func (s *Server) operations() map[string]operation {
	return map[string]operation{
		// Queries.
		"listSatellites":                          {readRoles, s.listSatellites},
		"listTechnicalSpecifications":             {readRoles, s.listTechnicalSpecifications},
		"listSatelliteOperationalCharacteristics": {readRoles, s.listSatelliteOperationalCharacteristics},
		"listElectronics":                         {readRoles, s.listElectronics},
		"electronicsTotalCost":                    {readRoles, s.electronicsTotalCost},
		"electronicsAvgCost":                      {readRoles, s.electronicsAvgCost},
		"electronicsMinMaxCost":                   {readRoles, s.electronicsMinMaxCost},
		"listMaterials":                           {readRoles, s.listMaterials},
		"listMaterialsFull":                       {readRoles, s.listMaterialsFull},
		"listMaterialOperationalCharacteristics":  {readRoles, s.listMaterialOperationalCharacteristics},
		"listStands":                              {readRoles, s.listStands},
		"listSensors":                             {readRoles, s.listSensors},
		"listHardwareRequirements":                {readRoles, s.listHardwareRequirements},
		"listPhysicalTestData":                    {readRoles, s.listPhysicalTestData},
		"listCalendarStages":                      {readRoles, s.listCalendarStages},
		"calendarStageStats":                      {readRoles, s.calendarStageStats},

		// Mutations on the satellite, electronics and calendar subtrees.
		"addSatellite":                           {adminRoles, s.addSatellite},
		"addSatelliteOperationalCharacteristic":  {adminRoles, s.addSatelliteOperationalCharacteristic},
		"addElectronics":                         {adminRoles, s.addElectronics},
		"updateElectronicsPrice":                 {adminRoles, s.updateElectronicsPrice},
		"deleteElectronics":                      {adminRoles, s.deleteElectronics},
		"addCalendarStage":                       {adminRoles, s.addCalendarStage},
		"updateCalendarStage":                    {adminRoles, s.updateCalendarStage},
		"deleteCalendarStage":                    {adminRoles, s.deleteCalendarStage},

		// Mutations on the material, stand and sensor subtrees.
		"addMaterial":    {engineerRoles, s.addMaterial},
		"deleteMaterial": {engineerRoles, s.deleteMaterial},
		"addStand":       {engineerRoles, s.addStand},
		"deleteStand":    {engineerRoles, s.deleteStand},
		"addSensor":      {engineerRoles, s.addSensor},
		"deleteSensor":   {engineerRoles, s.deleteSensor},
	}
}
