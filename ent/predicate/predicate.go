// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CalendarStage is the predicate function for calendarstage builders.
type CalendarStage func(*sql.Selector)

// Electronics is the predicate function for electronics builders.
type Electronics func(*sql.Selector)

// HardwareRequirement is the predicate function for hardwarerequirement builders.
type HardwareRequirement func(*sql.Selector)

// Material is the predicate function for material builders.
type Material func(*sql.Selector)

// MaterialFunctionalCharacteristic is the predicate function for materialfunctionalcharacteristic builders.
type MaterialFunctionalCharacteristic func(*sql.Selector)

// MaterialOperationalCharacteristic is the predicate function for materialoperationalcharacteristic builders.
type MaterialOperationalCharacteristic func(*sql.Selector)

// PhysicalTestData is the predicate function for physicaltestdata builders.
type PhysicalTestData func(*sql.Selector)

// Satellite is the predicate function for satellite builders.
type Satellite func(*sql.Selector)

// SatelliteOpCharacteristic is the predicate function for satelliteopcharacteristic builders.
type SatelliteOpCharacteristic func(*sql.Selector)

// Sensor is the predicate function for sensor builders.
type Sensor func(*sql.Selector)

// Stand is the predicate function for stand builders.
type Stand func(*sql.Selector)

// TechnicalSpecification is the predicate function for technicalspecification builders.
type TechnicalSpecification func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
