// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"satfab.io/satfab/ent/calendarstage"
	"satfab.io/satfab/ent/electronics"
	"satfab.io/satfab/ent/hardwarerequirement"
	"satfab.io/satfab/ent/material"
	"satfab.io/satfab/ent/materialfunctionalcharacteristic"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/physicaltestdata"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
	"satfab.io/satfab/ent/schema"
	"satfab.io/satfab/ent/sensor"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
	"satfab.io/satfab/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	calendarstageMixin := schema.CalendarStage{}.Mixin()
	calendarstageMixinFields0 := calendarstageMixin[0].Fields()
	_ = calendarstageMixinFields0
	calendarstageFields := schema.CalendarStage{}.Fields()
	_ = calendarstageFields
	// calendarstageDescCreatedAt is the schema descriptor for created_at field.
	calendarstageDescCreatedAt := calendarstageMixinFields0[0].Descriptor()
	// calendarstage.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarstage.DefaultCreatedAt = calendarstageDescCreatedAt.Default.(func() time.Time)
	// calendarstageDescUpdatedAt is the schema descriptor for updated_at field.
	calendarstageDescUpdatedAt := calendarstageMixinFields0[1].Descriptor()
	// calendarstage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	calendarstage.DefaultUpdatedAt = calendarstageDescUpdatedAt.Default.(func() time.Time)
	// calendarstage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	calendarstage.UpdateDefaultUpdatedAt = calendarstageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// calendarstageDescNameOfStage is the schema descriptor for name_of_stage field.
	calendarstageDescNameOfStage := calendarstageFields[0].Descriptor()
	// calendarstage.NameOfStageValidator is a validator for the "name_of_stage" field. It is called by the builders before save.
	calendarstage.NameOfStageValidator = calendarstageDescNameOfStage.Validators[0].(func(string) error)
	// calendarstageDescDuration is the schema descriptor for duration field.
	calendarstageDescDuration := calendarstageFields[2].Descriptor()
	// calendarstage.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	calendarstage.DurationValidator = calendarstageDescDuration.Validators[0].(func(int) error)
	electronicsMixin := schema.Electronics{}.Mixin()
	electronicsMixinFields0 := electronicsMixin[0].Fields()
	_ = electronicsMixinFields0
	electronicsFields := schema.Electronics{}.Fields()
	_ = electronicsFields
	// electronicsDescCreatedAt is the schema descriptor for created_at field.
	electronicsDescCreatedAt := electronicsMixinFields0[0].Descriptor()
	// electronics.DefaultCreatedAt holds the default value on creation for the created_at field.
	electronics.DefaultCreatedAt = electronicsDescCreatedAt.Default.(func() time.Time)
	// electronicsDescUpdatedAt is the schema descriptor for updated_at field.
	electronicsDescUpdatedAt := electronicsMixinFields0[1].Descriptor()
	// electronics.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	electronics.DefaultUpdatedAt = electronicsDescUpdatedAt.Default.(func() time.Time)
	// electronics.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	electronics.UpdateDefaultUpdatedAt = electronicsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// electronicsDescModel is the schema descriptor for model field.
	electronicsDescModel := electronicsFields[0].Descriptor()
	// electronics.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	electronics.ModelValidator = electronicsDescModel.Validators[0].(func(string) error)
	// electronicsDescType is the schema descriptor for type field.
	electronicsDescType := electronicsFields[1].Descriptor()
	// electronics.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	electronics.TypeValidator = electronicsDescType.Validators[0].(func(string) error)
	// electronicsDescLocation is the schema descriptor for location field.
	electronicsDescLocation := electronicsFields[2].Descriptor()
	// electronics.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	electronics.LocationValidator = electronicsDescLocation.Validators[0].(func(string) error)
	// electronicsDescPrice is the schema descriptor for price field.
	electronicsDescPrice := electronicsFields[3].Descriptor()
	// electronics.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	electronics.PriceValidator = electronicsDescPrice.Validators[0].(func(float64) error)
	hardwarerequirementMixin := schema.HardwareRequirement{}.Mixin()
	hardwarerequirementMixinFields0 := hardwarerequirementMixin[0].Fields()
	_ = hardwarerequirementMixinFields0
	hardwarerequirementFields := schema.HardwareRequirement{}.Fields()
	_ = hardwarerequirementFields
	// hardwarerequirementDescCreatedAt is the schema descriptor for created_at field.
	hardwarerequirementDescCreatedAt := hardwarerequirementMixinFields0[0].Descriptor()
	// hardwarerequirement.DefaultCreatedAt holds the default value on creation for the created_at field.
	hardwarerequirement.DefaultCreatedAt = hardwarerequirementDescCreatedAt.Default.(func() time.Time)
	// hardwarerequirementDescUpdatedAt is the schema descriptor for updated_at field.
	hardwarerequirementDescUpdatedAt := hardwarerequirementMixinFields0[1].Descriptor()
	// hardwarerequirement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hardwarerequirement.DefaultUpdatedAt = hardwarerequirementDescUpdatedAt.Default.(func() time.Time)
	// hardwarerequirement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hardwarerequirement.UpdateDefaultUpdatedAt = hardwarerequirementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// hardwarerequirementDescUnit is the schema descriptor for unit field.
	hardwarerequirementDescUnit := hardwarerequirementFields[1].Descriptor()
	// hardwarerequirement.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	hardwarerequirement.UnitValidator = hardwarerequirementDescUnit.Validators[0].(func(string) error)
	materialMixin := schema.Material{}.Mixin()
	materialMixinFields0 := materialMixin[0].Fields()
	_ = materialMixinFields0
	materialFields := schema.Material{}.Fields()
	_ = materialFields
	// materialDescCreatedAt is the schema descriptor for created_at field.
	materialDescCreatedAt := materialMixinFields0[0].Descriptor()
	// material.DefaultCreatedAt holds the default value on creation for the created_at field.
	material.DefaultCreatedAt = materialDescCreatedAt.Default.(func() time.Time)
	// materialDescUpdatedAt is the schema descriptor for updated_at field.
	materialDescUpdatedAt := materialMixinFields0[1].Descriptor()
	// material.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	material.DefaultUpdatedAt = materialDescUpdatedAt.Default.(func() time.Time)
	// material.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	material.UpdateDefaultUpdatedAt = materialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// materialDescTypeOfMaterial is the schema descriptor for type_of_material field.
	materialDescTypeOfMaterial := materialFields[0].Descriptor()
	// material.TypeOfMaterialValidator is a validator for the "type_of_material" field. It is called by the builders before save.
	material.TypeOfMaterialValidator = materialDescTypeOfMaterial.Validators[0].(func(string) error)
	// materialDescUnit is the schema descriptor for unit field.
	materialDescUnit := materialFields[2].Descriptor()
	// material.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	material.UnitValidator = materialDescUnit.Validators[0].(func(string) error)
	materialfunctionalcharacteristicMixin := schema.MaterialFunctionalCharacteristic{}.Mixin()
	materialfunctionalcharacteristicMixinFields0 := materialfunctionalcharacteristicMixin[0].Fields()
	_ = materialfunctionalcharacteristicMixinFields0
	materialfunctionalcharacteristicFields := schema.MaterialFunctionalCharacteristic{}.Fields()
	_ = materialfunctionalcharacteristicFields
	// materialfunctionalcharacteristicDescCreatedAt is the schema descriptor for created_at field.
	materialfunctionalcharacteristicDescCreatedAt := materialfunctionalcharacteristicMixinFields0[0].Descriptor()
	// materialfunctionalcharacteristic.DefaultCreatedAt holds the default value on creation for the created_at field.
	materialfunctionalcharacteristic.DefaultCreatedAt = materialfunctionalcharacteristicDescCreatedAt.Default.(func() time.Time)
	// materialfunctionalcharacteristicDescUpdatedAt is the schema descriptor for updated_at field.
	materialfunctionalcharacteristicDescUpdatedAt := materialfunctionalcharacteristicMixinFields0[1].Descriptor()
	// materialfunctionalcharacteristic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	materialfunctionalcharacteristic.DefaultUpdatedAt = materialfunctionalcharacteristicDescUpdatedAt.Default.(func() time.Time)
	// materialfunctionalcharacteristic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	materialfunctionalcharacteristic.UpdateDefaultUpdatedAt = materialfunctionalcharacteristicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// materialfunctionalcharacteristicDescUnit is the schema descriptor for unit field.
	materialfunctionalcharacteristicDescUnit := materialfunctionalcharacteristicFields[0].Descriptor()
	// materialfunctionalcharacteristic.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	materialfunctionalcharacteristic.UnitValidator = materialfunctionalcharacteristicDescUnit.Validators[0].(func(string) error)
	// materialfunctionalcharacteristicDescDescription is the schema descriptor for description field.
	materialfunctionalcharacteristicDescDescription := materialfunctionalcharacteristicFields[2].Descriptor()
	// materialfunctionalcharacteristic.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	materialfunctionalcharacteristic.DescriptionValidator = materialfunctionalcharacteristicDescDescription.Validators[0].(func(string) error)
	materialoperationalcharacteristicMixin := schema.MaterialOperationalCharacteristic{}.Mixin()
	materialoperationalcharacteristicMixinFields0 := materialoperationalcharacteristicMixin[0].Fields()
	_ = materialoperationalcharacteristicMixinFields0
	materialoperationalcharacteristicFields := schema.MaterialOperationalCharacteristic{}.Fields()
	_ = materialoperationalcharacteristicFields
	// materialoperationalcharacteristicDescCreatedAt is the schema descriptor for created_at field.
	materialoperationalcharacteristicDescCreatedAt := materialoperationalcharacteristicMixinFields0[0].Descriptor()
	// materialoperationalcharacteristic.DefaultCreatedAt holds the default value on creation for the created_at field.
	materialoperationalcharacteristic.DefaultCreatedAt = materialoperationalcharacteristicDescCreatedAt.Default.(func() time.Time)
	// materialoperationalcharacteristicDescUpdatedAt is the schema descriptor for updated_at field.
	materialoperationalcharacteristicDescUpdatedAt := materialoperationalcharacteristicMixinFields0[1].Descriptor()
	// materialoperationalcharacteristic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	materialoperationalcharacteristic.DefaultUpdatedAt = materialoperationalcharacteristicDescUpdatedAt.Default.(func() time.Time)
	// materialoperationalcharacteristic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	materialoperationalcharacteristic.UpdateDefaultUpdatedAt = materialoperationalcharacteristicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// materialoperationalcharacteristicDescUnit is the schema descriptor for unit field.
	materialoperationalcharacteristicDescUnit := materialoperationalcharacteristicFields[0].Descriptor()
	// materialoperationalcharacteristic.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	materialoperationalcharacteristic.UnitValidator = materialoperationalcharacteristicDescUnit.Validators[0].(func(string) error)
	physicaltestdataMixin := schema.PhysicalTestData{}.Mixin()
	physicaltestdataMixinFields0 := physicaltestdataMixin[0].Fields()
	_ = physicaltestdataMixinFields0
	physicaltestdataFields := schema.PhysicalTestData{}.Fields()
	_ = physicaltestdataFields
	// physicaltestdataDescCreatedAt is the schema descriptor for created_at field.
	physicaltestdataDescCreatedAt := physicaltestdataMixinFields0[0].Descriptor()
	// physicaltestdata.DefaultCreatedAt holds the default value on creation for the created_at field.
	physicaltestdata.DefaultCreatedAt = physicaltestdataDescCreatedAt.Default.(func() time.Time)
	// physicaltestdataDescUpdatedAt is the schema descriptor for updated_at field.
	physicaltestdataDescUpdatedAt := physicaltestdataMixinFields0[1].Descriptor()
	// physicaltestdata.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	physicaltestdata.DefaultUpdatedAt = physicaltestdataDescUpdatedAt.Default.(func() time.Time)
	// physicaltestdata.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	physicaltestdata.UpdateDefaultUpdatedAt = physicaltestdataDescUpdatedAt.UpdateDefault.(func() time.Time)
	// physicaltestdataDescUnit is the schema descriptor for unit field.
	physicaltestdataDescUnit := physicaltestdataFields[1].Descriptor()
	// physicaltestdata.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	physicaltestdata.UnitValidator = physicaltestdataDescUnit.Validators[0].(func(string) error)
	// physicaltestdataDescDescription is the schema descriptor for description field.
	physicaltestdataDescDescription := physicaltestdataFields[2].Descriptor()
	// physicaltestdata.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	physicaltestdata.DescriptionValidator = physicaltestdataDescDescription.Validators[0].(func(string) error)
	satelliteMixin := schema.Satellite{}.Mixin()
	satelliteMixinFields0 := satelliteMixin[0].Fields()
	_ = satelliteMixinFields0
	satelliteFields := schema.Satellite{}.Fields()
	_ = satelliteFields
	// satelliteDescCreatedAt is the schema descriptor for created_at field.
	satelliteDescCreatedAt := satelliteMixinFields0[0].Descriptor()
	// satellite.DefaultCreatedAt holds the default value on creation for the created_at field.
	satellite.DefaultCreatedAt = satelliteDescCreatedAt.Default.(func() time.Time)
	// satelliteDescUpdatedAt is the schema descriptor for updated_at field.
	satelliteDescUpdatedAt := satelliteMixinFields0[1].Descriptor()
	// satellite.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	satellite.DefaultUpdatedAt = satelliteDescUpdatedAt.Default.(func() time.Time)
	// satellite.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	satellite.UpdateDefaultUpdatedAt = satelliteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// satelliteDescName is the schema descriptor for name field.
	satelliteDescName := satelliteFields[0].Descriptor()
	// satellite.NameValidator is a validator for the "name" field. It is called by the builders before save.
	satellite.NameValidator = func() func(string) error {
		validators := satelliteDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// satelliteDescType is the schema descriptor for type field.
	satelliteDescType := satelliteFields[1].Descriptor()
	// satellite.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	satellite.TypeValidator = func() func(string) error {
		validators := satelliteDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	satelliteopcharacteristicMixin := schema.SatelliteOpCharacteristic{}.Mixin()
	satelliteopcharacteristicMixinFields0 := satelliteopcharacteristicMixin[0].Fields()
	_ = satelliteopcharacteristicMixinFields0
	satelliteopcharacteristicFields := schema.SatelliteOpCharacteristic{}.Fields()
	_ = satelliteopcharacteristicFields
	// satelliteopcharacteristicDescCreatedAt is the schema descriptor for created_at field.
	satelliteopcharacteristicDescCreatedAt := satelliteopcharacteristicMixinFields0[0].Descriptor()
	// satelliteopcharacteristic.DefaultCreatedAt holds the default value on creation for the created_at field.
	satelliteopcharacteristic.DefaultCreatedAt = satelliteopcharacteristicDescCreatedAt.Default.(func() time.Time)
	// satelliteopcharacteristicDescUpdatedAt is the schema descriptor for updated_at field.
	satelliteopcharacteristicDescUpdatedAt := satelliteopcharacteristicMixinFields0[1].Descriptor()
	// satelliteopcharacteristic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	satelliteopcharacteristic.DefaultUpdatedAt = satelliteopcharacteristicDescUpdatedAt.Default.(func() time.Time)
	// satelliteopcharacteristic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	satelliteopcharacteristic.UpdateDefaultUpdatedAt = satelliteopcharacteristicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// satelliteopcharacteristicDescParameterName is the schema descriptor for parameter_name field.
	satelliteopcharacteristicDescParameterName := satelliteopcharacteristicFields[0].Descriptor()
	// satelliteopcharacteristic.ParameterNameValidator is a validator for the "parameter_name" field. It is called by the builders before save.
	satelliteopcharacteristic.ParameterNameValidator = satelliteopcharacteristicDescParameterName.Validators[0].(func(string) error)
	// satelliteopcharacteristicDescUnit is the schema descriptor for unit field.
	satelliteopcharacteristicDescUnit := satelliteopcharacteristicFields[2].Descriptor()
	// satelliteopcharacteristic.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	satelliteopcharacteristic.UnitValidator = satelliteopcharacteristicDescUnit.Validators[0].(func(string) error)
	sensorMixin := schema.Sensor{}.Mixin()
	sensorMixinFields0 := sensorMixin[0].Fields()
	_ = sensorMixinFields0
	sensorFields := schema.Sensor{}.Fields()
	_ = sensorFields
	// sensorDescCreatedAt is the schema descriptor for created_at field.
	sensorDescCreatedAt := sensorMixinFields0[0].Descriptor()
	// sensor.DefaultCreatedAt holds the default value on creation for the created_at field.
	sensor.DefaultCreatedAt = sensorDescCreatedAt.Default.(func() time.Time)
	// sensorDescUpdatedAt is the schema descriptor for updated_at field.
	sensorDescUpdatedAt := sensorMixinFields0[1].Descriptor()
	// sensor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sensor.DefaultUpdatedAt = sensorDescUpdatedAt.Default.(func() time.Time)
	// sensor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sensor.UpdateDefaultUpdatedAt = sensorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sensorDescLocation is the schema descriptor for location field.
	sensorDescLocation := sensorFields[0].Descriptor()
	// sensor.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	sensor.LocationValidator = sensorDescLocation.Validators[0].(func(string) error)
	// sensorDescDescription is the schema descriptor for description field.
	sensorDescDescription := sensorFields[3].Descriptor()
	// sensor.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	sensor.DescriptionValidator = sensorDescDescription.Validators[0].(func(string) error)
	standMixin := schema.Stand{}.Mixin()
	standMixinFields0 := standMixin[0].Fields()
	_ = standMixinFields0
	standFields := schema.Stand{}.Fields()
	_ = standFields
	// standDescCreatedAt is the schema descriptor for created_at field.
	standDescCreatedAt := standMixinFields0[0].Descriptor()
	// stand.DefaultCreatedAt holds the default value on creation for the created_at field.
	stand.DefaultCreatedAt = standDescCreatedAt.Default.(func() time.Time)
	// standDescUpdatedAt is the schema descriptor for updated_at field.
	standDescUpdatedAt := standMixinFields0[1].Descriptor()
	// stand.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stand.DefaultUpdatedAt = standDescUpdatedAt.Default.(func() time.Time)
	// stand.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stand.UpdateDefaultUpdatedAt = standDescUpdatedAt.UpdateDefault.(func() time.Time)
	// standDescNameOfStand is the schema descriptor for name_of_stand field.
	standDescNameOfStand := standFields[0].Descriptor()
	// stand.NameOfStandValidator is a validator for the "name_of_stand" field. It is called by the builders before save.
	stand.NameOfStandValidator = standDescNameOfStand.Validators[0].(func(string) error)
	// standDescTypeOfStand is the schema descriptor for type_of_stand field.
	standDescTypeOfStand := standFields[1].Descriptor()
	// stand.TypeOfStandValidator is a validator for the "type_of_stand" field. It is called by the builders before save.
	stand.TypeOfStandValidator = standDescTypeOfStand.Validators[0].(func(string) error)
	technicalspecificationMixin := schema.TechnicalSpecification{}.Mixin()
	technicalspecificationMixinFields0 := technicalspecificationMixin[0].Fields()
	_ = technicalspecificationMixinFields0
	technicalspecificationFields := schema.TechnicalSpecification{}.Fields()
	_ = technicalspecificationFields
	// technicalspecificationDescCreatedAt is the schema descriptor for created_at field.
	technicalspecificationDescCreatedAt := technicalspecificationMixinFields0[0].Descriptor()
	// technicalspecification.DefaultCreatedAt holds the default value on creation for the created_at field.
	technicalspecification.DefaultCreatedAt = technicalspecificationDescCreatedAt.Default.(func() time.Time)
	// technicalspecificationDescUpdatedAt is the schema descriptor for updated_at field.
	technicalspecificationDescUpdatedAt := technicalspecificationMixinFields0[1].Descriptor()
	// technicalspecification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	technicalspecification.DefaultUpdatedAt = technicalspecificationDescUpdatedAt.Default.(func() time.Time)
	// technicalspecification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	technicalspecification.UpdateDefaultUpdatedAt = technicalspecificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[3].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}
