package query

import (
	"context"
	"encoding/json"

	apperrors "satfab.io/satfab/internal/pkg/errors"
)

// requireInt unwraps a required integer argument.
func requireInt(v *int, name string) (int, error) {
	if v == nil {
		return 0, apperrors.BadRequest(apperrors.CodeValidationFailed, name+" is required")
	}
	return *v, nil
}

// requireFloat unwraps a required numeric argument.
func requireFloat(v *float64, name string) (float64, error) {
	if v == nil {
		return 0, apperrors.BadRequest(apperrors.CodeValidationFailed, name+" is required")
	}
	return *v, nil
}

// requireString unwraps a required string argument.
func requireString(v *string, name string) (string, error) {
	if v == nil {
		return "", apperrors.BadRequest(apperrors.CodeValidationFailed, name+" is required")
	}
	return *v, nil
}

type idArgs struct {
	ID *int `json:"id"`
}

func (s *Server) addSatellite(ctx context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Name *string `json:"name"`
		Type *string `json:"type"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	name, err := requireString(a.Name, "name")
	if err != nil {
		return nil, err
	}
	typ, err := requireString(a.Type, "type")
	if err != nil {
		return nil, err
	}
	row, err := s.satellites.Add(ctx, name, typ)
	if err != nil {
		return nil, err
	}
	return toSatellite(row), nil
}

func (s *Server) addSatelliteOperationalCharacteristic(ctx context.Context, args json.RawMessage) (any, error) {
	var a struct {
		SatelliteID   *int     `json:"satelliteId"`
		ParameterName *string  `json:"parameterName"`
		Value         *float64 `json:"value"`
		Unit          *string  `json:"unit"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	satID, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	name, err := requireString(a.ParameterName, "parameterName")
	if err != nil {
		return nil, err
	}
	value, err := requireFloat(a.Value, "value")
	if err != nil {
		return nil, err
	}
	unit, err := requireString(a.Unit, "unit")
	if err != nil {
		return nil, err
	}
	row, err := s.satellites.AddOpCharacteristic(ctx, satID, name, value, unit)
	if err != nil {
		return nil, err
	}
	return toSatelliteOpCharacteristic(row), nil
}

func (s *Server) addElectronics(ctx context.Context, args json.RawMessage) (any, error) {
	var a struct {
		SatelliteID *int     `json:"satelliteId"`
		Model       *string  `json:"model"`
		Type        *string  `json:"type"`
		Location    *string  `json:"location"`
		Price       *float64 `json:"price"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	satID, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	model, err := requireString(a.Model, "model")
	if err != nil {
		return nil, err
	}
	typ, err := requireString(a.Type, "type")
	if err != nil {
		return nil, err
	}
	location, err := requireString(a.Location, "location")
	if err != nil {
		return nil, err
	}
	price, err := requireFloat(a.Price, "price")
	if err != nil {
		return nil, err
	}
	row, err := s.electronics.Add(ctx, satID, model, typ, location, price)
	if err != nil {
		return nil, err
	}
	return toElectronics(row), nil
}

func (s *Server) updateElectronicsPrice(ctx context.Context, args json.RawMessage) (any, error) {
	var a struct {
		ID    *int     `json:"id"`
		Price *float64 `json:"price"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.ID, "id")
	if err != nil {
		return nil, err
	}
	price, err := requireFloat(a.Price, "price")
	if err != nil {
		return nil, err
	}
	row, err := s.electronics.UpdatePrice(ctx, id, price)
	if err != nil {
		return nil, err
	}
	return toElectronics(row), nil
}

func (s *Server) deleteElectronics(ctx context.Context, args json.RawMessage) (any, error) {
	var a idArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.ID, "id")
	if err != nil {
		return nil, err
	}
	if err := s.electronics.Delete(ctx, id); err != nil {
		return nil, err
	}
	return true, nil
}

func (s *Server) addCalendarStage(ctx context.Context, args json.RawMessage) (any, error) {
	var a struct {
		SatelliteID *int    `json:"satelliteId"`
		NameOfStage *string `json:"nameOfStage"`
		TimeOfFrame *string `json:"timeOfFrame"`
		Duration    *int    `json:"duration"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	satID, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	name, err := requireString(a.NameOfStage, "nameOfStage")
	if err != nil {
		return nil, err
	}
	rawDate, err := requireString(a.TimeOfFrame, "timeOfFrame")
	if err != nil {
		return nil, err
	}
	date, err := parseDate(rawDate)
	if err != nil {
		return nil, err
	}
	duration, err := requireInt(a.Duration, "duration")
	if err != nil {
		return nil, err
	}
	ranked, err := s.calendar.Add(ctx, satID, name, date, duration)
	if err != nil {
		return nil, err
	}
	return toCalendarStage(ranked), nil
}

func (s *Server) updateCalendarStage(ctx context.Context, args json.RawMessage) (any, error) {
	var a struct {
		ID          *int    `json:"id"`
		NameOfStage *string `json:"nameOfStage"`
		TimeOfFrame *string `json:"timeOfFrame"`
		Duration    *int    `json:"duration"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.ID, "id")
	if err != nil {
		return nil, err
	}
	name, err := requireString(a.NameOfStage, "nameOfStage")
	if err != nil {
		return nil, err
	}
	rawDate, err := requireString(a.TimeOfFrame, "timeOfFrame")
	if err != nil {
		return nil, err
	}
	date, err := parseDate(rawDate)
	if err != nil {
		return nil, err
	}
	duration, err := requireInt(a.Duration, "duration")
	if err != nil {
		return nil, err
	}
	ranked, err := s.calendar.Update(ctx, id, name, date, duration)
	if err != nil {
		return nil, err
	}
	return toCalendarStage(ranked), nil
}

func (s *Server) deleteCalendarStage(ctx context.Context, args json.RawMessage) (any, error) {
	var a idArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.ID, "id")
	if err != nil {
		return nil, err
	}
	if err := s.calendar.Delete(ctx, id); err != nil {
		return nil, err
	}
	return true, nil
}

func (s *Server) addMaterial(ctx context.Context, args json.RawMessage) (any, error) {
	var a struct {
		TypeOfMaterial *string  `json:"typeOfMaterial"`
		Amount         *float64 `json:"amount"`
		Unit           *string  `json:"unit"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	typ, err := requireString(a.TypeOfMaterial, "typeOfMaterial")
	if err != nil {
		return nil, err
	}
	amount, err := requireFloat(a.Amount, "amount")
	if err != nil {
		return nil, err
	}
	unit, err := requireString(a.Unit, "unit")
	if err != nil {
		return nil, err
	}
	row, err := s.materials.Add(ctx, typ, amount, unit)
	if err != nil {
		return nil, err
	}
	return toMaterial(row), nil
}

func (s *Server) deleteMaterial(ctx context.Context, args json.RawMessage) (any, error) {
	var a idArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.ID, "id")
	if err != nil {
		return nil, err
	}
	if err := s.materials.Delete(ctx, id); err != nil {
		return nil, err
	}
	return true, nil
}

func (s *Server) addStand(ctx context.Context, args json.RawMessage) (any, error) {
	var a struct {
		SatelliteID *int    `json:"satelliteId"`
		NameOfStand *string `json:"nameOfStand"`
		TypeOfStand *string `json:"typeOfStand"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	satID, err := requireID(a.SatelliteID, "satelliteId")
	if err != nil {
		return nil, err
	}
	name, err := requireString(a.NameOfStand, "nameOfStand")
	if err != nil {
		return nil, err
	}
	typ, err := requireString(a.TypeOfStand, "typeOfStand")
	if err != nil {
		return nil, err
	}
	row, err := s.stands.AddStand(ctx, satID, name, typ)
	if err != nil {
		return nil, err
	}
	return toStand(row), nil
}

func (s *Server) deleteStand(ctx context.Context, args json.RawMessage) (any, error) {
	var a idArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.ID, "id")
	if err != nil {
		return nil, err
	}
	if err := s.stands.DeleteStand(ctx, id); err != nil {
		return nil, err
	}
	return true, nil
}

func (s *Server) addSensor(ctx context.Context, args json.RawMessage) (any, error) {
	var a struct {
		StandID     *int     `json:"standId"`
		Location    *string  `json:"location"`
		Value       *float64 `json:"value"`
		Unit        *string  `json:"unit"`
		Description *string  `json:"description"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	standID, err := requireID(a.StandID, "standId")
	if err != nil {
		return nil, err
	}
	location, err := requireString(a.Location, "location")
	if err != nil {
		return nil, err
	}
	description, err := requireString(a.Description, "description")
	if err != nil {
		return nil, err
	}
	row, err := s.stands.AddSensor(ctx, standID, location, a.Value, a.Unit, description)
	if err != nil {
		return nil, err
	}
	return toSensor(row), nil
}

func (s *Server) deleteSensor(ctx context.Context, args json.RawMessage) (any, error) {
	var a idArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	id, err := requireID(a.ID, "id")
	if err != nil {
		return nil, err
	}
	if err := s.stands.DeleteSensor(ctx, id); err != nil {
		return nil, err
	}
	return true, nil
}
