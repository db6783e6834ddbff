package query

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"satfab.io/satfab/ent"
	"satfab.io/satfab/internal/api/middleware"
	"satfab.io/satfab/internal/pkg/logger"
	"satfab.io/satfab/internal/service"
	"satfab.io/satfab/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// newDispatchServer builds a Server whose handlers never reach the store.
// Good enough for contract-shape tests: dispatch, role gating and argument
// validation all run before any service call.
func newDispatchServer() *Server {
	return NewServer(ServerDeps{})
}

func newStoreServer(t *testing.T, prefix string) (*Server, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	srv := NewServer(ServerDeps{
		Satellites:  service.NewSatelliteService(client),
		Electronics: service.NewElectronicsService(client),
		Materials:   service.NewMaterialService(client),
		Stands:      service.NewStandService(client),
		Calendar:    service.NewCalendarService(client),
		EntClient:   client,
	})
	return srv, client
}

// doOp posts one contract request with the given role already authenticated.
func doOp(t *testing.T, srv *Server, role, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.POST("/api/v1/query", func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			middleware.SetUserContext(c.Request.Context(), "tester", role),
		)
		srv.Execute(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return env
}

func wantErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if len(env.Errors) != 1 {
		t.Fatalf("errors = %d entries, want 1 (body %s)", len(env.Errors), rec.Body.String())
	}
	if env.Errors[0].Code != code {
		t.Fatalf("error code = %s, want %s", env.Errors[0].Code, code)
	}
	if env.Errors[0].Message == "" {
		t.Fatal("error message must not be empty")
	}
}

func TestExecute_UnknownOperation(t *testing.T) {
	srv := newDispatchServer()
	rec := doOp(t, srv, RoleAdmin, `{"operationName":"launchSatellite","arguments":{}}`)
	wantErrorCode(t, rec, http.StatusBadRequest, "UNKNOWN_OPERATION")
}

func TestExecute_MissingOperationName(t *testing.T) {
	srv := newDispatchServer()
	rec := doOp(t, srv, RoleAdmin, `{"arguments":{}}`)
	wantErrorCode(t, rec, http.StatusBadRequest, "INVALID_REQUEST")
}

func TestExecute_InvalidBody(t *testing.T) {
	srv := newDispatchServer()
	rec := doOp(t, srv, RoleAdmin, `{not json`)
	wantErrorCode(t, rec, http.StatusBadRequest, "INVALID_REQUEST")
}

func TestExecute_ForbiddenRole(t *testing.T) {
	srv := newDispatchServer()

	// Managers read everything but write nothing.
	rec := doOp(t, srv, RoleManager, `{"operationName":"addSatellite","arguments":{"name":"X","type":"test"}}`)
	wantErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")

	// Engineers own material/stand/sensor writes, not the satellite subtree.
	rec = doOp(t, srv, RoleEngineer, `{"operationName":"deleteElectronics","arguments":{"id":1}}`)
	wantErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
}

func TestExecute_MissingRequiredArgument(t *testing.T) {
	srv := newDispatchServer()
	rec := doOp(t, srv, RoleManager, `{"operationName":"listElectronics","arguments":{}}`)
	wantErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestExecute_UnknownArgumentRejected(t *testing.T) {
	srv := newDispatchServer()
	rec := doOp(t, srv, RoleManager, `{"operationName":"listElectronics","arguments":{"satellite":1}}`)
	wantErrorCode(t, rec, http.StatusBadRequest, "INVALID_REQUEST")
}

func TestExecute_InvalidSortOrder(t *testing.T) {
	srv := newDispatchServer()
	rec := doOp(t, srv, RoleManager, `{"operationName":"listMaterials","arguments":{"sortByAmount":"sideways"}}`)
	wantErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestExecute_InvalidDate(t *testing.T) {
	srv := newDispatchServer()
	rec := doOp(t, srv, RoleAdmin,
		`{"operationName":"addCalendarStage","arguments":{"satelliteId":1,"nameOfStage":"assembly","timeOfFrame":"01/05/2024","duration":5}}`)
	wantErrorCode(t, rec, http.StatusBadRequest, "INVALID_DATE")
}

func TestOperations_RoleTiers(t *testing.T) {
	t.Parallel()

	srv := newDispatchServer()

	if len(srv.ops) != 30 {
		t.Fatalf("operations = %d, want 30", len(srv.ops))
	}

	reads := []string{
		"listSatellites", "listMaterials", "listMaterialsFull",
		"listTechnicalSpecifications", "listSatelliteOperationalCharacteristics",
		"listElectronics", "electronicsTotalCost", "electronicsAvgCost",
		"electronicsMinMaxCost", "listCalendarStages", "calendarStageStats",
		"listStands", "listSensors", "listHardwareRequirements",
		"listPhysicalTestData", "listMaterialOperationalCharacteristics",
	}
	engineerWrites := []string{
		"addMaterial", "deleteMaterial", "addStand", "deleteStand",
		"addSensor", "deleteSensor",
	}
	adminWrites := []string{
		"addSatellite", "addSatelliteOperationalCharacteristic",
		"addElectronics", "updateElectronicsPrice", "deleteElectronics",
		"addCalendarStage", "updateCalendarStage", "deleteCalendarStage",
	}

	for _, name := range reads {
		op, ok := srv.ops[name]
		if !ok {
			t.Fatalf("missing query operation %s", name)
		}
		if !op.roles[RoleManager] || !op.roles[RoleEngineer] || !op.roles[RoleAdmin] {
			t.Fatalf("query %s must be readable by every role", name)
		}
	}
	for _, name := range engineerWrites {
		op, ok := srv.ops[name]
		if !ok {
			t.Fatalf("missing mutation %s", name)
		}
		if op.roles[RoleManager] || !op.roles[RoleEngineer] || !op.roles[RoleAdmin] {
			t.Fatalf("mutation %s has wrong role set", name)
		}
	}
	for _, name := range adminWrites {
		op, ok := srv.ops[name]
		if !ok {
			t.Fatalf("missing mutation %s", name)
		}
		if op.roles[RoleManager] || op.roles[RoleEngineer] || !op.roles[RoleAdmin] {
			t.Fatalf("mutation %s has wrong role set", name)
		}
	}
}

func TestExecute_SatelliteAndElectronicsFlow(t *testing.T) {
	srv, _ := newStoreServer(t, "query_flow")

	rec := doOp(t, srv, RoleAdmin,
		`{"operationName":"addSatellite","arguments":{"name":"Sentinel-X","type":"earth-observation"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("addSatellite status = %d (body %s)", rec.Code, rec.Body.String())
	}
	var created struct {
		Data Satellite `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode addSatellite: %v", err)
	}
	if created.Data.ID == 0 || created.Data.Name != "Sentinel-X" {
		t.Fatalf("addSatellite data = %+v", created.Data)
	}
	satID := created.Data.ID

	// Empty electronics set: aggregates are 0 and min/max fields null.
	rec = doOp(t, srv, RoleManager,
		`{"operationName":"electronicsTotalCost","arguments":{"satelliteId":`+itoa(satID)+`}}`)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `{"data":0}` {
		t.Fatalf("electronicsTotalCost empty = %s", rec.Body.String())
	}
	rec = doOp(t, srv, RoleManager,
		`{"operationName":"electronicsMinMaxCost","arguments":{"satelliteId":`+itoa(satID)+`}}`)
	var mm struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &mm); err != nil {
		t.Fatalf("decode minmax: %v", err)
	}
	for _, field := range []string{"minCost", "minModel", "maxCost", "maxModel"} {
		v, present := mm.Data[field]
		if !present {
			t.Fatalf("minmax missing field %s (body %s)", field, rec.Body.String())
		}
		if v != nil {
			t.Fatalf("minmax field %s = %v, want null", field, v)
		}
	}

	for _, args := range []string{
		`{"satelliteId":` + itoa(satID) + `,"model":"OBC-4000","type":"computer","location":"bay","price":100}`,
		`{"satelliteId":` + itoa(satID) + `,"model":"XTR-200","type":"transceiver","location":"comms","price":200}`,
		`{"satelliteId":` + itoa(satID) + `,"model":"PCU-9","type":"power","location":"power bay","price":300}`,
	} {
		rec = doOp(t, srv, RoleAdmin, `{"operationName":"addElectronics","arguments":`+args+`}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("addElectronics status = %d (body %s)", rec.Code, rec.Body.String())
		}
	}

	rec = doOp(t, srv, RoleManager,
		`{"operationName":"electronicsTotalCost","arguments":{"satelliteId":`+itoa(satID)+`}}`)
	if strings.TrimSpace(rec.Body.String()) != `{"data":600}` {
		t.Fatalf("electronicsTotalCost = %s, want 600", rec.Body.String())
	}
	rec = doOp(t, srv, RoleManager,
		`{"operationName":"electronicsAvgCost","arguments":{"satelliteId":`+itoa(satID)+`}}`)
	if strings.TrimSpace(rec.Body.String()) != `{"data":200}` {
		t.Fatalf("electronicsAvgCost = %s, want 200", rec.Body.String())
	}

	rec = doOp(t, srv, RoleAdmin,
		`{"operationName":"addElectronics","arguments":{"satelliteId":`+itoa(satID)+`,"model":"BAD","type":"x","location":"y","price":-1}}`)
	wantErrorCode(t, rec, http.StatusBadRequest, "NEGATIVE_PRICE")
}

func TestExecute_CalendarStageFlow(t *testing.T) {
	srv, client := newStoreServer(t, "query_calendar")

	rec := doOp(t, srv, RoleAdmin,
		`{"operationName":"addSatellite","arguments":{"name":"Sentinel-X","type":"earth-observation"}}`)
	var created struct {
		Data Satellite `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode addSatellite: %v", err)
	}
	satID := created.Data.ID

	// The precondition fires while the satellite has no technical specification.
	rec = doOp(t, srv, RoleAdmin,
		`{"operationName":"addCalendarStage","arguments":{"satelliteId":`+itoa(satID)+`,"nameOfStage":"assembly","timeOfFrame":"2024-01-05","duration":21}}`)
	wantErrorCode(t, rec, http.StatusUnprocessableEntity, "TECH_SPEC_REQUIRED")

	if _, err := client.TechnicalSpecification.Create().
		SetSatelliteID(satID).Save(t.Context()); err != nil {
		t.Fatalf("create technical specification: %v", err)
	}

	rec = doOp(t, srv, RoleAdmin,
		`{"operationName":"addCalendarStage","arguments":{"satelliteId":`+itoa(satID)+`,"nameOfStage":"integration","timeOfFrame":"2024-01-05","duration":21}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("addCalendarStage status = %d (body %s)", rec.Code, rec.Body.String())
	}
	rec = doOp(t, srv, RoleAdmin,
		`{"operationName":"addCalendarStage","arguments":{"satelliteId":`+itoa(satID)+`,"nameOfStage":"assembly","timeOfFrame":"2024-01-01","duration":14}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("addCalendarStage status = %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = doOp(t, srv, RoleManager,
		`{"operationName":"listCalendarStages","arguments":{"satelliteId":`+itoa(satID)+`}}`)
	var listed struct {
		Data []CalendarStage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode listCalendarStages: %v", err)
	}
	if len(listed.Data) != 2 {
		t.Fatalf("stages = %d, want 2", len(listed.Data))
	}
	if listed.Data[0].NameOfStage != "assembly" || listed.Data[0].StageOrder != 1 {
		t.Fatalf("first stage = %+v, want assembly with order 1", listed.Data[0])
	}
	if listed.Data[1].NameOfStage != "integration" || listed.Data[1].StageOrder != 2 {
		t.Fatalf("second stage = %+v, want integration with order 2", listed.Data[1])
	}

	rec = doOp(t, srv, RoleManager,
		`{"operationName":"calendarStageStats","arguments":{"satelliteId":`+itoa(satID)+`}}`)
	var stats struct {
		Data CalendarStageStats `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode calendarStageStats: %v", err)
	}
	want := CalendarStageStats{AvgDuration: 17.5, MaxDuration: 21, MinDuration: 14, TotalDuration: 35}
	if stats.Data != want {
		t.Fatalf("calendarStageStats = %+v, want %+v", stats.Data, want)
	}
}

func TestExecute_EngineerSensorFlow(t *testing.T) {
	srv, client := newStoreServer(t, "query_sensor")
	ctx := t.Context()

	sat, err := client.Satellite.Create().SetName("Sentinel-X").SetType("test").Save(ctx)
	if err != nil {
		t.Fatalf("create satellite: %v", err)
	}
	if _, err := client.TechnicalSpecification.Create().SetSatelliteID(sat.ID).Save(ctx); err != nil {
		t.Fatalf("create technical specification: %v", err)
	}

	rec := doOp(t, srv, RoleEngineer,
		`{"operationName":"addStand","arguments":{"satelliteId":`+itoa(sat.ID)+`,"nameOfStand":"vibration table A","typeOfStand":"vibration"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("addStand status = %d (body %s)", rec.Code, rec.Body.String())
	}
	var standResp struct {
		Data Stand `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &standResp); err != nil {
		t.Fatalf("decode addStand: %v", err)
	}

	rec = doOp(t, srv, RoleEngineer,
		`{"operationName":"addSensor","arguments":{"standId":`+itoa(standResp.Data.ID)+`,"location":"bay-1","value":null,"unit":null,"description":"temp sensor"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("addSensor status = %d (body %s)", rec.Code, rec.Body.String())
	}
	var sensorResp struct {
		Data Sensor `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sensorResp); err != nil {
		t.Fatalf("decode addSensor: %v", err)
	}
	if sensorResp.Data.Value != nil || sensorResp.Data.Unit != nil {
		t.Fatalf("sensor value/unit = %v/%v, want null/null", sensorResp.Data.Value, sensorResp.Data.Unit)
	}
	if sensorResp.Data.Description != "temp sensor" {
		t.Fatalf("sensor description = %s", sensorResp.Data.Description)
	}

	rec = doOp(t, srv, RoleEngineer,
		`{"operationName":"deleteSensor","arguments":{"id":`+itoa(sensorResp.Data.ID)+`}}`)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `{"data":true}` {
		t.Fatalf("deleteSensor = %s", rec.Body.String())
	}

	rec = doOp(t, srv, RoleEngineer,
		`{"operationName":"deleteSensor","arguments":{"id":`+itoa(sensorResp.Data.ID)+`}}`)
	wantErrorCode(t, rec, http.StatusNotFound, "SENSOR_NOT_FOUND")
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
