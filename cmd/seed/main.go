// Package main loads the SatFab demo dataset: the three demo accounts plus a
// small fleet of satellites with specifications, stands, sensors, electronics,
// calendar stages and materials. Seeding is idempotent; entities already
// present by their natural name are skipped.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"satfab.io/satfab/ent"
	"satfab.io/satfab/ent/material"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/user"
	"satfab.io/satfab/internal/config"
	"satfab.io/satfab/internal/infrastructure"
	"satfab.io/satfab/internal/pkg/logger"
)

//go:embed dataset.yaml
var defaultDataset []byte

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

// dataset is the YAML seed file layout.
type dataset struct {
	Users      []seedUser      `yaml:"users"`
	Satellites []seedSatellite `yaml:"satellites"`
	Materials  []seedMaterial  `yaml:"materials"`
}

type seedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type seedSatellite struct {
	Name                       string              `yaml:"name"`
	Type                       string              `yaml:"type"`
	TechnicalSpecifications    []seedTechSpec      `yaml:"technicalSpecifications"`
	Electronics                []seedElectronics   `yaml:"electronics"`
	OperationalCharacteristics []seedSatOpChar     `yaml:"operationalCharacteristics"`
	CalendarStages             []seedCalendarStage `yaml:"calendarStages"`
	Stands                     []seedStand         `yaml:"stands"`
}

type seedTechSpec struct {
	Description *string `yaml:"description"`
}

type seedElectronics struct {
	Model    string  `yaml:"model"`
	Type     string  `yaml:"type"`
	Location string  `yaml:"location"`
	Price    float64 `yaml:"price"`
}

type seedSatOpChar struct {
	ParameterName string  `yaml:"parameterName"`
	Value         float64 `yaml:"value"`
	Unit          string  `yaml:"unit"`
}

type seedCalendarStage struct {
	NameOfStage string `yaml:"nameOfStage"`
	TimeOfFrame string `yaml:"timeOfFrame"`
	Duration    int    `yaml:"duration"`
}

type seedStand struct {
	NameOfStand          string             `yaml:"nameOfStand"`
	TypeOfStand          string             `yaml:"typeOfStand"`
	Sensors              []seedSensor       `yaml:"sensors"`
	HardwareRequirements []seedHardwareReq  `yaml:"hardwareRequirements"`
	PhysicalTestData     []seedPhysicalTest `yaml:"physicalTestData"`
}

type seedSensor struct {
	Location    string   `yaml:"location"`
	Value       *float64 `yaml:"value"`
	Unit        *string  `yaml:"unit"`
	Description string   `yaml:"description"`
}

type seedHardwareReq struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

type seedPhysicalTest struct {
	Value       float64 `yaml:"value"`
	Unit        string  `yaml:"unit"`
	Description string  `yaml:"description"`
}

type seedMaterial struct {
	TypeOfMaterial string          `yaml:"typeOfMaterial"`
	Amount         float64         `yaml:"amount"`
	Unit           string          `yaml:"unit"`
	Functional     []seedMatChar   `yaml:"functional"`
	Operational    []seedMatOpChar `yaml:"operational"`
}

type seedMatChar struct {
	Unit        string  `yaml:"unit"`
	Value       float64 `yaml:"value"`
	Description string  `yaml:"description"`
}

type seedMatOpChar struct {
	Unit        string  `yaml:"unit"`
	Value       float64 `yaml:"value"`
	Description *string `yaml:"description"`
	Stand       string  `yaml:"stand"`
}

func run() error {
	datasetPath := flag.String("file", "", "path to a YAML dataset (defaults to the embedded demo dataset)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	raw := defaultDataset
	if *datasetPath != "" {
		raw, err = os.ReadFile(*datasetPath)
		if err != nil {
			return fmt.Errorf("read dataset: %w", err)
		}
	}

	ds, err := parseDataset(raw)
	if err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	client := db.EntClient

	logger.Info("Starting data seeding...")

	if err := seedUsers(ctx, client, ds.Users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	for _, sat := range ds.Satellites {
		if err := seedSatelliteTree(ctx, client, sat); err != nil {
			return fmt.Errorf("seed satellite %q: %w", sat.Name, err)
		}
	}
	if err := seedMaterials(ctx, client, ds.Materials); err != nil {
		return fmt.Errorf("seed materials: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

func parseDataset(raw []byte) (*dataset, error) {
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, err
	}
	for _, u := range ds.Users {
		if u.Username == "" || u.Password == "" {
			return nil, fmt.Errorf("user entries need username and password")
		}
	}
	for _, sat := range ds.Satellites {
		if sat.Name == "" {
			return nil, fmt.Errorf("satellite entries need a name")
		}
		for _, st := range sat.CalendarStages {
			if _, err := parseSeedDate(st.TimeOfFrame); err != nil {
				return nil, fmt.Errorf("satellite %q stage %q: %w", sat.Name, st.NameOfStage, err)
			}
		}
	}
	return &ds, nil
}

func parseSeedDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timeOfFrame %q", s)
	}
	return t.UTC(), nil
}

func seedUsers(ctx context.Context, client *ent.Client, users []seedUser) error {
	for _, u := range users {
		exists, err := client.User.Query().Where(user.Username(u.Username)).Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			logger.Debug("user already seeded", zap.String("username", u.Username))
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %q: %w", u.Username, err)
		}
		_, err = client.User.Create().
			SetUsername(u.Username).
			SetPasswordHash(string(hash)).
			SetRole(user.Role(u.Role)).
			SetEnabled(true).
			Save(ctx)
		if err != nil {
			return err
		}
		logger.Info("user seeded", zap.String("username", u.Username), zap.String("role", u.Role))
	}
	return nil
}

// seedSatelliteTree creates a satellite with its whole subtree. A satellite
// already present by name is treated as fully seeded and skipped.
func seedSatelliteTree(ctx context.Context, client *ent.Client, s seedSatellite) error {
	exists, err := client.Satellite.Query().Where(satellite.Name(s.Name)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("satellite already seeded", zap.String("name", s.Name))
		return nil
	}

	sat, err := client.Satellite.Create().SetName(s.Name).SetType(s.Type).Save(ctx)
	if err != nil {
		return err
	}

	var firstSpec *ent.TechnicalSpecification
	for _, spec := range s.TechnicalSpecifications {
		created, err := client.TechnicalSpecification.Create().
			SetNillableDescription(spec.Description).
			SetSatelliteID(sat.ID).
			Save(ctx)
		if err != nil {
			return err
		}
		if firstSpec == nil {
			firstSpec = created
		}
	}

	for _, e := range s.Electronics {
		_, err := client.Electronics.Create().
			SetModel(e.Model).
			SetType(e.Type).
			SetLocation(e.Location).
			SetPrice(e.Price).
			SetSatelliteID(sat.ID).
			Save(ctx)
		if err != nil {
			return err
		}
	}

	for _, oc := range s.OperationalCharacteristics {
		_, err := client.SatelliteOpCharacteristic.Create().
			SetParameterName(oc.ParameterName).
			SetValue(oc.Value).
			SetUnit(oc.Unit).
			SetSatelliteID(sat.ID).
			Save(ctx)
		if err != nil {
			return err
		}
	}

	if len(s.CalendarStages) > 0 || len(s.Stands) > 0 {
		if firstSpec == nil {
			return fmt.Errorf("stages and stands need a technical specification")
		}
	}

	for _, st := range s.CalendarStages {
		date, err := parseSeedDate(st.TimeOfFrame)
		if err != nil {
			return err
		}
		_, err = client.CalendarStage.Create().
			SetNameOfStage(st.NameOfStage).
			SetTimeOfFrame(date).
			SetDuration(st.Duration).
			SetSatelliteID(sat.ID).
			SetTechnicalSpecificationID(firstSpec.ID).
			Save(ctx)
		if err != nil {
			return err
		}
	}

	for _, std := range s.Stands {
		created, err := client.Stand.Create().
			SetNameOfStand(std.NameOfStand).
			SetTypeOfStand(std.TypeOfStand).
			SetSatelliteID(sat.ID).
			SetTechnicalSpecificationID(firstSpec.ID).
			Save(ctx)
		if err != nil {
			return err
		}
		for _, sn := range std.Sensors {
			_, err := client.Sensor.Create().
				SetLocation(sn.Location).
				SetNillableValue(sn.Value).
				SetNillableUnit(sn.Unit).
				SetDescription(sn.Description).
				SetStandID(created.ID).
				Save(ctx)
			if err != nil {
				return err
			}
		}
		for _, hw := range std.HardwareRequirements {
			_, err := client.HardwareRequirement.Create().
				SetValue(hw.Value).
				SetUnit(hw.Unit).
				SetStandID(created.ID).
				Save(ctx)
			if err != nil {
				return err
			}
		}
		for _, pt := range std.PhysicalTestData {
			_, err := client.PhysicalTestData.Create().
				SetValue(pt.Value).
				SetUnit(pt.Unit).
				SetDescription(pt.Description).
				SetStandID(created.ID).
				Save(ctx)
			if err != nil {
				return err
			}
		}
	}

	logger.Info("satellite seeded", zap.String("name", s.Name))
	return nil
}

func seedMaterials(ctx context.Context, client *ent.Client, materials []seedMaterial) error {
	for _, m := range materials {
		exists, err := client.Material.Query().
			Where(material.TypeOfMaterial(m.TypeOfMaterial)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			logger.Debug("material already seeded", zap.String("type", m.TypeOfMaterial))
			continue
		}

		mat, err := client.Material.Create().
			SetTypeOfMaterial(m.TypeOfMaterial).
			SetAmount(m.Amount).
			SetUnit(m.Unit).
			Save(ctx)
		if err != nil {
			return err
		}

		for _, fc := range m.Functional {
			_, err := client.MaterialFunctionalCharacteristic.Create().
				SetUnit(fc.Unit).
				SetValue(fc.Value).
				SetDescription(fc.Description).
				SetMaterialID(mat.ID).
				Save(ctx)
			if err != nil {
				return err
			}
		}

		for _, oc := range m.Operational {
			standRow, err := client.Stand.Query().
				Where(stand.NameOfStand(oc.Stand)).
				First(ctx)
			if err != nil {
				return fmt.Errorf("material %q references stand %q: %w", m.TypeOfMaterial, oc.Stand, err)
			}
			_, err = client.MaterialOperationalCharacteristic.Create().
				SetUnit(oc.Unit).
				SetValue(oc.Value).
				SetNillableDescription(oc.Description).
				SetMaterialID(mat.ID).
				SetStandID(standRow.ID).
				Save(ctx)
			if err != nil {
				return err
			}
		}

		logger.Info("material seeded", zap.String("type", m.TypeOfMaterial))
	}
	return nil
}
