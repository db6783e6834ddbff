// Package app is the composition root: it wires configuration, the database
// clients, the domain services and the HTTP router together.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"satfab.io/satfab/internal/api/middleware"
	"satfab.io/satfab/internal/api/query"
	"satfab.io/satfab/internal/config"
	"satfab.io/satfab/internal/infrastructure"
	"satfab.io/satfab/internal/service"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.Auth.TokenSecret),
		Issuer:     cfg.Auth.Issuer,
		ExpiresIn:  cfg.Auth.TokenTTL,
	}

	server := query.NewServer(query.ServerDeps{
		Satellites:  service.NewSatelliteService(db.EntClient),
		Electronics: service.NewElectronicsService(db.EntClient),
		Materials:   service.NewMaterialService(db.EntClient),
		Stands:      service.NewStandService(db.EntClient),
		Calendar:    service.NewCalendarService(db.EntClient),
		EntClient:   db.EntClient,
		Pool:        db.Pool,
		JWTConfig:   jwtCfg,
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server, jwtCfg.SigningKey),
		DB:     db,
	}, nil
}
