// Package infrastructure provides database and connection pool setup.
//
// A single shared pgxpool backs every consumer; the Ent client reuses the
// pool via stdlib.OpenDBFromPool instead of opening its own connections.
package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"satfab.io/satfab/ent"
	entmigrate "satfab.io/satfab/ent/migrate"
	"satfab.io/satfab/internal/config"
	"satfab.io/satfab/internal/pkg/logger"
)

// DatabaseClients contains all database-related clients sharing one pool.
type DatabaseClients struct {
	// Pool is the shared connection pool.
	Pool *pgxpool.Pool

	// DB is the *sql.DB wrapper around Pool for the Ent ORM.
	// Created via stdlib.OpenDBFromPool to reuse pgxpool connections.
	DB *sql.DB

	// EntClient is the Ent ORM client backed by the shared pool.
	EntClient *ent.Client
}

// NewDatabaseClients creates database clients with a shared connection pool.
func NewDatabaseClients(ctx context.Context, cfg config.DatabaseConfig) (*DatabaseClients, error) {
	dsn := cfg.DSN()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = time.Minute

	// Set UTC timezone on each new connection (pgxpool best practice)
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, "SET timezone = 'UTC'")
		return err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)

	entDriver := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(entDriver))

	logger.Info("Database connection pool created",
		zap.Int32("max_conns", cfg.MaxConns),
		zap.Int32("min_conns", cfg.MinConns),
	)

	return &DatabaseClients{
		Pool:      pool,
		DB:        db,
		EntClient: entClient,
	}, nil
}

// AutoMigrate runs Ent schema migration.
// Only use in development; production should use Atlas-managed migrations.
func (c *DatabaseClients) AutoMigrate(ctx context.Context) error {
	logger.Info("Running Ent auto-migration...")
	if err := c.EntClient.Schema.Create(ctx,
		entmigrate.WithDropIndex(true),
		entmigrate.WithDropColumn(true),
		entmigrate.WithForeignKeys(true),
	); err != nil {
		return fmt.Errorf("ent auto-migrate: %w", err)
	}
	logger.Info("Ent auto-migration completed")
	return nil
}

// Close closes all connection pools gracefully.
func (c *DatabaseClients) Close() {
	if c.EntClient != nil {
		c.EntClient.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
