package infra

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	infra_repository "github.com/amirasaad/networth/infra/repository"
	"github.com/amirasaad/networth/pkg/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the schema up to date. Postgres runs the embedded SQL
// migrations; SQLite, used for local runs and tests, is auto-migrated
// from the models.
func Migrate(db *gorm.DB, cnf *config.DB, logger *slog.Logger) error {
	if cnf.Driver == config.DriverSQLite {
		if err := db.AutoMigrate(infra_repository.Models()...); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
		logger.Info("SQLite schema migrated")
		return nil
	}
	return MigratePostgres(cnf.Url, logger)
}

// MigratePostgres applies the embedded migrations to the database at url.
func MigratePostgres(url string, logger *slog.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.Info("Database migrated", "version", version, "dirty", dirty)
	return nil
}
