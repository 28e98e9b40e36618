package infra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/networth/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the configured database. appEnv controls SQL
// logging: statements are only logged in development.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	databaseUrl := cnf.Url
	if databaseUrl == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	var dialector gorm.Dialector
	switch cnf.Driver {
	case config.DriverPostgres, "":
		dialector = postgres.Open(databaseUrl)
	case config.DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(databaseUrl))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cnf.Driver)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if cnf.Driver == config.DriverSQLite {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cnf.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cnf.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(cnf.ConnMaxLifetime)

	return connection, nil
}

// SQLiteDSN makes sure foreign keys are enforced, which SQLite leaves off
// per connection by default. Cascading deletes depend on it.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// DBPinger checks that the database answers.
type DBPinger struct {
	db *gorm.DB
}

func NewDBPinger(db *gorm.DB) *DBPinger {
	return &DBPinger{db: db}
}

func (p *DBPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
