// Package database opens the review store connection and applies the embedded
// schema migrations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Vovarama1992/review-reply/migrations"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	sqlitePrefix = "sqlite://"
)

// ParseURL maps a DATABASE_URL onto a database/sql driver name and DSN.
// "sqlite://<path>" selects the embedded SQLite driver; anything else is
// handed to lib/pq.
func ParseURL(url string) (driver, dsn string, err error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", "", errors.New("database url is empty")
	}

	if strings.HasPrefix(url, sqlitePrefix) {
		dsn = strings.TrimPrefix(url, sqlitePrefix)
		if dsn == "" {
			return "", "", errors.New("sqlite database path is empty")
		}
		return DriverSQLite, dsn, nil
	}

	return DriverPostgres, url, nil
}

// Open connects, pings and migrates the database behind url.
func Open(ctx context.Context, url string, log *slog.Logger) (*sqlx.DB, error) {
	driver, dsn, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	if driver == DriverSQLite {
		// One connection: SQLite serialises writers and ":memory:" is per connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if err := Migrate(db.DB, driver, log); err != nil {
		db.Close()
		return nil, err
	}

	log.Info("database ready", "driver", driver)
	return db, nil
}

// Migrate applies every pending up migration for the given driver.
func Migrate(db *sql.DB, driver string, log *slog.Logger) error {
	source, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	var target migratedb.Driver
	switch driver {
	case DriverPostgres:
		target, err = migratepg.WithInstance(db, &migratepg.Config{})
	case DriverSQLite:
		target, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		return fmt.Errorf("unsupported database driver: %s", driver)
	}
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, target)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}

	// m.Close would close db as well, so the instance is left for GC.
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debug("no database migrations to apply")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("database migrations applied")
	return nil
}
