package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending migration. The migrate instance is never
// closed because that would close the shared pool.
func Migrate(s *SQL) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("db - Migrate - iofs.New: %w", err)
	}

	var driver database.Driver

	switch s.Dialect {
	case DialectSQLite:
		driver, err = sqlitemigrate.WithInstance(s.Pool, &sqlitemigrate.Config{})
	case DialectPostgres:
		driver, err = pgxmigrate.WithInstance(s.Pool, &pgxmigrate.Config{})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDialect, s.Dialect)
	}

	if err != nil {
		return fmt.Errorf("db - Migrate - WithInstance: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, s.Dialect, driver)
	if err != nil {
		return fmt.Errorf("db - Migrate - NewWithInstance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("db - Migrate - Up: %w", err)
	}

	return nil
}
