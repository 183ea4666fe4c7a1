// Package db opens the SQL pool used by the sql key-value backend.
package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	// Database drivers.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"

	_defaultMaxPoolSize = 2
)

var ErrUnknownDialect = errors.New("unknown sql dialect")

// SQL -.
type SQL struct {
	Builder     squirrel.StatementBuilderType
	Pool        *sql.DB
	Dialect     string
	maxPoolSize int
}

// Opener matches sql.Open so tests can inject a fake.
type Opener func(driverName, dataSourceName string) (*sql.DB, error)

// Option -.
type Option func(*SQL)

// MaxPoolSize -.
func MaxPoolSize(size int) Option {
	return func(s *SQL) {
		if size > 0 {
			s.maxPoolSize = size
		}
	}
}

// New opens a pool for dialect and applies the schema migrations.
func New(dialect, dsn string, open Opener, opts ...Option) (*SQL, error) {
	s := &SQL{
		Dialect:     dialect,
		maxPoolSize: _defaultMaxPoolSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	var driverName string

	switch dialect {
	case DialectSQLite:
		driverName = "sqlite"
		s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
		// in-memory databases exist per connection
		s.maxPoolSize = 1
	case DialectPostgres:
		driverName = "pgx"
		s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	pool, err := open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db - New - open: %w", err)
	}

	pool.SetMaxOpenConns(s.maxPoolSize)

	if err := pool.Ping(); err != nil {
		pool.Close()

		return nil, fmt.Errorf("db - New - ping: %w", err)
	}

	s.Pool = pool

	if err := Migrate(s); err != nil {
		pool.Close()

		return nil, err
	}

	return s, nil
}

// Close -.
func (s *SQL) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
