package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:marksheet.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/marksheet?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS subjects (
  name TEXT PRIMARY KEY,
  type TEXT NOT NULL DEFAULT '',
  color TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS tests (
  season TEXT NOT NULL,
  name TEXT NOT NULL,
  subject TEXT NOT NULL REFERENCES subjects(name) ON DELETE CASCADE,
  score REAL NOT NULL,
  score_full REAL NOT NULL,
  weightage REAL NOT NULL,
  PRIMARY KEY (season, name)
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS subjects (
  name TEXT PRIMARY KEY,
  type TEXT NOT NULL DEFAULT '',
  color TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS tests (
  season TEXT NOT NULL,
  name TEXT NOT NULL,
  subject TEXT NOT NULL REFERENCES subjects(name) ON DELETE CASCADE,
  score DOUBLE PRECISION NOT NULL,
  score_full DOUBLE PRECISION NOT NULL,
  weightage DOUBLE PRECISION NOT NULL,
  PRIMARY KEY (season, name)
);
`
