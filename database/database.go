package database

import (
	"database/sql"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hashicorp/go-multierror"
	_ "github.com/lib/pq"

	"github.com/supper-app/supper/config"
)

// ConnectAndMigrate opens the connection pool, verifies connectivity and runs
// any pending migrations. The pool is returned to the caller rather than kept
// as a package global so it can be injected and replaced in tests.
func ConnectAndMigrate(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns / 2)
	db.SetConnMaxLifetime(time.Hour)

	if err := migrateUp(db, cfg.Name); err != nil {
		return nil, err
	}
	return db, nil
}

func migrateUp(db *sql.DB, databaseName string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://database/migrations", databaseName, driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Tx runs fn inside a transaction. The transaction commits only when fn
// returns nil; otherwise it rolls back, and a rollback failure is attached to
// the causal error. The connection is returned to the pool on every path.
func Tx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return multierror.Append(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// Shutdown closes the connection pool.
func Shutdown(db *sql.DB) error {
	return db.Close()
}
