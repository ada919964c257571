package pgsql

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// newMigrator opens a dedicated database/sql connection through the pgx stdlib
// driver and wires it to the embedded migrations. The returned close func
// releases both the migrator and the connection.
func newMigrator(databaseURL string) (*migrate.Migrate, func() error, error) {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open migration database: %w", err)
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return nil, nil, fmt.Errorf("ping migration database: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		migrationDB.Close()
		return nil, nil, fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		migrationDB.Close()
		return nil, nil, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		migrationDB.Close()
		return nil, nil, fmt.Errorf("create migrate instance: %w", err)
	}

	closeFn := func() error {
		sourceErr, dbErr := m.Close()
		return errors.Join(sourceErr, dbErr, migrationDB.Close())
	}
	return m, closeFn, nil
}

// RunMigrations applies every pending up migration. It reports whether anything changed.
func RunMigrations(databaseURL string) (bool, error) {
	m, closeFn, err := newMigrator(databaseURL)
	if err != nil {
		return false, err
	}

	upErr := m.Up()
	closeErr := closeFn()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return false, fmt.Errorf("run migrations: %w", upErr)
	}
	if closeErr != nil {
		return false, fmt.Errorf("close migrator: %w", closeErr)
	}
	return !errors.Is(upErr, migrate.ErrNoChange), nil
}

// RollbackMigrations reverts the given number of applied migrations.
func RollbackMigrations(databaseURL string, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	m, closeFn, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}

	stepErr := m.Steps(-steps)
	closeErr := closeFn()
	if stepErr != nil {
		return fmt.Errorf("rollback migrations: %w", stepErr)
	}
	return closeErr
}

// MigrationVersion reports the current schema version and whether it is dirty.
func MigrationVersion(databaseURL string) (uint, bool, error) {
	m, closeFn, err := newMigrator(databaseURL)
	if err != nil {
		return 0, false, err
	}
	defer closeFn()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, nil
}
