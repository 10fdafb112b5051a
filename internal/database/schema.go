package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/mhike/mhike/db/migrations"
)

// SchemaVersion is the layout version stamped into PRAGMA user_version.
// Bumping it makes the next open drop and recreate both tables.
const SchemaVersion = 3

const migrationsTable = "schema_migrations"

var dropTablesSQL = []string{
	"DROP TABLE IF EXISTS observations",
	"DROP TABLE IF EXISTS hikes",
}

// EnsureSchema creates the hikes and observations tables when they are
// missing. A store stamped with a different schema version is rebuilt with
// UpgradeSchema. Calling it again on an up-to-date store changes nothing.
func EnsureSchema(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	stored, err := readUserVersion(ctx, db)
	if err != nil {
		return err
	}

	if stored != 0 && stored != SchemaVersion {
		return UpgradeSchema(ctx, db, stored, SchemaVersion, logger)
	}

	if err := migrateUp(db); err != nil {
		return err
	}
	if err := writeUserVersion(ctx, db, SchemaVersion); err != nil {
		return err
	}

	logger.Debug("schema ready", "version", SchemaVersion)
	return nil
}

// UpgradeSchema rebuilds the store for newVersion. Existing hikes and
// observations are discarded; nothing is carried across versions.
func UpgradeSchema(ctx context.Context, db *sql.DB, oldVersion, newVersion int, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("schema version changed, dropping all hikes and observations",
		"from", oldVersion, "to", newVersion)

	if err := migrateDown(db); err != nil {
		return err
	}

	for _, stmt := range dropTablesSQL {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}

	if err := migrateUp(db); err != nil {
		return err
	}
	return writeUserVersion(ctx, db, newVersion)
}

func newMigrator(db *sql.DB) (*migrate.Migrate, func(), error) {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialise migrate driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	cleanup := func() {
		_ = sourceDriver.Close()
	}

	// The migrator is never closed: closing it would close db as well.
	migrator, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", driver)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create migrator: %w", err)
	}

	return migrator, cleanup, nil
}

func migrateUp(db *sql.DB) error {
	migrator, cleanup, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func migrateDown(db *sql.DB) error {
	migrator, cleanup, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := migrator.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to revert migrations: %w", err)
	}
	return nil
}

func readUserVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func writeUserVersion(ctx context.Context, db *sql.DB, version int) error {
	// PRAGMA does not accept bound parameters.
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("failed to write schema version: %w", err)
	}
	return nil
}
