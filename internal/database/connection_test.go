package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/mhike/mhike/internal/config"
)

func setupTestDB(t *testing.T) *Context {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("MHIKE_DIR", tmp)
	t.Setenv("MHIKE_DB_PATH", "")

	ctx, err := CreateDatabase("")
	if err != nil {
		t.Fatalf("CreateDatabase returned error: %v", err)
	}

	t.Cleanup(func() {
		if err := CloseDatabase(ctx); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return ctx
}

func TestDatabaseCreationAndMigration(t *testing.T) {
	ctx := setupTestDB(t)

	dbPath := filepath.Join(config.GetDataDir(), "mhike.db")
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file to exist at %s: %v", dbPath, err)
	}

	if got := userVersion(t, ctx.DB); got != SchemaVersion {
		t.Fatalf("expected user_version %d, got %d", SchemaVersion, got)
	}

	for _, table := range []string{"hikes", "observations"} {
		if !tableExists(t, ctx.DB, table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	enabled, err := ctx.Queries.ForeignKeysEnabled(context.Background())
	if err != nil {
		t.Fatalf("ForeignKeysEnabled returned error: %v", err)
	}
	if !enabled {
		t.Fatal("expected foreign keys to be enabled")
	}
}

func TestCreateDatabaseInMemory(t *testing.T) {
	ctx, err := CreateDatabase(":memory:")
	if err != nil {
		t.Fatalf("CreateDatabase returned error: %v", err)
	}
	defer CloseDatabase(ctx)

	if !tableExists(t, ctx.DB, "hikes") {
		t.Fatal("expected hikes table in memory database")
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	ctx := setupTestDB(t)
	hikeID := insertHikeRow(t, ctx.DB, "Ridge Loop", "2024-05-01", 7.5)

	if err := EnsureSchema(context.Background(), ctx.DB, nil); err != nil {
		t.Fatalf("EnsureSchema returned error: %v", err)
	}

	assertCount(t, ctx.DB, "hikes", 1)
	var name string
	if err := ctx.DB.QueryRow(`SELECT name FROM hikes WHERE id = ?`, hikeID).Scan(&name); err != nil {
		t.Fatalf("hike lost after EnsureSchema: %v", err)
	}
}

func TestReopenWithOlderVersionDiscardsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "upgrade.db")

	first, err := CreateDatabase(dbPath)
	if err != nil {
		t.Fatalf("CreateDatabase returned error: %v", err)
	}
	hikeID := insertHikeRow(t, first.DB, "Old Trail", "2023-03-03", 4)
	insertObservationRow(t, first.DB, hikeID, "Deer", "2023-03-03 09:00:00")
	if _, err := first.DB.Exec("PRAGMA user_version = 2"); err != nil {
		t.Fatalf("failed to rewind user_version: %v", err)
	}
	if err := CloseDatabase(first); err != nil {
		t.Fatalf("CloseDatabase error: %v", err)
	}

	second, err := CreateDatabase(dbPath)
	if err != nil {
		t.Fatalf("CreateDatabase after version change returned error: %v", err)
	}
	defer CloseDatabase(second)

	if got := userVersion(t, second.DB); got != SchemaVersion {
		t.Fatalf("expected user_version %d after upgrade, got %d", SchemaVersion, got)
	}
	assertCount(t, second.DB, "hikes", 0)
	assertCount(t, second.DB, "observations", 0)
}

func TestUpgradeSchemaRecreatesTables(t *testing.T) {
	ctx := setupTestDB(t)
	insertHikeRow(t, ctx.DB, "Coast Walk", "2024-02-02", 3)

	if err := UpgradeSchema(context.Background(), ctx.DB, SchemaVersion, SchemaVersion, nil); err != nil {
		t.Fatalf("UpgradeSchema returned error: %v", err)
	}

	assertCount(t, ctx.DB, "hikes", 0)
	for _, table := range []string{"hikes", "observations"} {
		if !tableExists(t, ctx.DB, table) {
			t.Fatalf("expected table %s to exist after upgrade", table)
		}
	}
}

func TestClearDatabaseRemovesAllRows(t *testing.T) {
	ctx := setupTestDB(t)

	hikeID := insertHikeRow(t, ctx.DB, "Summit Push", "2024-07-07", 12)
	insertObservationRow(t, ctx.DB, hikeID, "Snow at the top", "2024-07-07 13:00:00")

	assertCount(t, ctx.DB, "hikes", 1)
	assertCount(t, ctx.DB, "observations", 1)

	if err := ClearDatabase(ctx); err != nil {
		t.Fatalf("ClearDatabase returned error: %v", err)
	}

	assertCount(t, ctx.DB, "hikes", 0)
	assertCount(t, ctx.DB, "observations", 0)
}

func TestObservationRequiresExistingHike(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := ctx.DB.Exec(`INSERT INTO observations(hike_id, observation, time) VALUES(?, ?, ?)`, 999, "orphan", "2024-01-01 10:00:00")
	if err == nil {
		t.Fatal("expected foreign key violation for unknown hike")
	}
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		t.Fatalf("tableExists query failed for %s: %v", table, err)
	}
	return true
}

func userVersion(t *testing.T, db *sql.DB) int {
	t.Helper()
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("failed to read user_version: %v", err)
	}
	return version
}

func insertHikeRow(t *testing.T, db *sql.DB, name, date string, length float64) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO hikes(name, location, date, parking_available, length, difficulty) VALUES(?, ?, ?, ?, ?, ?)`,
		name, "Somewhere", date, "Yes", length, "Easy")
	if err != nil {
		t.Fatalf("insertHikeRow failed: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("insertHikeRow LastInsertId failed: %v", err)
	}
	return id
}

func insertObservationRow(t *testing.T, db *sql.DB, hikeID int64, text, at string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO observations(hike_id, observation, time) VALUES(?, ?, ?)`, hikeID, text, at)
	if err != nil {
		t.Fatalf("insertObservationRow failed: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("insertObservationRow LastInsertId failed: %v", err)
	}
	return id
}

func assertCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("count query failed for %s: %v", table, err)
	}
	if count != expected {
		t.Fatalf("expected %s to have %d rows, got %d", table, expected, count)
	}
}
