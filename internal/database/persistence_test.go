package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// setupTestDB opens a file-backed database so tests can close and reopen it
func setupTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tablero.db")
	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to init database: %v", err)
	}
	return db, path
}

func reopen(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	return db
}

// Test 1: Empty database reports no board
func TestEmptyDatabaseReload(t *testing.T) {
	t.Parallel()
	db, _ := setupTestDB(t)
	gw := NewSQLiteGateway(db, DefaultKey)
	defer gw.Close()

	snap, ok, err := gw.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on empty database failed: %v", err)
	}
	if ok {
		t.Errorf("Load on empty database returned ok with %d cards", snap.CardCount())
	}
}

// Test 2: Many saves leave one row holding the last board
func TestSequentialBulkOperations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, path := setupTestDB(t)
	gw := NewSQLiteGateway(db, DefaultKey)

	const numSaves = 50
	for i := 1; i <= numSaves; i++ {
		snap := models.Snapshot{"backlog": {}}
		for j := 0; j < i; j++ {
			snap["backlog"] = append(snap["backlog"], models.Card{
				ID:       types.CardID(fmt.Sprintf("card-%d", j)),
				Title:    fmt.Sprintf("Card %d", j),
				Comments: []models.Comment{},
			})
		}
		if err := gw.Save(ctx, snap); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db = reopen(t, path)
	defer db.Close()

	var rows int
	if err := db.QueryRow("SELECT COUNT(*) FROM board_state").Scan(&rows); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("Expected 1 board row, got %d", rows)
	}

	snap, ok, err := NewSQLiteGateway(db, DefaultKey).Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load after reopen failed: ok=%v err=%v", ok, err)
	}
	if got := len(snap["backlog"]); got != numSaves {
		t.Errorf("Expected %d cards after reload, got %d", numSaves, got)
	}
}

// Test 3: Card order and comment order survive a reopen
func TestReloadFullState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, path := setupTestDB(t)
	gw := NewSQLiteGateway(db, DefaultKey)

	want := SeedSnapshot(testNow)
	if err := gw.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	gw.Close()

	db = reopen(t, path)
	gw = NewSQLiteGateway(db, DefaultKey)
	defer gw.Close()

	got, ok, err := gw.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load after reopen failed: ok=%v err=%v", ok, err)
	}

	for listID, cards := range want {
		if len(got[listID]) != len(cards) {
			t.Fatalf("List %s: expected %d cards, got %d", listID, len(cards), len(got[listID]))
		}
		for i, c := range cards {
			if got[listID][i].ID != c.ID {
				t.Errorf("List %s position %d: expected %s, got %s", listID, i, c.ID, got[listID][i].ID)
			}
			if len(got[listID][i].Comments) != len(c.Comments) {
				t.Errorf("Card %s: expected %d comments, got %d", c.ID, len(c.Comments), len(got[listID][i].Comments))
			}
		}
	}

	last := got["done"][0].Comments[1]
	if last.Text != "Aprobado por gerencia. Listo para enviar al cliente." {
		t.Errorf("Comment order not preserved, last comment is %q", last.Text)
	}
}

// Test 4: Saves stamp updated_at
func TestTimestampsPersistence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, _ := setupTestDB(t)
	gw := NewSQLiteGateway(db, DefaultKey)
	defer gw.Close()

	if err := gw.Save(ctx, models.Snapshot{"backlog": {}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var updatedAt sql.NullString
	err := db.QueryRow("SELECT updated_at FROM board_state WHERE key = ?", DefaultKey).Scan(&updatedAt)
	if err != nil {
		t.Fatalf("Failed to read updated_at: %v", err)
	}
	if !updatedAt.Valid || updatedAt.String == "" {
		t.Error("updated_at was not set")
	}
}
