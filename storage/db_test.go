package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/tnso721607-maker/tenderquote3/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	conn.SetMaxOpenConns(1)
	if err := createSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

func TestSaveValue_UpsertsExistingKey(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()

	if err := SaveValue(ctx, conn, "k", "first"); err != nil {
		t.Fatalf("Failed to save value: %v", err)
	}
	if err := SaveValue(ctx, conn, "k", "second"); err != nil {
		t.Fatalf("Failed to overwrite value: %v", err)
	}

	got, err := LoadValue(ctx, conn, "k")
	if err != nil {
		t.Fatalf("Failed to load value: %v", err)
	}
	if got != "second" {
		t.Errorf("Expected %q, got %q", "second", got)
	}
}

func TestLoadValue_MissingKeyReturnsNoRows(t *testing.T) {
	conn := newTestDB(t)

	_, err := LoadValue(context.Background(), conn, "missing")
	if err != sql.ErrNoRows {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}
}

func TestLoadCatalog_MissingKeyYieldsEmptyCatalog(t *testing.T) {
	conn := newTestDB(t)

	entries, err := LoadCatalog(context.Background(), conn)
	if err != nil {
		t.Fatalf("Expected no error for first run, got %v", err)
	}
	if entries == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}
}

func TestSaveCatalog_RoundTripPreservesOrder(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()

	entries := []models.RateEntry{
		{ID: "b", Name: "Brickwork", Unit: "Cum", Rate: 6200, Timestamp: 2},
		{ID: "a", Name: "M25 RMC", Unit: "Cum", Rate: 4850.5, Timestamp: 1},
	}
	if err := SaveCatalog(ctx, conn, entries); err != nil {
		t.Fatalf("Failed to save catalog: %v", err)
	}

	loaded, err := LoadCatalog(ctx, conn)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(loaded))
	}
	if loaded[0].ID != "b" || loaded[1].ID != "a" {
		t.Errorf("Expected order [b a], got [%s %s]", loaded[0].ID, loaded[1].ID)
	}
	if loaded[1].Rate != 4850.5 {
		t.Errorf("Expected rate 4850.5, got %v", loaded[1].Rate)
	}
}

func TestActivityLogs_PaginatesNewestFirst(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := LogActivity(conn, "catalog_entry_created", "Added rate entry", "id"); err != nil {
			t.Fatalf("Failed to write activity log: %v", err)
		}
	}

	count, err := CountActivityLogs(ctx, conn)
	if err != nil {
		t.Fatalf("Failed to count activity logs: %v", err)
	}
	if count != 5 {
		t.Errorf("Expected 5 logs, got %d", count)
	}

	page, err := GetActivityLogs(ctx, conn, 2, 0)
	if err != nil {
		t.Fatalf("Failed to query activity logs: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("Expected page of 2, got %d", len(page))
	}
	if page[0].ID <= page[1].ID {
		t.Errorf("Expected newest first, got ids %d then %d", page[0].ID, page[1].ID)
	}

	rest, err := GetActivityLogs(ctx, conn, 10, 4)
	if err != nil {
		t.Fatalf("Failed to query last page: %v", err)
	}
	if len(rest) != 1 {
		t.Errorf("Expected 1 log on the last page, got %d", len(rest))
	}
}
