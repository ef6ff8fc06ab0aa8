package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/tnso721607-maker/tenderquote3/models"
)

// CatalogKey is the versioned key the whole rate catalog is stored under.
// Bump the suffix when the persisted RateEntry shape changes.
const CatalogKey = "sor_catalog_v2"

var db *sql.DB

func InitDB() *sql.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dbPath := os.Getenv("SOR_DB_PATH")
	if dbPath == "" {
		dbPath = "sor.db"
	}

	var err error
	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	// Single writer: the sqlite file does not tolerate concurrent write
	// connections the way a server database does.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	if err := createSchema(db); err != nil {
		log.Fatal("Failed to create schema:", err)
	}

	return db
}

func GetDB() *sql.DB {
	return db
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS activity_log (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		event_name  TEXT NOT NULL,
		description TEXT NOT NULL,
		entity_id   TEXT
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("error creating schema: %v", err)
	}
	return nil
}

// SaveValue upserts one key of the kv table.
func SaveValue(ctx context.Context, db *sql.DB, key, value string) error {
	query := `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	          ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	if _, err := db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("error saving key %s: %v", key, err)
	}
	return nil
}

// LoadValue reads one key of the kv table. Missing keys surface as
// sql.ErrNoRows so callers can treat them as first-run state.
func LoadValue(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// SaveCatalog persists the full rate entry array as one JSON document under
// CatalogKey. The catalog is always written wholesale.
func SaveCatalog(ctx context.Context, db *sql.DB, entries []models.RateEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("error marshalling catalog: %v", err)
	}
	return SaveValue(ctx, db, CatalogKey, string(data))
}

// LoadCatalog reads the persisted catalog. A missing key yields an empty
// catalog, not an error.
func LoadCatalog(ctx context.Context, db *sql.DB) ([]models.RateEntry, error) {
	raw, err := LoadValue(ctx, db, CatalogKey)
	if err == sql.ErrNoRows {
		return []models.RateEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %v", err)
	}
	var entries []models.RateEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("error parsing stored catalog: %v", err)
	}
	if entries == nil {
		entries = []models.RateEntry{}
	}
	return entries, nil
}

// LogActivity records one catalog mutation. Failures are returned so callers
// can decide to ignore them; a failed log line never blocks the mutation.
func LogActivity(db *sql.DB, eventName, description, entityID string) error {
	query := `INSERT INTO activity_log (created_at, event_name, description, entity_id) VALUES (?, ?, ?, ?)`
	_, err := db.Exec(query, time.Now().UTC(), eventName, description, entityID)
	if err != nil {
		return fmt.Errorf("error writing activity log: %v", err)
	}
	return nil
}

// GetActivityLogs returns one page of activity entries, newest first.
func GetActivityLogs(ctx context.Context, db *sql.DB, limit, offset int) ([]models.ActivityLog, error) {
	query := `SELECT id, created_at, event_name, description, COALESCE(entity_id, '')
	          FROM activity_log ORDER BY id DESC LIMIT ? OFFSET ?`
	rows, err := db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying activity logs: %v", err)
	}
	defer rows.Close()

	logs := []models.ActivityLog{}
	for rows.Next() {
		var entry models.ActivityLog
		if err := rows.Scan(&entry.ID, &entry.CreatedAt, &entry.EventName, &entry.Description, &entry.EntityID); err != nil {
			return nil, fmt.Errorf("error scanning activity log: %v", err)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

func CountActivityLogs(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity_log`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting activity logs: %v", err)
	}
	return count, nil
}
