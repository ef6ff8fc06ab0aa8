package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tnso721607-maker/tenderquote3/models"
	"github.com/tnso721607-maker/tenderquote3/storage"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	t.Setenv("SOR_DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	conn := storage.InitDB()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func newCatalogStore(t *testing.T) (*storage.CatalogStore, *sql.DB) {
	t.Helper()

	conn := newTestDB(t)
	store, err := storage.NewCatalogStore(conn)
	if err != nil {
		t.Fatalf("Failed to create catalog store: %v", err)
	}
	return store, conn
}

func seedEntry(t *testing.T, store *storage.CatalogStore, name string, rate float64, source string) models.RateEntry {
	t.Helper()

	entry, err := store.Add(models.RateEntryInput{
		Name:        name,
		Unit:        "Cum",
		Rate:        rate,
		ScopeOfWork: "Supply and placing",
		Source:      source,
	})
	if err != nil {
		t.Fatalf("Failed to seed entry: %v", err)
	}
	return entry
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

func newCatalogRouter(t *testing.T) (*gin.Engine, *storage.CatalogStore) {
	t.Helper()

	store, conn := newCatalogStore(t)
	r := gin.New()
	r.GET("/api/catalog", SearchCatalog(store))
	r.POST("/api/catalog", CreateRateEntry(store, conn))
	r.PUT("/api/catalog/:id", UpdateRateEntry(store, conn))
	r.DELETE("/api/catalog/:id", DeleteRateEntry(store, conn))
	r.POST("/api/catalog/extract", ExtractRateEntries(store, nil, conn))
	return r, store
}

func TestSearchCatalog_EmptySearchReturnsAllNewestFirst(t *testing.T) {
	r, store := newCatalogRouter(t)
	seedEntry(t, store, "M25 RMC", 4850, "CPWD DSR 2024")
	seedEntry(t, store, "Brickwork", 6200, "Vendor quote")

	w := doJSON(t, r, http.MethodGet, "/api/catalog", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp models.CatalogListResponse
	decodeJSON(t, w, &resp)
	if resp.Count != 2 || len(resp.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", resp.Count)
	}
	if resp.Entries[0].Name != "Brickwork" || resp.Entries[1].Name != "M25 RMC" {
		t.Errorf("Expected newest first, got [%s %s]", resp.Entries[0].Name, resp.Entries[1].Name)
	}
}

func TestSearchCatalog_FiltersBySourceSubstring(t *testing.T) {
	r, store := newCatalogRouter(t)
	seedEntry(t, store, "M25 RMC", 4850, "CPWD DSR 2024")
	seedEntry(t, store, "Brickwork", 6200, "Vendor quote")

	w := doJSON(t, r, http.MethodGet, "/api/catalog?search=cpwd", nil)

	var resp models.CatalogListResponse
	decodeJSON(t, w, &resp)
	if resp.Count != 1 || resp.Entries[0].Name != "M25 RMC" {
		t.Errorf("Expected one match on source, got %d", resp.Count)
	}
}

func TestSearchCatalog_IncludesBenchmarkFlags(t *testing.T) {
	r, store := newCatalogRouter(t)
	expensive := seedEntry(t, store, "M25 RMC", 4850, "CPWD DSR 2024")
	cheap := seedEntry(t, store, "m25 rmc", 4700, "Vendor quote")

	w := doJSON(t, r, http.MethodGet, "/api/catalog", nil)

	var resp models.CatalogListResponse
	decodeJSON(t, w, &resp)
	for _, e := range resp.Entries {
		switch e.ID {
		case cheap.ID:
			if !e.Benchmark {
				t.Error("Expected cheapest duplicate flagged as benchmark")
			}
		case expensive.ID:
			if e.Benchmark {
				t.Error("Expected higher-priced duplicate not flagged")
			}
		}
	}
}

func TestCreateRateEntry_AssignsIDAndPrepends(t *testing.T) {
	r, store := newCatalogRouter(t)
	seedEntry(t, store, "Existing", 100, "")

	w := doJSON(t, r, http.MethodPost, "/api/catalog", models.RateEntryInput{
		Name:        "M25 RMC",
		Unit:        "Cum",
		Rate:        4850.5,
		ScopeOfWork: "Supply and placing",
		Source:      "CPWD DSR 2024",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var entry models.RateEntry
	decodeJSON(t, w, &entry)
	if entry.ID == "" || entry.Timestamp == 0 {
		t.Error("Expected assigned id and timestamp")
	}

	all := store.All()
	if all[0].ID != entry.ID {
		t.Error("Expected new entry prepended")
	}
}

func TestCreateRateEntry_RejectsMissingFields(t *testing.T) {
	r, store := newCatalogRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/catalog", models.RateEntryInput{
		Name: "  ",
		Unit: "Cum",
		Rate: 100,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if store.Count() != 0 {
		t.Error("Expected catalog unchanged")
	}
}

func TestCreateRateEntry_RejectsNegativeRate(t *testing.T) {
	r, _ := newCatalogRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/catalog", models.RateEntryInput{
		Name:        "M25 RMC",
		Unit:        "Cum",
		Rate:        -1,
		ScopeOfWork: "Supply",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestUpdateRateEntry_ReplacesFieldsKeepsTimestamp(t *testing.T) {
	r, store := newCatalogRouter(t)
	entry := seedEntry(t, store, "M25 RMC", 4850, "CPWD DSR 2024")

	w := doJSON(t, r, http.MethodPut, "/api/catalog/"+entry.ID, models.RateEntryInput{
		Name:        "M30 RMC",
		Unit:        "Cum",
		Rate:        5100,
		ScopeOfWork: "Supply only",
		Source:      "Vendor quote",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.RateEntry
	decodeJSON(t, w, &updated)
	if updated.ID != entry.ID || updated.Timestamp != entry.Timestamp {
		t.Error("Expected id and timestamp preserved")
	}
	if updated.Name != "M30 RMC" || updated.Rate != 5100 {
		t.Errorf("Expected fields replaced, got %+v", updated)
	}
}

func TestUpdateRateEntry_UnknownIDReturns404(t *testing.T) {
	r, _ := newCatalogRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/catalog/nope", models.RateEntryInput{
		Name:        "M30 RMC",
		Unit:        "Cum",
		Rate:        5100,
		ScopeOfWork: "Supply only",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestDeleteRateEntry_RemovesEntry(t *testing.T) {
	r, store := newCatalogRouter(t)
	entry := seedEntry(t, store, "M25 RMC", 4850, "")

	w := doJSON(t, r, http.MethodDelete, "/api/catalog/"+entry.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if store.Count() != 0 {
		t.Error("Expected entry removed")
	}

	w = doJSON(t, r, http.MethodDelete, "/api/catalog/"+entry.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for repeat delete, got %d", w.Code)
	}
}

func TestExtractRateEntries_RequiresText(t *testing.T) {
	r, _ := newCatalogRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/catalog/extract", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestExtractRateEntries_DisabledExtractorAddsNothing(t *testing.T) {
	// Without an API key the AI service is nil; extraction degrades to
	// zero candidates rather than failing the request.
	r, store := newCatalogRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/catalog/extract", models.ExtractRequest{
		Text: "Supply M25 RMC at 4850.50 per Cum",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ExtractAddResponse
	decodeJSON(t, w, &resp)
	if len(resp.Added) != 0 {
		t.Errorf("Expected nothing added, got %d", len(resp.Added))
	}
	if store.Count() != 0 {
		t.Error("Expected catalog unchanged")
	}
}
