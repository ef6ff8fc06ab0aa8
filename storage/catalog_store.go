package storage

import (
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tnso721607-maker/tenderquote3/models"
	"github.com/tnso721607-maker/tenderquote3/utils"
)

// CatalogStore owns the in-memory Schedule of Rates catalog. Entries are kept
// newest first (prepend on add). Every mutation writes the whole array back
// to the kv store before returning, so the persisted catalog always mirrors
// memory.
type CatalogStore struct {
	mu      sync.RWMutex
	db      *sql.DB
	entries []models.RateEntry
	lastTS  int64
}

// NewCatalogStore loads the persisted catalog. A missing key starts an empty
// catalog (first run).
func NewCatalogStore(db *sql.DB) (*CatalogStore, error) {
	ctx, cancel := utils.GetDefaultQueryContext(nil)
	defer cancel()

	entries, err := LoadCatalog(ctx, db)
	if err != nil {
		return nil, err
	}
	s := &CatalogStore{db: db, entries: entries}
	for _, e := range entries {
		if e.Timestamp > s.lastTS {
			s.lastTS = e.Timestamp
		}
	}
	return s, nil
}

// nextTimestamp hands out strictly increasing Unix-millisecond stamps, so
// rapid and bulk inserts stay ordered even within one millisecond.
func (s *CatalogStore) nextTimestamp() int64 {
	now := time.Now().UnixMilli()
	if now <= s.lastTS {
		now = s.lastTS + 1
	}
	s.lastTS = now
	return now
}

func (s *CatalogStore) persist() error {
	ctx, cancel := utils.GetDefaultQueryContext(nil)
	defer cancel()
	return SaveCatalog(ctx, s.db, s.entries)
}

// Add assigns an id and creation timestamp and prepends the entry.
func (s *CatalogStore) Add(input models.RateEntryInput) (models.RateEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.RateEntry{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Unit:        input.Unit,
		Rate:        input.Rate,
		ScopeOfWork: input.ScopeOfWork,
		Source:      input.Source,
		Timestamp:   s.nextTimestamp(),
	}
	s.entries = append([]models.RateEntry{entry}, s.entries...)
	if err := s.persist(); err != nil {
		return models.RateEntry{}, err
	}
	return entry, nil
}

// BulkAdd assigns ids and timestamps to every input and prepends the batch as
// one unit, preserving input order.
func (s *CatalogStore) BulkAdd(inputs []models.RateEntryInput) ([]models.RateEntry, error) {
	if len(inputs) == 0 {
		return []models.RateEntry{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make([]models.RateEntry, 0, len(inputs))
	for _, input := range inputs {
		batch = append(batch, models.RateEntry{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Unit:        input.Unit,
			Rate:        input.Rate,
			ScopeOfWork: input.ScopeOfWork,
			Source:      input.Source,
			Timestamp:   s.nextTimestamp(),
		})
	}
	s.entries = append(append([]models.RateEntry{}, batch...), s.entries...)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return batch, nil
}

// Update replaces every field except the id and the original timestamp.
// Unknown ids are a no-op; found reports whether anything changed.
func (s *CatalogStore) Update(id string, input models.RateEntryInput) (models.RateEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Name = input.Name
			s.entries[i].Unit = input.Unit
			s.entries[i].Rate = input.Rate
			s.entries[i].ScopeOfWork = input.ScopeOfWork
			s.entries[i].Source = input.Source
			if err := s.persist(); err != nil {
				return models.RateEntry{}, true, err
			}
			return s.entries[i], true, nil
		}
	}
	return models.RateEntry{}, false, nil
}

// Remove deletes the entry with the given id; unknown ids are a no-op.
func (s *CatalogStore) Remove(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			if err := s.persist(); err != nil {
				return true, err
			}
			return true, nil
		}
	}
	return false, nil
}

// ReplaceAll swaps in a whole new catalog (the restore path) and persists it.
func (s *CatalogStore) ReplaceAll(entries []models.RateEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]models.RateEntry{}, entries...)
	for _, e := range s.entries {
		if e.Timestamp > s.lastTS {
			s.lastTS = e.Timestamp
		}
	}
	return s.persist()
}

// Search returns entries whose name or source contains the substring,
// case-insensitively. An empty substring returns the full catalog. Relative
// order is preserved (newest first).
func (s *CatalogStore) Search(substring string) []models.RateEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(substring)
	results := []models.RateEntry{}
	for _, e := range s.entries {
		if q == "" ||
			strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Source), q) {
			results = append(results, e)
		}
	}
	return results
}

// ListWithBenchmarks is Search plus the benchmark flag: within each group of
// entries sharing a case-insensitive name, every holder of the group minimum
// rate is flagged. Groups of one are never flagged.
func (s *CatalogStore) ListWithBenchmarks(substring string) []models.CatalogEntry {
	matches := s.Search(substring)

	s.mu.RLock()
	defer s.mu.RUnlock()

	minRates := make(map[string]float64)
	groupSize := make(map[string]int)
	for _, e := range s.entries {
		key := strings.ToLower(e.Name)
		groupSize[key]++
		if cur, ok := minRates[key]; !ok || e.Rate < cur {
			minRates[key] = e.Rate
		}
	}

	results := make([]models.CatalogEntry, 0, len(matches))
	for _, e := range matches {
		key := strings.ToLower(e.Name)
		results = append(results, models.CatalogEntry{
			RateEntry: e,
			Benchmark: groupSize[key] > 1 && e.Rate == minRates[key],
		})
	}
	return results
}

// IsLowestRate reports whether the entry holds the minimum rate among the
// entries sharing its case-insensitive name. Single-member groups are never
// benchmarks.
func (s *CatalogStore) IsLowestRate(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var target *models.RateEntry
	for i := range s.entries {
		if s.entries[i].ID == id {
			target = &s.entries[i]
			break
		}
	}
	if target == nil {
		return false
	}

	key := strings.ToLower(target.Name)
	groupSize := 0
	min := target.Rate
	for _, e := range s.entries {
		if strings.ToLower(e.Name) == key {
			groupSize++
			if e.Rate < min {
				min = e.Rate
			}
		}
	}
	return groupSize > 1 && target.Rate == min
}

// All returns a copy of the catalog in store order.
func (s *CatalogStore) All() []models.RateEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.RateEntry{}, s.entries...)
}

// Summaries returns the {id, name} pairs handed to the semantic matcher.
func (s *CatalogStore) Summaries() []models.CatalogSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]models.CatalogSummary, 0, len(s.entries))
	for _, e := range s.entries {
		summaries = append(summaries, models.CatalogSummary{ID: e.ID, Name: e.Name})
	}
	return summaries
}

func (s *CatalogStore) FindByID(id string) (models.RateEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.RateEntry{}, false
}

func (s *CatalogStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
