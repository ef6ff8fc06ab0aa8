package storage

import (
	"sync"

	"github.com/tnso721607-maker/tenderquote3/models"
)

// TenderStore owns the single current tender list. It lives in memory only:
// each processing round replaces the list wholesale and discarding drops it
// entirely. Items are handed out as deep copies so callers can never mutate
// a stored match snapshot.
type TenderStore struct {
	mu    sync.RWMutex
	items []models.TenderLineItem
}

func NewTenderStore() *TenderStore {
	return &TenderStore{items: []models.TenderLineItem{}}
}

func copyItem(item models.TenderLineItem) models.TenderLineItem {
	out := item
	if item.EstimatedRate != nil {
		v := *item.EstimatedRate
		out.EstimatedRate = &v
	}
	if item.Matched != nil {
		m := *item.Matched
		out.Matched = &m
	}
	return out
}

func copyItems(items []models.TenderLineItem) []models.TenderLineItem {
	out := make([]models.TenderLineItem, 0, len(items))
	for _, item := range items {
		out = append(out, copyItem(item))
	}
	return out
}

// Replace installs the result of a processing round as the current list.
func (s *TenderStore) Replace(items []models.TenderLineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = copyItems(items)
}

// Items returns the current list in order.
func (s *TenderStore) Items() []models.TenderLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.items)
}

// AcceptMatch confirms a suggested match: review moves to matched, matched
// stays matched (accepting twice has no further effect). Items in any other
// status are not eligible. found reports whether the id exists at all.
func (s *TenderStore) AcceptMatch(id string) (item models.TenderLineItem, found, eligible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		switch s.items[i].Status {
		case models.StatusReview:
			s.items[i].Status = models.StatusMatched
			return copyItem(s.items[i]), true, true
		case models.StatusMatched:
			return copyItem(s.items[i]), true, true
		default:
			return copyItem(s.items[i]), true, false
		}
	}
	return models.TenderLineItem{}, false, false
}

// RemoveItem deletes one line; unknown ids are a no-op.
func (s *TenderStore) RemoveItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear discards the whole current list.
func (s *TenderStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []models.TenderLineItem{}
}

func (s *TenderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
