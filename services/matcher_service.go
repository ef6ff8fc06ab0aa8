package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/tnso721607-maker/tenderquote3/models"
)

// SemanticMatcher finds the closest catalog entry for a name and scope pair.
// *AIService implements it; tests substitute a stub.
type SemanticMatcher interface {
	FindBestMatch(ctx context.Context, targetName, targetScope string, summary []models.CatalogSummary) string
}

// MatcherService drives the matching pass over extracted tender items. It
// works on a catalog snapshot passed by the caller, so the pass itself never
// touches the stores.
type MatcherService struct {
	matcher SemanticMatcher
}

func NewMatcherService(matcher SemanticMatcher) *MatcherService {
	return &MatcherService{matcher: matcher}
}

// ProcessTender turns extracted inputs into tender lines, one item at a time
// in input order. Exact name matches (case-insensitive) pick the cheapest
// entry and compare scopes; without an exact match the semantic matcher is
// consulted, and its suggestions always land in review. Matches are stored
// as value snapshots, so later catalog edits never change a built line. A
// failed or empty semantic lookup lands that one item in no-match and the
// pass continues.
func (m *MatcherService) ProcessTender(ctx context.Context, inputs []models.TenderItemInput, catalog []models.RateEntry) []models.TenderLineItem {
	summary := buildSummary(catalog)

	items := make([]models.TenderLineItem, 0, len(inputs))
	for _, input := range inputs {
		quantity := input.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		item := models.TenderLineItem{
			ID:             uuid.NewString(),
			Name:           input.Name,
			Quantity:       quantity,
			RequestedScope: input.RequestedScope,
			EstimatedRate:  input.EstimatedRate,
			Status:         models.StatusPending,
		}

		if exact := exactNameMatches(catalog, input.Name); len(exact) > 0 {
			best := cheapestEntry(exact)
			snapshot := best
			item.Matched = &snapshot
			if scopeEqual(best.ScopeOfWork, input.RequestedScope) {
				item.Status = models.StatusMatched
			} else {
				item.Status = models.StatusReview
			}
		} else {
			matchID := ""
			if m.matcher != nil {
				matchID = m.matcher.FindBestMatch(ctx, input.Name, input.RequestedScope, summary)
			}
			if entry, ok := findEntryByID(catalog, matchID); ok {
				snapshot := entry
				item.Matched = &snapshot
				item.Status = models.StatusReview
			} else {
				item.Status = models.StatusNoMatch
			}
		}

		items = append(items, item)
	}
	return items
}

func buildSummary(catalog []models.RateEntry) []models.CatalogSummary {
	summary := make([]models.CatalogSummary, 0, len(catalog))
	for _, e := range catalog {
		summary = append(summary, models.CatalogSummary{ID: e.ID, Name: e.Name})
	}
	return summary
}

func exactNameMatches(catalog []models.RateEntry, name string) []models.RateEntry {
	matches := []models.RateEntry{}
	for _, e := range catalog {
		if strings.EqualFold(e.Name, name) {
			matches = append(matches, e)
		}
	}
	return matches
}

// cheapestEntry picks the minimum rate; ties keep the first encountered, so
// the choice is stable for identical input.
func cheapestEntry(entries []models.RateEntry) models.RateEntry {
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Rate < best.Rate {
			best = e
		}
	}
	return best
}

func scopeEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func findEntryByID(catalog []models.RateEntry, id string) (models.RateEntry, bool) {
	if id == "" {
		return models.RateEntry{}, false
	}
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return models.RateEntry{}, false
}
