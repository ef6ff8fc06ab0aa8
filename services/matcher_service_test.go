package services

import (
	"context"
	"testing"

	"github.com/tnso721607-maker/tenderquote3/models"
)

type stubMatcher struct {
	matchID     string
	calls       int
	lastName    string
	lastScope   string
	lastSummary []models.CatalogSummary
}

func (s *stubMatcher) FindBestMatch(ctx context.Context, targetName, targetScope string, summary []models.CatalogSummary) string {
	s.calls++
	s.lastName = targetName
	s.lastScope = targetScope
	s.lastSummary = summary
	return s.matchID
}

func catalogEntry(id, name string, rate float64, scope string) models.RateEntry {
	return models.RateEntry{
		ID:          id,
		Name:        name,
		Unit:        "Cum",
		Rate:        rate,
		ScopeOfWork: scope,
		Source:      "CPWD DSR 2024",
	}
}

func itemInput(name, scope string) models.TenderItemInput {
	return models.TenderItemInput{Name: name, Quantity: 10, RequestedScope: scope}
}

func TestProcessTender_ExactMatchIdenticalScopeLandsInMatched(t *testing.T) {
	catalog := []models.RateEntry{catalogEntry("c1", "M25 RMC", 4850, "Supply and placing")}
	m := NewMatcherService(&stubMatcher{})

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("M25 RMC", "Supply and placing"),
	}, catalog)

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Status != models.StatusMatched {
		t.Errorf("Expected status %q, got %q", models.StatusMatched, items[0].Status)
	}
	if items[0].Matched == nil || items[0].Matched.ID != "c1" {
		t.Error("Expected match snapshot of entry c1")
	}
	if items[0].ID == "" {
		t.Error("Expected a generated item id")
	}
}

func TestProcessTender_ExactMatchDifferentScopeLandsInReview(t *testing.T) {
	catalog := []models.RateEntry{catalogEntry("c1", "M25 RMC", 4850, "Supply and placing")}
	m := NewMatcherService(&stubMatcher{})

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("M25 RMC", "Supply only, no placing"),
	}, catalog)

	if items[0].Status != models.StatusReview {
		t.Errorf("Expected status %q, got %q", models.StatusReview, items[0].Status)
	}
	if items[0].Matched == nil || items[0].Matched.ID != "c1" {
		t.Error("Expected the suggestion snapshot to be kept for review")
	}
}

func TestProcessTender_ScopeComparisonTrimsAndFoldsCase(t *testing.T) {
	catalog := []models.RateEntry{catalogEntry("c1", "M25 RMC", 4850, "Supply and placing")}
	m := NewMatcherService(&stubMatcher{})

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("m25 rmc", "  SUPPLY AND PLACING  "),
	}, catalog)

	if items[0].Status != models.StatusMatched {
		t.Errorf("Expected trimmed case-folded scopes to compare equal, got %q", items[0].Status)
	}
}

func TestProcessTender_ExactMatchPicksCheapestEntry(t *testing.T) {
	catalog := []models.RateEntry{
		catalogEntry("c1", "M25 RMC", 4850, "Supply and placing"),
		catalogEntry("c2", "m25 rmc", 4700, "Supply and placing"),
		catalogEntry("c3", "M25 RMC", 4900, "Supply and placing"),
	}
	m := NewMatcherService(&stubMatcher{})

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("M25 RMC", "Supply and placing"),
	}, catalog)

	if items[0].Matched == nil || items[0].Matched.ID != "c2" {
		t.Errorf("Expected cheapest entry c2, got %+v", items[0].Matched)
	}
}

func TestProcessTender_CheapestTieKeepsFirstEncountered(t *testing.T) {
	catalog := []models.RateEntry{
		catalogEntry("c1", "M25 RMC", 4700, "Supply and placing"),
		catalogEntry("c2", "M25 RMC", 4700, "Supply and placing"),
	}
	m := NewMatcherService(&stubMatcher{})

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("M25 RMC", "Supply and placing"),
	}, catalog)

	if items[0].Matched == nil || items[0].Matched.ID != "c1" {
		t.Errorf("Expected tie to keep first entry c1, got %+v", items[0].Matched)
	}
}

func TestProcessTender_SemanticSuggestionAlwaysLandsInReview(t *testing.T) {
	catalog := []models.RateEntry{catalogEntry("c1", "M25 Ready Mix Concrete", 4850, "Supply and placing")}
	stub := &stubMatcher{matchID: "c1"}
	m := NewMatcherService(stub)

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("RMC M25 grade", "Supply and placing"),
	}, catalog)

	if items[0].Status != models.StatusReview {
		t.Errorf("Expected semantic suggestion in review, got %q", items[0].Status)
	}
	if items[0].Matched == nil || items[0].Matched.ID != "c1" {
		t.Error("Expected suggestion snapshot of entry c1")
	}
	if stub.calls != 1 {
		t.Errorf("Expected 1 semantic lookup, got %d", stub.calls)
	}
	if stub.lastName != "RMC M25 grade" {
		t.Errorf("Expected item name forwarded to the matcher, got %q", stub.lastName)
	}
	if len(stub.lastSummary) != 1 || stub.lastSummary[0].ID != "c1" {
		t.Error("Expected the catalog summary forwarded to the matcher")
	}
}

func TestProcessTender_SemanticMissLandsInNoMatch(t *testing.T) {
	catalog := []models.RateEntry{catalogEntry("c1", "M25 RMC", 4850, "Supply and placing")}
	m := NewMatcherService(&stubMatcher{matchID: ""})

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("Granite flooring", "Polished 18mm"),
	}, catalog)

	if items[0].Status != models.StatusNoMatch {
		t.Errorf("Expected status %q, got %q", models.StatusNoMatch, items[0].Status)
	}
	if items[0].Matched != nil {
		t.Error("Expected no match snapshot")
	}
}

func TestProcessTender_SemanticUnknownIDLandsInNoMatch(t *testing.T) {
	catalog := []models.RateEntry{catalogEntry("c1", "M25 RMC", 4850, "Supply and placing")}
	m := NewMatcherService(&stubMatcher{matchID: "hallucinated"})

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("Granite flooring", "Polished 18mm"),
	}, catalog)

	if items[0].Status != models.StatusNoMatch {
		t.Errorf("Expected unresolvable id to land in no-match, got %q", items[0].Status)
	}
}

func TestProcessTender_NilMatcherLandsInNoMatch(t *testing.T) {
	catalog := []models.RateEntry{catalogEntry("c1", "M25 RMC", 4850, "Supply and placing")}
	m := NewMatcherService(nil)

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("Granite flooring", "Polished 18mm"),
	}, catalog)

	if items[0].Status != models.StatusNoMatch {
		t.Errorf("Expected status %q without a matcher, got %q", models.StatusNoMatch, items[0].Status)
	}
}

func TestProcessTender_SnapshotInsulatedFromCatalogEdits(t *testing.T) {
	catalog := []models.RateEntry{catalogEntry("c1", "M25 RMC", 4850, "Supply and placing")}
	m := NewMatcherService(&stubMatcher{})

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("M25 RMC", "Supply and placing"),
	}, catalog)

	catalog[0].Rate = 9999

	if items[0].Matched.Rate != 4850 {
		t.Errorf("Expected snapshot rate 4850 after catalog edit, got %v", items[0].Matched.Rate)
	}
}

func TestProcessTender_NonPositiveQuantityDefaultsToOne(t *testing.T) {
	catalog := []models.RateEntry{catalogEntry("c1", "M25 RMC", 4850, "Supply and placing")}
	m := NewMatcherService(&stubMatcher{})

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		{Name: "M25 RMC", Quantity: 0, RequestedScope: "Supply and placing"},
		{Name: "M25 RMC", Quantity: -3, RequestedScope: "Supply and placing"},
	}, catalog)

	for i, item := range items {
		if item.Quantity != 1 {
			t.Errorf("Item %d: expected quantity 1, got %v", i, item.Quantity)
		}
	}
}

func TestProcessTender_PreservesInputOrder(t *testing.T) {
	catalog := []models.RateEntry{catalogEntry("c1", "M25 RMC", 4850, "Supply and placing")}
	m := NewMatcherService(&stubMatcher{})

	items := m.ProcessTender(context.Background(), []models.TenderItemInput{
		itemInput("M25 RMC", "Supply and placing"),
		itemInput("Granite flooring", "Polished 18mm"),
		itemInput("M25 RMC", "Different scope"),
	}, catalog)

	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
	want := []string{models.StatusMatched, models.StatusNoMatch, models.StatusReview}
	for i, status := range want {
		if items[i].Status != status {
			t.Errorf("Item %d: expected status %q, got %q", i, status, items[i].Status)
		}
	}
	if items[0].ID == items[1].ID || items[1].ID == items[2].ID {
		t.Error("Expected distinct item ids")
	}
}
