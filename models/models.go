package models

import "time"

// Tender item statuses assigned by the matching pass. AcceptMatch moves
// review to matched; nothing moves out of matched or no-match.
const (
	StatusPending = "pending"
	StatusMatched = "matched"
	StatusReview  = "review"
	StatusNoMatch = "no-match"
)

// RateEntry is one priced item of the Schedule of Rates catalog. The JSON
// field names are a persistence contract (the catalog is stored and backed up
// as an array of these), so they stay camelCase end to end.
type RateEntry struct {
	ID          string  `json:"id" example:"78c2cf43-9a17-4e93-b2fd-4f4272d5a130"`
	Name        string  `json:"name" example:"M25 Ready Mix Concrete"`
	Unit        string  `json:"unit" example:"Cum"`
	Rate        float64 `json:"rate" example:"4850.50"`
	ScopeOfWork string  `json:"scopeOfWork" example:"Supply and placing of M25 RMC including curing"`
	Source      string  `json:"source" example:"CPWD DSR 2024"`
	Timestamp   int64   `json:"timestamp" example:"1756102456000"`
}

// RateEntryInput is a RateEntry before the store assigns id and timestamp.
type RateEntryInput struct {
	Name        string  `json:"name" example:"M25 Ready Mix Concrete"`
	Unit        string  `json:"unit" example:"Cum"`
	Rate        float64 `json:"rate" example:"4850.50"`
	ScopeOfWork string  `json:"scopeOfWork" example:"Supply and placing of M25 RMC including curing"`
	Source      string  `json:"source" example:"CPWD DSR 2024"`
}

// CatalogEntry is a RateEntry as listed by the API, with the computed
// benchmark flag (lowest rate among same-named entries).
type CatalogEntry struct {
	RateEntry
	Benchmark bool `json:"benchmark" example:"false"`
}

// TenderLineItem is one requested line of the current tender. Matched holds a
// snapshot of the chosen catalog entry so later catalog edits never change an
// already built quotation line.
type TenderLineItem struct {
	ID             string     `json:"id" example:"1d1157a4-0aa4-45ce-96a8-9f9a84a47a4c"`
	Name           string     `json:"name" example:"RMC M25 for raft foundation"`
	Quantity       float64    `json:"quantity" example:"120"`
	RequestedScope string     `json:"requestedScope" example:"Supply and placing including curing"`
	EstimatedRate  *float64   `json:"estimatedRate,omitempty" example:"5000"`
	Matched        *RateEntry `json:"matched,omitempty"`
	Status         string     `json:"status" example:"review"`
}

// TenderItemInput is a TenderLineItem as produced by extraction, before the
// matching pass assigns id, match and status.
type TenderItemInput struct {
	Name           string   `json:"name" example:"RMC M25 for raft foundation"`
	Quantity       float64  `json:"quantity" example:"120"`
	RequestedScope string   `json:"requestedScope" example:"Supply and placing including curing"`
	EstimatedRate  *float64 `json:"estimatedRate,omitempty" example:"5000"`
}

// CatalogSummary is the {id, name} pair list sent to the semantic matcher.
type CatalogSummary struct {
	ID   string `json:"id" example:"78c2cf43-9a17-4e93-b2fd-4f4272d5a130"`
	Name string `json:"name" example:"M25 Ready Mix Concrete"`
}

type ActivityLog struct {
	ID          int       `json:"id" example:"1"`
	CreatedAt   time.Time `json:"created_at" example:"2025-08-25T10:30:00Z"`
	EventName   string    `json:"event_name" example:"catalog_entry_created"`
	Description string    `json:"description" example:"Added rate entry 'M25 Ready Mix Concrete'"`
	EntityID    string    `json:"entity_id" example:"78c2cf43-9a17-4e93-b2fd-4f4272d5a130"`
}
