package models

// QuotationRow is one line of the built quotation, shaped for the CSV, JSON,
// Excel and PDF writers. Pointer numerics stay nil when the value is
// undefined (no estimate given, item unmatched) and render as N/A in CSV.
type QuotationRow struct {
	TenderItem     string   `json:"tenderItem"`
	Quantity       float64  `json:"quantity"`
	RequestedScope string   `json:"requestedScope"`
	EstimatedRate  *float64 `json:"estimatedRate"`
	QuotedRate     *float64 `json:"quotedRate"`
	Unit           string   `json:"unit"`
	PercentageDiff *float64 `json:"percentageDiff"`
	TotalQuoted    float64  `json:"totalQuoted"`
	MatchedItem    string   `json:"matchedItem"`
	Source         string   `json:"source"`
	Status         string   `json:"status"`
}

// QuotationExport is the JSON export document for the current tender.
type QuotationExport struct {
	Reference  string         `json:"reference" example:"QT-KR48213"`
	Date       string         `json:"date" example:"2025-08-25"`
	GrandTotal float64        `json:"grandTotal" example:"582060"`
	Items      []QuotationRow `json:"items"`
}
