package services

import (
	"github.com/tnso721607-maker/tenderquote3/models"
)

// LineTotal is quantity times the matched rate, 0 while unmatched.
func LineTotal(item models.TenderLineItem) float64 {
	if item.Matched == nil {
		return 0
	}
	return item.Quantity * item.Matched.Rate
}

// GrandTotal recomputes the quotation total from scratch on every call; the
// total is never cached anywhere.
func GrandTotal(items []models.TenderLineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += LineTotal(item)
	}
	return total
}

// Variance is the percentage difference between the quoted rate and the
// user's own estimate, nil when either side is missing.
func Variance(item models.TenderLineItem) *float64 {
	if item.Matched == nil || item.EstimatedRate == nil || *item.EstimatedRate == 0 {
		return nil
	}
	v := (item.Matched.Rate - *item.EstimatedRate) / *item.EstimatedRate * 100
	return &v
}

// HasEstimates reports whether any current item carries a user estimate.
// The quotation CSV only includes the percentage diff column when one does.
func HasEstimates(items []models.TenderLineItem) bool {
	for _, item := range items {
		if item.EstimatedRate != nil {
			return true
		}
	}
	return false
}

// BuildQuotationRows shapes the current tender list for the CSV, JSON, Excel
// and PDF writers. Pure formatting; nothing in the stores changes.
func BuildQuotationRows(items []models.TenderLineItem) []models.QuotationRow {
	rows := make([]models.QuotationRow, 0, len(items))
	for _, item := range items {
		row := models.QuotationRow{
			TenderItem:     item.Name,
			Quantity:       item.Quantity,
			RequestedScope: item.RequestedScope,
			EstimatedRate:  item.EstimatedRate,
			PercentageDiff: Variance(item),
			TotalQuoted:    LineTotal(item),
			Status:         item.Status,
		}
		if item.Matched != nil {
			rate := item.Matched.Rate
			row.QuotedRate = &rate
			row.Unit = item.Matched.Unit
			row.MatchedItem = item.Matched.Name
			row.Source = item.Matched.Source
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildQuotationExport assembles the JSON export document.
func BuildQuotationExport(reference, date string, items []models.TenderLineItem) models.QuotationExport {
	return models.QuotationExport{
		Reference:  reference,
		Date:       date,
		GrandTotal: GrandTotal(items),
		Items:      BuildQuotationRows(items),
	}
}
