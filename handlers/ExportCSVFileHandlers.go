package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/tnso721607-maker/tenderquote3/models"
	"github.com/tnso721607-maker/tenderquote3/repository"
	"github.com/tnso721607-maker/tenderquote3/services"
	"github.com/tnso721607-maker/tenderquote3/storage"
	"github.com/tnso721607-maker/tenderquote3/utils"
)

func fmtMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fmtQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func dateFromMillis(ms int64) string {
	return time.UnixMilli(ms).Format("02/01/2006")
}

func naMoney(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmtMoney(*v)
}

func naPercent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func dateSuffix() string {
	return time.Now().Format("2006-01-02")
}

// quotationCSVTable shapes the current tender into CSV rows: header, one
// line per item with N/A for missing numerics and upper-case status, and a
// closing grand total row. The percentage diff column only appears when at
// least one line carries a user estimate.
func quotationCSVTable(items []models.TenderLineItem) [][]string {
	rows := services.BuildQuotationRows(items)
	includeDiff := services.HasEstimates(items)

	header := []string{"Tender Item", "Quantity", "Requested Scope", "Estimated Rate (₹)", "Quoted Rate (₹)", "Unit"}
	if includeDiff {
		header = append(header, "Percentage Diff (%)")
	}
	header = append(header, "Total Quoted (₹)", "Matched Database Item", "Source", "Status")

	table := [][]string{header}
	for _, row := range rows {
		unit, matched, source := row.Unit, row.MatchedItem, row.Source
		if row.QuotedRate == nil {
			unit, matched, source = "N/A", "N/A", "N/A"
		}

		line := []string{row.TenderItem, fmtQty(row.Quantity), row.RequestedScope, naMoney(row.EstimatedRate), naMoney(row.QuotedRate), unit}
		if includeDiff {
			line = append(line, naPercent(row.PercentageDiff))
		}
		line = append(line, fmtMoney(row.TotalQuoted), matched, source, strings.ToUpper(row.Status))
		table = append(table, line)
	}

	totalRow := make([]string, len(header))
	totalRow[0] = "GRAND TOTAL"
	totalIdx := 6
	if includeDiff {
		totalIdx = 7
	}
	totalRow[totalIdx] = fmtMoney(services.GrandTotal(items))
	table = append(table, totalRow)

	return table
}

// ExportCatalogCSV godoc
// @Summary      Export the rate catalog as CSV
// @Description  UTF-8 with BOM, every field quoted, CRLF line endings, date-suffixed filename.
// @Tags         export
// @Produce      text/csv
// @Success      200  {file}  file  "CSV file"
// @Router       /api/catalog/export/csv [get]
func ExportCatalogCSV(store *storage.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		table := [][]string{{"Item Name", "Unit", "Rate (₹)", "Scope of Work", "Source Reference", "Date Added"}}
		for _, e := range store.All() {
			table = append(table, []string{e.Name, e.Unit, fmtMoney(e.Rate), e.ScopeOfWork, e.Source, dateFromMillis(e.Timestamp)})
		}

		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=sor_catalog_%s.csv", dateSuffix()))
		c.String(http.StatusOK, utils.BuildCSV(table))
	}
}

// ExportQuotationCSV godoc
// @Summary      Export the current quotation as CSV
// @Description  Same encoding rules as the catalog export. Missing numerics render as N/A, status renders upper-case, and a grand total row closes the file.
// @Tags         export
// @Produce      text/csv
// @Success      200  {file}  file  "CSV file"
// @Router       /api/quotation/export/csv [get]
func ExportQuotationCSV(tender *storage.TenderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		table := quotationCSVTable(tender.Items())

		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=quotation_%s.csv", dateSuffix()))
		c.String(http.StatusOK, utils.BuildCSV(table))
	}
}

// ExportCatalogBackup godoc
// @Summary      Download the catalog backup
// @Description  The full rate entry array, pretty-printed JSON, named with the current date. Restoring this file reproduces the identical array.
// @Tags         export
// @Produce      json
// @Success      200  {array}  models.RateEntry
// @Router       /api/catalog/backup [get]
func ExportCatalogBackup(store *storage.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := json.MarshalIndent(store.All(), "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize catalog"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=sor_backup_%s.json", dateSuffix()))
		c.Data(http.StatusOK, "application/json", data)
	}
}

// ExportQuotationJSON godoc
// @Summary      Export the current quotation as JSON
// @Tags         export
// @Produce      json
// @Success      200  {object}  models.QuotationExport
// @Router       /api/quotation/export/json [get]
func ExportQuotationJSON(tender *storage.TenderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		export := services.BuildQuotationExport(repository.GenerateQuotationRef(), dateSuffix(), tender.Items())

		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize quotation"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=quotation_%s.json", dateSuffix()))
		c.Data(http.StatusOK, "application/json", data)
	}
}

// ExportQuotationExcel godoc
// @Summary      Export the current quotation as an Excel workbook
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file  "Excel file"
// @Router       /api/quotation/export/excel [get]
func ExportQuotationExcel(tender *storage.TenderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := tender.Items()
		rows := services.BuildQuotationRows(items)
		includeDiff := services.HasEstimates(items)

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
			}
		}()

		sheet := "Quotation"
		index, err := f.NewSheet(sheet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating quotation sheet"})
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1") // Delete default sheet

		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{
				Bold:   true,
				Size:   12,
				Family: "Arial",
				Color:  "#FFFFFF",
			},
			Fill: excelize.Fill{
				Type:    "pattern",
				Color:   []string{"#4472C4"},
				Pattern: 1,
			},
			Alignment: &excelize.Alignment{
				Horizontal: "left",
				Vertical:   "center",
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating header style"})
			return
		}

		totalStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{
				Bold:   true,
				Size:   12,
				Family: "Arial",
			},
			Fill: excelize.Fill{
				Type:    "pattern",
				Color:   []string{"#D9E1F2"},
				Pattern: 1,
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating total style"})
			return
		}

		header := []string{"Tender Item", "Quantity", "Requested Scope", "Estimated Rate (₹)", "Quoted Rate (₹)", "Unit"}
		if includeDiff {
			header = append(header, "Percentage Diff (%)")
		}
		header = append(header, "Total Quoted (₹)", "Matched Database Item", "Source", "Status")

		for col, title := range header {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, title)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
			colName, _ := excelize.ColumnNumberToName(col + 1)
			f.SetColWidth(sheet, colName, colName, 22)
		}

		setCell := func(rowIdx, col int, value interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
			f.SetCellValue(sheet, cell, value)
		}

		cellOrNA := func(v *float64) interface{} {
			if v == nil {
				return "N/A"
			}
			return *v
		}

		for i, row := range rows {
			rowIdx := i + 2
			col := 0

			unit, matched, source := row.Unit, row.MatchedItem, row.Source
			if row.QuotedRate == nil {
				unit, matched, source = "N/A", "N/A", "N/A"
			}

			setCell(rowIdx, col, row.TenderItem)
			col++
			setCell(rowIdx, col, row.Quantity)
			col++
			setCell(rowIdx, col, row.RequestedScope)
			col++
			setCell(rowIdx, col, cellOrNA(row.EstimatedRate))
			col++
			setCell(rowIdx, col, cellOrNA(row.QuotedRate))
			col++
			setCell(rowIdx, col, unit)
			col++
			if includeDiff {
				setCell(rowIdx, col, cellOrNA(row.PercentageDiff))
				col++
			}
			setCell(rowIdx, col, row.TotalQuoted)
			col++
			setCell(rowIdx, col, matched)
			col++
			setCell(rowIdx, col, source)
			col++
			setCell(rowIdx, col, strings.ToUpper(row.Status))
		}

		totalRowIdx := len(rows) + 2
		totalIdx := 6
		if includeDiff {
			totalIdx = 7
		}
		setCell(totalRowIdx, 0, "GRAND TOTAL")
		setCell(totalRowIdx, totalIdx, services.GrandTotal(items))
		startCell, _ := excelize.CoordinatesToCellName(1, totalRowIdx)
		endCell, _ := excelize.CoordinatesToCellName(len(header), totalRowIdx)
		f.SetCellStyle(sheet, startCell, endCell, totalStyle)

		filename := fmt.Sprintf("quotation_%s.xlsx", dateSuffix())
		escaped := url.PathEscape(filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", filename, escaped))

		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
			return
		}
	}
}
