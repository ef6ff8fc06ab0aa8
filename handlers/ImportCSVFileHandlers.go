package handlers

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tnso721607-maker/tenderquote3/models"
	"github.com/tnso721607-maker/tenderquote3/storage"
)

// normalizeHeaderCell maps an incoming CSV header to its canonical column
// name: trims, drops currency suffixes, and folds the exporter's "Source
// Reference" back to "Source", so exported files import unchanged.
func normalizeHeaderCell(col string) string {
	col = strings.TrimSpace(col)
	if idx := strings.Index(col, " ("); idx != -1 {
		col = col[:idx]
	}
	if col == "Source Reference" {
		col = "Source"
	}
	return col
}

func parseImportRate(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "₹")
	raw = strings.ReplaceAll(raw, ",", "")
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return 0, fmt.Errorf("rate must be a non-negative number")
	}
	return rate, nil
}

// ImportCatalogCSV godoc
// @Summary      Import rate entries from a CSV file
// @Description  Expects columns Item Name, Unit, Rate, Scope of Work and optionally Source. Valid rows are added to the catalog as one batch in file order; bad rows are reported individually and never abort the batch.
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV file"
// @Success      200   {object}  models.ImportResult
// @Failure      400   {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/catalog/import [post]
func ImportCatalogCSV(store *storage.CatalogStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file not found"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to open file"})
			return
		}
		defer src.Close()

		// The exporter writes a UTF-8 BOM ahead of the quoted header; a BOM
		// in front of a quote is a CSV parse error, so it is stripped first.
		reader := csv.NewReader(transform.NewReader(src, unicode.UTF8BOM.NewDecoder()))
		reader.FieldsPerRecord = -1

		header, err := reader.Read()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to read CSV header: %v", err)})
			return
		}

		columnIndices := make(map[string]int)
		for i, col := range header {
			columnIndices[normalizeHeaderCell(col)] = i
		}

		requiredColumns := []string{"Item Name", "Unit", "Rate", "Scope of Work"}
		for _, col := range requiredColumns {
			if _, exists := columnIndices[col]; !exists {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("missing required column: %s", col)})
				return
			}
		}

		var inputs []models.RateEntryInput
		var errorCount int
		var rowErrors []string
		rowNum := 1

		for {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			rowNum++
			if err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: failed to read: %v", rowNum, err))
				errorCount++
				continue
			}

			if len(row) < len(header) {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: insufficient columns", rowNum))
				errorCount++
				continue
			}

			input := models.RateEntryInput{
				Name:        strings.TrimSpace(row[columnIndices["Item Name"]]),
				Unit:        strings.TrimSpace(row[columnIndices["Unit"]]),
				ScopeOfWork: strings.TrimSpace(row[columnIndices["Scope of Work"]]),
			}
			if idx, ok := columnIndices["Source"]; ok {
				input.Source = strings.TrimSpace(row[idx])
			}

			rate, err := parseImportRate(row[columnIndices["Rate"]])
			if err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: invalid rate: %v", rowNum, err))
				errorCount++
				continue
			}
			input.Rate = rate

			if msg := validateRateInput(&input); msg != "" {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: %s", rowNum, msg))
				errorCount++
				continue
			}

			inputs = append(inputs, input)
		}

		added, err := store.BulkAdd(inputs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save imported entries"})
			return
		}

		if len(added) > 0 {
			recordActivity(db, "catalog_imported", fmt.Sprintf("Imported %d rate entries from CSV", len(added)), "")
		}

		c.JSON(http.StatusOK, models.ImportResult{
			Message:      fmt.Sprintf("Imported %d rate entries, %d rows skipped", len(added), errorCount),
			SuccessCount: len(added),
			ErrorCount:   errorCount,
			Errors:       rowErrors,
		})
	}
}

// parseBackupArray validates a restore payload: it must be a JSON array of
// rate entries, each with an id, a name and a non-negative rate. The payload
// may arrive as the array itself or as a JSON string holding the file text.
func parseBackupArray(raw json.RawMessage) ([]models.RateEntry, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false
	}

	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return nil, false
		}
		return parseBackupArray(json.RawMessage(text))
	}

	if trimmed[0] != '[' {
		return nil, false
	}

	var entries []models.RateEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, false
	}
	if entries == nil {
		entries = []models.RateEntry{}
	}
	for _, e := range entries {
		if strings.TrimSpace(e.ID) == "" || strings.TrimSpace(e.Name) == "" || e.Rate < 0 {
			return nil, false
		}
	}
	return entries, true
}

// RestoreCatalog godoc
// @Summary      Restore the catalog from a backup file
// @Description  Validates the backup payload and reports its item count. Without confirm=true nothing changes; with it the whole catalog is replaced. An invalid payload leaves the store untouched.
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        body  body      models.RestoreRequest  true  "Backup payload"
// @Success      200   {object}  models.RestoreResponse
// @Failure      400   {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/catalog/restore [post]
func RestoreCatalog(store *storage.CatalogStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RestoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Backup data is required"})
			return
		}

		entries, ok := parseBackupArray(req.Data)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file: expected a JSON array of rate entries"})
			return
		}

		if !req.Confirm {
			c.JSON(http.StatusOK, models.RestoreResponse{
				Message:              fmt.Sprintf("Backup contains %d entries. Confirm to replace the current catalog.", len(entries)),
				Count:                len(entries),
				RequiresConfirmation: true,
			})
			return
		}

		if err := store.ReplaceAll(entries); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save restored catalog"})
			return
		}

		recordActivity(db, "catalog_restored", fmt.Sprintf("Restored catalog from backup with %d entries", len(entries)), "")
		c.JSON(http.StatusOK, models.RestoreResponse{
			Message:  fmt.Sprintf("Catalog restored with %d entries", len(entries)),
			Count:    len(entries),
			Restored: true,
		})
	}
}
