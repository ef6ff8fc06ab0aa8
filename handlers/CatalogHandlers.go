package handlers

import (
	"database/sql"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tnso721607-maker/tenderquote3/models"
	"github.com/tnso721607-maker/tenderquote3/services"
	"github.com/tnso721607-maker/tenderquote3/storage"
)

// validateRateInput enforces the catalog input boundary: name, unit and
// scope present, rate a finite non-negative number.
func validateRateInput(input *models.RateEntryInput) string {
	input.Name = strings.TrimSpace(input.Name)
	input.Unit = strings.TrimSpace(input.Unit)
	input.ScopeOfWork = strings.TrimSpace(input.ScopeOfWork)
	input.Source = strings.TrimSpace(input.Source)

	if input.Name == "" || input.Unit == "" || input.ScopeOfWork == "" {
		return "Name, unit and scope of work are required"
	}
	if math.IsNaN(input.Rate) || math.IsInf(input.Rate, 0) || input.Rate < 0 {
		return "Rate must be a non-negative number"
	}
	return ""
}

// SearchCatalog godoc
// @Summary      List or search the rate catalog
// @Description  Substring search over name and source, case-insensitive. Empty search returns all entries, newest first, with benchmark flags.
// @Tags         catalog
// @Produce      json
// @Param        search  query     string  false  "Substring to search for"
// @Success      200     {object}  models.CatalogListResponse
// @Router       /api/catalog [get]
func SearchCatalog(store *storage.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := store.ListWithBenchmarks(c.Query("search"))
		c.JSON(http.StatusOK, models.CatalogListResponse{
			Entries: entries,
			Count:   len(entries),
		})
	}
}

// CreateRateEntry godoc
// @Summary      Add a rate entry
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      models.RateEntryInput  true  "Rate entry"
// @Success      201   {object}  models.RateEntry
// @Failure      400   {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/catalog [post]
func CreateRateEntry(store *storage.CatalogStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.RateEntryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		if msg := validateRateInput(&input); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		entry, err := store.Add(input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rate entry"})
			return
		}

		recordActivity(db, "catalog_entry_created", fmt.Sprintf("Added rate entry %q", entry.Name), entry.ID)
		c.JSON(http.StatusCreated, entry)
	}
}

// UpdateRateEntry godoc
// @Summary      Update a rate entry
// @Description  Replaces every field except the id and the original creation timestamp.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Rate entry ID"
// @Param        body  body      models.RateEntryInput  true  "Rate entry"
// @Success      200   {object}  models.RateEntry
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/catalog/{id} [put]
func UpdateRateEntry(store *storage.CatalogStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input models.RateEntryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		if msg := validateRateInput(&input); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		entry, found, err := store.Update(id, input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rate entry"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate entry not found"})
			return
		}

		recordActivity(db, "catalog_entry_updated", fmt.Sprintf("Updated rate entry %q", entry.Name), entry.ID)
		c.JSON(http.StatusOK, entry)
	}
}

// DeleteRateEntry godoc
// @Summary      Delete a rate entry
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Rate entry ID"
// @Success      200  {object}  object
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/catalog/{id} [delete]
func DeleteRateEntry(store *storage.CatalogStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		found, err := store.Remove(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save catalog"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate entry not found"})
			return
		}

		recordActivity(db, "catalog_entry_deleted", "Deleted rate entry", id)
		c.JSON(http.StatusOK, gin.H{"message": "Rate entry deleted successfully"})
	}
}

// ExtractRateEntries godoc
// @Summary      Extract rate entries from pasted text
// @Description  Sends the pasted free text to the AI extractor and bulk-adds every usable candidate to the catalog as one batch. Extraction failures degrade to zero candidates, never to an error.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      models.ExtractRequest  true  "Pasted text"
// @Success      200   {object}  models.ExtractAddResponse
// @Failure      400   {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/catalog/extract [post]
func ExtractRateEntries(store *storage.CatalogStore, ai *services.AIService, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ExtractRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
			return
		}

		candidates := ai.ExtractRateEntries(c.Request.Context(), req.Text)
		if len(candidates) == 0 {
			c.JSON(http.StatusOK, models.ExtractAddResponse{
				Message: "No rate entries could be extracted from the text",
				Added:   []models.RateEntry{},
			})
			return
		}

		added, err := store.BulkAdd(candidates)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save extracted entries"})
			return
		}

		recordActivity(db, "catalog_bulk_added", fmt.Sprintf("Extracted and added %d rate entries", len(added)), "")
		c.JSON(http.StatusOK, models.ExtractAddResponse{
			Message: fmt.Sprintf("Extracted and added %d rate entries", len(added)),
			Added:   added,
			Count:   len(added),
		})
	}
}
