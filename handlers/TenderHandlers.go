package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnso721607-maker/tenderquote3/models"
	"github.com/tnso721607-maker/tenderquote3/services"
	"github.com/tnso721607-maker/tenderquote3/storage"
	"github.com/tnso721607-maker/tenderquote3/utils"
)

func tenderResponse(items []models.TenderLineItem) models.TenderResponse {
	return models.TenderResponse{
		Items:      items,
		GrandTotal: services.GrandTotal(items),
		Count:      len(items),
	}
}

// ProcessTender godoc
// @Summary      Process pasted tender text
// @Description  Extracts line items from the pasted text and matches each one against the catalog, one item at a time: exact name matches pick the cheapest entry (identical scope lands in matched, different scope in review), otherwise the semantic matcher suggests a candidate for review, otherwise the item is no-match. The result replaces the current tender list.
// @Tags         tender
// @Accept       json
// @Produce      json
// @Param        body  body      models.ExtractRequest  true  "Pasted tender text"
// @Success      200   {object}  models.TenderResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tender/process [post]
func ProcessTender(catalog *storage.CatalogStore, tender *storage.TenderStore, ai *services.AIService, matcher *services.MatcherService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ExtractRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
			return
		}

		// Processing against an empty catalog can only produce no-match
		// lines, so it is blocked up front.
		if catalog.Count() == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Catalog is empty. Add rate entries before processing a tender."})
			return
		}

		inputs := ai.ExtractTenderItems(c.Request.Context(), req.Text)
		items := matcher.ProcessTender(c.Request.Context(), inputs, catalog.All())
		tender.Replace(items)

		c.JSON(http.StatusOK, tenderResponse(tender.Items()))
	}
}

// GetTender godoc
// @Summary      Get the current tender list
// @Description  Returns the current items with the grand total recomputed on every call.
// @Tags         tender
// @Produce      json
// @Success      200  {object}  models.TenderResponse
// @Router       /api/tender [get]
func GetTender(tender *storage.TenderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, tenderResponse(tender.Items()))
	}
}

// AcceptTenderMatch godoc
// @Summary      Accept a suggested match
// @Description  Confirms a review suggestion as the final match. Accepting an already matched item is a no-op; items without a suggestion cannot be accepted.
// @Tags         tender
// @Produce      json
// @Param        id   path      string  true  "Tender item ID"
// @Success      200  {object}  models.TenderLineItem
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tender/items/{id}/accept [post]
func AcceptTenderMatch(tender *storage.TenderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		item, found, eligible := tender.AcceptMatch(id)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tender item not found"})
			return
		}
		if !eligible {
			c.JSON(http.StatusConflict, gin.H{"error": "Item has no suggested match to accept"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// RemoveTenderItem godoc
// @Summary      Remove one tender item
// @Tags         tender
// @Produce      json
// @Param        id   path      string  true  "Tender item ID"
// @Success      200  {object}  object
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tender/items/{id} [delete]
func RemoveTenderItem(tender *storage.TenderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if !tender.RemoveItem(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tender item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Tender item removed",
			"grandTotal": services.GrandTotal(tender.Items()),
		})
	}
}

// DiscardTender godoc
// @Summary      Discard the whole tender list
// @Tags         tender
// @Produce      json
// @Success      200  {object}  object
// @Security     BearerAuth
// @Router       /api/tender [delete]
func DiscardTender(tender *storage.TenderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tender.Clear()
		utils.SuccessResponse(c, "Tender list discarded", http.StatusOK)
	}
}
