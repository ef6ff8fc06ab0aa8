package handlers

import (
	"database/sql"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tnso721607-maker/tenderquote3/storage"
	"github.com/tnso721607-maker/tenderquote3/utils"
)

// recordActivity writes an audit line for a catalog or tender mutation. A
// failed log write is reported to stderr only; it never fails the request
// that triggered it.
func recordActivity(db *sql.DB, eventName, description, entityID string) {
	if db == nil {
		return
	}
	if err := storage.LogActivity(db, eventName, description, entityID); err != nil {
		log.Printf("Failed to record activity %s: %v", eventName, err)
	}
}

// GetActivityLogsHandler godoc
// @Summary      Get activity logs
// @Description  Returns catalog and tender audit entries, newest first.
// @Tags         activity-logs
// @Produce      json
// @Param        page   query  int  false  "Page"
// @Param        limit  query  int  false  "Limit"
// @Success      200    {object}  object
// @Failure      500    {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/logs [get]
func GetActivityLogsHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageStr := c.DefaultQuery("page", "1")
		limitStr := c.DefaultQuery("limit", "10")

		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			page = 1
		}

		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			limit = 10
		}

		offset := (page - 1) * limit

		ctx, cancel := utils.GetFastQueryContext(c.Request.Context())
		defer cancel()

		totalRecords, err := storage.CountActivityLogs(ctx, db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting logs"})
			return
		}

		totalPages := int(math.Ceil(float64(totalRecords) / float64(limit)))
		hasNext := page < totalPages
		hasPrev := page > 1

		logs, err := storage.GetActivityLogs(ctx, db, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying logs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"logs": logs,
			"pagination": gin.H{
				"current_page":  page,
				"page_size":     limit,
				"total_records": totalRecords,
				"total_pages":   totalPages,
				"has_next":      hasNext,
				"has_prev":      hasPrev,
			},
		})
	}
}
