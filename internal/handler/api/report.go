package api

import (
	"errors"
	"net/http"
	"time"

	"marina-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reportQueries: reportQueries}
}

// @Summary Occupancy report
// @Description Per-day occupancy rates over a half-open date range
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD), inclusive"
// @Param to query string true "Range end (YYYY-MM-DD), exclusive"
// @Success 200 {array} queries.OccupancyDay
// @Failure 422 {object} map[string]string
// @Router /reports/occupancy [get]
func (h *ReportHandler) Occupancy(c *gin.Context) {
	from, to, ok := parseReportRange(c)
	if !ok {
		return
	}

	days, err := h.reportQueries.Occupancy(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidReportRange) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Report range must span at least one day",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, days)
}

// @Summary Revenue report
// @Description Payments received per day over a half-open date range
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD), inclusive"
// @Param to query string true "Range end (YYYY-MM-DD), exclusive"
// @Success 200 {object} queries.RevenueSummary
// @Failure 422 {object} map[string]string
// @Router /reports/revenue [get]
func (h *ReportHandler) Revenue(c *gin.Context) {
	from, to, ok := parseReportRange(c)
	if !ok {
		return
	}

	summary, err := h.reportQueries.Revenue(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidReportRange) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Report range must span at least one day",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func parseReportRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse(time.DateOnly, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from date, expected YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(time.DateOnly, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to date, expected YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
