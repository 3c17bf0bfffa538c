package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "marina-ops/internal/handler/dto/request"
	resdto "marina-ops/internal/handler/dto/response"
	"marina-ops/internal/handler/middleware"
	"marina-ops/internal/usecase/commands"
	"marina-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InspectionHandler struct {
	inspectionCommands commands.InspectionCommands
	inspectionQueries  queries.InspectionQueries
}

func NewInspectionHandler(inspectionCommands commands.InspectionCommands, inspectionQueries queries.InspectionQueries) *InspectionHandler {
	return &InspectionHandler{
		inspectionCommands: inspectionCommands,
		inspectionQueries:  inspectionQueries,
	}
}

// @Summary Submit inspection
// @Description Record a dock walk finding; side effects (check-in, violation) run in one transaction
// @Tags inspections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitInspectionRequest true "Inspection"
// @Success 201 {object} resdto.SubmitInspectionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /inspections [post]
func (h *InspectionHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inspectorID, _ := middleware.GetUserID(c)
	result, err := h.inspectionCommands.Submit(c.Request.Context(), req, inspectorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBerthNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Berth not found",
			})
		case errors.Is(err, commands.ErrInspectionValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid inspection data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.SubmitInspectionResponse{
		ID:               result.InspectionID,
		Occupancy:        result.Occupancy,
		ViolationID:      result.ViolationID,
		CheckedInBooking: result.CheckedInBooking,
	})
}

// @Summary Inspection detail
// @Tags inspections
// @Security BearerAuth
// @Produce json
// @Param id path string true "Inspection ID"
// @Success 200 {object} queries.InspectionView
// @Failure 404 {object} map[string]string
// @Router /inspections/{id} [get]
func (h *InspectionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.inspectionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrInspectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Inspection not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Inspection history for a berth
// @Tags inspections
// @Security BearerAuth
// @Produce json
// @Param id path string true "Berth ID"
// @Param limit query int false "Max results (default 50)"
// @Success 200 {array} queries.InspectionView
// @Router /berths/{id}/inspections [get]
func (h *InspectionHandler) HistoryForBerth(c *gin.Context) {
	berthID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var limit int32
	if s := c.Query("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = int32(n)
	}

	views, err := h.inspectionQueries.HistoryForBerth(c.Request.Context(), berthID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Inspections for a day
// @Tags inspections
// @Security BearerAuth
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {array} queries.InspectionView
// @Router /inspections [get]
func (h *InspectionHandler) ForDay(c *gin.Context) {
	day := time.Now()
	if s := c.Query("date"); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
			return
		}
		day = parsed
	}

	views, err := h.inspectionQueries.ForDay(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}
