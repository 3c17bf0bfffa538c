package api

import (
	"errors"
	"net/http"

	reqdto "marina-ops/internal/handler/dto/request"
	resdto "marina-ops/internal/handler/dto/response"
	"marina-ops/internal/handler/middleware"
	"marina-ops/internal/usecase/commands"
	"marina-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ViolationHandler struct {
	violationCommands commands.ViolationCommands
	violationQueries  queries.ViolationQueries
}

func NewViolationHandler(violationCommands commands.ViolationCommands, violationQueries queries.ViolationQueries) *ViolationHandler {
	return &ViolationHandler{
		violationCommands: violationCommands,
		violationQueries:  violationQueries,
	}
}

// @Summary Report violation
// @Description Manually report a berth violation
// @Tags violations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ReportViolationRequest true "Violation"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /violations [post]
func (h *ViolationHandler) Report(c *gin.Context) {
	var req reqdto.ReportViolationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userID, _ := middleware.GetUserID(c)
	id, err := h.violationCommands.Report(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBerthNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Berth not found",
			})
		case errors.Is(err, commands.ErrViolationValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid violation data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Advance violation status
// @Tags violations
// @Security BearerAuth
// @Accept json
// @Param id path string true "Violation ID"
// @Param request body reqdto.AdvanceViolationRequest true "Target status"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string
// @Router /violations/{id}/status [put]
func (h *ViolationHandler) Advance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.AdvanceViolationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userID, _ := middleware.GetUserID(c)
	err := h.violationCommands.Advance(c.Request.Context(), id, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrViolationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Violation not found",
			})
		case errors.Is(err, commands.ErrViolationValidation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Illegal status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Violation detail
// @Tags violations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Violation ID"
// @Success 200 {object} queries.ViolationView
// @Failure 404 {object} map[string]string
// @Router /violations/{id} [get]
func (h *ViolationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.violationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrViolationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Violation not found",
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

// @Summary List violations
// @Tags violations
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param berth_id query string false "Filter by berth"
// @Success 200 {array} queries.ViolationView
// @Router /violations [get]
func (h *ViolationHandler) List(c *gin.Context) {
	filter := queries.ViolationFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	}
	if s := c.Query("berth_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid berth_id",
			})
			return
		}
		filter.BerthID = id
	}

	views, err := h.violationQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}
