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
)

type DamageHandler struct {
	damageCommands commands.DamageCommands
	damageQueries  queries.DamageQueries
}

func NewDamageHandler(damageCommands commands.DamageCommands, damageQueries queries.DamageQueries) *DamageHandler {
	return &DamageHandler{
		damageCommands: damageCommands,
		damageQueries:  damageQueries,
	}
}

// @Summary Report damage
// @Description File a maintenance damage report for marina infrastructure
// @Tags damage
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ReportDamageRequest true "Damage report"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 422 {object} map[string]string
// @Router /damage-reports [post]
func (h *DamageHandler) Report(c *gin.Context) {
	var req reqdto.ReportDamageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userID, _ := middleware.GetUserID(c)
	id, err := h.damageCommands.Report(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, commands.ErrDamageValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid damage report data",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Advance damage report status
// @Tags damage
// @Security BearerAuth
// @Accept json
// @Param id path string true "Damage report ID"
// @Param request body reqdto.AdvanceDamageRequest true "Target status"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string
// @Router /damage-reports/{id}/status [put]
func (h *DamageHandler) Advance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.AdvanceDamageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.damageCommands.Advance(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDamageReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Damage report not found",
			})
		case errors.Is(err, commands.ErrDamageValidation):
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

// @Summary Damage report detail
// @Tags damage
// @Security BearerAuth
// @Produce json
// @Param id path string true "Damage report ID"
// @Success 200 {object} queries.DamageReportView
// @Failure 404 {object} map[string]string
// @Router /damage-reports/{id} [get]
func (h *DamageHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.damageQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrDamageReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Damage report not found",
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

// @Summary List damage reports
// @Tags damage
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Param severity query string false "Filter by severity"
// @Success 200 {array} queries.DamageReportView
// @Router /damage-reports [get]
func (h *DamageHandler) List(c *gin.Context) {
	filter := queries.DamageFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Severity: c.Query("severity"),
	}

	views, err := h.damageQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}
