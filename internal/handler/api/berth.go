package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "marina-ops/internal/handler/dto/request"
	resdto "marina-ops/internal/handler/dto/response"
	"marina-ops/internal/handler/middleware"
	"marina-ops/internal/usecase/commands"
	"marina-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BerthHandler struct {
	berthCommands commands.BerthCommands
	berthQueries  queries.BerthQueries
}

func NewBerthHandler(berthCommands commands.BerthCommands, berthQueries queries.BerthQueries) *BerthHandler {
	return &BerthHandler{
		berthCommands: berthCommands,
		berthQueries:  berthQueries,
	}
}

// @Summary Marina map
// @Description All berths with occupancy derived for the given day
// @Tags berths
// @Security BearerAuth
// @Produce json
// @Param as_of query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.MapViewResponse
// @Router /berths/map [get]
func (h *BerthHandler) MapView(c *gin.Context) {
	asOf := time.Now()
	if s := c.Query("as_of"); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid as_of date, expected YYYY-MM-DD",
			})
			return
		}
		asOf = parsed
	}

	items, warnings, err := h.berthQueries.MapView(c.Request.Context(), asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.MapViewResponse{
		AsOf:     asOf.Format(time.DateOnly),
		Items:    items,
		Warnings: warnings,
	})
}

// @Summary List berths
// @Tags berths
// @Security BearerAuth
// @Produce json
// @Param pontoon query string false "Filter by pontoon prefix"
// @Success 200 {array} resdto.BerthResponse
// @Router /berths [get]
func (h *BerthHandler) List(c *gin.Context) {
	views, err := h.berthQueries.List(c.Request.Context(), c.Query("pontoon"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBerthViews(views))
}

// @Summary Berth detail
// @Tags berths
// @Security BearerAuth
// @Produce json
// @Param id path string true "Berth ID"
// @Success 200 {object} resdto.BerthResponse
// @Failure 404 {object} map[string]string
// @Router /berths/{id} [get]
func (h *BerthHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.berthQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBerthNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Berth not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBerthView(view))
}

// @Summary Place berth
// @Description Create a berth from a map marker placement
// @Tags berths
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceBerthRequest true "Berth"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 409 {object} map[string]string
// @Router /berths [post]
func (h *BerthHandler) Place(c *gin.Context) {
	var req reqdto.PlaceBerthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userID, _ := middleware.GetUserID(c)
	id, err := h.berthCommands.Place(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBerthValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid berth data",
			})
		case errors.Is(err, commands.ErrBerthCodeTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Berth code already in use",
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

// @Summary Update berth
// @Tags berths
// @Security BearerAuth
// @Accept json
// @Param id path string true "Berth ID"
// @Param request body reqdto.UpdateBerthRequest true "Attributes"
// @Success 204 "No Content"
// @Router /berths/{id} [put]
func (h *BerthHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBerthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.respondMutation(c, h.berthCommands.Update(c.Request.Context(), id, req))
}

// @Summary Move berth marker
// @Tags berths
// @Security BearerAuth
// @Accept json
// @Param id path string true "Berth ID"
// @Param request body reqdto.MoveMarkerRequest true "Position"
// @Success 204 "No Content"
// @Router /berths/{id}/position [put]
func (h *BerthHandler) MoveMarker(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.MoveMarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.respondMutation(c, h.berthCommands.MoveMarker(c.Request.Context(), id, req))
}

// @Summary Set berth lifecycle status
// @Tags berths
// @Security BearerAuth
// @Accept json
// @Param id path string true "Berth ID"
// @Param request body reqdto.SetBerthStatusRequest true "Status"
// @Success 204 "No Content"
// @Router /berths/{id}/status [put]
func (h *BerthHandler) SetStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.SetBerthStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.respondMutation(c, h.berthCommands.SetStatus(c.Request.Context(), id, req))
}

// @Summary Remove berth
// @Tags berths
// @Security BearerAuth
// @Param id path string true "Berth ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string
// @Router /berths/{id} [delete]
func (h *BerthHandler) Remove(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.berthCommands.Remove(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBerthNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Berth not found",
			})
		case errors.Is(err, commands.ErrBerthInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Berth has bookings and cannot be removed",
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

func (h *BerthHandler) respondMutation(c *gin.Context, err error) {
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBerthNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Berth not found",
			})
		case errors.Is(err, commands.ErrBerthValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid berth data",
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

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return uuid.Nil, false
	}
	return id, true
}
