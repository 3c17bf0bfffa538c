package api

import (
	"context"
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

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Reserve a berth for a stay; overlapping active bookings are rejected
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userID, _ := middleware.GetUserID(c)
	id, err := h.bookingCommands.Create(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBerthNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Berth not found",
			})
		case errors.Is(err, commands.ErrBerthNotBookable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Berth is not bookable",
			})
		case errors.Is(err, commands.ErrVesselTooLarge):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Vessel exceeds berth limits",
			})
		case errors.Is(err, commands.ErrBookingValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid booking data",
			})
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Berth already booked for overlapping dates",
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

// @Summary List bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param berth_id query string false "Filter by berth"
// @Param guest query string false "Filter by guest name"
// @Param from query string false "Stay overlaps from (YYYY-MM-DD)"
// @Param to query string false "Stay overlaps to (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	filter := queries.BookingFilter{
		Status:    c.Query("status"),
		GuestName: c.Query("guest"),
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
	var ok bool
	if filter.From, ok = parseDateQuery(c, "from"); !ok {
		return
	}
	if filter.To, ok = parseDateQuery(c, "to"); !ok {
		return
	}

	items, err := h.bookingQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Booking detail
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Arrivals for a day
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings/arrivals [get]
func (h *BookingHandler) Arrivals(c *gin.Context) {
	h.listForDay(c, h.bookingQueries.Arrivals)
}

// @Summary Departures for a day
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings/departures [get]
func (h *BookingHandler) Departures(c *gin.Context) {
	h.listForDay(c, h.bookingQueries.Departures)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.bookingCommands.Confirm)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.bookingCommands.Cancel)
}

func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	h.transition(c, h.bookingCommands.MarkNoShow)
}

func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.bookingCommands.CheckOut)
}

// @Summary Record payment
// @Description Append a payment and recompute the booking's payment status
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 204 "No Content"
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/payments [post]
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userID, _ := middleware.GetUserID(c)
	err := h.bookingCommands.RecordPayment(c.Request.Context(), id, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrPaymentValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid payment data",
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

func (h *BookingHandler) transition(c *gin.Context, run func(ctx context.Context, id uuid.UUID) error) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := run(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrIllegalTransition):
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

func (h *BookingHandler) listForDay(c *gin.Context, run func(ctx context.Context, day time.Time) ([]*queries.BookingListItem, error)) {
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

	items, err := run(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

func parseDateQuery(c *gin.Context, key string) (time.Time, bool) {
	s := c.Query(key)
	if s == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse(time.DateOnly, s)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + key + " date, expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return parsed, true
}
