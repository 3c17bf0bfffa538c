//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"marina-ops/internal/handler/api"
	reqdto "marina-ops/internal/handler/dto/request"
	resdto "marina-ops/internal/handler/dto/response"
	"marina-ops/internal/usecase/commands"
	"marina-ops/internal/usecase/queries"
	"marina-ops/tests/common/builder"
	"marina-ops/tests/common/helper"
	"marina-ops/tests/common/testutil"
	commandsmock "marina-ops/tests/mock/commands"
	queriesmock "marina-ops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", uuid.New())
			}
			next(c)
		}
	}

	s.router.POST("/bookings", authed(s.handler.Create))
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/arrivals", s.handler.Arrivals)
	s.router.PUT("/bookings/:id/confirm", authed(s.handler.Confirm))
	s.router.PUT("/bookings/:id/check-out", authed(s.handler.CheckOut))
	s.router.POST("/bookings/:id/payments", authed(s.handler.RecordPayment))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildDTO()

	s.Run("success", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, gomock.Any()).Return(newID, nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		var resp resdto.CreatedResponse
		helper.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(newID, resp.ID)
	})

	s.Run("overlapping dates", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, gomock.Any()).Return(uuid.Nil, commands.ErrBookingConflict)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusConflict, "overlapping dates")
	})

	s.Run("unknown berth", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, gomock.Any()).Return(uuid.Nil, commands.ErrBerthNotFound)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Berth not found")
	})

	s.Run("vessel too large", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, gomock.Any()).Return(uuid.Nil, commands.ErrVesselTooLarge)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Vessel exceeds berth limits")
	})

	s.Run("berth under maintenance", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, gomock.Any()).Return(uuid.Nil, commands.ErrBerthNotBookable)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "not bookable")
	})

	s.Run("missing guest name", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("guest_name", nil))

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("filter by status", func() {
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
				s.Equal("confirmed", filter.Status)
				return items, nil
			})

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=confirmed", nil, "")

		var resp []*queries.BookingListItem
		helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("bad berth_id filter", func() {
		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?berth_id=nope", nil, "")

		helper.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid berth_id")
	})
}

func (s *BookingHandlerTestSuite) TestArrivals() {
	s.Run("success", func() {
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		s.mockQueries.EXPECT().Arrivals(gomock.Any(), gomock.Any()).Return(items, nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/arrivals?date=2026-07-14", nil, "")

		var resp []*queries.BookingListItem
		helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("bad date", func() {
		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/arrivals?date=tomorrow", nil, "")

		helper.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date")
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	s.Run("confirm success", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), id).Return(nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPut, fmt.Sprintf("/bookings/%s/confirm", id), nil, "some-token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("confirm on cancelled booking", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), id).Return(commands.ErrIllegalTransition)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPut, fmt.Sprintf("/bookings/%s/confirm", id), nil, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusConflict, "Illegal status transition")
	})

	s.Run("check-out unknown booking", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id).Return(commands.ErrBookingNotFound)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPut, fmt.Sprintf("/bookings/%s/check-out", id), nil, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestRecordPayment() {
	id := uuid.New()
	url := fmt.Sprintf("/bookings/%s/payments", id)
	reqBody := reqdto.RecordPaymentRequest{
		AmountCents: 9000,
		Method:      "card",
		Reference:   "POS-1842",
	}

	s.Run("success", func() {
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), id, reqBody, gomock.Any()).Return(nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("overpayment rejected", func() {
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), id, reqBody, gomock.Any()).Return(commands.ErrPaymentValidation)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Invalid payment data")
	})

	s.Run("unsupported method", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("method", "barter"))

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}
