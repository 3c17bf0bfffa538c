//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"marina-ops/internal/handler/api"
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

type BerthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBerthCommands
	mockQueries  *queriesmock.MockBerthQueries
	handler      *api.BerthHandler
}

func (s *BerthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBerthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBerthQueries(s.mockCtrl)
	s.handler = api.NewBerthHandler(s.mockCommands, s.mockQueries)

	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", uuid.New())
			}
			next(c)
		}
	}

	s.router.GET("/berths/map", s.handler.MapView)
	s.router.GET("/berths", s.handler.List)
	s.router.GET("/berths/:id", s.handler.Get)
	s.router.POST("/berths", authed(s.handler.Place))
	s.router.PUT("/berths/:id", authed(s.handler.Update))
	s.router.DELETE("/berths/:id", authed(s.handler.Remove))
}

func (s *BerthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBerthHandlerSuite(t *testing.T) {
	suite.Run(t, new(BerthHandlerTestSuite))
}

func (s *BerthHandlerTestSuite) TestPlace() {
	url := "/berths"
	reqBody := builder.NewBerthBuilder().BuildDTO()

	s.Run("success", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Place(gomock.Any(), reqBody, gomock.Any()).Return(newID, nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		var resp resdto.CreatedResponse
		helper.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(newID, resp.ID)
	})

	s.Run("duplicate code", func() {
		s.mockCommands.EXPECT().Place(gomock.Any(), reqBody, gomock.Any()).Return(uuid.Nil, commands.ErrBerthCodeTaken)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusConflict, "Berth code already in use")
	})

	s.Run("invalid dimensions", func() {
		s.mockCommands.EXPECT().Place(gomock.Any(), reqBody, gomock.Any()).Return(uuid.Nil, commands.ErrBerthValidation)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Invalid berth data")
	})

	s.Run("missing code", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("code", nil))

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BerthHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewBerthBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/berths/"+view.ID.String(), nil, "")

		var resp resdto.BerthResponse
		helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.Code, resp.Code)
		s.Equal(view.Pontoon, resp.Pontoon)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrBerthNotFound)

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/berths/"+id.String(), nil, "")

		helper.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Berth not found")
	})

	s.Run("malformed id", func() {
		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/berths/not-a-uuid", nil, "")

		helper.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid ID")
	})
}

func (s *BerthHandlerTestSuite) TestList() {
	views := []*queries.BerthView{
		builder.NewBerthBuilder().BuildView(),
		builder.NewBerthBuilder().With(func(b *builder.BerthBuilder) { b.Code = "A-02" }).BuildView(),
	}
	s.mockQueries.EXPECT().List(gomock.Any(), "A").Return(views, nil)

	w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/berths?pontoon=A", nil, "")

	var resp []resdto.BerthResponse
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Len(resp, 2)
	s.Equal("A-02", resp[1].Code)
}

func (s *BerthHandlerTestSuite) TestMapView() {
	s.Run("success with explicit day", func() {
		occupied := builder.NewBerthBuilder().BuildView()
		free := builder.NewBerthBuilder().With(func(b *builder.BerthBuilder) { b.Code = "B-01" }).BuildView()
		bookingID := uuid.New()
		vessel := "Aurora"
		items := []*queries.BerthMapItem{
			{Berth: *occupied, Occupancy: "booked", BookingID: &bookingID, Vessel: &vessel},
			{Berth: *free, Occupancy: "free"},
		}
		s.mockQueries.EXPECT().MapView(gomock.Any(), gomock.Any()).Return(items, nil, nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/berths/map?as_of=2026-07-14", nil, "")

		var resp resdto.MapViewResponse
		helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("2026-07-14", resp.AsOf)
		s.Len(resp.Items, 2)
		s.Equal("booked", resp.Items[0].Occupancy)
		s.Equal(&bookingID, resp.Items[0].BookingID)
		s.Empty(resp.Warnings)
	})

	s.Run("surfaces integrity warnings", func() {
		view := builder.NewBerthBuilder().BuildView()
		warnings := []queries.IntegrityWarning{
			{BerthID: view.ID, BerthCode: view.Code, BookingIDs: []uuid.UUID{uuid.New(), uuid.New()}},
		}
		s.mockQueries.EXPECT().MapView(gomock.Any(), gomock.Any()).
			Return([]*queries.BerthMapItem{{Berth: *view, Occupancy: "booked"}}, warnings, nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/berths/map?as_of=2026-07-14", nil, "")

		var resp resdto.MapViewResponse
		helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp.Warnings, 1)
		s.Equal(view.Code, resp.Warnings[0].BerthCode)
		s.Len(resp.Warnings[0].BookingIDs, 2)
	})

	s.Run("bad date", func() {
		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/berths/map?as_of=14/07/2026", nil, "")

		helper.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid as_of date")
	})
}

func (s *BerthHandlerTestSuite) TestRemove() {
	id := uuid.New()
	url := fmt.Sprintf("/berths/%s", id)

	s.Run("success", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), id).Return(nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "some-token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("berth has bookings", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), id).Return(commands.ErrBerthInUse)

		w := helper.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusConflict, "cannot be removed")
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), id).Return(commands.ErrBerthNotFound)

		w := helper.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Berth not found")
	})
}
