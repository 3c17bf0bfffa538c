//go:build e2e

package inspection_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"marina-ops/internal/domain/user"
	"marina-ops/internal/handler/dto/response"
	"marina-ops/tests/common/helper"
	"marina-ops/tests/e2e"
	jwtHelper "marina-ops/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	berthsURL      = "/api/berths"
	bookingsURL    = "/api/bookings"
	inspectionsURL = "/api/inspections"
	violationsURL  = "/api/violations"
)

type inspectionSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper

	managerToken   string
	inspectorToken string
}

func TestInspectionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(inspectionSuite))
}

func (s *inspectionSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *inspectionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.managerToken = s.jwtHelper.CreateAndLogin(s.T(), s.Router, "manager@example.com", string(user.RoleManager))
	s.inspectorToken = s.jwtHelper.CreateAndLogin(s.T(), s.Router, "inspector@example.com", string(user.RoleInspector))
}

func (s *inspectionSuite) placeBerth(code string) uuid.UUID {
	t := s.T()

	body := map[string]any{
		"code":                code,
		"lat":                 43.2951,
		"lng":                 5.3739,
		"length_m":            12.0,
		"width_m":             4.5,
		"depth_m":             3.0,
		"max_vessel_length_m": 11.0,
		"max_vessel_width_m":  4.0,
		"water":               true,
		"electricity":         true,
	}
	w := helper.PerformRequest(t, s.Router, http.MethodPost, berthsURL, body, s.managerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreatedResponse
	helper.DecodeResponseBody(t, w.Body, &created)
	return created.ID
}

// createBooking books the berth from today until two days from now, so the
// stay covers the inspection day.
func (s *inspectionSuite) createBooking(berthID uuid.UUID) uuid.UUID {
	t := s.T()

	today := time.Now().UTC()
	body := map[string]any{
		"berth_id":            berthID,
		"guest_name":          "J. Doe",
		"guest_email":         "jdoe@example.com",
		"vessel_name":         "Sea Breeze",
		"vessel_registration": "NL-1234-AB",
		"vessel_length_m":     10.0,
		"check_in":            today.Format(time.DateOnly),
		"check_out":           today.AddDate(0, 0, 2).Format(time.DateOnly),
		"per_day_rate_cents":  5000,
	}
	w := helper.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, s.managerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreatedResponse
	helper.DecodeResponseBody(t, w.Body, &created)
	return created.ID
}

func (s *inspectionSuite) confirmBooking(bookingID uuid.UUID) {
	t := s.T()

	w := helper.PerformRequest(t, s.Router, http.MethodPut,
		fmt.Sprintf("%s/%s/confirm", bookingsURL, bookingID), nil, s.managerToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func (s *inspectionSuite) submitInspection(body map[string]any) response.SubmitInspectionResponse {
	t := s.T()

	w := helper.PerformRequest(t, s.Router, http.MethodPost, inspectionsURL, body, s.inspectorToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.SubmitInspectionResponse
	helper.DecodeResponseBody(t, w.Body, &res)
	return res
}

func (s *inspectionSuite) bookingStatus(bookingID uuid.UUID) string {
	t := s.T()

	var status string
	err := s.DB.QueryRow(t.Context(),
		"SELECT status FROM berth_bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

func (s *inspectionSuite) TestInspectionWorkflow() {
	s.Run("correct observation checks in the covering booking", func() {
		t := s.T()

		berthID := s.placeBerth("A-01")
		bookingID := s.createBooking(berthID)
		s.confirmBooking(bookingID)

		res := s.submitInspection(map[string]any{
			"berth_id": berthID,
			"status":   "correct",
		})

		require.Equal(t, "reserved", res.Occupancy)
		require.Nil(t, res.ViolationID)
		require.NotNil(t, res.CheckedInBooking)
		require.Equal(t, bookingID, *res.CheckedInBooking)
		require.Equal(t, "checked_in", s.bookingStatus(bookingID))
	})

	s.Run("repeat correct observation leaves the booking checked in", func() {
		t := s.T()

		berthID := s.placeBerth("A-02")
		bookingID := s.createBooking(berthID)
		s.confirmBooking(bookingID)

		first := s.submitInspection(map[string]any{"berth_id": berthID, "status": "correct"})
		require.NotNil(t, first.CheckedInBooking)

		second := s.submitInspection(map[string]any{"berth_id": berthID, "status": "correct"})
		require.Equal(t, "occupied", second.Occupancy)
		require.Nil(t, second.CheckedInBooking)
		require.Equal(t, "checked_in", s.bookingStatus(bookingID))
	})

	s.Run("wrong vessel opens a violation", func() {
		t := s.T()

		berthID := s.placeBerth("B-01")
		bookingID := s.createBooking(berthID)
		s.confirmBooking(bookingID)

		res := s.submitInspection(map[string]any{
			"berth_id":                  berthID,
			"status":                    "wrong_vessel",
			"found_vessel_name":         "Intruder",
			"found_vessel_registration": "ES-9999-ZZ",
		})

		require.NotNil(t, res.ViolationID)
		require.Nil(t, res.CheckedInBooking)
		require.Equal(t, "confirmed", s.bookingStatus(bookingID))

		w := helper.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", violationsURL, *res.ViolationID), nil, s.managerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "wrong_berth")
		require.Contains(t, w.Body.String(), "ES-9999-ZZ")
	})

	s.Run("illegal mooring on a free berth", func() {
		t := s.T()

		berthID := s.placeBerth("B-02")

		res := s.submitInspection(map[string]any{
			"berth_id":                  berthID,
			"status":                    "illegal_mooring",
			"found_vessel_name":         "Squatter",
			"found_vessel_registration": "FR-0000-XX",
		})

		require.Equal(t, "free", res.Occupancy)
		require.NotNil(t, res.ViolationID)

		w := helper.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", violationsURL, *res.ViolationID), nil, s.managerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "illegal_mooring")
	})

	s.Run("empty berth with no booking records nothing but the inspection", func() {
		t := s.T()

		berthID := s.placeBerth("C-01")

		res := s.submitInspection(map[string]any{
			"berth_id": berthID,
			"status":   "empty_ok",
		})

		require.Equal(t, "free", res.Occupancy)
		require.Nil(t, res.ViolationID)
		require.Nil(t, res.CheckedInBooking)

		var violations int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM violations").Scan(&violations)
		require.NoError(t, err)
		require.Zero(t, violations)
	})

	s.Run("correct observation without a covering booking is rejected", func() {
		t := s.T()

		berthID := s.placeBerth("C-02")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, inspectionsURL,
			map[string]any{"berth_id": berthID, "status": "correct"}, s.inspectorToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var inspections int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM inspections").Scan(&inspections)
		require.NoError(t, err)
		require.Zero(t, inspections)
	})
}

func (s *inspectionSuite) TestInspectionPermissions() {
	s.Run("inspector cannot place berths", func() {
		t := s.T()

		body := map[string]any{
			"code":                "Z-01",
			"lat":                 43.0,
			"lng":                 5.0,
			"length_m":            10.0,
			"width_m":             4.0,
			"depth_m":             2.5,
			"max_vessel_length_m": 9.0,
			"max_vessel_width_m":  3.5,
		}
		w := helper.PerformRequest(t, s.Router, http.MethodPost, berthsURL, body, s.inspectorToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("submitting requires authentication", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodPost, inspectionsURL,
			map[string]any{"berth_id": uuid.New(), "status": "empty_ok"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
