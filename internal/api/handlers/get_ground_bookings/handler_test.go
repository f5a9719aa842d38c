package get_ground_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GroundBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetGroundBookings(ctx context.Context, req *models.GetGroundBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*models.BookingListResponse)
	return r, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(svc *mockService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/api/v1/grounds/{groundId}/bookings", middleware.Auth(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle)))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.HeaderUserID, "900")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandle(t *testing.T) {
	list := &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1, BookingCode: "BK7QX2"}}}

	tests := []struct {
		name   string
		resp   *models.BookingListResponse
		err    error
		status int
	}{
		{"owner", list, nil, http.StatusOK},
		{"ground missing", nil, bookings.ErrGroundNotFound, http.StatusNotFound},
		{"not the owner", nil, bookings.ErrAccessDenied, http.StatusForbidden},
		{"bad status filter", nil, bookings.ErrInvalidInput, http.StatusBadRequest},
		{"storage failure", nil, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetGroundBookings", mock.Anything, mock.Anything).Return(tt.resp, tt.err)

			rr := get(svc, "/api/v1/grounds/7/bookings")
			assert.Equal(t, tt.status, rr.Code)
			if tt.resp != nil {
				assert.Contains(t, rr.Body.String(), `"bookingCode":"BK7QX2"`)
			}
		})
	}
}

func TestHandle_QueryParams(t *testing.T) {
	svc := &mockService{}
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	status := "confirmed"

	svc.On("GetGroundBookings", mock.Anything, &models.GetGroundBookingsRequest{
		UserID:          900,
		GroundID:        7,
		Status:          &status,
		Date:            &date,
		IncludeInactive: true,
	}).Return(&models.BookingListResponse{}, nil)

	rr := get(svc, "/api/v1/grounds/7/bookings?date=2026-10-19&status=confirmed&includeInactive=true")
	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestHandle_BadRequest(t *testing.T) {
	for _, path := range []string{
		"/api/v1/grounds/x/bookings",
		"/api/v1/grounds/7/bookings?date=19.10.2026",
		"/api/v1/grounds/7/bookings?includeInactive=maybe",
	} {
		svc := &mockService{}
		assert.Equal(t, http.StatusBadRequest, get(svc, path).Code, path)
		svc.AssertNotCalled(t, "GetGroundBookings", mock.Anything, mock.Anything)
	}
}
