package get_user_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroundBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings/models"
)

type mockReader struct{ mock.Mock }

func (m *mockReader) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*models.BookingListResponse)
	return r, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(reader *mockReader, path, requester string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/api/v1/users/{userId}/bookings", middleware.Auth(http.HandlerFunc(NewHandler(reader, nopLogger{}).Handle)))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.HeaderUserID, requester)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandle_PassesStatusFilter(t *testing.T) {
	reader := &mockReader{}
	reader.On("GetUserBookings", mock.Anything, mock.MatchedBy(func(req *models.GetUserBookingsRequest) bool {
		return req.RequesterID == 42 && req.UserID == 42 && req.Status != nil && *req.Status == "confirmed"
	})).Return(&models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: 1, BookingCode: "BKAAAA"}},
	}, nil)

	rr := get(reader, "/api/v1/users/42/bookings?status=confirmed", "42")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "BKAAAA")
}

func TestHandle_OtherUsersHistoryIsForbidden(t *testing.T) {
	reader := &mockReader{}
	reader.On("GetUserBookings", mock.Anything, mock.Anything).Return(nil, bookings.ErrAccessDenied)

	rr := get(reader, "/api/v1/users/7/bookings", "42")
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestHandle_UnknownStatus(t *testing.T) {
	reader := &mockReader{}
	reader.On("GetUserBookings", mock.Anything, mock.Anything).Return(nil, bookings.ErrInvalidInput)

	rr := get(reader, "/api/v1/users/42/bookings?status=paused", "42")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
