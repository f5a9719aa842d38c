package update_booking_status

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GroundBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	return m.Called(ctx, bookingID, req).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patch(svc *mockService, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/api/v1/bookings/{bookingId}/status", middleware.Auth(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle)))

	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, "900")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"updated", nil, http.StatusNoContent},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"not the owner", bookings.ErrAccessDenied, http.StatusForbidden},
		{"bad transition", fmt.Errorf("%w: confirmed -> completed", bookings.ErrInvalidTransition), http.StatusConflict},
		{"storage failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateStatus", mock.Anything, int64(5), &models.UpdateStatusRequest{UserID: 900, Status: "started"}).
				Return(tt.err)

			rr := patch(svc, "/api/v1/bookings/5/status", `{"status":"started"}`)
			assert.Equal(t, tt.status, rr.Code)
			if tt.status == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"booking id", "/api/v1/bookings/abc/status", `{"status":"started"}`},
		{"malformed body", "/api/v1/bookings/5/status", `{"status":`},
		{"missing status", "/api/v1/bookings/5/status", `{}`},
		{"unknown status", "/api/v1/bookings/5/status", `{"status":"paused"}`},
		{"cancel goes through its own route", "/api/v1/bookings/5/status", `{"status":"cancelled"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			rr := patch(svc, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
