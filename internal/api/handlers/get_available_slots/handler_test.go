package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-GroundBookingService/internal/usecase/get_available_slots"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*getAvailableSlots.Response)
	return r, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *mockUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/grounds/{groundId}/available-slots", NewHandler(uc, nopLogger{}).Handle)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestHandle_OK(t *testing.T) {
	uc := &mockUseCase{}
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{GroundID: 7, Date: date, DurationHours: 2}).
		Return(&getAvailableSlots.Response{
			GroundID:      7,
			Date:          date,
			DurationHours: 2,
			Slots: []domain.Slot{
				{Time: "09:00", Available: true, Price: decimal.NewFromInt(1500)},
				{Time: "11:00", Available: true, Price: decimal.NewFromInt(1500)},
			},
		}, nil)

	rr := serve(uc, "/api/v1/grounds/7/available-slots?date=2026-10-19&duration=2")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "2026-10-19", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "11:00", resp.Slots[1].Time)
}

func TestHandle_EmptyListIsArray(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{GroundID: 7}, nil)

	rr := serve(uc, "/api/v1/grounds/7/available-slots?date=2026-10-19&duration=3")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"slots":[]`)
}

func TestHandle_BadRequests(t *testing.T) {
	targets := []string{
		"/api/v1/grounds/abc/available-slots?date=2026-10-19&duration=2",
		"/api/v1/grounds/7/available-slots?duration=2",
		"/api/v1/grounds/7/available-slots?date=2026-10-19",
		"/api/v1/grounds/7/available-slots?date=19-10-2026&duration=2",
		"/api/v1/grounds/7/available-slots?date=2026-10-19&duration=two",
	}
	for _, target := range targets {
		uc := &mockUseCase{}
		rr := serve(uc, target)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestHandle_GroundNotFound(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrGroundNotFound)

	rr := serve(uc, "/api/v1/grounds/7/available-slots?date=2026-10-19&duration=2")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
