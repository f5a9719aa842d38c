package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var seen int64
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserID(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not a number", "abc", http.StatusUnauthorized},
		{"negative", "-5", http.StatusUnauthorized},
		{"ok", "42", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.status, rr.Code)
		})
	}

	assert.Equal(t, int64(42), seen)
}

type observed struct {
	method string
	path   string
	status int
}

type fakeRecorder struct {
	mu   sync.Mutex
	seen []observed
}

func (f *fakeRecorder) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, observed{method, path, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(rec))
	r.HandleFunc("/grounds/{groundId}/available-slots", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/grounds/7/available-slots", nil))

	require.Len(t, rec.seen, 1)
	assert.Equal(t, observed{http.MethodGet, "/grounds/{groundId}/available-slots", http.StatusTeapot}, rec.seen[0])
}
