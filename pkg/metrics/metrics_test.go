package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveHTTPRequest(t *testing.T) {
	m := New("salon-test")

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/businesses/{businessId}/available-slots", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/businesses/{businessId}/available-slots", http.StatusOK, 20*time.Millisecond)

	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/businesses/{businessId}/available-slots", "200"))
	assert.Equal(t, float64(2), got)
}

func TestObserveDBQuery_CountsErrors(t *testing.T) {
	m := New("salon-test")

	m.ObserveDBQuery("select", time.Millisecond, nil)
	m.ObserveDBQuery("select", time.Millisecond, errors.New("boom"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New("salon-test")
	m.ObserveCache("operating_hours", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "schedule_cache_requests_total")
}
