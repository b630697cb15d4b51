package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTP("/api/campaigns/{id}", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	m.ObserveHTTP("/api/campaigns/{id}", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	m.MetadataLookup("hit")
	m.CampaignCreated()
	m.StatusTransition("failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/campaigns/{id}", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metadataLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.campaignsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("failed")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "dexrooms_campaigns_created_total 1"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("/", http.MethodGet, http.StatusOK, time.Millisecond)
		m.MetadataLookup("error")
		m.CampaignCreated()
		m.StatusTransition("completed")
	})
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
