package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceSnapshot(t *testing.T) {
	metrics := NewMetricsService()
	metrics.RecordCacheOperation(true, time.Millisecond)
	metrics.RecordCacheOperation(false, time.Millisecond)
	metrics.ObserveComputation("quiz", nil, 2*time.Millisecond)
	metrics.ObserveComputation("assignment_rubric", errors.New("bad input"), 4*time.Millisecond)

	snapshot := metrics.Snapshot()
	assert.Equal(t, 0.5, snapshot.CacheHitRatio)
	assert.Equal(t, uint64(2), snapshot.ComputationsTotal)
	assert.Equal(t, uint64(1), snapshot.ComputationFailures)
	assert.InDelta(t, 3.0, snapshot.AverageComputationDurationMs, 1e-9)
}

func TestMetricsServiceHandlerExposesComputations(t *testing.T) {
	metrics := NewMetricsService()
	metrics.ObserveComputation("quiz", nil, time.Millisecond)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `statistics_computations_total{kind="quiz",outcome="ok"} 1`)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var metrics *MetricsService
	metrics.ObserveComputation("quiz", nil, time.Millisecond)
	assert.Zero(t, metrics.Snapshot().ComputationsTotal)
}
