// file: internal/metrics/metrics_test.go
// version: 2.0.0
// guid: 7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d

package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncSearch(t *testing.T) {
	before := testutil.ToFloat64(searches.WithLabelValues("test_metric"))
	IncSearch("test_metric")
	assert.Equal(t, before+1, testutil.ToFloat64(searches.WithLabelValues("test_metric")))
}

func TestIncSearchFailure(t *testing.T) {
	before := testutil.ToFloat64(searchFailures.WithLabelValues("test_reason"))
	IncSearchFailure("test_reason")
	assert.Equal(t, before+1, testutil.ToFloat64(searchFailures.WithLabelValues("test_reason")))
}

func TestAddScored(t *testing.T) {
	before := testutil.ToFloat64(candidatesScored.WithLabelValues("test_metric"))
	AddScored("test_metric", 7)
	assert.Equal(t, before+7, testutil.ToFloat64(candidatesScored.WithLabelValues("test_metric")))
}

func TestObserveSearchDuration(t *testing.T) {
	ObserveSearchDuration("test_metric", 100*time.Microsecond)
}

func TestCacheCounters(t *testing.T) {
	hits, misses := testutil.ToFloat64(scoreCacheHits), testutil.ToFloat64(scoreCacheMisses)
	IncScoreCacheHit()
	IncScoreCacheMiss()
	IncScoreCacheMiss()
	assert.Equal(t, hits+1, testutil.ToFloat64(scoreCacheHits))
	assert.Equal(t, misses+2, testutil.ToFloat64(scoreCacheMisses))
}

func TestConfigAndRegistryGauges(t *testing.T) {
	IncConfigChange("metric")
	SetRegisteredMetrics(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(registeredMetrics))
}

func TestWriteText(t *testing.T) {
	Register()
	Register()
	IncSearch("lcs")

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf))
	assert.Contains(t, buf.String(), "spotlight_searches_total")
}
