package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestProvider_Counters(t *testing.T) {
	p := NewPrometheusMetricsProvider()

	before := testutil.ToFloat64(FollowOperationsTotal.WithLabelValues("follow", "true"))
	p.IncrementFollowOperations("follow", true)
	assert.Equal(t, before+1, testutil.ToFloat64(FollowOperationsTotal.WithLabelValues("follow", "true")))

	hits := testutil.ToFloat64(CacheHitsTotal)
	p.IncrementCacheHits()
	assert.Equal(t, hits+1, testutil.ToFloat64(CacheHitsTotal))

	p.SetServiceHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(ServiceHealth))
	p.SetServiceHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(ServiceHealth))

	assert.NotPanics(t, func() {
		p.RecordHTTPRequestDuration("GET", "/api/feed", "200", 5*time.Millisecond)
		p.IncrementSearchIndexOperations("index", false)
	})
}
