package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() *Metrics {
	return New(prometheus.NewRegistry(), nil)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := newTestMetrics()

	m.RecordHTTPRequest("POST", "/api/boards", 201, 20*time.Millisecond)
	m.RecordHTTPRequest("POST", "/api/boards", 409, 5*time.Millisecond)
	m.RecordHTTPRequest("GET", "", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/boards", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/boards", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "4xx")))
}

func TestRecordDBQuery(t *testing.T) {
	m := newTestMetrics()

	m.RecordDBQuery("insert", "boards", time.Millisecond, nil)
	m.RecordDBQuery("insert", "boards", time.Millisecond, errors.New("duplicate"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("insert", "boards")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
}

func TestBusinessCounters(t *testing.T) {
	m := newTestMetrics()

	m.IncBoardCreated()
	m.IncPostCreated()
	m.IncPostCreated()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BoardsCreatedTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PostsCreatedTotal))
}

func TestCategorizeStatus(t *testing.T) {
	assert.Equal(t, "2xx", categorizeStatus(200))
	assert.Equal(t, "3xx", categorizeStatus(304))
	assert.Equal(t, "4xx", categorizeStatus(400))
	assert.Equal(t, "5xx", categorizeStatus(503))
	assert.Equal(t, "unknown", categorizeStatus(100))
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/api/health"))
	assert.False(t, ShouldSkipEndpoint("/api/boards"))
}
