package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guardian/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Counters(t *testing.T) {
	p := New()

	p.AlertReceived()
	p.AlertReceived()
	p.AlertSuppressed()
	p.AlertEscalated()
	p.DeliveryOutcome("push", entity.PathOutcome{
		Status:        entity.DeliveryDelivered,
		Via:           entity.ViaNative,
		Sent:          3,
		Failed:        1,
		InvalidTokens: []string{"stale"},
	})
	p.DeliveryOutcome("local", entity.PathOutcome{Status: entity.DeliverySkipped})

	assert.InDelta(t, 2, testutil.ToFloat64(p.received), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.suppressed), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.escalated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.deliveries.WithLabelValues("push", "delivered", "native")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.deliveries.WithLabelValues("local", "skipped", "none")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(p.tokens.WithLabelValues("sent")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.tokens.WithLabelValues("invalid")), 0)
}

func TestPipeline_Handler(t *testing.T) {
	p := New()
	p.AlertDispatched(entity.PriorityCritical, 120*time.Millisecond)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `guardian_alert_dispatch_seconds_count{priority="critical"} 1`)
	assert.Contains(t, rec.Body.String(), "guardian_alerts_received_total 0")
}

func TestPipeline_WatchDB(t *testing.T) {
	p := New()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, p.WatchDB(db, "guardian"))
	assert.Error(t, p.WatchDB(db, "guardian"), "same collector registered twice")

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `go_sql_open_connections{db_name="guardian"}`)
}
