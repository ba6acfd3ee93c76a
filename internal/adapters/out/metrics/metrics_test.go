package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/adapters/out/metrics"
	"storefront/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := metrics.NewTransitionCounter(reg)

	counter.ObserveTransition(order.Processing, order.PaymentApproved)
	counter.ObserveTransition(order.Processing, order.PaymentApproved)
	counter.ObserveTransition(order.PaymentApproved, order.InvoiceIssued)

	count, err := testutil.GatherAndCount(reg, "storefront_order_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	server := metrics.NewServerMetrics(reg)
	outbox := metrics.NewOutboxMetrics(reg)
	server.Requests.WithLabelValues("/health", "200").Inc()
	outbox.Published.Inc()

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `storefront_http_requests_total{handler="/health",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "storefront_outbox_published_total 1")
}

func TestOutboxMetrics_ObserveRelay(t *testing.T) {
	reg := prometheus.NewRegistry()
	outbox := metrics.NewOutboxMetrics(reg)

	outbox.ObserveRelay(3, 0)
	outbox.ObserveRelay(1, 2)

	assert.InDelta(t, 4.0, testutil.ToFloat64(outbox.Published), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(outbox.Failed), 0)
}
