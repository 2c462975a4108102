package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InstancesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	a.RecordOrderPlaced()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.OrdersPlaced))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.OrdersPlaced))
}

func TestMetrics_Record(t *testing.T) {
	m := New()

	m.RecordGate(GateAuthenticated)
	m.RecordGate(GateMissingCredential)
	m.RecordGate(GateMissingCredential)
	m.RecordLogin(LoginInvalidCredentials)
	m.ObserveRequest(http.MethodGet, "/menus", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthGateTotal.WithLabelValues(GateAuthenticated)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthGateTotal.WithLabelValues(GateMissingCredential)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginsTotal.WithLabelValues(LoginInvalidCredentials)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/menus", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordOrderPlaced()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "food_order_orders_placed_total 1"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestMetrics_RegistryGathersOwnCollectors(t *testing.T) {
	m := New()
	m.RecordLogin(LoginSuccess)

	count, err := testutil.GatherAndCount(m.Registry(), "food_order_logins_total", "food_order_orders_placed_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
