package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRosterOperation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RosterOperation("signup", nil)
	m.RosterOperation("signup", nil)
	m.RosterOperation("signup", errors.New("boom"))

	require.Equal(t, 2.0, testutil.ToFloat64(m.rosterOps.WithLabelValues("signup", OutcomeSuccess)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.rosterOps.WithLabelValues("signup", OutcomeFailure)))
}

func TestSetParticipants(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.SetParticipants("Chess Club", 3)
	require.Equal(t, 3.0, testutil.ToFloat64(m.participants.WithLabelValues("Chess Club")))
}

func TestHTTPRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.HTTPRequest(http.MethodGet, "/activities", http.StatusOK, 10*time.Millisecond)
	require.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/activities", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.RosterOperation("signup", nil)
		m.SetParticipants("Chess Club", 1)
		m.HTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}
