package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Counts(t *testing.T) {
	r := New()
	r.MoveReceived()
	r.MoveReceived()
	r.SolveRecorded("PLL", 1500*time.Millisecond, 400*time.Millisecond)
	r.StoreFailed()
	r.SetConnected(true)

	if got := testutil.ToFloat64(r.moves); got != 2 {
		t.Errorf("moves = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.solves.WithLabelValues("PLL")); got != 1 {
		t.Errorf("solves = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.storeErrors); got != 1 {
		t.Errorf("store errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.connected); got != 1 {
		t.Errorf("connected = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.execution); got != 1 {
		t.Errorf("execution series = %d, want 1", got)
	}
}

func TestHandler_ServesMetrics(t *testing.T) {
	r := New()
	r.MoveReceived()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "cubetrainer_moves_total 1") {
		t.Errorf("metrics output missing move counter:\n%s", body)
	}
}
