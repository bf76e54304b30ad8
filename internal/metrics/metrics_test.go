package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIncBookinfoOp(t *testing.T) {
	before := testutil.ToFloat64(bookinfoOps.WithLabelValues("save", "ok"))
	IncBookinfoOp("save", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(bookinfoOps.WithLabelValues("save", "ok")))
}

func TestIncFormOutcome(t *testing.T) {
	before := testutil.ToFloat64(metaboxOutcomes.WithLabelValues("ignored"))
	IncFormOutcome("ignored")
	assert.Equal(t, before+1, testutil.ToFloat64(metaboxOutcomes.WithLabelValues("ignored")))
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "200"))
	ObserveHTTPRequest(http.MethodGet, http.StatusOK, 20*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "200")))
}

func TestHandler_ExposesRegisteredCollectors(t *testing.T) {
	Register()
	Register()
	IncBookinfoOp("get", "ok")

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "book_manager_bookinfo_operations_total")
}
