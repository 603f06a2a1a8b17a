package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCompletionCountsOutcome(t *testing.T) {
	before := testutil.ToFloat64(completionsTotal.WithLabelValues("cover_letter", OutcomeOK))
	ObserveCompletion("cover_letter", OutcomeOK, 150*time.Millisecond)
	after := testutil.ToFloat64(completionsTotal.WithLabelValues("cover_letter", OutcomeOK))
	assert.Equal(t, before+1, after)
}

func TestIncFallback(t *testing.T) {
	before := testutil.ToFloat64(fallbacksTotal.WithLabelValues("critique", "unconfigured"))
	IncFallback("critique", "unconfigured")
	assert.Equal(t, before+1, testutil.ToFloat64(fallbacksTotal.WithLabelValues("critique", "unconfigured")))
}

func TestHandlerServesExposition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncFallback("job_links", "upstream_error")

	r := gin.New()
	r.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "fallback_results_total")
}
