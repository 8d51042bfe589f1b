package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncLoad(ResultSuccess)
	pr.IncLoad(ResultSuccess)
	pr.IncLoad(ResultFailed)
	pr.ObserveLoadDuration(20 * time.Millisecond)
	pr.IncHeaderCreated()
	pr.IncValidationFailure()
	pr.IncConfigWrite("yaml")

	assert.InDelta(t, 2, testutil.ToFloat64(pr.loads.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.loads.WithLabelValues("failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.headerCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.validationFailures), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.configWrites.WithLabelValues("yaml")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncLoad(ResultSuccess)
		pr.ObserveLoadDuration(time.Second)
		pr.IncHeaderCreated()
		pr.IncValidationFailure()
		pr.IncConfigWrite("toml")
	})
}

func TestHTTPHandlerServesRegistry(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncHeaderCreated()

	rr := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "siteconf_header_created_total 1"))
}
