package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("test", reg)

	m.ObserveRequest("entity", OutcomeOK, 10*time.Millisecond)
	m.ObserveRequest("entity", OutcomeOK, 20*time.Millisecond)
	m.ObserveRequest("entity", OutcomeNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("entity", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("entity", OutcomeNotFound)))
}

func TestObserveMutationAndPage(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("test", reg)

	m.ObserveMutation("team", "add")
	m.ObservePage("category")
	m.ObservePage("category")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreMutations.WithLabelValues("team", "add")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PagesServed.WithLabelValues("category")))
}

func TestNilCatalogIsNoop(t *testing.T) {
	var m *Catalog
	assert.NotPanics(t, func() {
		m.ObserveRequest("list", OutcomeError, time.Second)
		m.ObserveHydration(3)
		m.ObserveMutation("favorites", "clear")
		m.ObservePage("default")
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("test", reg)
	m.ObserveHydration(20)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "test_catalog_hydration_batch_size"))
}
