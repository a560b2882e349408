package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"retailbrain-dashboard/pkg/logger"
	"retailbrain-dashboard/pkg/retail"
	"retailbrain-dashboard/pkg/viewstate"
)

func newNavigationFixture(t *testing.T) (*NavigationService, *viewstate.State, *atomic.Int64, *atomic.Int64, *httptest.Server) {
	t.Helper()

	var metricCalls, productCalls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboard/metrics":
			metricCalls.Add(1)
			w.Write([]byte(`{"overview":{"total_revenue":10,"total_units_sold":2,"total_products":1,"sales_trend_pct":0}}`))
		case "/products":
			productCalls.Add(1)
			w.Write([]byte(`{"products":["Cola"]}`))
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))

	state := viewstate.New()
	client := retail.NewClient(ts.URL, 2*time.Second)
	dashboard := NewDashboardService(client, state, logger.NewNop())
	forecast := NewForecastService(client, state, logger.NewNop())
	nav := NewNavigationService(state, dashboard, forecast, logger.NewNop())
	return nav, state, &metricCalls, &productCalls, ts
}

func TestActivateRejectsUnknownPage(t *testing.T) {
	nav, state, metricCalls, productCalls, ts := newNavigationFixture(t)
	defer ts.Close()

	_, err := nav.Activate(context.Background(), "settings")
	assert.Error(t, err)
	assert.Equal(t, viewstate.Page(""), state.ActivePage())
	assert.Equal(t, int64(0), metricCalls.Load())
	assert.Equal(t, int64(0), productCalls.Load())
}

func TestActivateDashboardLoadsMetrics(t *testing.T) {
	nav, state, metricCalls, _, ts := newNavigationFixture(t)
	defer ts.Close()

	page, err := nav.Activate(context.Background(), "dashboard")
	assert.NoError(t, err)
	assert.Equal(t, viewstate.PageDashboard, page)
	assert.Equal(t, viewstate.PageDashboard, state.ActivePage())
	assert.Equal(t, int64(1), metricCalls.Load())

	_, ok := state.Dashboard()
	assert.True(t, ok)
}

func TestActivateForecastLoadsCatalog(t *testing.T) {
	nav, state, _, productCalls, ts := newNavigationFixture(t)
	defer ts.Close()

	_, err := nav.Activate(context.Background(), "forecast")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), productCalls.Load())
	assert.Equal(t, []string{"Cola"}, state.Catalog())
}

func TestReactivatingRefreshesAgain(t *testing.T) {
	nav, _, metricCalls, _, ts := newNavigationFixture(t)
	defer ts.Close()

	nav.Activate(context.Background(), "dashboard")
	nav.Activate(context.Background(), "dashboard")
	assert.Equal(t, int64(2), metricCalls.Load())
}

func TestActivateSurvivesFailedRefresh(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	state := viewstate.New()
	client := retail.NewClient(ts.URL, time.Second)
	dashboard := NewDashboardService(client, state, logger.NewNop())
	forecast := NewForecastService(client, state, logger.NewNop())
	nav := NewNavigationService(state, dashboard, forecast, logger.NewNop())
	ts.Close()

	page, err := nav.Activate(context.Background(), "dashboard")
	assert.NoError(t, err)
	assert.Equal(t, viewstate.PageDashboard, page)
	assert.Equal(t, viewstate.PageDashboard, state.ActivePage())
}
