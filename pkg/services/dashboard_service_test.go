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
	"retailbrain-dashboard/pkg/models"
	"retailbrain-dashboard/pkg/retail"
	"retailbrain-dashboard/pkg/viewstate"
)

func newDashboardFixture(handler http.HandlerFunc) (*DashboardService, *viewstate.State, *httptest.Server) {
	ts := httptest.NewServer(handler)
	state := viewstate.New()
	client := retail.NewClient(ts.URL, 2*time.Second)
	return NewDashboardService(client, state, logger.NewNop()), state, ts
}

func TestNormalizeDashboardDefaultsForMissingSections(t *testing.T) {
	view := normalizeDashboard(models.DashboardMetricsResponse{})

	assert.Equal(t, 0.0, view.TotalRevenue)
	assert.Equal(t, int64(0), view.TotalUnits)
	assert.Equal(t, int64(0), view.ProductCount)
	assert.Equal(t, 0.0, view.TrendPct)
	assert.Equal(t, "--", view.TopProduct.Name)
	assert.Equal(t, "--", view.SlowProduct.Name)
	assert.NotNil(t, view.TopProducts)
	assert.Empty(t, view.TopProducts)
	assert.Equal(t, models.StockHealth{}, view.StockHealth)
	assert.NotNil(t, view.Alerts)
	assert.Empty(t, view.Alerts)
	assert.Nil(t, view.BestDay)
	assert.Empty(t, view.ErrorMessage)
}

func TestNormalizeDashboardFullPayload(t *testing.T) {
	resp := models.DashboardMetricsResponse{
		Overview: &models.OverviewPayload{
			TotalRevenue:   10500.25,
			TotalUnitsSold: 320,
			TotalProducts:  12,
			SalesTrendPct:  -8.4,
		},
		Leaders: &models.LeadersPayload{
			TopProduct:  &models.ProductRowPayload{Name: "Cola", UnitsSold: 90, Revenue: 4200},
			SlowProduct: &models.ProductRowPayload{Name: "Soap", UnitsSold: 2, Revenue: 30},
		},
		TopProducts: []models.ProductRowPayload{
			{Name: "Cola", UnitsSold: 90, Revenue: 4200},
			{Name: "Chips", UnitsSold: 60, Revenue: 1800},
		},
		Inventory: &models.InventoryPayload{
			StockHealth: &models.StockHealthPayload{Critical: 2, Warning: 3, Healthy: 7},
			Alerts:      []models.StockAlertPayload{{Name: "Soap", Stock: 4}},
		},
		Highlights: &models.HighlightsPayload{
			BestDay: &models.BestDayPayload{Date: "2026-03-14", Revenue: 900},
		},
	}

	view := normalizeDashboard(resp)

	assert.Equal(t, 10500.25, view.TotalRevenue)
	assert.Equal(t, int64(320), view.TotalUnits)
	assert.Equal(t, "Cola", view.TopProduct.Name)
	assert.Equal(t, "Soap", view.SlowProduct.Name)
	assert.Len(t, view.TopProducts, 2)
	assert.Equal(t, "Chips", view.TopProducts[1].Name)
	assert.Equal(t, int64(2), view.StockHealth.Critical)
	assert.Len(t, view.Alerts, 1)
	if assert.NotNil(t, view.BestDay) {
		assert.Equal(t, "2026-03-14", view.BestDay.Date)
	}
}

func TestNormalizeDashboardLeaderWithoutName(t *testing.T) {
	resp := models.DashboardMetricsResponse{
		Leaders: &models.LeadersPayload{
			TopProduct: &models.ProductRowPayload{UnitsSold: 5},
		},
	}

	view := normalizeDashboard(resp)
	assert.Equal(t, "--", view.TopProduct.Name)
	assert.Equal(t, int64(5), view.TopProduct.UnitsSold)
}

func TestLoadReplacesSnapshot(t *testing.T) {
	svc, state, ts := newDashboardFixture(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"overview":{"total_revenue":500}}`))
	})
	defer ts.Close()

	view, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 500.0, view.TotalRevenue)

	stored, ok := state.Dashboard()
	assert.True(t, ok)
	assert.Equal(t, view, stored)
}

func TestLoadWithErrorFieldKeepsOtherWidgetDefaults(t *testing.T) {
	svc, state, ts := newDashboardFixture(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"No data uploaded"}`))
	})
	defer ts.Close()

	view, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "No data uploaded", view.ErrorMessage)
	assert.Equal(t, "--", view.TopProduct.Name)
	assert.Empty(t, view.Alerts)

	_, ok := state.Dashboard()
	assert.True(t, ok)
}

func TestLoadWithErrorFieldKeepsPreviousWidgetValues(t *testing.T) {
	var calls atomic.Int64
	svc, state, ts := newDashboardFixture(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Write([]byte(`{"overview":{"total_revenue":500,"total_units_sold":20},"leaders":{"top_product":{"name":"Cola","units_sold":20,"revenue":500}}}`))
			return
		}
		w.Write([]byte(`{"error":"No data uploaded"}`))
	})
	defer ts.Close()

	_, err := svc.Load(context.Background())
	assert.NoError(t, err)

	view, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "No data uploaded", view.ErrorMessage)
	assert.Equal(t, 500.0, view.TotalRevenue)
	assert.Equal(t, "Cola", view.TopProduct.Name)

	stored, ok := state.Dashboard()
	assert.True(t, ok)
	assert.Equal(t, view, stored)
}

func TestStaleDashboardResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls atomic.Int64
	svc, state, ts := newDashboardFixture(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			w.Write([]byte(`{"overview":{"total_revenue":100}}`))
			return
		}
		w.Write([]byte(`{"overview":{"total_revenue":200}}`))
	})
	defer ts.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Load(context.Background())
	}()
	<-started

	// A second request is issued while the first response is still held open.
	_, err := svc.Load(context.Background())
	assert.NoError(t, err)

	close(release)
	<-done

	stored, ok := state.Dashboard()
	assert.True(t, ok)
	assert.Equal(t, 200.0, stored.TotalRevenue)
}

func TestLoadTransportFailureLeavesPreviousSnapshot(t *testing.T) {
	svc, state, ts := newDashboardFixture(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"overview":{"total_revenue":500}}`))
	})

	_, err := svc.Load(context.Background())
	assert.NoError(t, err)

	ts.Close()
	_, err = svc.Load(context.Background())
	assert.Error(t, err)

	stored, ok := state.Dashboard()
	assert.True(t, ok)
	assert.Equal(t, 500.0, stored.TotalRevenue)
}
