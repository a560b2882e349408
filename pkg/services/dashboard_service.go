package services

import (
	"context"
	"fmt"

	"retailbrain-dashboard/pkg/logger"
	"retailbrain-dashboard/pkg/models"
	"retailbrain-dashboard/pkg/retail"
	"retailbrain-dashboard/pkg/viewstate"
)

const dashboardController = "dashboard"

// placeholderName stands in for any product name the backend did not send.
const placeholderName = "--"

// DashboardService owns the dashboard view's fetch-and-normalize cycle.
type DashboardService struct {
	client *retail.Client
	state  *viewstate.State
	log    *logger.Logger
}

// NewDashboardService creates a dashboard controller.
func NewDashboardService(client *retail.Client, state *viewstate.State, log *logger.Logger) *DashboardService {
	return &DashboardService{client: client, state: state, log: log}
}

// Load fetches the aggregated metrics and replaces the dashboard snapshot
// wholesale. Transport failures leave the previous snapshot untouched. A
// response superseded by a newer request is normalized but not stored.
func (s *DashboardService) Load(ctx context.Context) (models.DashboardView, error) {
	gen := s.state.NextGeneration(dashboardController)

	resp, err := s.client.DashboardMetrics(ctx)
	if err != nil {
		return models.DashboardView{}, fmt.Errorf("load dashboard: %w", err)
	}

	view := normalizeDashboard(resp)
	if view.ErrorMessage != "" {
		// An application error only decorates the ranked list; the other
		// widgets keep whatever snapshot they already had.
		if prev, ok := s.state.Dashboard(); ok {
			prev.ErrorMessage = view.ErrorMessage
			view = prev
		}
	}
	if s.state.CurrentGeneration(dashboardController) == gen {
		s.state.SetDashboard(view)
	} else {
		s.log.Debug().Uint64("generation", gen).Msg("discarding stale dashboard response")
	}

	return view, nil
}

// normalizeDashboard projects the raw payload onto a fully defaulted view.
// An application-signaled error yields the defaults plus the message; Load
// swaps the defaults for the previous snapshot when one exists, so the error
// only ever displaces the ranked product list.
func normalizeDashboard(resp models.DashboardMetricsResponse) models.DashboardView {
	view := models.DashboardView{
		TopProduct:  models.ProductLeader{Name: placeholderName},
		SlowProduct: models.ProductLeader{Name: placeholderName},
		TopProducts: []models.ProductRow{},
		Alerts:      []models.StockAlert{},
	}

	if resp.Error != "" {
		view.ErrorMessage = resp.Error
		return view
	}

	if overview := resp.Overview; overview != nil {
		view.TotalRevenue = overview.TotalRevenue
		view.TotalUnits = overview.TotalUnitsSold
		view.ProductCount = overview.TotalProducts
		view.TrendPct = overview.SalesTrendPct
	}

	if leaders := resp.Leaders; leaders != nil {
		view.TopProduct = normalizeLeader(leaders.TopProduct)
		view.SlowProduct = normalizeLeader(leaders.SlowProduct)
	}

	for _, item := range resp.TopProducts {
		view.TopProducts = append(view.TopProducts, models.ProductRow{
			Name:      item.Name,
			UnitsSold: item.UnitsSold,
			Revenue:   item.Revenue,
		})
	}

	if inventory := resp.Inventory; inventory != nil {
		if health := inventory.StockHealth; health != nil {
			view.StockHealth = models.StockHealth{
				Critical: health.Critical,
				Warning:  health.Warning,
				Healthy:  health.Healthy,
			}
		}
		for _, alert := range inventory.Alerts {
			view.Alerts = append(view.Alerts, models.StockAlert{Name: alert.Name, Stock: alert.Stock})
		}
	}

	if highlights := resp.Highlights; highlights != nil && highlights.BestDay != nil {
		view.BestDay = &models.BestDay{
			Date:    highlights.BestDay.Date,
			Revenue: highlights.BestDay.Revenue,
		}
	}

	return view
}

func normalizeLeader(payload *models.ProductRowPayload) models.ProductLeader {
	if payload == nil {
		return models.ProductLeader{Name: placeholderName}
	}

	leader := models.ProductLeader{
		Name:      payload.Name,
		UnitsSold: payload.UnitsSold,
		Revenue:   payload.Revenue,
	}
	if leader.Name == "" {
		leader.Name = placeholderName
	}
	return leader
}
