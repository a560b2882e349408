package services

import (
	"context"
	"fmt"

	"retailbrain-dashboard/pkg/logger"
	"retailbrain-dashboard/pkg/viewstate"
)

// NavigationService tracks which page is visible and runs each page's
// designated refresh action on activation.
type NavigationService struct {
	state     *viewstate.State
	dashboard *DashboardService
	forecast  *ForecastService
	log       *logger.Logger
}

// NewNavigationService creates the navigation controller.
func NewNavigationService(state *viewstate.State, dashboard *DashboardService, forecast *ForecastService, log *logger.Logger) *NavigationService {
	return &NavigationService{state: state, dashboard: dashboard, forecast: forecast, log: log}
}

// Activate marks the page active and runs its refresh action: dashboard
// reloads the metrics, forecast reloads the product autocomplete.
// Re-activating the current page runs the refresh again; the loads are
// idempotent reads, so at-least-once semantics are fine. A failed refresh is
// logged and the page still activates with whatever snapshot it had.
func (n *NavigationService) Activate(ctx context.Context, id string) (viewstate.Page, error) {
	page, ok := viewstate.ParsePage(id)
	if !ok {
		return "", fmt.Errorf("unknown page %q", id)
	}

	n.state.SetActivePage(page)

	switch page {
	case viewstate.PageDashboard:
		if _, err := n.dashboard.Load(ctx); err != nil {
			n.log.Warn().Err(err).Msg("dashboard refresh failed")
		}
	case viewstate.PageForecast:
		n.forecast.LoadProductOptions(ctx)
	}

	return page, nil
}
