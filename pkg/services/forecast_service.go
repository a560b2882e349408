package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"retailbrain-dashboard/pkg/logger"
	"retailbrain-dashboard/pkg/models"
	"retailbrain-dashboard/pkg/retail"
	"retailbrain-dashboard/pkg/viewstate"
)

const forecastController = "forecast"

// ErrProductRequired aborts a forecast request before any network call.
var ErrProductRequired = errors.New("product name is required")

// riskLabelUnknown is shown when the backend sends no stockout risk.
const riskLabelUnknown = "unknown"

// ForecastService owns the forecast explorer: the forecast fetch itself and
// the product autocomplete catalog.
type ForecastService struct {
	client *retail.Client
	state  *viewstate.State
	log    *logger.Logger
}

// NewForecastService creates a forecast controller.
func NewForecastService(client *retail.Client, state *viewstate.State, log *logger.Logger) *ForecastService {
	return &ForecastService{client: client, state: state, log: log}
}

// ForecastInput carries the four form fields. Only Product is validated
// locally; the remaining values are forwarded as-is for the backend to
// coerce.
type ForecastInput struct {
	Product      string
	Days         string
	LeadTimeDays string
	ServiceLevel string
}

// Load validates the input, fetches one forecast and replaces the forecast
// snapshot wholesale. A response superseded by a newer request is discarded.
func (s *ForecastService) Load(ctx context.Context, input ForecastInput) (models.ForecastView, error) {
	product := strings.TrimSpace(input.Product)
	if product == "" {
		return models.ForecastView{}, ErrProductRequired
	}

	gen := s.state.NextGeneration(forecastController)

	resp, err := s.client.Forecast(ctx, retail.ForecastParams{
		Product:      product,
		Days:         input.Days,
		LeadTimeDays: input.LeadTimeDays,
		ServiceLevel: input.ServiceLevel,
	})
	if err != nil {
		return models.ForecastView{}, fmt.Errorf("load forecast: %w", err)
	}

	view := normalizeForecast(resp)
	if s.state.CurrentGeneration(forecastController) == gen {
		s.state.SetForecast(view)
	} else {
		s.log.Debug().Uint64("generation", gen).Msg("discarding stale forecast response")
	}

	return view, nil
}

// LoadProductOptions replaces the autocomplete catalog wholesale. Transport
// failures are logged and swallowed: the autocomplete is a non-critical
// enhancement and must never block the page.
func (s *ForecastService) LoadProductOptions(ctx context.Context) {
	resp, err := s.client.Products(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("unable to load product list")
		return
	}

	products := resp.Products
	if products == nil {
		products = []string{}
	}
	s.state.SetCatalog(products)
}

// normalizeForecast projects the raw payload onto a fully defaulted view. An
// application-signaled error suppresses the entire result area.
func normalizeForecast(resp models.ForecastResponse) models.ForecastView {
	if resp.Error != "" {
		return models.ForecastView{ErrorMessage: resp.Error}
	}

	view := models.ForecastView{
		Product:         resp.Product,
		Model:           resp.Model,
		ForecastDays:    resp.ForecastDays,
		LeadTimeDays:    resp.LeadTimeDays,
		ServiceLevelPct: int(math.Round(resp.ServiceLevel * 100)),
		StockoutRisk:    riskLabelUnknown,
		RiskStyle:       models.RiskStyleSuccess,
		Daily:           []models.ForecastDay{},
	}
	if view.Model == "" {
		view.Model = placeholderName
	}

	if summary := resp.Summary; summary != nil {
		view.AvgDailyDemand = summary.AvgDailyDemand
		view.CurrentStock = summary.CurrentStock
		view.ReorderPoint = summary.ReorderPoint
		view.SuggestedOrderQty = summary.SuggestedOrderQty
		view.TotalForecastDemand = summary.TotalForecastDemand
		if summary.StockoutRisk != "" {
			view.StockoutRisk = summary.StockoutRisk
		}
		if summary.EstimatedDaysOfCover != nil {
			cover := *summary.EstimatedDaysOfCover
			view.DaysOfCover = &cover
		}
	}

	switch view.StockoutRisk {
	case "high":
		view.RiskStyle = models.RiskStyleDanger
	case "medium":
		view.RiskStyle = models.RiskStyleWarning
	default:
		view.RiskStyle = models.RiskStyleSuccess
	}

	if accuracy := resp.Accuracy; accuracy != nil {
		view.MAE = accuracy.MAE
	}

	// Horizon rows stay in the order received; the backend emits them
	// chronologically and this layer does not re-sort.
	for _, day := range resp.DailyForecast {
		view.Daily = append(view.Daily, models.ForecastDay{
			Date:     day.Date,
			Forecast: day.Forecast,
			Lower:    day.Lower,
			Upper:    day.Upper,
		})
	}

	return view
}
