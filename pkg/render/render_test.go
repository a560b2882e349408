package render

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"retailbrain-dashboard/pkg/models"
)

func defaultedDashboard() models.DashboardView {
	return models.DashboardView{
		TopProduct:  models.ProductLeader{Name: "--"},
		SlowProduct: models.ProductLeader{Name: "--"},
		TopProducts: []models.ProductRow{},
		Alerts:      []models.StockAlert{},
	}
}

func TestDashboardRendersPlaceholdersWhenEmpty(t *testing.T) {
	html, err := Dashboard(defaultedDashboard())
	assert.NoError(t, err)

	assert.Contains(t, html, "₹0")
	assert.Contains(t, html, "+0.0%")
	assert.Contains(t, html, "No product data available.")
	assert.Contains(t, html, "No critical stock alerts.")
	assert.Contains(t, html, "Best day: --")
	assert.NotContains(t, html, "undefined")
	assert.NotContains(t, html, "null")
}

func TestDashboardRendersAllWidgets(t *testing.T) {
	view := defaultedDashboard()
	view.TotalRevenue = 125000.4
	view.TotalUnits = 5400
	view.ProductCount = 12
	view.TrendPct = -8.3
	view.TopProduct = models.ProductLeader{Name: "Cola", UnitsSold: 900, Revenue: 45000}
	view.TopProducts = []models.ProductRow{
		{Name: "Cola", UnitsSold: 900, Revenue: 45000},
		{Name: "Chips", UnitsSold: 700, Revenue: 21000},
	}
	view.StockHealth = models.StockHealth{Critical: 2, Warning: 3, Healthy: 7}
	view.Alerts = []models.StockAlert{{Name: "Chips", Stock: 4}}
	view.BestDay = &models.BestDay{Date: "2026-01-02", Revenue: 9000}

	html, err := Dashboard(view)
	assert.NoError(t, err)

	assert.Contains(t, html, "₹125,000")
	assert.Contains(t, html, "5,400")
	assert.Contains(t, html, "-8.3%")
	assert.Contains(t, html, "text-danger")

	// Ranked list keeps backend order.
	colaAt := strings.Index(html, ">Cola<")
	chipsAt := strings.Index(html, ">Chips<")
	assert.Greater(t, colaAt, -1)
	assert.Greater(t, chipsAt, colaAt)

	assert.Contains(t, html, "4 units left")
	assert.Contains(t, html, "Best day: 2026-01-02 (₹9,000)")
}

func TestDashboardErrorReplacesRankedListOnly(t *testing.T) {
	view := defaultedDashboard()
	view.ErrorMessage = "No sales data uploaded yet"

	html, err := Dashboard(view)
	assert.NoError(t, err)

	assert.Contains(t, html, "No sales data uploaded yet")
	assert.NotContains(t, html, "No product data available.")
	// The remaining widgets still render their defaults.
	assert.Contains(t, html, "₹0")
	assert.Contains(t, html, "No critical stock alerts.")
	assert.Contains(t, html, "Best day: --")
}

func TestDashboardPositiveTrendStyling(t *testing.T) {
	view := defaultedDashboard()
	view.TrendPct = 3.07

	html, err := Dashboard(view)
	assert.NoError(t, err)
	assert.Contains(t, html, "+3.1%")
	assert.Contains(t, html, `text-success" id="salesTrend"`)
}

func TestForecastResultRendersSummaryAndTable(t *testing.T) {
	cover := 3.3
	view := models.ForecastView{
		Product:             "Cola",
		AvgDailyDemand:      14.2,
		CurrentStock:        40,
		ReorderPoint:        120,
		SuggestedOrderQty:   90,
		StockoutRisk:        "high",
		RiskStyle:           models.RiskStyleDanger,
		DaysOfCover:         &cover,
		TotalForecastDemand: 100,
		Model:               "Holt-Winters",
		MAE:                 2.4,
		ForecastDays:        7,
		LeadTimeDays:        7,
		ServiceLevelPct:     95,
		Daily: []models.ForecastDay{
			{Date: "2026-01-01", Forecast: 14, Lower: 10, Upper: 18},
			{Date: "2026-01-02", Forecast: 15, Lower: 11, Upper: 19},
		},
	}

	html, err := ForecastResult(view)
	assert.NoError(t, err)

	assert.Contains(t, html, "text-danger")
	assert.Contains(t, html, ">high</span>")
	assert.Contains(t, html, "3.3 days")
	assert.Contains(t, html, "Holt-Winters")
	assert.Contains(t, html, "Safety Level: 95%")
	assert.Equal(t, 2, strings.Count(html, "<tr><td>"))

	first := strings.Index(html, "2026-01-01")
	second := strings.Index(html, "2026-01-02")
	assert.Greater(t, first, -1)
	assert.Greater(t, second, first)
}

func TestForecastResultNullCoverShowsNA(t *testing.T) {
	html, err := ForecastResult(models.ForecastView{StockoutRisk: "unknown", RiskStyle: models.RiskStyleSuccess, Model: "--", ForecastDays: 7, LeadTimeDays: 7})
	assert.NoError(t, err)
	assert.Contains(t, html, "N/A")
	assert.NotContains(t, html, "0 days")
}

func TestForecastResultErrorSuppressesEverything(t *testing.T) {
	html, err := ForecastResult(models.ForecastView{ErrorMessage: "Product not found"})
	assert.NoError(t, err)
	assert.Contains(t, html, "Product not found")
	assert.NotContains(t, html, "Stockout Risk")
	assert.NotContains(t, html, "<table")
}

func TestTranscriptRendersTurnsInOrder(t *testing.T) {
	html, err := Transcript([]models.ChatMessage{
		{Role: "user", Text: "What sold best?"},
		{Role: "assistant", Text: "Cola."},
	})
	assert.NoError(t, err)

	userAt := strings.Index(html, "What sold best?")
	aiAt := strings.Index(html, "Cola.")
	assert.Greater(t, userAt, -1)
	assert.Greater(t, aiAt, userAt)
	assert.Contains(t, html, `chat user`)
	assert.Contains(t, html, `chat assistant`)
}

func TestTranscriptEmptyState(t *testing.T) {
	html, err := Transcript(nil)
	assert.NoError(t, err)
	assert.Contains(t, html, "Ask the copilot about your sales data.")
}

func TestTranscriptEscapesUserText(t *testing.T) {
	html, err := Transcript([]models.ChatMessage{{Role: "user", Text: "<script>alert(1)</script>"}})
	assert.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestProductOptions(t *testing.T) {
	html, err := ProductOptions([]string{"Cola", "Green Tea & Honey"})
	assert.NoError(t, err)
	assert.Contains(t, html, `<option value="Cola">`)
	assert.Contains(t, html, "Green Tea &amp; Honey")
}

func TestShellMarksActivePage(t *testing.T) {
	html, err := Shell("forecast", template.HTML("<p>body</p>"))
	assert.NoError(t, err)

	assert.Contains(t, html, `nav-link active" href="/pages/forecast"`)
	assert.NotContains(t, html, `nav-link active" href="/pages/upload"`)
	assert.Contains(t, html, "<p>body</p>")
}

func TestUploadPageShowsStatus(t *testing.T) {
	html, err := UploadPage(UploadPageData{Status: &models.UploadView{
		Message:      "File uploaded successfully",
		Rows:         120,
		FileName:     "sales.csv",
		RowsDetected: 120,
		Columns:      []string{"date", "product", "sales"},
	}})
	assert.NoError(t, err)

	assert.Contains(t, html, "File uploaded successfully")
	assert.Contains(t, html, "sales.csv: 120 data rows detected")
	assert.Contains(t, html, "date, product, sales")
}

func TestUploadPagePrompt(t *testing.T) {
	html, err := UploadPage(UploadPageData{Prompt: "Select a file"})
	assert.NoError(t, err)
	assert.Contains(t, html, "Select a file")
	assert.NotContains(t, html, "uploadStatus")
}
