package render

import (
	"fmt"
	"html/template"
	"strings"

	"retailbrain-dashboard/pkg/models"
)

// The render layer is a set of pure functions from view models to HTML
// strings. Nothing here fetches data or touches shared state, so every
// fragment can be asserted on in tests without a browser.

var funcMap = template.FuncMap{
	"currency":  FormatCurrency,
	"number":    formatAnyNumber,
	// Marked as trusted HTML so html/template's text escaper does not turn
	// the leading "+" into "&#43;"; the value is only digits, sign, dot, "%".
	"signedPct": func(value float64) template.HTML {
		return template.HTML(FormatSignedPercent(value))
	},
	"cover":     FormatDaysOfCover,
}

var templates = template.Must(template.New("views").Funcs(funcMap).Parse(viewTemplates))

// formatAnyNumber adapts FormatNumber for template pipelines, which hand over
// whichever numeric type the view model declares.
func formatAnyNumber(value any) string {
	switch n := value.(type) {
	case int:
		return FormatNumber(float64(n))
	case int64:
		return FormatNumber(float64(n))
	case float64:
		return FormatNumber(n)
	default:
		return fmt.Sprint(value)
	}
}

func execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return sb.String(), nil
}

// PageData feeds the outer shell.
type PageData struct {
	Active  string
	Content template.HTML
}

// UploadPageData feeds the upload view.
type UploadPageData struct {
	Prompt  string
	Failure string
	Status  *models.UploadView
}

// ForecastPageData feeds the forecast explorer view.
type ForecastPageData struct {
	Prompt  string
	Failure string
	Options []string
	Result  *models.ForecastView
}

// CopilotPageData feeds the copilot view.
type CopilotPageData struct {
	Transcript []models.ChatMessage
}

// DashboardPageData feeds the dashboard view.
type DashboardPageData struct {
	Failure string
	View    models.DashboardView
}

// Shell wraps rendered page content in the navigation chrome.
func Shell(active string, content template.HTML) (string, error) {
	return execute("shell", PageData{Active: active, Content: content})
}

// UploadPage renders the upload form plus the last upload outcome.
func UploadPage(data UploadPageData) (string, error) {
	return execute("uploadPage", data)
}

// DashboardPage renders all dashboard widgets from one normalized snapshot.
func DashboardPage(data DashboardPageData) (string, error) {
	return execute("dashboardPage", data)
}

// ForecastPage renders the forecast form, autocomplete options and result.
func ForecastPage(data ForecastPageData) (string, error) {
	return execute("forecastPage", data)
}

// CopilotPage renders the transcript and the chat input.
func CopilotPage(data CopilotPageData) (string, error) {
	return execute("copilotPage", data)
}

// Transcript renders only the conversation fragment.
func Transcript(messages []models.ChatMessage) (string, error) {
	return execute("transcript", messages)
}

// ProductOptions renders the autocomplete datalist options.
func ProductOptions(products []string) (string, error) {
	return execute("productOptions", products)
}

// ForecastResult renders only the forecast result fragment.
func ForecastResult(view models.ForecastView) (string, error) {
	return execute("forecastResult", view)
}

// Dashboard renders only the dashboard widgets fragment.
func Dashboard(view models.DashboardView) (string, error) {
	return execute("dashboard", view)
}

const viewTemplates = `
{{define "shell"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>RetailBrain</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
</head>
<body>
<nav class="navbar navbar-expand navbar-dark bg-dark px-3">
<span class="navbar-brand">RetailBrain</span>
<div class="navbar-nav">
<a class="nav-link{{if eq .Active "upload"}} active{{end}}" href="/pages/upload">Upload</a>
<a class="nav-link{{if eq .Active "dashboard"}} active{{end}}" href="/pages/dashboard">Dashboard</a>
<a class="nav-link{{if eq .Active "forecast"}} active{{end}}" href="/pages/forecast">Forecast</a>
<a class="nav-link{{if eq .Active "copilot"}} active{{end}}" href="/pages/copilot">Copilot</a>
</div>
</nav>
<main class="container py-4">
{{.Content}}
</main>
</body>
</html>{{end}}

{{define "uploadPage"}}<h4>Upload Sales Data</h4>
<form method="post" action="/upload" enctype="multipart/form-data" class="my-3">
<input class="form-control" type="file" name="file" accept=".csv,.xlsx">
<button class="btn btn-primary mt-2" type="submit">Upload</button>
</form>
{{if .Prompt}}<div class="alert alert-warning">{{.Prompt}}</div>{{end}}
{{if .Failure}}<div class="alert alert-danger">{{.Failure}}</div>{{end}}
{{if .Status}}{{template "uploadStatus" .Status}}{{end}}{{end}}

{{define "uploadStatus"}}<div id="uploadStatus">
<div class="alert alert-info mt-3"><strong>Message:</strong> {{.Message}}</div>
<div class="alert alert-success"><strong>Rows Processed:</strong> {{.Rows}}</div>
<small class="text-muted">{{.FileName}}: {{number .RowsDetected}} data rows detected, columns: {{range $i, $c := .Columns}}{{if $i}}, {{end}}{{$c}}{{end}}</small>
</div>{{end}}

{{define "dashboardPage"}}<h4>Dashboard</h4>
{{if .Failure}}<div class="alert alert-danger">{{.Failure}}</div>{{end}}
{{template "dashboard" .View}}{{end}}

{{define "dashboard"}}<div class="row g-3">
<div class="col-md-3"><div class="card p-3"><small class="text-muted">Total Revenue</small><div class="fw-bold" id="totalRevenue">{{currency .TotalRevenue}}</div></div></div>
<div class="col-md-3"><div class="card p-3"><small class="text-muted">Units Sold</small><div class="fw-bold" id="totalUnits">{{number .TotalUnits}}</div></div></div>
<div class="col-md-3"><div class="card p-3"><small class="text-muted">Products</small><div class="fw-bold" id="productCount">{{number .ProductCount}}</div></div></div>
<div class="col-md-3"><div class="card p-3"><small class="text-muted">Sales Trend</small><div class="fw-bold {{if ge .TrendPct 0.0}}text-success{{else}}text-danger{{end}}" id="salesTrend">{{signedPct .TrendPct}}</div></div></div>
</div>
<div class="row g-3 mt-1">
<div class="col-md-6"><div class="card p-3">
<small class="text-muted">Top Product</small>
<div class="fw-bold" id="topProduct">{{.TopProduct.Name}}</div>
<div class="text-muted" id="topProductMeta">Units: {{number .TopProduct.UnitsSold}} | Revenue: {{currency .TopProduct.Revenue}}</div>
</div></div>
<div class="col-md-6"><div class="card p-3">
<small class="text-muted">Slow Mover</small>
<div class="fw-bold" id="slowMover">{{.SlowProduct.Name}}</div>
<div class="text-muted" id="slowMoverMeta">Units: {{number .SlowProduct.UnitsSold}} | Revenue: {{currency .SlowProduct.Revenue}}</div>
</div></div>
</div>
<div class="card p-3 mt-3" id="topProductsList">
<h6>Top Products</h6>
{{if .ErrorMessage}}<div class="metric-item"><span class="metric-item-title text-danger">{{.ErrorMessage}}</span></div>{{else}}{{range .TopProducts}}<div class="metric-item">
<div><div class="metric-item-title">{{.Name}}</div><div class="metric-item-meta">{{number .UnitsSold}} units sold</div></div>
<div class="metric-item-meta">{{currency .Revenue}}</div>
</div>{{else}}<div class="metric-item"><span class="metric-item-meta">No product data available.</span></div>{{end}}{{end}}
</div>
<div class="row g-3 mt-1">
<div class="col-md-6"><div class="card p-3">
<h6>Stock Health</h6>
<div>Critical: <span id="criticalStockCount">{{.StockHealth.Critical}}</span></div>
<div>Warning: <span id="warningStockCount">{{.StockHealth.Warning}}</span></div>
<div>Healthy: <span id="healthyStockCount">{{.StockHealth.Healthy}}</span></div>
</div></div>
<div class="col-md-6"><div class="card p-3" id="lowStockList">
<h6>Low Stock Alerts</h6>
{{range .Alerts}}<div class="metric-item"><span class="metric-item-title">{{.Name}}</span><span class="metric-item-meta">{{.Stock}} units left</span></div>{{else}}<div class="metric-item"><span class="metric-item-meta">No critical stock alerts.</span></div>{{end}}
</div></div>
</div>
<div class="card p-3 mt-3" id="bestDay">{{if .BestDay}}Best day: {{.BestDay.Date}} ({{currency .BestDay.Revenue}}){{else}}Best day: --{{end}}</div>{{end}}

{{define "forecastPage"}}<h4>Demand Forecast</h4>
<form method="post" action="/forecast" class="row g-2 my-3">
<div class="col-md-4">
<input class="form-control" name="product" list="productList" placeholder="Product name">
<datalist id="productList">{{template "productOptions" .Options}}</datalist>
</div>
<div class="col-md-2"><input class="form-control" name="days" value="7"></div>
<div class="col-md-2"><input class="form-control" name="lead_time_days" value="7"></div>
<div class="col-md-2"><input class="form-control" name="service_level" value="0.95"></div>
<div class="col-md-2"><button class="btn btn-primary w-100" type="submit">Get Forecast</button></div>
</form>
{{if .Prompt}}<div class="alert alert-warning">{{.Prompt}}</div>{{end}}
{{if .Failure}}<div class="alert alert-danger">{{.Failure}}</div>{{end}}
<div id="forecastResult">{{if .Result}}{{template "forecastResult" .Result}}{{end}}</div>{{end}}

{{define "productOptions"}}{{range .}}<option value="{{.}}"></option>
{{end}}{{end}}

{{define "forecastResult"}}{{if .ErrorMessage}}<p class="text-danger">{{.ErrorMessage}}</p>{{else}}<div class="forecast-summary mb-3">
<div class="row g-3">
<div class="col-md-3 col-6"><small class="text-muted">Average Daily Sales</small><div class="fw-bold">{{number .AvgDailyDemand}}</div></div>
<div class="col-md-3 col-6"><small class="text-muted">Current Stock</small><div class="fw-bold">{{number .CurrentStock}}</div></div>
<div class="col-md-3 col-6"><small class="text-muted">When To Reorder (units)</small><div class="fw-bold">{{number .ReorderPoint}}</div></div>
<div class="col-md-3 col-6"><small class="text-muted">Suggested Order (units)</small><div class="fw-bold">{{number .SuggestedOrderQty}}</div></div>
</div>
</div>
<div class="alert alert-light border mb-3">
<div><strong>Stockout Risk:</strong> <span class="text-{{.RiskStyle}} text-capitalize">{{.StockoutRisk}}</span></div>
<div><strong>Days Until Stock Runs Out:</strong> {{cover .DaysOfCover}}</div>
<div><strong>Expected Sales (next {{.ForecastDays}} days):</strong> {{number .TotalForecastDemand}}</div>
<div><strong>Method Used:</strong> {{.Model}} | <strong>Typical Error:</strong> {{number .MAE}} units</div>
</div>
<table class="table table-sm table-bordered">
<thead class="bg-light"><tr><th>Date</th><th>Forecast</th><th>Low Estimate</th><th>High Estimate</th></tr></thead>
<tbody>
{{range .Daily}}<tr><td><strong>{{.Date}}</strong></td><td><strong>{{number .Forecast}}</strong></td><td>{{number .Lower}}</td><td>{{number .Upper}}</td></tr>
{{end}}</tbody>
</table>
<small class="text-muted">Safety Level: {{.ServiceLevelPct}}% | Supplier Delivery Days: {{.LeadTimeDays}} days</small>{{end}}{{end}}

{{define "copilotPage"}}<h4>AI Copilot</h4>
<div class="card p-3 mb-3" id="chatBox">
{{template "transcript" .Transcript}}
</div>
<form method="post" action="/copilot/chat" class="d-flex gap-2">
<input class="form-control" name="query" id="chatInput" placeholder="Ask a question" autocomplete="off" autofocus>
<button class="btn btn-primary" type="submit">Send</button>
</form>{{end}}

{{define "transcript"}}{{range .}}<div class="chat {{.Role}}">
<div class="avatar">{{if eq .Role "user"}}You{{else}}AI{{end}}</div>
<div class="bubble">{{.Text}}</div>
</div>
{{else}}<div class="text-muted">Ask the copilot about your sales data.</div>
{{end}}{{end}}
`
