package models

// Raw response payloads from the RetailBrain analytics backend. Every field
// the backend may omit is either a pointer or has a usable zero value; the
// services layer turns these into fully defaulted view models before anything
// is rendered. A non-empty Error field means an application-signaled failure
// delivered inside an HTTP 200 body.

// UploadResponse is the body of POST /upload.
type UploadResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
	Rows    int64  `json:"rows"`
}

// DashboardMetricsResponse is the body of GET /dashboard/metrics.
type DashboardMetricsResponse struct {
	Error       string               `json:"error,omitempty"`
	Overview    *OverviewPayload     `json:"overview"`
	Leaders     *LeadersPayload      `json:"leaders"`
	TopProducts []ProductRowPayload  `json:"top_products"`
	Inventory   *InventoryPayload    `json:"inventory"`
	Highlights  *HighlightsPayload   `json:"highlights"`
}

type OverviewPayload struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalUnitsSold int64   `json:"total_units_sold"`
	AvgUnitPrice   float64 `json:"avg_unit_price"`
	TotalProducts  int64   `json:"total_products"`
	SalesTrendPct  float64 `json:"sales_trend_pct"`
}

type LeadersPayload struct {
	TopProduct  *ProductRowPayload `json:"top_product"`
	SlowProduct *ProductRowPayload `json:"slow_product"`
}

type ProductRowPayload struct {
	Name      string  `json:"name"`
	UnitsSold int64   `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
	Stock     int64   `json:"stock,omitempty"`
}

type InventoryPayload struct {
	StockHealth *StockHealthPayload `json:"stock_health"`
	Alerts      []StockAlertPayload `json:"alerts"`
}

type StockHealthPayload struct {
	Critical int64 `json:"critical"`
	Warning  int64 `json:"warning"`
	Healthy  int64 `json:"healthy"`
}

type StockAlertPayload struct {
	Name  string `json:"name"`
	Stock int64  `json:"stock"`
}

type HighlightsPayload struct {
	BestDay *BestDayPayload `json:"best_day"`
}

type BestDayPayload struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// ForecastResponse is the body of GET /forecast.
type ForecastResponse struct {
	Error         string                   `json:"error,omitempty"`
	Product       string                   `json:"product"`
	Model         string                   `json:"model"`
	ForecastDays  int                      `json:"forecast_days"`
	LeadTimeDays  int                      `json:"lead_time_days"`
	ServiceLevel  float64                  `json:"service_level"`
	DailyForecast []ForecastDayPayload     `json:"daily_forecast"`
	Summary       *ForecastSummaryPayload  `json:"summary"`
	Accuracy      *ForecastAccuracyPayload `json:"accuracy"`
}

type ForecastDayPayload struct {
	Date     string `json:"date"`
	Forecast int64  `json:"forecast"`
	Lower    int64  `json:"lower"`
	Upper    int64  `json:"upper"`
}

// ForecastSummaryPayload keeps EstimatedDaysOfCover as a pointer: the backend
// sends an explicit null when no finite estimate exists, and that must stay
// distinct from a literal 0.
type ForecastSummaryPayload struct {
	AvgDailyDemand       float64  `json:"avg_daily_demand"`
	TotalForecastDemand  int64    `json:"total_forecast_demand"`
	CurrentStock         int64    `json:"current_stock"`
	ReorderPoint         int64    `json:"reorder_point"`
	SuggestedOrderQty    int64    `json:"suggested_order_qty"`
	EstimatedDaysOfCover *float64 `json:"estimated_days_of_cover"`
	StockoutRisk         string   `json:"stockout_risk"`
	SafetyStock          int64    `json:"safety_stock"`
	DemandStdDev         float64  `json:"demand_std_dev"`
}

type ForecastAccuracyPayload struct {
	MAE  float64 `json:"mae"`
	MAPE float64 `json:"mape"`
}

// ProductsResponse is the body of GET /products.
type ProductsResponse struct {
	Error    string   `json:"error,omitempty"`
	Products []string `json:"products"`
}

// CopilotResponse is the body of POST /copilot/chat.
type CopilotResponse struct {
	Error  string `json:"error,omitempty"`
	Answer string `json:"answer"`
}
