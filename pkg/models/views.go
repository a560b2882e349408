package models

// View models are the fully defaulted projections the render layer consumes.
// Every field has a value safe to display: absent backend objects collapse to
// zeros, absent names to "--", and only DaysOfCover keeps a nil to preserve
// the backend's null-vs-zero distinction.

// Risk style classes assigned during forecast normalization.
const (
	RiskStyleDanger  = "danger"
	RiskStyleWarning = "warning"
	RiskStyleSuccess = "success"
)

// UploadView is the rendered outcome of the last upload attempt.
type UploadView struct {
	Message      string
	Rows         int64
	FileName     string
	RowsDetected int64
	Columns      []string
}

// DashboardView is the normalized dashboard snapshot.
type DashboardView struct {
	ErrorMessage  string // application-signaled; replaces the ranked list only
	TotalRevenue  float64
	TotalUnits    int64
	ProductCount  int64
	TrendPct      float64
	TopProduct    ProductLeader
	SlowProduct   ProductLeader
	TopProducts   []ProductRow
	StockHealth   StockHealth
	Alerts        []StockAlert
	BestDay       *BestDay
}

type ProductLeader struct {
	Name      string
	UnitsSold int64
	Revenue   float64
}

type ProductRow struct {
	Name      string
	UnitsSold int64
	Revenue   float64
}

type StockHealth struct {
	Critical int64
	Warning  int64
	Healthy  int64
}

type StockAlert struct {
	Name  string
	Stock int64
}

type BestDay struct {
	Date    string
	Revenue float64
}

// ForecastView is the normalized forecast result.
type ForecastView struct {
	ErrorMessage        string // application-signaled; suppresses the full result
	Product             string
	AvgDailyDemand      float64
	CurrentStock        int64
	ReorderPoint        int64
	SuggestedOrderQty   int64
	StockoutRisk        string // qualitative label, "unknown" when absent
	RiskStyle           string // danger, warning or success
	DaysOfCover         *float64
	TotalForecastDemand int64
	Model               string
	MAE                 float64
	ForecastDays        int
	LeadTimeDays        int
	ServiceLevelPct     int // fraction x 100, rounded
	Daily               []ForecastDay
}

type ForecastDay struct {
	Date     string
	Forecast int64
	Lower    int64
	Upper    int64
}

// ChatMessage is one transcript turn.
type ChatMessage struct {
	Role string // "user" or "assistant"
	Text string
}
