package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChartSlot names one chart position on the dashboard. At most one live
// chart instance exists per slot.
type ChartSlot string

const (
	SlotStatistics      ChartSlot = "statistics"
	SlotPrediction      ChartSlot = "prediction"
	SlotRevenuePatterns ChartSlot = "revenue_patterns"
	SlotServiceDemand   ChartSlot = "service_demand"
)

// AllChartSlots lists every dashboard slot in render order.
func AllChartSlots() []ChartSlot {
	return []ChartSlot{SlotStatistics, SlotPrediction, SlotRevenuePatterns, SlotServiceDemand}
}

// ChartData is a dataset ready to be materialized into a chart.
type ChartData interface {
	Slot() ChartSlot
}

// TimePoint is one dated value in a time series.
type TimePoint struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Value decimal.Decimal `json:"value"`
}

// MonthTotals are the month-level figures shown on the statistics board.
type MonthTotals struct {
	Sales           decimal.Decimal `json:"sales"`
	Expenses        decimal.Decimal `json:"expenses"`
	Payroll         decimal.Decimal `json:"payroll"`
	OperatingProfit decimal.Decimal `json:"operatingProfit"`
	FixedExpenses   decimal.Decimal `json:"fixedExpenses"`
	NetProfit       decimal.Decimal `json:"netProfit"`
}

// StatisticsData backs the monthly statistics charts: payroll and sales
// pies per stylist, top services, and the multi-year sales timeline
// (twelve monthly sums per year).
type StatisticsData struct {
	Totals           MonthTotals                  `json:"totals"`
	PayrollByStylist map[string]decimal.Decimal   `json:"payrollByStylist"`
	SalesByStylist   map[string]decimal.Decimal   `json:"salesByStylist"`
	TopServices      map[string]int64             `json:"topServices"`
	Timeline         map[string][]decimal.Decimal `json:"timeline"`
}

func (StatisticsData) Slot() ChartSlot { return SlotStatistics }

// PredictionData backs the revenue forecast chart: the historical daily
// series plus a short projected series and the overall trend direction.
type PredictionData struct {
	Historical []TimePoint `json:"historical"`
	Forecast   []TimePoint `json:"forecast"`
	Trend      string      `json:"trend"` // "up" | "down" | "stable"
}

func (PredictionData) Slot() ChartSlot { return SlotPrediction }

// HeatmapCell is one day's revenue positioned on the week-vs-weekday grid.
type HeatmapCell struct {
	Date     string          `json:"date"`
	Day      string          `json:"day"`
	DayIndex int             `json:"dayIndex"` // 0 = Monday
	Week     int             `json:"week"`     // ISO week number
	Value    decimal.Decimal `json:"value"`
}

// RevenuePatternsData backs the revenue heatmap: per-day cells, average
// revenue by weekday name, and a human-readable inference line.
type RevenuePatternsData struct {
	Heatmap   []HeatmapCell              `json:"heatmap"`
	Patterns  map[string]decimal.Decimal `json:"patterns"`
	Inference string                     `json:"inference"`
}

func (RevenuePatternsData) Slot() ChartSlot { return SlotRevenuePatterns }

// DemandPoint is one date's demand broken down by service name.
type DemandPoint struct {
	Date     string                     `json:"date"`
	Services map[string]decimal.Decimal `json:"services"`
}

// ServiceDemandData backs the service demand chart: historical demand per
// service, a short projection, and the service with the strongest growth.
type ServiceDemandData struct {
	Historical    []DemandPoint `json:"historical"`
	Forecast      []DemandPoint `json:"forecast"`
	GrowthService string        `json:"growthService"`
}

func (ServiceDemandData) Slot() ChartSlot { return SlotServiceDemand }

// ChartInstance is one materialized chart. Re-rendering a slot destroys the
// prior instance before installing a new one.
type ChartInstance struct {
	InstanceID string    `json:"instanceID"`
	ChartSlot  ChartSlot `json:"slot"`
	RenderedAt time.Time `json:"renderedAt"`
	Data       ChartData `json:"data"`
}

// ChartBoard is the outcome of rendering every slot for a scope. Slots
// render independently: a failed slot appears in Failures with its error
// message while the others still carry instances.
type ChartBoard struct {
	Charts   map[ChartSlot]*ChartInstance `json:"charts"`
	Failures map[ChartSlot]string         `json:"failures"`
}
