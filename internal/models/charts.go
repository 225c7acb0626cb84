package models

import "github.com/shopspring/decimal"

// DatedValue is one {fecha, valor} pair from the upstream time series.
type DatedValue struct {
	Fecha string          `json:"fecha"`
	Valor decimal.Decimal `json:"valor"`
}

// StatisticsTotals are the month totals inside GET /api/statistics.
type StatisticsTotals struct {
	Ventas            decimal.Decimal `json:"ventas"`
	Gastos            decimal.Decimal `json:"gastos"`
	Nomina            decimal.Decimal `json:"nomina"`
	UtilidadOperativa decimal.Decimal `json:"utilidad_operativa"`
	GastosFijos       decimal.Decimal `json:"gastos_fijos"`
	UtilidadReal      decimal.Decimal `json:"utilidad_real"`
}

// StatisticsData is the "data" object of GET /api/statistics. Timeline maps
// a year label to twelve monthly sales sums.
type StatisticsData struct {
	Totales            StatisticsTotals             `json:"totales"`
	NominaPorEstilista map[string]decimal.Decimal   `json:"nomina_por_estilista"`
	VentasPorEstilista map[string]decimal.Decimal   `json:"ventas_por_estilista"`
	TopServicios       map[string]int64             `json:"top_servicios"`
	Timeline           map[string][]decimal.Decimal `json:"timeline"`
}

// StatisticsResponse is the full GET /api/statistics payload.
type StatisticsResponse struct {
	Envelope
	Data StatisticsData `json:"data"`
}

// PredictionResponse is the full GET /api/prediction payload.
type PredictionResponse struct {
	Envelope
	Historical []DatedValue `json:"historical"`
	Prediction []DatedValue `json:"prediction"`
	Trend      string       `json:"trend"`
}

// HeatmapEntry is one cell of the GET /api/revenue-patterns heatmap.
type HeatmapEntry struct {
	Date     string          `json:"date"`
	Day      string          `json:"day"`
	DayIndex int             `json:"day_index"`
	Week     int             `json:"week"`
	Value    decimal.Decimal `json:"value"`
}

// RevenuePatternsResponse is the full GET /api/revenue-patterns payload.
type RevenuePatternsResponse struct {
	Envelope
	Heatmap   []HeatmapEntry             `json:"heatmap"`
	Patterns  map[string]decimal.Decimal `json:"patterns"`
	Inference string                     `json:"inference"`
}

// ServiceDemandResponse is the full GET /api/service-demand payload.
// Upstream flattens service columns into the same object as "fecha", so
// Historical and Prediction rows arrive as loose objects and are normalized
// by the mapping layer.
type ServiceDemandResponse struct {
	Envelope
	Historical    []map[string]any `json:"historical"`
	Prediction    []map[string]any `json:"prediction"`
	GrowthService string           `json:"growthService"`
}
