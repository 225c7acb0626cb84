package mapping

import (
	"encoding/json"

	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	"github.com/lmorales/salon_dashboard_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToDomainStatistics converts the wire statistics payload.
func ToDomainStatistics(m models.StatisticsData) domain.StatisticsData {
	return domain.StatisticsData{
		Totals: domain.MonthTotals{
			Sales:           m.Totales.Ventas,
			Expenses:        m.Totales.Gastos,
			Payroll:         m.Totales.Nomina,
			OperatingProfit: m.Totales.UtilidadOperativa,
			FixedExpenses:   m.Totales.GastosFijos,
			NetProfit:       m.Totales.UtilidadReal,
		},
		PayrollByStylist: m.NominaPorEstilista,
		SalesByStylist:   m.VentasPorEstilista,
		TopServices:      m.TopServicios,
		Timeline:         m.Timeline,
	}
}

// ToDomainTimePoints converts a wire {fecha, valor} series.
func ToDomainTimePoints(ms []models.DatedValue) []domain.TimePoint {
	ps := make([]domain.TimePoint, len(ms))
	for i, m := range ms {
		ps[i] = domain.TimePoint{Date: m.Fecha, Value: m.Valor}
	}
	return ps
}

// ToDomainPrediction converts the wire prediction payload.
func ToDomainPrediction(m models.PredictionResponse) domain.PredictionData {
	return domain.PredictionData{
		Historical: ToDomainTimePoints(m.Historical),
		Forecast:   ToDomainTimePoints(m.Prediction),
		Trend:      m.Trend,
	}
}

// ToDomainRevenuePatterns converts the wire revenue-patterns payload.
func ToDomainRevenuePatterns(m models.RevenuePatternsResponse) domain.RevenuePatternsData {
	cells := make([]domain.HeatmapCell, len(m.Heatmap))
	for i, h := range m.Heatmap {
		cells[i] = domain.HeatmapCell{
			Date:     h.Date,
			Day:      h.Day,
			DayIndex: h.DayIndex,
			Week:     h.Week,
			Value:    h.Value,
		}
	}
	return domain.RevenuePatternsData{
		Heatmap:   cells,
		Patterns:  m.Patterns,
		Inference: m.Inference,
	}
}

// ToDomainDemandPoints normalizes the loose upstream demand rows: each row
// is an object holding "fecha" plus one numeric value per service name.
func ToDomainDemandPoints(rows []map[string]any) []domain.DemandPoint {
	ps := make([]domain.DemandPoint, 0, len(rows))
	for _, row := range rows {
		p := domain.DemandPoint{Services: make(map[string]decimal.Decimal)}
		for k, v := range row {
			if k == "fecha" {
				if s, ok := v.(string); ok {
					p.Date = s
				}
				continue
			}
			if d, ok := toDecimal(v); ok {
				p.Services[k] = d
			}
		}
		ps = append(ps, p)
	}
	return ps
}

// ToDomainServiceDemand converts the wire service-demand payload.
func ToDomainServiceDemand(m models.ServiceDemandResponse) domain.ServiceDemandData {
	return domain.ServiceDemandData{
		Historical:    ToDomainDemandPoints(m.Historical),
		Forecast:      ToDomainDemandPoints(m.Prediction),
		GrowthService: m.GrowthService,
	}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
