package salonapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lmorales/salon_dashboard_app/internal/adapters/gateway/salonapi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChartGateway(t *testing.T, handler http.HandlerFunc) *salonapi.ChartGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := salonapi.NewClient(server.URL, 5*time.Second)
	return salonapi.NewChartGateway(client)
}

func TestFetchStatistics_MapsWirePayload(t *testing.T) {
	gateway := newChartGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/statistics", r.URL.Path)
		assert.Equal(t, "2026-03", r.URL.Query().Get("month"))
		assert.Equal(t, "Principal", r.URL.Query().Get("sede"))
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {
				"totales": {"ventas": 2500000, "gastos": 400000, "nomina": 900000,
				            "utilidad_operativa": 1200000, "gastos_fijos": 300000, "utilidad_real": 900000},
				"nomina_por_estilista": {"Ana": 500000, "Luisa": 400000},
				"ventas_por_estilista": {"Ana": 1500000, "Luisa": 1000000},
				"top_servicios": {"Corte": 42, "Tinte": 17},
				"timeline": {"2026": [2500000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]}
			}
		}`))
	})

	data, err := gateway.FetchStatistics(context.Background(), "2026-03", "Principal")

	require.NoError(t, err)
	assert.True(t, data.Totals.Sales.Equal(decimal.NewFromInt(2500000)))
	assert.True(t, data.Totals.NetProfit.Equal(decimal.NewFromInt(900000)))
	assert.True(t, data.SalesByStylist["Ana"].Equal(decimal.NewFromInt(1500000)))
	assert.Equal(t, int64(42), data.TopServices["Corte"])
	require.Len(t, data.Timeline["2026"], 12)
}

func TestFetchPrediction_MapsWirePayload(t *testing.T) {
	gateway := newChartGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/prediction", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"status": "success",
			"historical": [{"fecha": "2026-03-13", "valor": 400000}],
			"prediction": [{"fecha": "2026-03-15", "valor": 420000}],
			"trend": "up"
		}`))
	})

	data, err := gateway.FetchPrediction(context.Background(), "Principal")

	require.NoError(t, err)
	require.Len(t, data.Historical, 1)
	require.Len(t, data.Forecast, 1)
	assert.Equal(t, "2026-03-13", data.Historical[0].Date)
	assert.True(t, data.Forecast[0].Value.Equal(decimal.NewFromInt(420000)))
	assert.Equal(t, "up", data.Trend)
}

func TestFetchRevenuePatterns_MapsWirePayload(t *testing.T) {
	gateway := newChartGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/revenue-patterns", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"status": "success",
			"heatmap": [{"date": "2026-03-14", "day": "Sábado", "day_index": 5, "week": 11, "value": 650000}],
			"patterns": {"Sábado": 620000, "Lunes": 180000},
			"inference": "Los sábados son el día más fuerte"
		}`))
	})

	data, err := gateway.FetchRevenuePatterns(context.Background(), "Principal")

	require.NoError(t, err)
	require.Len(t, data.Heatmap, 1)
	assert.Equal(t, 5, data.Heatmap[0].DayIndex)
	assert.Equal(t, 11, data.Heatmap[0].Week)
	assert.True(t, data.Patterns["Sábado"].Equal(decimal.NewFromInt(620000)))
	assert.Equal(t, "Los sábados son el día más fuerte", data.Inference)
}

func TestFetchServiceDemand_NormalizesLooseRows(t *testing.T) {
	gateway := newChartGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/service-demand", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"status": "success",
			"historical": [{"fecha": "2026-03-13", "Corte": 12, "Tinte": 4}],
			"prediction": [{"fecha": "2026-03-15", "Corte": 14, "Tinte": 5}],
			"growthService": "Corte"
		}`))
	})

	data, err := gateway.FetchServiceDemand(context.Background(), "Principal")

	require.NoError(t, err)
	require.Len(t, data.Historical, 1)
	assert.Equal(t, "2026-03-13", data.Historical[0].Date)
	assert.True(t, data.Historical[0].Services["Corte"].Equal(decimal.NewFromInt(12)))
	require.Len(t, data.Forecast, 1)
	assert.True(t, data.Forecast[0].Services["Tinte"].Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "Corte", data.GrowthService)
}
