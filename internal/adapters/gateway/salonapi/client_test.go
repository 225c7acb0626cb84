package salonapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lmorales/salon_dashboard_app/internal/adapters/gateway/salonapi"
	"github.com/lmorales/salon_dashboard_app/internal/apperrors"
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) (*salonapi.SummaryGateway, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := salonapi.NewClient(server.URL, 5*time.Second, salonapi.WithAPIToken("test-token"))
	return salonapi.NewSummaryGateway(client), server
}

func TestFetchSummary_Success(t *testing.T) {
	gateway, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/summary", r.URL.Path)
		assert.Equal(t, "2026-03-14", r.URL.Query().Get("date"))
		assert.Equal(t, "Principal", r.URL.Query().Get("sede"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": [
				{"id": 1, "sheet": "servicios", "estilista": "Ana", "descripcion": "Corte",
				 "valor": 50000, "comision": 25000, "tipo": "Servicio", "metodo_pago": "Efectivo"},
				{"id": 2, "sheet": "productos", "estilista": "Luisa", "descripcion": "Shampoo",
				 "valor": 25000, "comision": 0, "tipo": "Producto", "metodo_pago": "Tarjeta"}
			],
			"totals": {"valor": 75000, "comision": 25000, "gastos": 10000, "utilidad": 40000}
		}`))
	})

	scope := domain.ReportScope{Date: "2026-03-14", Sede: "Principal"}
	snapshot, err := gateway.FetchSummary(context.Background(), scope)

	require.NoError(t, err)
	require.Len(t, snapshot.Records, 2)
	assert.Equal(t, scope, snapshot.Scope)

	first := snapshot.Records[0]
	assert.Equal(t, domain.SheetServices, first.Sheet)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Ana", first.Stylist)
	assert.Equal(t, domain.KindService, first.Kind)
	assert.Equal(t, domain.PaymentCash, first.PaymentMethod)
	assert.True(t, first.Amount.Equal(decimal.NewFromInt(50000)))

	assert.True(t, snapshot.Totals.Expenses.Equal(decimal.NewFromInt(10000)))
	assert.True(t, snapshot.Totals.Profit.Equal(decimal.NewFromInt(40000)))
}

func TestFetchSummary_ErrorEnvelope(t *testing.T) {
	gateway, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "error", "message": "Hoja no encontrada"}`))
	})

	_, err := gateway.FetchSummary(context.Background(), domain.ReportScope{Date: "2026-03-14", Sede: "Principal"})

	require.Error(t, err)
	serverErr, ok := apperrors.AsServerError(err)
	require.True(t, ok)
	assert.Equal(t, "Hoja no encontrada", serverErr.Message)
}

func TestFetchSummary_Unauthorized(t *testing.T) {
	gateway, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := gateway.FetchSummary(context.Background(), domain.ReportScope{Date: "2026-03-14", Sede: "Principal"})

	assert.ErrorIs(t, err, apperrors.ErrAuthExpired)
}

func TestFetchSummary_MalformedBody(t *testing.T) {
	gateway, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := gateway.FetchSummary(context.Background(), domain.ReportScope{Date: "2026-03-14", Sede: "Principal"})

	assert.ErrorIs(t, err, apperrors.ErrDecode)
}

func TestFetchSummary_ShapeInvalidBody(t *testing.T) {
	// Well-formed JSON missing the required status field is still a decode
	// failure, not a server error.
	gateway, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	_, err := gateway.FetchSummary(context.Background(), domain.ReportScope{Date: "2026-03-14", Sede: "Principal"})

	assert.ErrorIs(t, err, apperrors.ErrDecode)
}

func TestFetchSummary_TransportFailure(t *testing.T) {
	gateway, server := newGateway(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := gateway.FetchSummary(context.Background(), domain.ReportScope{Date: "2026-03-14", Sede: "Principal"})

	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

func TestUpdateSummaryItem_PostsUpdateKey(t *testing.T) {
	var received map[string]json.RawMessage
	gateway, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/summary/update", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"status": "success", "message": "Item actualizado"}`))
	})

	key := domain.RecordKey{Sheet: domain.SheetServices, ID: 7}
	err := gateway.UpdateSummaryItem(context.Background(), key, decimal.NewFromInt(60000), decimal.NewFromInt(30000))

	require.NoError(t, err)
	assert.JSONEq(t, `"servicios"`, string(received["sheet"]))
	assert.JSONEq(t, `7`, string(received["id"]))
	assert.JSONEq(t, `"60000"`, string(received["valor"]))
	assert.JSONEq(t, `"30000"`, string(received["comision"]))
}

func TestUpdateSummaryItem_RejectionSurfacesMessage(t *testing.T) {
	gateway, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "error", "message": "ID no encontrado"}`))
	})

	key := domain.RecordKey{Sheet: domain.SheetProducts, ID: 99}
	err := gateway.UpdateSummaryItem(context.Background(), key, decimal.NewFromInt(1000), decimal.Zero)

	require.Error(t, err)
	serverErr, ok := apperrors.AsServerError(err)
	require.True(t, ok)
	assert.Equal(t, "ID no encontrado", serverErr.Message)
}
