package forecast_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
	"github.com/jhoicas/Frescura-engine/internal/domain/forecast"
)

var seriesToday = time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)

func orderOn(day time.Time, productID string, qty int64, status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:        "ord-" + day.Format("20060102"),
		Status:    status,
		CreatedAt: day,
		Items: []entity.OrderItem{
			{ProductID: productID, Quantity: decimal.NewFromInt(qty)},
		},
	}
}

// TestBuildDemandSeries_RellenoEnCero ventana de 7 días sin ventas: exactamente
// 8 entradas (límites inclusive), todas en cero. El suavizado necesita ver los
// huecos reales, por eso los días sin demanda no se omiten.
func TestBuildDemandSeries_RellenoEnCero(t *testing.T) {
	series := forecast.BuildDemandSeries("prod-1", nil, 7, seriesToday)

	require.Len(t, series, 8, "ventana de 7 días debe producir 8 días inclusive")
	for _, p := range series {
		assert.True(t, p.Qty.IsZero(), "día %s debe ser cero", p.Date.Format("2006-01-02"))
	}
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), series[0].Date)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), series[len(series)-1].Date)
}

func TestBuildDemandSeries_OrdenAscendente(t *testing.T) {
	series := forecast.BuildDemandSeries("prod-1", nil, 30, seriesToday)
	for i := 1; i < len(series); i++ {
		assert.True(t, series[i].Date.After(series[i-1].Date), "la serie debe ser ascendente por fecha")
	}
}

func TestBuildDemandSeries_SumaPorDia(t *testing.T) {
	day := time.Date(2024, 5, 18, 9, 0, 0, 0, time.UTC)
	orders := []*entity.Order{
		orderOn(day, "prod-1", 3, entity.OrderDelivered),
		orderOn(day.Add(5*time.Hour), "prod-1", 4, entity.OrderPending),
		orderOn(day, "otro-producto", 99, entity.OrderDelivered),
	}

	series := forecast.BuildDemandSeries("prod-1", orders, 7, seriesToday)

	var bucket *forecast.DailyDemand
	for i := range series {
		if series[i].Date.Equal(time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)) {
			bucket = &series[i]
		}
	}
	require.NotNil(t, bucket)
	assert.Equal(t, "7", bucket.Qty.String(), "dos pedidos del mismo día se suman; otros productos no cuentan")
}

func TestBuildDemandSeries_IgnoraCanceladosYFueraDeVentana(t *testing.T) {
	orders := []*entity.Order{
		orderOn(time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC), "prod-1", 5, entity.OrderCancelled),
		orderOn(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "prod-1", 5, entity.OrderDelivered),
		orderOn(time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC), "prod-1", 5, entity.OrderDelivered),
	}

	series := forecast.BuildDemandSeries("prod-1", orders, 7, seriesToday)
	for _, p := range series {
		assert.True(t, p.Qty.IsZero(),
			"cancelados y pedidos fuera de ventana no generan demanda (día %s)", p.Date.Format("2006-01-02"))
	}
}

func TestBuildDemandSeries_VentanaNoPositivaUsaDefault(t *testing.T) {
	series := forecast.BuildDemandSeries("prod-1", nil, 0, seriesToday)
	assert.Len(t, series, forecast.DefaultWindowDays+1)
}
