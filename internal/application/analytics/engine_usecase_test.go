package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Frescura-engine/internal/application/analytics"
	"github.com/jhoicas/Frescura-engine/internal/domain"
	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
	"github.com/jhoicas/Frescura-engine/internal/domain/forecast"
	"github.com/jhoicas/Frescura-engine/internal/infrastructure/memory"
	"github.com/jhoicas/Frescura-engine/pkg/clock"
	"github.com/jhoicas/Frescura-engine/pkg/logger"
)

var ucNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func testEngine(t *testing.T) *appanalytics.EngineUseCase {
	t.Helper()

	shelf := 10
	products := []*entity.Product{
		{
			ID: "p1", Name: "Queso doble crema", ShelfLifeDays: &shelf,
			Variants: []entity.Variant{
				{
					ID: "v1", ProductID: "p1",
					Price: decimal.RequireFromString("8.00"),
					Cost:  decimal.RequireFromString("5.00"),
					Stock: decimal.NewFromInt(4),
					Grade: entity.GradeB,
					// lote con el 90% de la vida útil consumida
					BatchDate: ucNow.AddDate(0, 0, -9),
				},
			},
		},
		{ID: "p2", Name: "Panela descontinuada", Archived: true},
	}
	orders := []*entity.Order{
		{
			ID: "o1", Status: entity.OrderDelivered, CreatedAt: ucNow.AddDate(0, 0, -1),
			Items: []entity.OrderItem{
				{
					ProductID: "p1", VariantID: "v1",
					Quantity:     decimal.NewFromInt(6),
					PriceAtOrder: decimal.RequireFromString("8.00"),
					CostAtOrder:  decimal.RequireFromString("5.00"),
				},
			},
		},
	}

	catalog := memory.NewCatalog(products, orders)
	return appanalytics.NewEngineUseCase(
		catalog,
		clock.Fixed{T: ucNow},
		logger.Nop(),
		forecast.Params{},
		5,
	)
}

func TestEngineUseCase_ForecastAllOmiteArchivados(t *testing.T) {
	engine := testEngine(t)

	forecasts, err := engine.ForecastAll(context.Background())
	require.NoError(t, err)

	require.Len(t, forecasts, 1, "el producto archivado no se pronostica")
	f := forecasts[0]
	assert.Equal(t, "p1", f.ProductID)
	assert.Equal(t, "Queso doble crema", f.ProductName)
	assert.False(t, f.NoDemand)
	require.NotNil(t, f.DaysOfCover)
	assert.Positive(t, f.DemandPerDay)
	assert.Positive(t, f.ReorderPoint)
}

func TestEngineUseCase_Dashboard(t *testing.T) {
	engine := testEngine(t)

	dash, err := engine.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, dash.Kpis.TotalProducts)
	assert.Equal(t, "48.00", dash.Kpis.Revenue.StringFixed(2), "6 × 8.00 a precio congelado")
	assert.Equal(t, "18.00", dash.Kpis.Profit.StringFixed(2))
	assert.Equal(t, 1, dash.Kpis.ExpiringSoonVariants, "lote al 90% de la vida útil")

	// Un solo producto concentra el 100% del ingreso: supera ambos cortes y cae en C.
	assert.Empty(t, dash.ABC.A)
	assert.Empty(t, dash.ABC.B)
	require.Len(t, dash.ABC.C, 1)
	assert.Equal(t, "p1", dash.ABC.C[0].ID)
}

func TestEngineUseCase_ScoreWriteOffs(t *testing.T) {
	engine := testEngine(t)

	risks, err := engine.ScoreWriteOffs(context.Background(), []entity.SpoilageCandidate{
		{ProductID: "p1", VariantID: "v1", Quantity: decimal.NewFromInt(2), Reason: "olor ácido"},
	})
	require.NoError(t, err)
	require.Len(t, risks, 1)

	r := risks[0]
	// ratio 2/4 → 20, 90% de vida útil → 25, calidad B → 5, "olor" → 10 = 60
	assert.InDelta(t, 60, r.Score, 1e-9)
	assert.Equal(t, "high", r.Level)
	assert.NotEmpty(t, r.Explanation)
}

func TestEngineUseCase_ScoreWriteOffs_VarianteInexistente(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.ScoreWriteOffs(context.Background(), []entity.SpoilageCandidate{
		{ProductID: "p1", VariantID: "no-existe", Quantity: decimal.NewFromInt(1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
}

func TestEngineUseCase_ScoreWriteOffs_ProductoInexistente(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.ScoreWriteOffs(context.Background(), []entity.SpoilageCandidate{
		{ProductID: "fantasma", VariantID: "v1", Quantity: decimal.NewFromInt(1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
