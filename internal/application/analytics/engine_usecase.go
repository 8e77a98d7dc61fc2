// Package analytics orquesta el motor de cálculo sobre el repositorio de
// catálogo: forecasts por producto en paralelo, snapshot del dashboard y
// scoring de candidatas a baja por merma.
package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Frescura-engine/internal/application/dto"
	"github.com/jhoicas/Frescura-engine/internal/domain"
	"github.com/jhoicas/Frescura-engine/internal/domain/analytics"
	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
	"github.com/jhoicas/Frescura-engine/internal/domain/forecast"
	"github.com/jhoicas/Frescura-engine/internal/domain/repository"
	"github.com/jhoicas/Frescura-engine/internal/domain/spoilage"
	"github.com/jhoicas/Frescura-engine/pkg/clock"
	"github.com/jhoicas/Frescura-engine/pkg/logger"
)

// forecastWorkers cota de goroutines del fan-out de forecasts. Las funciones
// del motor son puras, así que el límite solo acota CPU, no coordinación.
const forecastWorkers = 8

// EngineUseCase fachada de aplicación del motor de analítica.
type EngineUseCase struct {
	catalog repository.CatalogRepository
	clk     clock.Clock
	log     *logger.Logger
	params  forecast.Params
	topN    int
}

// NewEngineUseCase construye el caso de uso. params en cero usa los defaults
// del forecaster; topN no positivo usa el default del dashboard.
func NewEngineUseCase(
	catalog repository.CatalogRepository,
	clk clock.Clock,
	log *logger.Logger,
	params forecast.Params,
	topN int,
) *EngineUseCase {
	return &EngineUseCase{
		catalog: catalog,
		clk:     clk,
		log:     log,
		params:  params,
		topN:    topN,
	}
}

// ForecastAll calcula la recomendación de reposición de cada producto activo
// del catálogo. Los forecasts son independientes entre sí y se reparten en un
// errgroup acotado; el orden del resultado sigue el orden del catálogo.
func (uc *EngineUseCase) ForecastAll(ctx context.Context) ([]dto.ForecastDTO, error) {
	products, err := uc.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("forecast: listar productos: %w", err)
	}
	orders, err := uc.catalog.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("forecast: listar pedidos: %w", err)
	}

	active := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if !p.Archived {
			active = append(active, p)
		}
	}

	today := uc.clk.Today()
	results := make([]dto.ForecastDTO, len(active))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(forecastWorkers)
	for i, p := range active {
		i, p := i, p
		g.Go(func() error {
			rec := forecast.Forecast(p, orders, uc.params, today)
			results[i] = toForecastDTO(p.Name, rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.log.Debug().Int("productos", len(results)).Msg("forecast de reposición calculado")
	return results, nil
}

// Dashboard arma KPIs y segmentación ABC en un solo snapshot del catálogo.
func (uc *EngineUseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	products, err := uc.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", err)
	}
	orders, err := uc.catalog.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar pedidos: %w", err)
	}

	now := uc.clk.Now()

	// KPIs y ABC son folds independientes sobre el mismo snapshot.
	var (
		snap     analytics.Snapshot
		segments analytics.Segments
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap = analytics.ComputeKPIs(products, orders, uc.topN, now)
		return nil
	})
	g.Go(func() error {
		segments = analytics.SegmentByRevenue(analytics.RevenueByProduct(products, orders))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		Kpis: toKpiDTO(snap),
		ABC:  toABCDTO(segments),
	}, nil
}

// ScoreWriteOffs resuelve el contexto de cada candidata (edad del lote, vida
// útil, calidad, stock) y la puntúa. El score es consultivo: aquí no se
// rechaza nada, ni siquiera cantidades mayores al stock; esa regla dura vive
// en la aplicación que confirma la baja.
func (uc *EngineUseCase) ScoreWriteOffs(
	ctx context.Context,
	candidates []entity.SpoilageCandidate,
) ([]dto.SpoilageRiskDTO, error) {
	now := uc.clk.Now()

	results := make([]dto.SpoilageRiskDTO, 0, len(candidates))
	for _, c := range candidates {
		product, err := uc.catalog.GetProduct(ctx, c.ProductID)
		if err != nil {
			return nil, fmt.Errorf("scoring de merma: %w", err)
		}
		variant := product.FindVariant(c.VariantID)
		if variant == nil {
			return nil, fmt.Errorf("%w: %s en producto %s", domain.ErrVariantNotFound, c.VariantID, c.ProductID)
		}

		stock, _ := variant.Stock.Float64()
		res := spoilage.Score(&c, spoilage.Context{
			AgeDays:       variant.AgeDays(now),
			ShelfLifeDays: product.ShelfLifeDays,
			Grade:         variant.Grade,
			CurrentStock:  stock,
		})

		uc.log.Debug().
			Str("producto", c.ProductID).
			Str("variante", c.VariantID).
			Float64("score", res.Score).
			Str("nivel", string(res.Level)).
			Msg("candidata a baja puntuada")

		results = append(results, dto.SpoilageRiskDTO{
			ProductID:   c.ProductID,
			VariantID:   c.VariantID,
			Quantity:    c.Quantity,
			Score:       res.Score,
			Level:       string(res.Level),
			Explanation: res.Explanation,
		})
	}
	return results, nil
}

// ── Conversión a DTOs ─────────────────────────────────────────────────────────

func toForecastDTO(name string, rec forecast.Record) dto.ForecastDTO {
	out := dto.ForecastDTO{
		ProductID:      rec.ProductID,
		ProductName:    name,
		DemandPerDay:   rec.DemandPerDay,
		Mean14:         rec.Mean14,
		Mean30:         rec.Mean30,
		Sigma:          rec.Sigma,
		SafetyStock:    rec.SafetyStock,
		ReorderPoint:   rec.ReorderPoint,
		OnHand:         rec.OnHand,
		RecommendedQty: rec.RecommendedQty,
	}
	switch rec.Cover.Outcome {
	case forecast.CoverFinite:
		days := rec.Cover.Days
		out.DaysOfCover = &days
	case forecast.CoverNoDemand:
		out.NoDemand = true
	}
	return out
}

func toKpiDTO(s analytics.Snapshot) dto.KpiDTO {
	byStatus := make(map[string]int, len(s.OrdersByStatus))
	for status, n := range s.OrdersByStatus {
		byStatus[string(status)] = n
	}
	topRated := make([]dto.RatedProductDTO, 0, len(s.TopRated))
	for _, r := range s.TopRated {
		topRated = append(topRated, dto.RatedProductDTO{
			ProductID: r.ProductID,
			Name:      r.Name,
			Rating:    r.Rating,
			Reviews:   r.Reviews,
		})
	}
	return dto.KpiDTO{
		TotalProducts:        s.TotalProducts,
		TotalOrders:          s.TotalOrders,
		OrdersByStatus:       byStatus,
		Revenue:              s.Revenue,
		Cost:                 s.Cost,
		Profit:               s.Profit,
		AvgRating:            s.AvgRating,
		LowStockVariants:     s.LowStockVariants,
		ExpiringSoonVariants: s.ExpiringSoonVariants,
		ActiveDiscounts:      s.ActiveDiscounts,
		TopRated:             topRated,
		StockValuation:       s.StockValuation,
		PotentialRevenue:     s.PotentialRevenue,
		PotentialProfit:      s.PotentialProfit,
	}
}

func toABCDTO(segments analytics.Segments) dto.ABCSegmentsDTO {
	convert := func(in []entity.RevenueEntity) []dto.RevenueEntityDTO {
		out := make([]dto.RevenueEntityDTO, 0, len(in))
		for _, e := range in {
			out = append(out, dto.RevenueEntityDTO{ID: e.ID, Name: e.Name, Revenue: e.Revenue})
		}
		return out
	}
	return dto.ABCSegmentsDTO{
		A: convert(segments.A),
		B: convert(segments.B),
		C: convert(segments.C),
	}
}
