package dto

import "github.com/shopspring/decimal"

// ── Forecast de reposición ────────────────────────────────────────────────────

// ForecastDTO recomendación de reposición con todos los intermedios auditables.
type ForecastDTO struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	DemandPerDay   float64         `json:"demand_per_day"`   // burn rate combinado (piso 0.01)
	Mean14         float64         `json:"mean_14"`          // promedio suavizado 14 días
	Mean30         float64         `json:"mean_30"`          // promedio suavizado ventana larga
	Sigma          float64         `json:"sigma"`            // desviación estándar poblacional
	SafetyStock    float64         `json:"safety_stock"`
	ReorderPoint   float64         `json:"reorder_point"`
	OnHand         decimal.Decimal `json:"on_hand"`
	NoDemand       bool            `json:"no_demand"`               // sin ventas en la ventana
	DaysOfCover    *float64        `json:"days_of_cover,omitempty"` // null cuando NoDemand
	RecommendedQty int64           `json:"recommended_qty"`
}

// ── Riesgo de merma ───────────────────────────────────────────────────────────

// SpoilageRiskDTO score consultivo de una candidata a baja.
type SpoilageRiskDTO struct {
	ProductID   string          `json:"product_id"`
	VariantID   string          `json:"variant_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Score       float64         `json:"score"` // 0–100
	Level       string          `json:"level"` // low|medium|high|critical
	Explanation []string        `json:"explanation"`
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// RatedProductDTO producto en el widget de mejor calificados.
type RatedProductDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Rating    decimal.Decimal `json:"rating"`
	Reviews   int             `json:"reviews"`
}

// KpiDTO snapshot de indicadores del dashboard.
type KpiDTO struct {
	TotalProducts        int               `json:"total_products"`
	TotalOrders          int               `json:"total_orders"`
	OrdersByStatus       map[string]int    `json:"orders_by_status"`
	Revenue              decimal.Decimal   `json:"revenue"` // solo pedidos entregados, precios congelados
	Cost                 decimal.Decimal   `json:"cost"`
	Profit               decimal.Decimal   `json:"profit"`
	AvgRating            decimal.Decimal   `json:"avg_rating"`
	LowStockVariants     int               `json:"low_stock_variants"`
	ExpiringSoonVariants int               `json:"expiring_soon_variants"`
	ActiveDiscounts      int               `json:"active_discounts"`
	TopRated             []RatedProductDTO `json:"top_rated"`
	StockValuation       decimal.Decimal   `json:"stock_valuation"`
	PotentialRevenue     decimal.Decimal   `json:"potential_revenue"`
	PotentialProfit      decimal.Decimal   `json:"potential_profit"`
}

// RevenueEntityDTO entidad dentro de un bucket ABC.
type RevenueEntityDTO struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ABCSegmentsDTO buckets de la segmentación ABC (80/95/100).
type ABCSegmentsDTO struct {
	A []RevenueEntityDTO `json:"a"`
	B []RevenueEntityDTO `json:"b"`
	C []RevenueEntityDTO `json:"c"`
}

// DashboardDTO respuesta combinada del dashboard de back-office.
type DashboardDTO struct {
	Kpis KpiDTO         `json:"kpis"`
	ABC  ABCSegmentsDTO `json:"abc_segmentation"`
}
