package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
)

// Snapshot contenido de un archivo de catálogo: productos, pedidos y
// opcionalmente candidatas a baja por merma.
type Snapshot struct {
	Products   []*entity.Product
	Orders     []*entity.Order
	Candidates []entity.SpoilageCandidate
}

// ── Formato JSON del archivo (snake_case, montos como string decimal) ─────────

type snapshotFile struct {
	Products   []productJSON   `json:"products"`
	Orders     []orderJSON     `json:"orders"`
	Candidates []candidateJSON `json:"write_off_candidates"`
}

type discountJSON struct {
	Type    string          `json:"type"`
	Value   decimal.Decimal `json:"value"`
	StartAt *time.Time      `json:"start_at"`
	EndAt   *time.Time      `json:"end_at"`
}

type reviewJSON struct {
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Approved bool   `json:"approved"`
}

type variantJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost_price"`
	ArrivalCost decimal.Decimal `json:"arrival_cost"`
	Stock       decimal.Decimal `json:"stock"`
	MinStock    decimal.Decimal `json:"min_stock"`
	Grade       string          `json:"quality_grade"`
	BatchDate   time.Time       `json:"batch_date"`
	UnitMeasure string          `json:"unit_measure"`
}

type productJSON struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost_price"`
	ShelfLifeDays *int            `json:"shelf_life_days"`
	Discount      *discountJSON   `json:"discount"`
	Variants      []variantJSON   `json:"variants"`
	Reviews       []reviewJSON    `json:"reviews"`
	MinStock      decimal.Decimal `json:"min_stock"`
	Archived      bool            `json:"archived"`
	CreatedAt     time.Time       `json:"created_at"`
}

type orderItemJSON struct {
	ProductID    string          `json:"product_id"`
	VariantID    string          `json:"variant_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	PriceAtOrder decimal.Decimal `json:"price_at_order"`
	CostAtOrder  decimal.Decimal `json:"cost_at_order"`
}

type orderJSON struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Items     []orderItemJSON `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

type candidateJSON struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
}

// LoadSnapshot lee y convierte un snapshot JSON de catálogo. Los IDs ausentes
// en el archivo se generan al cargar, así los fixtures de prueba no necesitan
// inventar UUIDs.
func LoadSnapshot(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	var file snapshotFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decodificar snapshot: %w", err)
	}

	snap := &Snapshot{}
	for _, pj := range file.Products {
		snap.Products = append(snap.Products, pj.toEntity())
	}
	for _, oj := range file.Orders {
		snap.Orders = append(snap.Orders, oj.toEntity())
	}
	for _, cj := range file.Candidates {
		snap.Candidates = append(snap.Candidates, entity.SpoilageCandidate{
			ProductID: cj.ProductID,
			VariantID: cj.VariantID,
			Quantity:  cj.Quantity,
			Reason:    cj.Reason,
		})
	}
	return snap, nil
}

func (pj productJSON) toEntity() *entity.Product {
	p := &entity.Product{
		ID:            orNewID(pj.ID),
		Name:          pj.Name,
		CategoryID:    pj.CategoryID,
		Price:         pj.Price,
		Cost:          pj.Cost,
		ShelfLifeDays: pj.ShelfLifeDays,
		MinStock:      pj.MinStock,
		Archived:      pj.Archived,
		CreatedAt:     pj.CreatedAt,
	}
	if pj.Discount != nil {
		p.Discount = &entity.Discount{
			Type:    entity.DiscountType(pj.Discount.Type),
			Value:   pj.Discount.Value,
			StartAt: pj.Discount.StartAt,
			EndAt:   pj.Discount.EndAt,
		}
	}
	for _, vj := range pj.Variants {
		p.Variants = append(p.Variants, entity.Variant{
			ID:          orNewID(vj.ID),
			ProductID:   p.ID,
			Name:        vj.Name,
			Price:       vj.Price,
			Cost:        vj.Cost,
			ArrivalCost: vj.ArrivalCost,
			Stock:       vj.Stock,
			MinStock:    vj.MinStock,
			Grade:       entity.QualityGrade(vj.Grade),
			BatchDate:   vj.BatchDate,
			UnitMeasure: vj.UnitMeasure,
		})
	}
	for _, rj := range pj.Reviews {
		p.Reviews = append(p.Reviews, entity.Review{
			ID:       uuid.New().String(),
			Rating:   rj.Rating,
			Comment:  rj.Comment,
			Approved: rj.Approved,
		})
	}
	return p
}

func (oj orderJSON) toEntity() *entity.Order {
	o := &entity.Order{
		ID:        orNewID(oj.ID),
		Status:    entity.OrderStatus(oj.Status),
		CreatedAt: oj.CreatedAt,
	}
	for _, it := range oj.Items {
		o.Items = append(o.Items, entity.OrderItem{
			ProductID:    it.ProductID,
			VariantID:    it.VariantID,
			Quantity:     it.Quantity,
			PriceAtOrder: it.PriceAtOrder,
			CostAtOrder:  it.CostAtOrder,
		})
	}
	return o
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}
