// Package spoilage puntúa propuestas de baja por merma en una escala 0–100
// para priorizar la revisión humana. El score es solo consultivo: nunca
// bloquea una baja. La regla dura de "cantidad mayor al stock" pertenece a la
// aplicación que rodea al motor, no a este scorer.
package spoilage

import (
	"fmt"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
)

// Level banda de riesgo derivada del score.
type Level string

const (
	LevelLow      Level = "low"      // < 30
	LevelMedium   Level = "medium"   // < 60
	LevelHigh     Level = "high"     // < 80
	LevelCritical Level = "critical" // ≥ 80
)

// Context datos de la variante necesarios para puntuar la baja.
type Context struct {
	AgeDays       int
	ShelfLifeDays *int                // nil = vida útil desconocida, se usa edad absoluta
	Grade         entity.QualityGrade // "" = sin clasificar
	CurrentStock  float64
}

// Result score de riesgo con desglose de los términos que aportaron puntos.
type Result struct {
	Score       float64 // 0–100
	Level       Level
	Explanation []string
}

// Pesos y umbrales del modelo aditivo.
const (
	maxRatioPoints  = 40.0
	emptyStockRatio = 0.7 // ratio asumido cuando no hay stock pero se propone baja
)

// Score puntúa la propuesta de baja (modelo aditivo, clamp a [0,100]).
//
// Términos:
//   - proporción del stock:      min(40, qty/stock · 40); sin stock y qty>0 asume ratio 0.7
//   - edad vs vida útil:         ≥110% → 40, ≥90% → 25, ≥70% → 15
//     (sin vida útil: >90d → 25, >60d → 18, >30d → 10)
//   - calidad:                   B → 5; C o Unsorted → 10
//   - señales del motivo:        cadena de frío +10, olor/moho +10, devolución +5
func Score(c *entity.SpoilageCandidate, ctx Context) Result {
	var score float64
	var explanation []string

	qty, _ := c.Quantity.Float64()

	// Proporción del stock que se daría de baja.
	var ratio float64
	switch {
	case ctx.CurrentStock > 0:
		ratio = qty / ctx.CurrentStock
	case qty > 0:
		ratio = emptyStockRatio
	}
	if ratio > 0 {
		pts := ratio * maxRatioPoints
		if pts > maxRatioPoints {
			pts = maxRatioPoints
		}
		score += pts
		explanation = append(explanation, fmt.Sprintf("proporción del stock %.0f%%: +%.1f", ratio*100, pts))
	}

	// Edad del lote.
	if pts, label := agePoints(ctx); pts > 0 {
		score += pts
		explanation = append(explanation, fmt.Sprintf("%s: +%.0f", label, pts))
	}

	// Calidad de la variante.
	switch ctx.Grade {
	case entity.GradeB:
		score += 5
		explanation = append(explanation, "calidad B: +5")
	case entity.GradeC, entity.GradeUnsorted:
		score += 10
		explanation = append(explanation, fmt.Sprintf("calidad %s: +10", ctx.Grade))
	}

	// Señales en el texto del motivo.
	for _, rule := range matchSignals(c.Reason) {
		score += rule.Points
		explanation = append(explanation, fmt.Sprintf("motivo indica %s: +%.0f", rule.Label, rule.Points))
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return Result{Score: score, Level: levelFor(score), Explanation: explanation}
}

// agePoints término de edad: usa el avance sobre la vida útil cuando se
// conoce; si no, cae a umbrales de edad absoluta.
func agePoints(ctx Context) (float64, string) {
	if ctx.ShelfLifeDays != nil && *ctx.ShelfLifeDays > 0 {
		usage := float64(ctx.AgeDays) / float64(*ctx.ShelfLifeDays)
		switch {
		case usage >= 1.1:
			return 40, fmt.Sprintf("vida útil superada (%.0f%%)", usage*100)
		case usage >= 0.9:
			return 25, fmt.Sprintf("cerca del fin de vida útil (%.0f%%)", usage*100)
		case usage >= 0.7:
			return 15, fmt.Sprintf("vida útil avanzada (%.0f%%)", usage*100)
		}
		return 0, ""
	}
	switch {
	case ctx.AgeDays > 90:
		return 25, fmt.Sprintf("lote de %d días sin vida útil declarada", ctx.AgeDays)
	case ctx.AgeDays > 60:
		return 18, fmt.Sprintf("lote de %d días sin vida útil declarada", ctx.AgeDays)
	case ctx.AgeDays > 30:
		return 10, fmt.Sprintf("lote de %d días sin vida útil declarada", ctx.AgeDays)
	}
	return 0, ""
}

func levelFor(score float64) Level {
	switch {
	case score < 30:
		return LevelLow
	case score < 60:
		return LevelMedium
	case score < 80:
		return LevelHigh
	default:
		return LevelCritical
	}
}
