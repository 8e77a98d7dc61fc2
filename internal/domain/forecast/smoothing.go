package forecast

// DefaultAlpha factor de suavizado para uso ad-hoc; el forecaster usa
// DefaultForecastAlpha (0.35), ambos válidos según el caller.
const (
	DefaultAlpha         = 0.3
	DefaultForecastAlpha = 0.35
)

// Smooth aplica suavizado exponencial simple a la serie:
//
//	out[0] = series[0]
//	out[i] = alpha·series[i] + (1−alpha)·out[i−1]
//
// alpha fuera de (0,1] usa DefaultAlpha. Serie vacía produce serie vacía.
// El cálculo es online (sin lookahead), así que puede alimentarse en streaming
// sin rediseño.
func Smooth(series []float64, alpha float64) []float64 {
	if len(series) == 0 {
		return []float64{}
	}
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultAlpha
	}
	out := make([]float64, len(series))
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = alpha*series[i] + (1-alpha)*out[i-1]
	}
	return out
}

// mean promedio aritmético; 0 para serie vacía.
func mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// populationVariance varianza poblacional alrededor de la media de la serie.
func populationVariance(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	m := mean(series)
	var sum float64
	for _, v := range series {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(series))
}
