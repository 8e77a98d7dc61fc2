// analitica ejecuta el motor de analítica sobre un snapshot JSON de catálogo
// (productos + pedidos + candidatas a baja) y escribe a stdout el dashboard,
// los forecasts de reposición, la segmentación ABC y los scores de merma.
//
// Uso:
//
//	analitica -snapshot catalogo.json [-top 5]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	appanalytics "github.com/jhoicas/Frescura-engine/internal/application/analytics"
	"github.com/jhoicas/Frescura-engine/internal/application/dto"
	"github.com/jhoicas/Frescura-engine/internal/domain/forecast"
	"github.com/jhoicas/Frescura-engine/internal/infrastructure/memory"
	"github.com/jhoicas/Frescura-engine/pkg/clock"
	"github.com/jhoicas/Frescura-engine/pkg/config"
	"github.com/jhoicas/Frescura-engine/pkg/logger"
)

// report salida completa de una corrida.
type report struct {
	Dashboard *dto.DashboardDTO     `json:"dashboard"`
	Forecasts []dto.ForecastDTO     `json:"forecasts"`
	WriteOffs []dto.SpoilageRiskDTO `json:"write_off_risks,omitempty"`
}

func main() {
	snapshotPath := flag.String("snapshot", "", "ruta del snapshot JSON de catálogo")
	topN := flag.Int("top", 0, "productos en el ranking de mejor calificados (0 = default de config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando motor de analítica")

	if *snapshotPath == "" {
		log.Fatal().Msg("falta el flag -snapshot")
	}

	snap, err := memory.LoadSnapshot(*snapshotPath)
	if err != nil {
		log.Fatal().Err(err).Str("ruta", *snapshotPath).Msg("cargar snapshot")
	}
	log.Info().
		Int("productos", len(snap.Products)).
		Int("pedidos", len(snap.Orders)).
		Int("candidatas", len(snap.Candidates)).
		Msg("snapshot cargado")

	catalog := memory.NewCatalog(snap.Products, snap.Orders)
	params := forecast.Params{
		HorizonDays:   cfg.Engine.WindowDays,
		Alpha:         cfg.Engine.Alpha,
		LeadTimeDays:  cfg.Engine.LeadTimeDays,
		ServiceFactor: cfg.Engine.ServiceFactor,
	}
	top := cfg.Engine.TopRated
	if *topN > 0 {
		top = *topN
	}
	engine := appanalytics.NewEngineUseCase(catalog, clock.System{}, log, params, top)

	ctx := context.Background()

	dashboard, err := engine.Dashboard(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("dashboard")
	}
	forecasts, err := engine.ForecastAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("forecast de reposición")
	}

	out := report{Dashboard: dashboard, Forecasts: forecasts}
	if len(snap.Candidates) > 0 {
		risks, err := engine.ScoreWriteOffs(ctx, snap.Candidates)
		if err != nil {
			log.Fatal().Err(err).Msg("scoring de merma")
		}
		out.WriteOffs = risks
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("serializar reporte")
	}
}
