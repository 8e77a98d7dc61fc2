package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Engine EngineConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel y formato del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// EngineConfig parámetros ajustables del motor de analítica. Los defaults
// replican el comportamiento de producción; se pueden sobreescribir por env
// para calibrar sin recompilar.
type EngineConfig struct {
	Alpha         float64 // suavizado del forecaster (default 0.35)
	WindowDays    int     // ventana larga de demanda (default 30)
	LeadTimeDays  int     // lead time del proveedor (default 3)
	ServiceFactor float64 // factor z de nivel de servicio (default 1.65, ≈95%)
	TopRated      int     // productos en el widget de mejor calificados (default 5)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env o config.env). Las env vars tienen prioridad. Nombres
// esperados: APP_ENV, LOG_LEVEL, ENGINE_ALPHA, ENGINE_LEAD_TIME_DAYS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "frescura-engine"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Engine: EngineConfig{
			Alpha:         getFloat(v, "ENGINE_ALPHA", 0.35),
			WindowDays:    getInt(v, "ENGINE_WINDOW_DAYS", 30),
			LeadTimeDays:  getInt(v, "ENGINE_LEAD_TIME_DAYS", 3),
			ServiceFactor: getFloat(v, "ENGINE_SERVICE_FACTOR", 1.65),
			TopRated:      getInt(v, "ENGINE_TOP_RATED", 5),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case float64:
			return v.GetFloat64(key)
		case string:
			f, err := strconv.ParseFloat(v.GetString(key), 64)
			if err != nil {
				return def
			}
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
