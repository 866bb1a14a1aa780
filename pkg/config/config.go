package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Fuentes de dataset soportadas.
const (
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Dataset DatasetConfig
	DB      DBConfig
	Profit  ProfitConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host             string
	Port             int
	CORSAllowOrigins string // lista separada por comas; "*" permite todos
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatasetConfig origen del dataset de órdenes.
type DatasetConfig struct {
	Source   string        // file | postgres
	Path     string        // ruta del JSON cuando Source = file
	Encoding string        // utf-8 | iso-8859-1
	CacheTTL time.Duration // 0 = releer en cada petición
}

// DBConfig configuración de PostgreSQL (solo si Dataset.Source = postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// ProfitConfig reparto de utilidades y capital inicial de caja.
type ProfitConfig struct {
	CustomerShare      decimal.Decimal
	CompanyShare       decimal.Decimal
	InitialCashBalance decimal.Decimal
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATASET_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: .env o config.env en el directorio actual o ./config
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "rentabilidad-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:             getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:             getInt(v, "HTTP_PORT", 5000),
			CORSAllowOrigins: getString(v, "CORS_ALLOW_ORIGINS", "*"),
		},
		Dataset: DatasetConfig{
			Source:   strings.ToLower(getString(v, "DATASET_SOURCE", DatasetSourceFile)),
			Path:     getString(v, "DATASET_PATH", "data/orders.json"),
			Encoding: getString(v, "DATASET_ENCODING", "utf-8"),
			CacheTTL: time.Duration(getInt(v, "DATASET_CACHE_TTL_SECONDS", 0)) * time.Second,
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "rentabilidad"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 10)),
		},
	}

	switch cfg.Dataset.Source {
	case DatasetSourceFile, DatasetSourcePostgres:
	default:
		return nil, fmt.Errorf("DATASET_SOURCE inválido: %q (file|postgres)", cfg.Dataset.Source)
	}

	var err error
	if cfg.Profit.CustomerShare, err = getDecimal(v, "PROFIT_CUSTOMER_SHARE", "0.375"); err != nil {
		return nil, err
	}
	if cfg.Profit.CompanyShare, err = getDecimal(v, "PROFIT_COMPANY_SHARE", "1"); err != nil {
		return nil, err
	}
	if cfg.Profit.InitialCashBalance, err = getDecimal(v, "INITIAL_CASH_BALANCE", "100000"); err != nil {
		return nil, err
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDecimal lee un decimal exacto (sin pasar por float64).
func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	s := def
	if v.IsSet(key) {
		s = strings.TrimSpace(v.GetString(key))
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s inválido: %q", key, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s no puede ser negativo: %s", key, s)
	}
	return d, nil
}
