package app

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// CMSBaseURL points at the Strapi-style content API that owns every
	// entity. The service never persists anything locally.
	CMSBaseURL  string `envconfig:"CMS_BASE_URL" default:"http://127.0.0.1:1337/api"`
	CMSAPIToken string `envconfig:"CMS_API_TOKEN"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`

	QueryCacheTTL     time.Duration `envconfig:"QUERY_CACHE_TTL" default:"30s"`
	DashboardCacheTTL time.Duration `envconfig:"DASHBOARD_CACHE_TTL" default:"10m"`
	DashboardWarmCron string        `envconfig:"DASHBOARD_WARM_CRON" default:"*/10 * * * *"`

	DefaultLocale     string `envconfig:"DEFAULT_LOCALE" default:"ar"`
	LowStockThreshold int    `envconfig:"LOW_STOCK_THRESHOLD" default:"10"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.CMSBaseURL) == "" {
		return nil, errors.New("cms base url must be provided")
	}
	if cfg.DefaultLocale != "ar" && cfg.DefaultLocale != "en" {
		return nil, errors.New("default locale must be ar or en")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
