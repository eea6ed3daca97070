package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, coupon API URL, etc.)
// - default: Values common across all environments (timezone, cookie name, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CouponAPI CouponAPIConfig
	CORS      CORSConfig
	Log       LogConfig
	Session   SessionConfig
	Artwork   ArtworkConfig
	Locale    LocaleConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// how long GET / waits for the campaign catalog before rendering a loading state
	CatalogWait time.Duration `envconfig:"CATALOG_WAIT" default:"3s"`
}

type CouponAPIConfig struct {
	BaseURL string `envconfig:"COUPON_API_BASE_URL" required:"true"`
	// 0 disables the client timeout
	Timeout time.Duration `envconfig:"COUPON_API_TIMEOUT" default:"0s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Madrid"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type SessionConfig struct {
	CookieName    string        `envconfig:"SESSION_COOKIE_NAME" default:"coupon_session"`
	Domain        string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	Secure        bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite      string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`
}

type ArtworkConfig struct {
	// optional directory with coupon_100.png, coupon_150.png and coupon_200.png;
	// embedded artwork is used when empty
	Dir string `envconfig:"ARTWORK_DIR" default:""`
}

type LocaleConfig struct {
	Language string `envconfig:"APP_LOCALE" default:"es-ES"`
}

type TelemetryConfig struct {
	Enabled        bool   `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint       string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4318"`
	Insecure       bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	ServiceName    string `envconfig:"OTEL_SERVICE_NAME" default:"coupon-portal"`
	ServiceVersion string `envconfig:"OTEL_SERVICE_VERSION" default:"dev"`
}

func LoadConfig() (Config, error) {
	// a missing .env is fine; real deployments inject the environment directly
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:        "8889", // Test port
			CatalogWait: time.Second,
		},
		CouponAPI: CouponAPIConfig{
			BaseURL: "http://localhost:18080",
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Madrid",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Session: SessionConfig{
			CookieName:    "coupon_session",
			SameSite:      "Lax",
			TTL:           30 * time.Minute,
			SweepInterval: time.Minute,
		},
		Locale: LocaleConfig{
			Language: "es-ES",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "coupon-portal-test",
		},
	}
}
