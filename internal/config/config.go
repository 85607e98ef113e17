package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// FailureMode decides what a handler does with an unexpected store failure.
type FailureMode string

const (
	// FailureRespond answers 500 with an error body.
	FailureRespond FailureMode = "respond"
	// FailureSilent only logs the failure and writes no body.
	FailureSilent FailureMode = "silent"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string

	TokenSecret string
	TokenTTL    time.Duration

	CORSOrigins    []string
	TrustedProxies []string
	LogLevel       string
	FailureMode    FailureMode

	UniqueBookings bool

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int

	StripeSecretKey string
	PaymentCurrency string
	TextbeltAPIKey  string

	MetricsEnabled bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "doctorsPortal")
	v.SetDefault("ACCESS_TOKEN", "")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FAILURE_MODE", string(FailureRespond))
	v.SetDefault("UNIQUE_BOOKINGS", false)
	v.SetDefault("AUTH_RATE_LIMIT_RPS", 5.0)
	v.SetDefault("AUTH_RATE_LIMIT_BURST", 10)
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("PAYMENT_CURRENCY", "usd")
	v.SetDefault("TEXTBELT_API_KEY", "")
	v.SetDefault("METRICS_ENABLED", true)
}

// Load reads envFile (when present), the environment and an optional
// config.yaml, in increasing order of precedence: file < environment.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		logrus.Debugf("no %s file found, relying on environment variables", envFile)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:               v.GetString("PORT"),
		MongoURI:           v.GetString("MONGO_URI"),
		MongoDatabase:      v.GetString("MONGO_DATABASE"),
		TokenSecret:        v.GetString("ACCESS_TOKEN"),
		TokenTTL:           v.GetDuration("TOKEN_TTL"),
		CORSOrigins:        splitList(v.GetString("CORS_ORIGINS")),
		TrustedProxies:     splitList(v.GetString("TRUSTED_PROXIES")),
		LogLevel:           v.GetString("LOG_LEVEL"),
		FailureMode:        FailureMode(strings.ToLower(v.GetString("FAILURE_MODE"))),
		UniqueBookings:     v.GetBool("UNIQUE_BOOKINGS"),
		AuthRateLimitRPS:   v.GetFloat64("AUTH_RATE_LIMIT_RPS"),
		AuthRateLimitBurst: v.GetInt("AUTH_RATE_LIMIT_BURST"),
		StripeSecretKey:    v.GetString("STRIPE_SECRET_KEY"),
		PaymentCurrency:    strings.ToLower(v.GetString("PAYMENT_CURRENCY")),
		TextbeltAPIKey:     v.GetString("TEXTBELT_API_KEY"),
		MetricsEnabled:     v.GetBool("METRICS_ENABLED"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.FailureMode {
	case FailureRespond, FailureSilent:
	default:
		return fmt.Errorf("FAILURE_MODE must be %q or %q, got %q", FailureRespond, FailureSilent, c.FailureMode)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.AuthRateLimitRPS <= 0 || c.AuthRateLimitBurst <= 0 {
		return errors.New("AUTH_RATE_LIMIT_RPS and AUTH_RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// RequireServe checks the settings only the HTTP server needs.
func (c *Config) RequireServe() error {
	if c.TokenSecret == "" {
		return errors.New("ACCESS_TOKEN environment variable not set")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
