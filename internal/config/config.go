package config

import (
	"fmt"
	"strings"

	apperrors "football-data-backend/internal/errors"

	"github.com/spf13/viper"
)

// PayPal operating modes
const (
	PayPalModeSandbox = "sandbox"
	PayPalModeLive    = "live"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// StoreFailOpen turns store errors into empty read results instead of 500s
	StoreFailOpen bool `mapstructure:"STORE_FAIL_OPEN"`

	// HTTP surface
	StaticDir      string   `mapstructure:"STATIC_DIR"`
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// PayPal configuration
	PayPalClientID     string `mapstructure:"PAYPAL_CLIENT_ID"`
	PayPalClientSecret string `mapstructure:"PAYPAL_CLIENT_SECRET"`
	PayPalMode         string `mapstructure:"PAYPAL_MODE"`
	PayPalBaseURL      string `mapstructure:"PAYPAL_BASE_URL"`

	// Seeder
	SeedConnectAttempts int `mapstructure:"SEED_CONNECT_ATTEMPTS"`
}

// Load reads configuration from environment variables and config files.
// PayPal credentials are required.
func Load() (*Config, error) {
	return load(true)
}

// LoadForSeeding reads the same configuration without requiring PayPal
// credentials, for tools that only touch the store.
func LoadForSeeding() (*Config, error) {
	return load(false)
}

func load(requirePayments bool) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// ALLOWED_ORIGINS from the environment arrives as one comma separated string
	config.AllowedOrigins = splitOrigins(config.AllowedOrigins)

	if config.PayPalMode == "" {
		config.PayPalMode = PayPalModeSandbox
		if config.IsProduction() {
			config.PayPalMode = PayPalModeLive
		}
	}
	config.PayPalMode = strings.ToLower(config.PayPalMode)

	// Validate required fields
	if err := validate(&config, requirePayments); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "football")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("STORE_FAIL_OPEN", true)

	viper.SetDefault("STATIC_DIR", "static")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	// PayPal defaults; credentials have none on purpose
	viper.SetDefault("PAYPAL_CLIENT_ID", "")
	viper.SetDefault("PAYPAL_CLIENT_SECRET", "")
	viper.SetDefault("PAYPAL_MODE", "")
	viper.SetDefault("PAYPAL_BASE_URL", "")

	viper.SetDefault("SEED_CONNECT_ATTEMPTS", 60)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitOrigins(origins []string) []string {
	var out []string
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func validate(config *Config, requirePayments bool) error {
	var missing []string
	if requirePayments && config.PayPalClientID == "" {
		missing = append(missing, "PAYPAL_CLIENT_ID")
	}
	if requirePayments && config.PayPalClientSecret == "" {
		missing = append(missing, "PAYPAL_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return apperrors.NewConfigurationError("missing PayPal credentials: " + strings.Join(missing, " and ") + " required")
	}

	if config.PayPalMode != PayPalModeSandbox && config.PayPalMode != PayPalModeLive {
		return apperrors.NewConfigurationError(fmt.Sprintf("PAYPAL_MODE must be %q or %q, got %q", PayPalModeSandbox, PayPalModeLive, config.PayPalMode))
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// PayPalSandbox reports whether payments go to the non-billing environment
func (c *Config) PayPalSandbox() bool {
	return c.PayPalMode != PayPalModeLive
}
