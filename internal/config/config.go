package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Stripe    StripeConfig    `yaml:"stripe"`
	TravelAPI TravelAPIConfig `yaml:"travel_api"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Jobs      JobsConfig      `yaml:"jobs"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string   `yaml:"port"`
	Env            string   `yaml:"env"`
	ReadTimeout    Duration `yaml:"read_timeout"`
	WriteTimeout   Duration `yaml:"write_timeout"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	StaticDir      string   `yaml:"static_dir"`
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string `yaml:"host"`
	Port      string `yaml:"port"`
	Namespace string `yaml:"namespace"`
	Database  string `yaml:"database"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
}

// JWTConfig holds JWT signing settings
type JWTConfig struct {
	Secret         string `yaml:"secret"`
	ExpirationMins int    `yaml:"expiration_mins"`
	Issuer         string `yaml:"issuer"`
}

// StripeConfig holds Stripe payment settings. Payments are disabled
// when SecretKey is empty.
type StripeConfig struct {
	SecretKey     string `yaml:"secret_key"`
	WebhookSecret string `yaml:"webhook_secret"`
}

// TravelAPIConfig holds settings for the external travel search API.
// The recommendation service falls back to local matching when BaseURL
// is empty or the API is unreachable.
type TravelAPIConfig struct {
	BaseURL  string   `yaml:"base_url"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	TokenTTL Duration `yaml:"token_ttl"`
	Timeout  Duration `yaml:"timeout"`
}

// JobsConfig holds settings for background jobs. The sweeper cancels
// pending unpaid bookings older than PendingMaxAge.
type JobsConfig struct {
	SweepInterval Duration `yaml:"sweep_interval"`
	PendingMaxAge Duration `yaml:"pending_max_age"`
}

// RateLimitConfig holds per-client request rate limiting settings
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Duration wraps time.Duration so YAML values can be written as
// strings like "30s" or "5m".
type Duration time.Duration

// UnmarshalYAML parses a duration string
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Load builds configuration in three layers: an optional YAML file
// named by CONFIG_FILE, then environment variable overrides, then
// defaults for anything still unset.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		expanded := expandEnvVars(string(raw))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// applyEnv overrides file values with environment variables where set
func (c *Config) applyEnv() {
	c.Server.Port = getEnv("SERVER_PORT", c.Server.Port)
	c.Server.Env = getEnv("SERVER_ENV", c.Server.Env)
	c.Server.ReadTimeout = getDurationEnv("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getDurationEnv("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.AllowedOrigins = getSliceEnv("CORS_ALLOWED_ORIGINS", c.Server.AllowedOrigins)
	c.Server.StaticDir = getEnv("STATIC_DIR", c.Server.StaticDir)

	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.Namespace = getEnv("DB_NAMESPACE", c.Database.Namespace)
	c.Database.Database = getEnv("DB_DATABASE", c.Database.Database)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)

	c.JWT.Secret = getEnv("JWT_SECRET", c.JWT.Secret)
	c.JWT.ExpirationMins = getIntEnv("JWT_EXPIRATION_MINS", c.JWT.ExpirationMins)
	c.JWT.Issuer = getEnv("JWT_ISSUER", c.JWT.Issuer)

	c.Stripe.SecretKey = getEnv("STRIPE_SECRET_KEY", c.Stripe.SecretKey)
	c.Stripe.WebhookSecret = getEnv("STRIPE_WEBHOOK_SECRET", c.Stripe.WebhookSecret)

	c.TravelAPI.BaseURL = getEnv("TRAVEL_API_BASE_URL", c.TravelAPI.BaseURL)
	c.TravelAPI.Username = getEnv("TRAVEL_API_USERNAME", c.TravelAPI.Username)
	c.TravelAPI.Password = getEnv("TRAVEL_API_PASSWORD", c.TravelAPI.Password)
	c.TravelAPI.TokenTTL = getDurationEnv("TRAVEL_API_TOKEN_TTL", c.TravelAPI.TokenTTL)
	c.TravelAPI.Timeout = getDurationEnv("TRAVEL_API_TIMEOUT", c.TravelAPI.Timeout)

	c.RateLimit.RequestsPerSecond = getFloatEnv("RATE_LIMIT_RPS", c.RateLimit.RequestsPerSecond)
	c.RateLimit.Burst = getIntEnv("RATE_LIMIT_BURST", c.RateLimit.Burst)

	c.Jobs.SweepInterval = getDurationEnv("JOBS_SWEEP_INTERVAL", c.Jobs.SweepInterval)
	c.Jobs.PendingMaxAge = getDurationEnv("JOBS_PENDING_MAX_AGE", c.Jobs.PendingMaxAge)
}

// applyDefaults fills any values still unset after file and env layers
func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = Duration(15 * time.Second)
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = Duration(15 * time.Second)
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "./static"
	}

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == "" {
		c.Database.Port = "8000"
	}
	if c.Database.Namespace == "" {
		c.Database.Namespace = "yookve"
	}
	if c.Database.Database == "" {
		c.Database.Database = "main"
	}
	if c.Database.User == "" {
		c.Database.User = "root"
	}
	if c.Database.Password == "" {
		c.Database.Password = "root"
	}

	if c.JWT.ExpirationMins == 0 {
		c.JWT.ExpirationMins = 60
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "yookve-api"
	}

	if c.TravelAPI.TokenTTL == 0 {
		c.TravelAPI.TokenTTL = Duration(30 * time.Minute)
	}
	if c.TravelAPI.Timeout == 0 {
		c.TravelAPI.Timeout = Duration(30 * time.Second)
	}

	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}

	if c.Jobs.SweepInterval == 0 {
		c.Jobs.SweepInterval = Duration(1 * time.Hour)
	}
	if c.Jobs.PendingMaxAge == 0 {
		c.Jobs.PendingMaxAge = Duration(48 * time.Hour)
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Database validation
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}

	// JWT validation - critical for production
	if c.JWT.Secret == "" {
		if c.IsProduction() {
			errs = append(errs, errors.New("JWT_SECRET is required in production"))
		}
	}
	if c.JWT.ExpirationMins <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION_MINS must be positive"))
	}

	// Stripe validation - webhook verification needs the signing secret
	if c.IsProduction() && c.Stripe.SecretKey != "" && c.Stripe.WebhookSecret == "" {
		errs = append(errs, errors.New("STRIPE_WEBHOOK_SECRET is required in production when Stripe is enabled"))
	}

	// Travel API validation - credentials required when a base URL is set
	if c.TravelAPI.BaseURL != "" {
		if c.TravelAPI.Username == "" {
			errs = append(errs, errors.New("TRAVEL_API_USERNAME is required when TRAVEL_API_BASE_URL is set"))
		}
		if c.TravelAPI.Password == "" {
			errs = append(errs, errors.New("TRAVEL_API_PASSWORD is required when TRAVEL_API_BASE_URL is set"))
		}
	}

	// Rate limit validation
	if c.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must be positive"))
	}
	if c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// envVarPattern matches ${VAR} and ${VAR:-default} references
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// expandEnvVars substitutes ${VAR} and ${VAR:-default} references in
// raw config file text before YAML parsing.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, fallback := groups[1], groups[2]
		if value := os.Getenv(name); value != "" {
			return value
		}
		return fallback
	})
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue Duration) Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return Duration(d)
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
