package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("expected default env development, got %q", cfg.Server.Env)
	}
	if cfg.Database.Namespace != "yookve" {
		t.Errorf("expected default namespace yookve, got %q", cfg.Database.Namespace)
	}
	if cfg.JWT.ExpirationMins != 60 {
		t.Errorf("expected default expiration 60, got %d", cfg.JWT.ExpirationMins)
	}
	if cfg.TravelAPI.TokenTTL.Std() != 30*time.Minute {
		t.Errorf("expected default token TTL 30m, got %v", cfg.TravelAPI.TokenTTL.Std())
	}
	if cfg.RateLimit.RequestsPerSecond != 10 {
		t.Errorf("expected default RPS 10, got %v", cfg.RateLimit.RequestsPerSecond)
	}
	if cfg.RateLimit.Burst != 20 {
		t.Errorf("expected default burst 20, got %d", cfg.RateLimit.Burst)
	}
	if cfg.Jobs.SweepInterval.Std() != time.Hour {
		t.Errorf("expected default sweep interval 1h, got %v", cfg.Jobs.SweepInterval.Std())
	}
	if cfg.Jobs.PendingMaxAge.Std() != 48*time.Hour {
		t.Errorf("expected default pending max age 48h, got %v", cfg.Jobs.PendingMaxAge.Std())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "surreal.internal")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("TRAVEL_API_TIMEOUT", "45s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Database.Host != "surreal.internal" {
		t.Errorf("expected host surreal.internal, got %q", cfg.Database.Host)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("expected secret from env, got %q", cfg.JWT.Secret)
	}
	if cfg.RateLimit.RequestsPerSecond != 2.5 {
		t.Errorf("expected RPS 2.5, got %v", cfg.RateLimit.RequestsPerSecond)
	}
	if cfg.TravelAPI.Timeout.Std() != 45*time.Second {
		t.Errorf("expected timeout 45s, got %v", cfg.TravelAPI.Timeout.Std())
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	content := `
server:
  port: "3000"
  env: test
  read_timeout: 20s
database:
  host: db.example
  namespace: travel
jwt:
  secret: file-secret
  expiration_mins: 120
stripe:
  secret_key: sk_test_abc
travel_api:
  base_url: https://travel.example
  username: svc
  password: ${TRAVEL_API_FILE_PW:-fallback-pw}
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("expected port 3000 from file, got %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout.Std() != 20*time.Second {
		t.Errorf("expected read timeout 20s, got %v", cfg.Server.ReadTimeout.Std())
	}
	if cfg.Database.Host != "db.example" {
		t.Errorf("expected host db.example, got %q", cfg.Database.Host)
	}
	if cfg.JWT.ExpirationMins != 120 {
		t.Errorf("expected expiration 120, got %d", cfg.JWT.ExpirationMins)
	}
	if cfg.Stripe.SecretKey != "sk_test_abc" {
		t.Errorf("expected Stripe key from file, got %q", cfg.Stripe.SecretKey)
	}
	if cfg.TravelAPI.Password != "fallback-pw" {
		t.Errorf("expected expanded default password, got %q", cfg.TravelAPI.Password)
	}
	// Defaults still fill what the file omits
	if cfg.Database.Port != "8000" {
		t.Errorf("expected default db port, got %q", cfg.Database.Port)
	}
}

func TestLoad_ConfigFile_EnvWins(t *testing.T) {
	content := "server:\n  port: \"3000\"\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVER_PORT", "4000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "4000" {
		t.Errorf("expected env to override file, got %q", cfg.Server.Port)
	}
}

func TestLoad_MissingConfigFile_ReturnsError(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.JWT.Secret = "secret"

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_ProductionRequiresJWTSecret(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Server.Env = "production"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("expected JWT_SECRET error, got %v", err)
	}
}

func TestValidate_ProductionStripeNeedsWebhookSecret(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Server.Env = "production"
	cfg.JWT.Secret = "secret"
	cfg.Stripe.SecretKey = "sk_live_abc"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "STRIPE_WEBHOOK_SECRET") {
		t.Errorf("expected webhook secret error, got %v", err)
	}
}

func TestValidate_TravelAPICredentials(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.TravelAPI.BaseURL = "https://travel.example"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "TRAVEL_API_USERNAME") {
		t.Errorf("expected username error, got %v", err)
	}
	if !strings.Contains(err.Error(), "TRAVEL_API_PASSWORD") {
		t.Errorf("expected password error, got %v", err)
	}
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Server.Env = "staging"
	cfg.JWT.ExpirationMins = 0
	cfg.RateLimit.Burst = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"SERVER_ENV", "JWT_EXPIRATION_MINS", "RATE_LIMIT_BURST"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error mentioning %s, got %v", want, err)
		}
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("EXPAND_TEST_SET", "actual")

	cases := []struct {
		in   string
		want string
	}{
		{"${EXPAND_TEST_SET}", "actual"},
		{"${EXPAND_TEST_SET:-default}", "actual"},
		{"${EXPAND_TEST_UNSET:-default}", "default"},
		{"${EXPAND_TEST_UNSET}", ""},
		{"prefix-${EXPAND_TEST_SET}-suffix", "prefix-actual-suffix"},
		{"no vars here", "no vars here"},
	}

	for _, tc := range cases {
		if got := expandEnvVars(tc.in); got != tc.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Env: "development"}}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to be true")
	}
	if cfg.IsProduction() {
		t.Error("expected IsProduction to be false")
	}
}
