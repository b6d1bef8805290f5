package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so the host environment
// does not leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "PORT", "DB_PATH", "JWT_SECRET", "GIN_MODE",
		"CORS_ALLOWED_ORIGINS", "DATA_SOURCE", "DATA_DIR", "DATA_BASE_URL",
		"AUTH_ENABLED", "RATE_LIMIT", "LOAD_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != ":8080" || cfg.Data.Source != "csv" || cfg.Data.LoadTimeout != 30*time.Second {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_SOURCE", "sqlite")
	t.Setenv("RATE_LIMIT", "0")
	t.Setenv("LOAD_TIMEOUT", "5s")
	t.Setenv("AUTH_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != ":9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Data.Source != "sqlite" || cfg.RateLimit != 0 || cfg.Data.LoadTimeout != 5*time.Second || cfg.AuthEnabled {
		t.Errorf("env not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispatch.yml")
	yml := `port: ":7000"
gin_mode: debug
data:
  source: csv
  base_url: http://files.example/data
  load_timeout: 10s
  files:
    trips: trips.csv
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	clearEnv(t)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GIN_MODE", "test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != ":7000" || cfg.Data.BaseURL != "http://files.example/data" || cfg.Data.Files.Trips != "trips.csv" {
		t.Errorf("yaml not applied: %+v", cfg)
	}
	if cfg.Data.LoadTimeout != 10*time.Second {
		t.Errorf("LoadTimeout = %v", cfg.Data.LoadTimeout)
	}
	if cfg.GinMode != "test" {
		t.Errorf("env should win over yaml, GinMode = %q", cfg.GinMode)
	}
	if cfg.DBPath != "./data/dispatch.db" {
		t.Errorf("unset yaml fields should keep defaults, DBPath = %q", cfg.DBPath)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unknown source", "DATA_SOURCE", "excel"},
		{"bad rate limit", "RATE_LIMIT", "many"},
		{"bad timeout", "LOAD_TIMEOUT", "soon"},
		{"bad gin mode", "GIN_MODE", "verbose"},
		{"bad base url", "DATA_BASE_URL", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestValidateRequiresSecretWhenAuthEnabled(t *testing.T) {
	cfg := Default()
	cfg.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty secret with auth enabled")
	}

	cfg.AuthEnabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("secret is optional without auth: %v", err)
	}
}
