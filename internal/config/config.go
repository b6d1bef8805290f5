package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 默认 JWT 密钥，生产环境必须覆盖
const DefaultJWTSecret = "your-secret-key-change-in-production"

// Config 应用配置
type Config struct {
	Port        string     `yaml:"port" validate:"required"`
	DBPath      string     `yaml:"db_path" validate:"required"`
	JWTSecret   string     `yaml:"jwt_secret" validate:"required_if=AuthEnabled true"`
	AuthEnabled bool       `yaml:"auth_enabled"`
	GinMode     string     `yaml:"gin_mode" validate:"oneof=debug release test"`
	RateLimit   int        `yaml:"rate_limit" validate:"gte=0"` // requests per minute per IP, 0 disables
	CORSOrigins []string   `yaml:"cors_allowed_origins"`
	Data        DataConfig `yaml:"data"`
}

// DataConfig 数据源配置
type DataConfig struct {
	Source      string        `yaml:"source" validate:"oneof=csv sqlite"`
	Dir         string        `yaml:"dir"`
	BaseURL     string        `yaml:"base_url" validate:"omitempty,url"`
	LoadTimeout time.Duration `yaml:"load_timeout" validate:"gt=0"`
	Files       DataFiles     `yaml:"files"`
}

// DataFiles overrides the CSV export names. Empty fields keep the defaults.
type DataFiles struct {
	Trips    string `yaml:"trips"`
	Routes   string `yaml:"routes"`
	Drivers  string `yaml:"drivers"`
	Segments string `yaml:"segments"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Port:        ":8080",
		DBPath:      "./data/dispatch.db",
		JWTSecret:   DefaultJWTSecret,
		AuthEnabled: true,
		GinMode:     "release",
		RateLimit:   120,
		CORSOrigins: []string{"*"},
		Data: DataConfig{
			Source:      "csv",
			Dir:         "./data",
			LoadTimeout: 30 * time.Second,
		},
	}
}

// Load 加载配置: defaults, then CONFIG_FILE (YAML), then environment.
// A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		c.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.GinMode = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		c.Data.Source = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		c.Data.BaseURL = v
	}

	if v := os.Getenv("AUTH_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AUTH_ENABLED %q: %w", v, err)
		}
		c.AuthEnabled = b
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT %q: %w", v, err)
		}
		c.RateLimit = n
	}
	if v := os.Getenv("LOAD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid LOAD_TIMEOUT %q: %w", v, err)
		}
		c.Data.LoadTimeout = d
	}
	return nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
