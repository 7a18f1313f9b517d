package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
	Wardrobe WardrobeConfig `yaml:"wardrobe"`
	Trending TrendingConfig `yaml:"trending"`
	Images   ImagesConfig   `yaml:"images"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// AuthConfig controls credential handling and token issuance.
type AuthConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"tokenTtl"`
}

// WardrobeConfig locates the clothing catalog.
type WardrobeConfig struct {
	CatalogPath string         `yaml:"catalogPath"`
	Postgres    PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// TrendingConfig controls the occasion popularity counters.
type TrendingConfig struct {
	TopLimit int         `yaml:"topLimit"`
	Valkey   RedisConfig `yaml:"valkey"`
}

// RedisConfig contains connection information for counter storage.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// ImagesConfig locates wardrobe item images.
type ImagesConfig struct {
	Dir string   `yaml:"dir"`
	S3  S3Config `yaml:"s3"`
}

// S3Config contains S3-compatible object storage settings.
type S3Config struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("AUTH_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Auth.TokenTTL = parsed
		}
	}
	if v := os.Getenv("WARDROBE_CATALOG_PATH"); v != "" {
		cfg.Wardrobe.CatalogPath = v
	}
	if v := os.Getenv("WARDROBE_POSTGRES_DSN"); v != "" {
		cfg.Wardrobe.Postgres.DSN = v
	}
	if v := os.Getenv("WARDROBE_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Wardrobe.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("WARDROBE_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Wardrobe.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("TRENDING_TOP_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Trending.TopLimit = parsed
		}
	}
	if v := os.Getenv("TRENDING_VALKEY_ENABLED"); v != "" {
		cfg.Trending.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("TRENDING_VALKEY_ADDR"); v != "" {
		cfg.Trending.Valkey.Addr = v
	}
	if v := os.Getenv("IMAGES_DIR"); v != "" {
		cfg.Images.Dir = v
	}
	if v := os.Getenv("IMAGES_S3_ENABLED"); v != "" {
		cfg.Images.S3.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("IMAGES_S3_ENDPOINT"); v != "" {
		cfg.Images.S3.Endpoint = v
	}
	if v := os.Getenv("IMAGES_S3_ACCESS_KEY"); v != "" {
		cfg.Images.S3.AccessKey = v
	}
	if v := os.Getenv("IMAGES_S3_SECRET_KEY"); v != "" {
		cfg.Images.S3.SecretKey = v
	}
	if v := os.Getenv("IMAGES_S3_BUCKET"); v != "" {
		cfg.Images.S3.Bucket = v
	}
	if v := os.Getenv("IMAGES_S3_REGION"); v != "" {
		cfg.Images.S3.Region = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Auth: AuthConfig{
			Secret:   "dev-only-secret",
			TokenTTL: 24 * time.Hour,
		},
		Wardrobe: WardrobeConfig{
			CatalogPath: "configs/clothes.json",
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
		},
		Trending: TrendingConfig{
			TopLimit: 10,
			Valkey: RedisConfig{
				Enabled: false,
				Addr:    "",
			},
		},
		Images: ImagesConfig{
			Dir: "static/images",
			S3: S3Config{
				Enabled: false,
				Region:  "auto",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth.secret cannot be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTtl must be positive")
	}
	if strings.TrimSpace(c.Wardrobe.CatalogPath) == "" && strings.TrimSpace(c.Wardrobe.Postgres.DSN) == "" {
		return errors.New("wardrobe.catalogPath cannot be empty without a postgres dsn")
	}
	if c.Trending.TopLimit <= 0 {
		return errors.New("trending.topLimit must be positive")
	}
	if c.Trending.Valkey.Enabled && strings.TrimSpace(c.Trending.Valkey.Addr) == "" {
		return errors.New("trending.valkey.addr cannot be empty when valkey is enabled")
	}
	if c.Images.S3.Enabled {
		if strings.TrimSpace(c.Images.S3.Endpoint) == "" {
			return errors.New("images.s3.endpoint cannot be empty when s3 is enabled")
		}
		if strings.TrimSpace(c.Images.S3.Bucket) == "" {
			return errors.New("images.s3.bucket cannot be empty when s3 is enabled")
		}
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
