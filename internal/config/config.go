package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Events   EventsConfig   `yaml:"events"`
	Content  ContentConfig  `yaml:"content"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Digest   DigestConfig   `yaml:"digest"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type ContentConfig struct {
	CatalogPath   string `yaml:"catalog_path"`
	ComparesPath  string `yaml:"compares_path"`
	QuestionsPath string `yaml:"questions_path"`
}

type ScoringConfig struct {
	CategoryUnit        float64 `yaml:"category_unit"`
	KeywordUnit         float64 `yaml:"keyword_unit"`
	BadgeUnit           float64 `yaml:"badge_unit"`
	PricingBonus        float64 `yaml:"pricing_bonus"`
	EnterpriseThreshold int     `yaml:"enterprise_threshold"`
	DisplayCeiling      float64 `yaml:"display_ceiling"`
}

type DigestConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) DigestInterval() time.Duration {
	return time.Duration(c.Digest.IntervalMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Content: ContentConfig{
			CatalogPath:  "content/tools.json",
			ComparesPath: "content/compares.json",
		},
		Scoring: ScoringConfig{
			CategoryUnit:        30,
			KeywordUnit:         5,
			BadgeUnit:           10,
			PricingBonus:        10,
			EnterpriseThreshold: 70,
			DisplayCeiling:      200,
		},
		Digest: DigestConfig{
			IntervalMs: 60000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TOOLSCOUT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("TOOLSCOUT_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("TOOLSCOUT_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("TOOLSCOUT_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("TOOLSCOUT_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("TOOLSCOUT_CATALOG_PATH"); v != "" {
		cfg.Content.CatalogPath = v
	}
	if v := os.Getenv("TOOLSCOUT_COMPARES_PATH"); v != "" {
		cfg.Content.ComparesPath = v
	}
	if v := os.Getenv("TOOLSCOUT_QUESTIONS_PATH"); v != "" {
		cfg.Content.QuestionsPath = v
	}
	if v := os.Getenv("TOOLSCOUT_DIGEST_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Digest.IntervalMs = n
		}
	}
	if v := os.Getenv("TOOLSCOUT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
