// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server          ServerConfig          `yaml:"server"`
	Database        DatabaseConfig        `yaml:"database"`
	Aggregator      AggregatorConfig      `yaml:"aggregator"`
	Market          MarketConfig          `yaml:"market"`
	Scoring         ScoringConfig         `yaml:"scoring"`
	Recommendations RecommendationsConfig `yaml:"recommendations"`
	Schedule        ScheduleConfig        `yaml:"schedule"`
	Notifications   NotificationsConfig   `yaml:"notifications"`
	Logging         LoggingConfig         `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// AggregatorConfig defines listing aggregator settings. Locations overrides
// the set of location feeds polled per ingestion cycle; when empty the
// market table's locations are polled.
type AggregatorConfig struct {
	Source           string          `yaml:"source"` // fixture, http
	Endpoint         string          `yaml:"endpoint"`
	APIKey           string          `yaml:"api_key"`
	FixturesPath     string          `yaml:"fixtures_path"`
	Locations        []string        `yaml:"locations"`
	PageSize         int             `yaml:"page_size"`
	MaxCallsPerCycle int             `yaml:"max_calls_per_cycle"`
	StaggerOffset    time.Duration   `yaml:"stagger_offset"`
	RateLimit        RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines aggregator rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// MarketConfig defines the market data table settings.
type MarketConfig struct {
	TablePath         string `yaml:"table_path"` // optional YAML override of built-in data
	RefreshWindowDays int    `yaml:"refresh_window_days"`
	MinSampleSize     int    `yaml:"min_sample_size"`
}

// ScoringConfig defines the per-factor match score weights used by the
// recommendation engine. Leaving the section out keeps the built-in
// weights; setting any field makes the section authoritative.
type ScoringConfig struct {
	Location   float64 `yaml:"location"`
	Type       float64 `yaml:"type"`
	Budget     float64 `yaml:"budget"`
	Bedrooms   float64 `yaml:"bedrooms"`
	Engagement float64 `yaml:"engagement"`
}

// IsZero reports whether no weight was configured.
func (s ScoringConfig) IsZero() bool {
	return s == ScoringConfig{}
}

// RecommendationsConfig defines recommendation generation settings.
type RecommendationsConfig struct {
	DefaultLimit  int `yaml:"default_limit"`
	CandidatePool int `yaml:"candidate_pool"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	IngestionInterval     time.Duration `yaml:"ingestion_interval"`
	MarketRefreshInterval time.Duration `yaml:"market_refresh_interval"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Webhook WebhookConfig `yaml:"webhook"`
}

// WebhookConfig defines generic webhook settings.
type WebhookConfig struct {
	Enabled bool              `yaml:"enabled"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyAggregatorDefaults(&cfg.Aggregator)
	applyMarketDefaults(&cfg.Market)
	applyScoringDefaults(&cfg.Scoring)
	applyRecommendationsDefaults(&cfg.Recommendations)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyAggregatorDefaults(a *AggregatorConfig) {
	if a.Source == "" {
		a.Source = "fixture"
	}
	if a.PageSize == 0 {
		a.PageSize = 50
	}
	if a.MaxCallsPerCycle == 0 {
		a.MaxCallsPerCycle = 50
	}
	if a.StaggerOffset == 0 {
		a.StaggerOffset = 5 * time.Second
	}
	applyRateLimitDefaults(&a.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyMarketDefaults(m *MarketConfig) {
	if m.RefreshWindowDays == 0 {
		m.RefreshWindowDays = 90
	}
	if m.MinSampleSize == 0 {
		m.MinSampleSize = 3
	}
}

func applyScoringDefaults(s *ScoringConfig) {
	if s.IsZero() {
		*s = ScoringConfig{
			Location:   25,
			Type:       20,
			Budget:     30,
			Bedrooms:   15,
			Engagement: 10,
		}
	}
}

func applyRecommendationsDefaults(r *RecommendationsConfig) {
	if r.DefaultLimit == 0 {
		r.DefaultLimit = 10
	}
	if r.CandidatePool == 0 {
		r.CandidatePool = 200
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.IngestionInterval == 0 {
		s.IngestionInterval = 15 * time.Minute
	}
	if s.MarketRefreshInterval == 0 {
		s.MarketRefreshInterval = 6 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	switch cfg.Aggregator.Source {
	case "fixture":
		// Built-in fixtures are used when no path is configured.
	case "http":
		if cfg.Aggregator.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("aggregator.endpoint is required when source is http"),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf("aggregator.source must be one of: fixture, http (got %q)", cfg.Aggregator.Source),
		)
	}

	for name, w := range map[string]float64{
		"scoring.location":   cfg.Scoring.Location,
		"scoring.type":       cfg.Scoring.Type,
		"scoring.budget":     cfg.Scoring.Budget,
		"scoring.bedrooms":   cfg.Scoring.Bedrooms,
		"scoring.engagement": cfg.Scoring.Engagement,
	} {
		if w < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative (got %v)", name, w))
		}
	}

	if cfg.Notifications.Webhook.Enabled && cfg.Notifications.Webhook.URL == "" {
		errs = append(errs, fmt.Errorf("notifications.webhook.url is required when enabled"))
	}

	return errors.Join(errs...)
}
