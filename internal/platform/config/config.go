// Package config loads application configuration from YAML, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
		// AllowOrigins lists the origins CORS accepts; empty allows all.
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"server"`
	Dashboard struct {
		Addr        string        `yaml:"addr"`
		BackendURL  string        `yaml:"backend_url"`
		Timeout     time.Duration `yaml:"timeout"`
		ChartFormat string        `yaml:"chart_format"`
		ChartWidth  int           `yaml:"chart_width"`
		ChartHeight int           `yaml:"chart_height"`
		Location    string        `yaml:"location"`
	} `yaml:"dashboard"`
	Database struct {
		Driver         string        `yaml:"driver"`
		SQLitePath     string        `yaml:"sqlite_path"`
		User           string        `yaml:"user"`
		Password       string        `yaml:"password"`
		Name           string        `yaml:"name"`
		Host           string        `yaml:"host"`
		Port           string        `yaml:"port"`
		SSLMode        string        `yaml:"ssl_mode"`
		ConnectTimeout time.Duration `yaml:"connect_timeout"`
		AutoMigrate    bool          `yaml:"auto_migrate"`
	} `yaml:"database"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	VatComply struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
		// RateLimit is the number of calls allowed per minute.
		RateLimit int `yaml:"rate_limit"`
	} `yaml:"vatcomply"`
	Quotes struct {
		MaxPeriodDays int `yaml:"max_period_days"`
	} `yaml:"quotes"`
	Ingest struct {
		Days    int           `yaml:"days"`
		Cron    string        `yaml:"cron"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"ingest"`
	Cache struct {
		Namespace string `yaml:"namespace"`
		// RefreshHour is the local hour at which stored quotes are considered stale.
		RefreshHour int    `yaml:"refresh_hour"`
		Location    string `yaml:"location"`
	} `yaml:"cache"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadDotEnv loads .env style files into the environment. Missing files are ignored.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				slog.Warn("failed to load env file", "path", p, "error", err)
			}
		}
	}
}

// Load reads config from a YAML file, then applies environment variable overrides and defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	// 0 is a valid value for these, so they are seeded before decoding
	cfg.Database.AutoMigrate = true
	cfg.Cache.RefreshHour = 17

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	str := map[string]*string{
		"SERVER_ADDR":        &c.Server.Addr,
		"DASHBOARD_ADDR":     &c.Dashboard.Addr,
		"BACKEND_URL":        &c.Dashboard.BackendURL,
		"CHART_FORMAT":       &c.Dashboard.ChartFormat,
		"DB_DRIVER":          &c.Database.Driver,
		"SQLITE_PATH":        &c.Database.SQLitePath,
		"DB_USER":            &c.Database.User,
		"DB_PASSWORD":        &c.Database.Password,
		"DB_NAME":            &c.Database.Name,
		"DB_HOST":            &c.Database.Host,
		"DB_PORT":            &c.Database.Port,
		"DB_SSLMODE":         &c.Database.SSLMode,
		"REDIS_HOST":         &c.Redis.Host,
		"REDIS_PORT":         &c.Redis.Port,
		"REDIS_PASSWORD":     &c.Redis.Password,
		"VATCOMPLY_BASE_URL": &c.VatComply.BaseURL,
		"INGEST_CRON":        &c.Ingest.Cron,
		"LOG_LEVEL":          &c.Log.Level,
	}
	for k, dst := range str {
		if v := os.Getenv(k); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"REDIS_DB":           &c.Redis.DB,
		"MAX_PERIOD_DAYS":    &c.Quotes.MaxPeriodDays,
		"INGEST_DAYS":        &c.Ingest.Days,
		"VATCOMPLY_RATE":     &c.VatComply.RateLimit,
		"CACHE_REFRESH_HOUR": &c.Cache.RefreshHour,
	}
	for k, dst := range ints {
		if v := os.Getenv(k); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("env %s: %w", k, err)
			}
			*dst = n
		}
	}

	if v := os.Getenv("RUN_MIGRATIONS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("env RUN_MIGRATIONS: %w", err)
		}
		c.Database.AutoMigrate = b
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		c.Server.AllowOrigins = strings.Split(v, ",")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Dashboard.Addr == "" {
		c.Dashboard.Addr = ":8080"
	}
	if c.Dashboard.BackendURL == "" {
		c.Dashboard.BackendURL = "http://localhost:8000"
	}
	if c.Dashboard.Timeout == 0 {
		c.Dashboard.Timeout = 10 * time.Second
	}
	if c.Dashboard.ChartFormat == "" {
		c.Dashboard.ChartFormat = "png"
	}
	if c.Dashboard.ChartWidth == 0 {
		c.Dashboard.ChartWidth = 900
	}
	if c.Dashboard.ChartHeight == 0 {
		c.Dashboard.ChartHeight = 450
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/cotacoes.db"
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.ConnectTimeout == 0 {
		c.Database.ConnectTimeout = 60 * time.Second
	}
	if c.Redis.Port == "" {
		c.Redis.Port = "6379"
	}
	if c.VatComply.BaseURL == "" {
		c.VatComply.BaseURL = "https://api.vatcomply.com"
	}
	if c.VatComply.Timeout == 0 {
		c.VatComply.Timeout = 10 * time.Second
	}
	if c.VatComply.RateLimit == 0 {
		c.VatComply.RateLimit = 60
	}
	if c.Quotes.MaxPeriodDays == 0 {
		c.Quotes.MaxPeriodDays = 6
	}
	if c.Ingest.Days == 0 {
		c.Ingest.Days = 5
	}
	if c.Ingest.Timeout == 0 {
		c.Ingest.Timeout = 5 * time.Minute
	}
	if c.Cache.Namespace == "" {
		c.Cache.Namespace = "cotacoes"
	}
	if c.Cache.Location == "" {
		c.Cache.Location = "America/Sao_Paulo"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite":
	case "postgres":
		if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
			return fmt.Errorf("database.host, database.name and database.user are required for postgres")
		}
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	switch c.Dashboard.ChartFormat {
	case "png", "svg":
	default:
		return fmt.Errorf("dashboard.chart_format must be png or svg, got %q", c.Dashboard.ChartFormat)
	}
	if c.Dashboard.ChartWidth <= 0 || c.Dashboard.ChartHeight <= 0 {
		return fmt.Errorf("dashboard chart size must be positive")
	}
	if c.Quotes.MaxPeriodDays < 0 {
		return fmt.Errorf("quotes.max_period_days must not be negative")
	}
	if c.Ingest.Days < 0 {
		return fmt.Errorf("ingest.days must not be negative")
	}
	if c.Cache.RefreshHour < 0 || c.Cache.RefreshHour > 23 {
		return fmt.Errorf("cache.refresh_hour must be between 0 and 23")
	}
	if _, err := time.LoadLocation(c.Cache.Location); err != nil {
		return fmt.Errorf("cache.location: %w", err)
	}
	if c.Dashboard.Location != "" {
		if _, err := time.LoadLocation(c.Dashboard.Location); err != nil {
			return fmt.Errorf("dashboard.location: %w", err)
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// RedisEnabled reports whether a Redis host is configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// SlogLevel parses log.level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}

// DashboardLocation is the time zone used for "today" on the dashboard; local time when unset.
func (c *Config) DashboardLocation() *time.Location {
	if c.Dashboard.Location == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Dashboard.Location)
	if err != nil {
		return time.Local
	}
	return loc
}

// CacheLocation is the time zone of cache.refresh_hour.
func (c *Config) CacheLocation() *time.Location {
	loc, err := time.LoadLocation(c.Cache.Location)
	if err != nil {
		return time.UTC
	}
	return loc
}
