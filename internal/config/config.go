package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server       ServerConfig        `toml:"server"`
	Database     DatabaseConfig      `toml:"database"`
	Logs         LogsConfig          `toml:"logs"`
	Metrics      MetricsConfig       `toml:"metrics"`
	Services     []ServiceConfig     `toml:"services"`
	PricingRules []PricingRuleConfig `toml:"pricing_rules"`
	SlotPlans    []SlotPlanConfig    `toml:"slot_plans"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ServiceConfig is one catalog entry. Entries override the built-in
// defaults for their vertical.
type ServiceConfig struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Type        string   `toml:"type"`
	Template    string   `toml:"template"`
	Features    []string `toml:"features"`
	BookingFlow string   `toml:"booking_flow"`
	HasMenu     bool     `toml:"has_menu"`
	HasGallery  bool     `toml:"has_gallery"`
	HasReviews  bool     `toml:"has_reviews"`
}

// PricingRuleConfig is one multiplier rule. An empty service_id makes the
// rule global.
type PricingRuleConfig struct {
	ID         string  `toml:"id"`
	ServiceID  string  `toml:"service_id"`
	Condition  string  `toml:"condition"`
	Multiplier float64 `toml:"multiplier"`
}

// SlotPlanConfig seeds the calendar for one service day when the database
// holds no slots yet.
type SlotPlanConfig struct {
	ServiceID       string   `toml:"service_id"`
	Date            string   `toml:"date"` // YYYY-MM-DD
	Times           []string `toml:"times"`
	BasePrice       int64    `toml:"base_price"` // minor currency units
	DurationMinutes int      `toml:"duration_minutes"`
}

// DSN builds the Postgres connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load reads the toml file and applies environment overrides. A .env file
// next to the binary is picked up when present; real environment variables
// win over both.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.DBName = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server http_port: %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database dbname is required")
	}
	if c.Logs.File == "" {
		return fmt.Errorf("logs file is required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics path is required when metrics are enabled")
	}
	for i, rule := range c.PricingRules {
		if rule.ID == "" {
			return fmt.Errorf("pricing_rules[%d]: id is required", i)
		}
		if rule.Condition == "" {
			return fmt.Errorf("pricing_rules[%d]: condition is required", i)
		}
		if rule.Multiplier <= 0 {
			return fmt.Errorf("pricing_rules[%d]: multiplier must be positive, got %f", i, rule.Multiplier)
		}
	}
	for i, plan := range c.SlotPlans {
		if plan.ServiceID == "" {
			return fmt.Errorf("slot_plans[%d]: service_id is required", i)
		}
		if plan.Date == "" {
			return fmt.Errorf("slot_plans[%d]: date is required", i)
		}
		if plan.BasePrice < 0 {
			return fmt.Errorf("slot_plans[%d]: base_price must not be negative", i)
		}
	}
	return nil
}
