package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerSettings struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type DatabaseSettings struct {
	Profile      string `mapstructure:"profile"`
	ProfilesPath string `mapstructure:"profiles_path"`
	// Zero leaves the database/sql default in place.
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type ReportSettings struct {
	Timezone           string  `mapstructure:"timezone"`
	MaxParallelQueries int     `mapstructure:"max_parallel_queries"`
	ReliaProductIDs    []int64 `mapstructure:"relia_product_ids"`
}

type Settings struct {
	Server   ServerSettings   `mapstructure:"server"`
	Database DatabaseSettings `mapstructure:"database"`
	Report   ReportSettings   `mapstructure:"report"`
}

// Location resolves the report timezone; empty means the process local zone.
func (s ReportSettings) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid report timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// LoadSettings reads the YAML settings file at path (optional) and applies
// DASHBOARD_* environment overrides, e.g. DASHBOARD_SERVER_PORT. Every key
// needs a default here, otherwise viper ignores its environment variable.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("database.profile", "pos")
	v.SetDefault("database.profiles_path", "dashboard.ini")
	v.SetDefault("database.max_open_conns", 0)
	v.SetDefault("database.conn_max_lifetime", time.Duration(0))
	v.SetDefault("report.timezone", "")
	v.SetDefault("report.max_parallel_queries", 4)
	v.SetDefault("report.relia_product_ids", []int64{})

	v.SetEnvPrefix("dashboard")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if cfg.Report.MaxParallelQueries < 1 {
		return nil, fmt.Errorf("report.max_parallel_queries must be positive, got %d", cfg.Report.MaxParallelQueries)
	}
	if cfg.Database.MaxOpenConns < 0 {
		return nil, fmt.Errorf("database.max_open_conns must not be negative, got %d", cfg.Database.MaxOpenConns)
	}
	return &cfg, nil
}
