package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Addr               string `mapstructure:"app_addr"`
	DatabaseURL        string `mapstructure:"database_url"`
	JWTSecret          string `mapstructure:"jwt_secret"`
	Environment        string `mapstructure:"app_env"`
	StoreDriver        string `mapstructure:"store_driver"`
	SQLitePath         string `mapstructure:"sqlite_path"`
	RunMigrations      bool   `mapstructure:"run_migrations"`
	MigrationsDir      string `mapstructure:"migrations_dir"`
	RankingConcurrency int    `mapstructure:"ranking_fetch_concurrency"`
	NotificationLimit  int    `mapstructure:"notification_limit"`
	MetricsEnabled     bool   `mapstructure:"metrics_enabled"`
}

var defaults = map[string]any{
	"app_addr":                  ":8080",
	"database_url":              "",
	"jwt_secret":                "",
	"app_env":                   "development",
	"store_driver":              DriverPostgres,
	"sqlite_path":               "data/appraisal.db",
	"run_migrations":            true,
	"migrations_dir":            "migrations",
	"ranking_fetch_concurrency": 4,
	"notification_limit":        15,
	"metrics_enabled":           true,
}

// Load reads defaults, then the optional YAML file at cfgFile, then the
// environment. Later sources win.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", cfgFile, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER is sqlite")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q", DriverPostgres, DriverSQLite)
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.RankingConcurrency <= 0 {
		return fmt.Errorf("RANKING_FETCH_CONCURRENCY must be positive")
	}
	if c.NotificationLimit <= 0 {
		return fmt.Errorf("NOTIFICATION_LIMIT must be positive")
	}
	return nil
}
