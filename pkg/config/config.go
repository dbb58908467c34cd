package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	StorageBackend   string
	Timezone         *time.Location
	RateLimitPeriod  time.Duration
	RateLimitCount   int64
	ChartDefaultDays int
}

// Storage backend names accepted in STORAGE_BACKEND.
const (
	StoragePgsql  = "pgsql"
	StorageMemory = "memory"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_BACKEND", StoragePgsql)
	viper.SetDefault("LEDGER_TIMEZONE", "UTC")
	viper.SetDefault("RATE_LIMIT_PERIOD", "1m")
	viper.SetDefault("RATE_LIMIT_COUNT", 300)
	viper.SetDefault("CHART_DEFAULT_DAYS", 7)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimitCount = viper.GetInt64("RATE_LIMIT_COUNT")
	cfg.ChartDefaultDays = viper.GetInt("CHART_DEFAULT_DAYS")

	cfg.StorageBackend = viper.GetString("STORAGE_BACKEND")
	switch cfg.StorageBackend {
	case StoragePgsql, StorageMemory:
	default:
		log.Printf("Warning: Invalid value for STORAGE_BACKEND ('%s'). Defaulting to %s.\n", cfg.StorageBackend, StoragePgsql)
		cfg.StorageBackend = StoragePgsql
	}

	if cfg.StorageBackend == StoragePgsql && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	tzName := viper.GetString("LEDGER_TIMEZONE")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: Invalid value for LEDGER_TIMEZONE ('%s'). Defaulting to UTC.\n", tzName)
		loc = time.UTC
	}
	cfg.Timezone = loc

	rlPeriodStr := viper.GetString("RATE_LIMIT_PERIOD")
	rlPeriod, err := time.ParseDuration(rlPeriodStr)
	if err != nil {
		rlPeriod = time.Minute
		if rlPeriodStr != "" {
			log.Printf("Warning: Invalid value for RATE_LIMIT_PERIOD ('%s'). Defaulting to %s.\n", rlPeriodStr, rlPeriod.String())
		}
	}
	cfg.RateLimitPeriod = rlPeriod

	if cfg.ChartDefaultDays <= 0 {
		log.Printf("Warning: Invalid value for CHART_DEFAULT_DAYS (%d). Defaulting to 7.\n", cfg.ChartDefaultDays)
		cfg.ChartDefaultDays = 7
	}

	return cfg, nil
}
