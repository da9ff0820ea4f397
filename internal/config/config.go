package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

const defaultBanner = "Flask SQLAlchemy Lab 1"

type Config struct {
	Port        string
	Env         string
	Banner      string
	StoreDriver string
	DatabaseURL string
	SQLitePath  string
	MySQLDSN    string
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "5555"),
		Env:         getEnv("GO_ENV", "development"),
		Banner:      getEnv("APP_BANNER", defaultBanner),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "")),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "instance/app.db"),
		MySQLDSN:    getEnv("MYSQL_DSN", ""),
	}

	if cfg.StoreDriver == "" {
		cfg.StoreDriver = DriverMemory
		if cfg.DatabaseURL != "" {
			cfg.StoreDriver = DriverPostgres
		}
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("config: DATABASE_URL is required for the %s driver", cfg.StoreDriver)
		}
	case DriverMySQL:
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("config: MYSQL_DSN is required for the %s driver", cfg.StoreDriver)
		}
	default:
		return nil, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

// IsProduction reports whether GO_ENV names a production deployment
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
