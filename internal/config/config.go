package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Export
	}

	Database struct {
		Path        string
		BusyTimeout time.Duration
		LogLevel    string // silent, error, warn or info
	}
	Export struct {
		Dir string // Directory for markdown and JSON exports
	}
)

// NewConfig loads an optional .env file and then reads the environment.
func NewConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using environment only")
	}
	return FromViper(viper.New())
}

// FromViper builds the config from v, applying defaults for anything unset.
func FromViper(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_busy_timeout", "5s")
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("export_dir", DefaultExportDir)

	return &Config{
		Database: Database{
			Path:        v.GetString("DATABASE_PATH"),
			BusyTimeout: v.GetDuration("DATABASE_BUSY_TIMEOUT"),
			LogLevel:    v.GetString("DATABASE_LOG_LEVEL"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
	}
}
