package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		Log
		Wishlist
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   string // "sqlite" or "postgres"
		Path     string // SQLite file path
		URL      string // PostgreSQL DSN
		LogLevel string // gorm logger level: silent, error, warn, info
	}
	Auth struct {
		BcryptCost int
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // json or console
	}
	Wishlist struct {
		// StrictRemove makes removal of a missing entry an error instead of a no-op.
		StrictRemove bool
	}
)

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_url", "")
	v.SetDefault("database_log_level", "warn")

	v.SetDefault("auth_bcrypt_cost", DefaultBcryptCost)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("wishlist_strict_remove", false)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   v.GetString("DATABASE_DRIVER"),
			Path:     v.GetString("DATABASE_PATH"),
			URL:      v.GetString("DATABASE_URL"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Auth: Auth{
			BcryptCost: v.GetInt("AUTH_BCRYPT_COST"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Wishlist: Wishlist{
			StrictRemove: v.GetBool("WISHLIST_STRICT_REMOVE"),
		},
	}
}
