package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite" // gorm + SQLite file (default)
	StorageMemory StorageBackend = "memory" // process memory, lost on exit
	StorageRedis  StorageBackend = "redis"  // keys under Redis.KeyPrefix
)

type (
	Config struct {
		Storage
		Database
		Redis
		Log
		Auth
		Demo
	}

	Storage struct {
		Backend StorageBackend
	}
	Database struct {
		Path string
	}
	Redis struct {
		Addr      string
		Password  string
		DB        int
		KeyPrefix string
		Timeout   time.Duration
	}
	Log struct {
		Mode string // "dev" or "prod"
	}
	Auth struct {
		VerifyPasswords bool // Hash at sign-up and check at sign-in
		BcryptCost      int
	}
	Demo struct {
		Enabled       bool   // Enable periodic reset to the sample data
		ResetSchedule string // Cron format: "*/15 * * * *" = every 15 minutes
	}
)

// LoadDotEnv loads variables from the given files (".env" when none are
// given) into the process environment. Missing files are ignored and
// variables already set are never overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("storage_backend", string(StorageSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_key_prefix", DefaultRedisKeyPrefix)
	v.SetDefault("redis_timeout", "5s")

	v.SetDefault("log_mode", "dev")

	// Auth defaults
	v.SetDefault("auth_verify_passwords", false)
	v.SetDefault("auth_bcrypt_cost", 12) // bcrypt cost factor

	// Demo mode defaults
	v.SetDefault("demo_mode", false)
	v.SetDefault("demo_reset_schedule", "*/15 * * * *")

	return &Config{
		Storage: Storage{
			Backend: StorageBackend(strings.ToLower(v.GetString("STORAGE_BACKEND"))),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Redis: Redis{
			Addr:      v.GetString("REDIS_ADDR"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			KeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
			Timeout:   v.GetDuration("REDIS_TIMEOUT"),
		},
		Log: Log{
			Mode: v.GetString("LOG_MODE"),
		},
		Auth: Auth{
			VerifyPasswords: v.GetBool("AUTH_VERIFY_PASSWORDS"),
			BcryptCost:      v.GetInt("AUTH_BCRYPT_COST"),
		},
		Demo: Demo{
			Enabled:       v.GetBool("DEMO_MODE"),
			ResetSchedule: v.GetString("DEMO_RESET_SCHEDULE"),
		},
	}
}

// Validate rejects settings the storage layer cannot be built from.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageSQLite:
		if c.Database.Path == "" {
			return errors.New("DATABASE_PATH is required for the sqlite backend")
		}
	case StorageRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is required for the redis backend")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want sqlite, memory or redis)", c.Storage.Backend)
	}
	return nil
}
