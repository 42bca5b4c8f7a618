/*
Package config loads process configuration.

SOURCES (later wins):
  1. Built-in defaults
  2. .env file in the working directory, if present (godotenv)
  3. Process environment (VACATION_*)
  4. Command-line flags

KEYS:
  -port   VACATION_PORT          HTTP server port (default: 8080)
  -store  VACATION_STORE         sqlite | memory | redis (default: sqlite)
  -db     VACATION_DB            SQLite database path (default: vacation.db)
  -redis  VACATION_REDIS_ADDR    Redis address (default: localhost:6379)
  -seed   VACATION_SEED          Seed sample employees into an empty store (default: true)
  -cors   VACATION_CORS_ORIGINS  Comma-separated allowed origins
  -date   (flag only)            Reference date for reports, YYYY-MM-DD (default: today)
*/
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Port      int
	Store     string
	DBPath    string
	RedisAddr string
	Seed      bool
	Date      string
	Origins   []string
}

func defaults() Config {
	return Config{
		Port:      8080,
		Store:     StoreSQLite,
		DBPath:    "vacation.db",
		RedisAddr: "localhost:6379",
		Seed:      true,
		Origins:   []string{"http://localhost:5173", "http://localhost:8080"},
	}
}

// LoadDotEnv loads .env into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load builds a Config from the environment and args (without the program
// name). Flag usage and errors are written to output.
func Load(name string, args []string, output io.Writer) (Config, error) {
	cfg := defaults()
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "storage backend: sqlite, memory or redis")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (\":memory:\" for in-memory)")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for -store=redis")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "seed sample employees into an empty store")
	fs.StringVar(&cfg.Date, "date", cfg.Date, "reference date YYYY-MM-DD (default today)")
	origins := fs.String("cors", strings.Join(cfg.Origins, ","), "comma-separated allowed CORS origins")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Origins = splitList(*origins)

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	var invalid []string

	if v := env("VACATION_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			invalid = append(invalid, "VACATION_PORT")
		} else {
			cfg.Port = port
		}
	}
	if v := env("VACATION_STORE"); v != "" {
		cfg.Store = strings.ToLower(v)
	}
	if v := env("VACATION_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := env("VACATION_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := env("VACATION_CORS_ORIGINS"); v != "" {
		cfg.Origins = splitList(v)
	}
	if v := env("VACATION_SEED"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, "VACATION_SEED")
		} else {
			cfg.Seed = seed
		}
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unknown store %q (use sqlite, memory or redis)", c.Store)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}
