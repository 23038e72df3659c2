// Package config reads CasseROLL settings from a .env file and the
// process environment. Command-line flags override these values in the
// cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/casseroll/internal/logger"
)

// Environment variable names.
const (
	EnvCatalog  = "CASSEROLL_CATALOG"
	EnvSeed     = "CASSEROLL_SEED"
	EnvLogLevel = "CASSEROLL_LOG_LEVEL"
	EnvLogFile  = "CASSEROLL_LOG_FILE"
	EnvChaos    = "CASSEROLL_CHAOS"
)

// DefaultLogFile keeps logs out of the terminal UI.
const DefaultLogFile = ".casseroll-logs/casseroll.log"

// Config is the resolved runtime configuration.
type Config struct {
	CatalogPath string // empty means the built-in catalog
	Seed        int64
	HasSeed     bool // false means a non-deterministic generator
	LogLevel    logger.Level
	LogFile     string // "stderr" logs to the console
	Chaos       bool   // start tables in chaos mode
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel: logger.LevelNormal,
		LogFile:  DefaultLogFile,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// environment, then resolves the configuration from it. Missing .env
// files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv resolves the configuration through getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	cfg.CatalogPath = strings.TrimSpace(getenv(EnvCatalog))

	if v := strings.TrimSpace(getenv(EnvSeed)); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: not an integer", EnvSeed, v)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = logger.ParseLevel(v)
	}

	if v := strings.TrimSpace(getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}

	if v := strings.TrimSpace(getenv(EnvChaos)); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: not a boolean", EnvChaos, v)
		}
		cfg.Chaos = on
	}

	return cfg, nil
}
