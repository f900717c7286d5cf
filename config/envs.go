// Package config loads runtime settings for the gridpath executables from the
// environment, optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/thalath/gridpath/grid"
	"github.com/thalath/gridpath/search"
)

// ErrInvalidValue indicates an environment variable that could not be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvGridWidth    = "GRID_WIDTH"
	EnvGridHeight   = "GRID_HEIGHT"
	EnvAlgorithm    = "GRIDPATH_ALGORITHM"
	EnvStepInterval = "STEP_INTERVAL_MS"
	EnvLookahead    = "LOOKAHEAD"
	EnvHostIP       = "HOST_IP"
	EnvRESTPort     = "REST_PORT"
	EnvGinMode      = "GIN_MODE"
)

// Config holds the application's configuration values.
type Config struct {
	GridWidth    int              // Number of columns
	GridHeight   int              // Number of rows
	Algorithm    search.Algorithm // Default algorithm for new runs
	StepInterval time.Duration    // Delay between two revealed playback steps
	Lookahead    int              // Upcoming visited cells to highlight
	HostIP       string           // Host IP for the HTTP server
	RESTPort     int              // Port for the HTTP server
	GinMode      string           // Mode for the Gin framework (release, debug, test)
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// Load reads the configuration from the environment. Each named file is
// loaded first with godotenv (default ".env"); a missing file is logged and
// ignored, and variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		HostIP:  getEnvWithDefault(EnvHostIP, "0.0.0.0"),
		GinMode: getEnvWithDefault(EnvGinMode, "release"),
	}
	var err error
	if cfg.GridWidth, err = getEnvAsInt(EnvGridWidth, grid.DefaultWidth); err != nil {
		return Config{}, err
	}
	if cfg.GridHeight, err = getEnvAsInt(EnvGridHeight, grid.DefaultHeight); err != nil {
		return Config{}, err
	}
	if cfg.Lookahead, err = getEnvAsInt(EnvLookahead, 2); err != nil {
		return Config{}, err
	}
	if cfg.RESTPort, err = getEnvAsInt(EnvRESTPort, 8080); err != nil {
		return Config{}, err
	}
	ms, err := getEnvAsInt(EnvStepInterval, 50)
	if err != nil {
		return Config{}, err
	}
	cfg.StepInterval = time.Duration(ms) * time.Millisecond

	cfg.Algorithm, err = search.ParseAlgorithm(getEnvWithDefault(EnvAlgorithm, search.AStar.String()))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, EnvAlgorithm, err)
	}

	if cfg.GridWidth <= 0 || cfg.GridHeight <= 0 {
		return Config{}, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidValue, cfg.GridWidth, cfg.GridHeight)
	}
	if cfg.StepInterval <= 0 {
		return Config{}, fmt.Errorf("%w: %s must be positive", ErrInvalidValue, EnvStepInterval)
	}
	if cfg.Lookahead < 0 {
		return Config{}, fmt.Errorf("%w: %s cannot be negative", ErrInvalidValue, EnvLookahead)
	}

	return cfg, nil
}

// getEnvAsInt retrieves an environment variable as an integer, or def if unset.
func getEnvAsInt(key string, def int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return def, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
