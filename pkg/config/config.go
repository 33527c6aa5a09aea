package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envPrefix = "TANGRAM_"
	// DefaultEnvFile is read on start when it exists.
	DefaultEnvFile = ".env"
)

// LoadEnvFile adds the variables of an env file to the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %v", path, err)
	}
	return nil
}

// Config is the runtime configuration of the game.
type Config struct {
	LogLevel string
	// Debug draws the debug overlay
	Debug bool
	// DebugAddr is the listen address of the state inspector, disabled when empty
	DebugAddr string
	// Seed seeds the piece shuffle, zero picks a random seed
	Seed      int64
	HintImage string
	// Scale multiplies the window size
	Scale float64
}

// Parse reads flags from args. Every flag defaults to the value of the
// matching TANGRAM_* environment variable when it is set.
func Parse(args []string) (*Config, error) {
	debug, err := envBool("DEBUG", false)
	if err != nil {
		return nil, err
	}
	seed, err := envInt64("SEED", 0)
	if err != nil {
		return nil, err
	}
	scale, err := envFloat64("SCALE", 1)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	flags := flag.NewFlagSet("tangram", flag.ContinueOnError)
	flags.StringVar(&cfg.LogLevel, "log-level", envString("LOG_LEVEL", "info"), "Log level")
	flags.BoolVar(&cfg.Debug, "debug", debug, "Draw the debug overlay")
	flags.StringVar(&cfg.DebugAddr, "debug-addr", envString("DEBUG_ADDR", ""), "Address of the read-only state inspector, disabled when empty")
	flags.Int64Var(&cfg.Seed, "seed", seed, "Seed for the piece shuffle, random when 0")
	flags.StringVar(&cfg.HintImage, "hint-image", envString("HINT_IMAGE", ""), "Image shown by the hint button")
	flags.Float64Var(&cfg.Scale, "scale", scale, "Window scale factor")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %v", err)
	}

	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", cfg.Scale)
	}
	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s%s: %v", envPrefix, key, err)
	}
	return b, nil
}

func envInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s%s: %v", envPrefix, key, err)
	}
	return i, nil
}

func envFloat64(key string, fallback float64) (float64, error) {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s%s: %v", envPrefix, key, err)
	}
	return f, nil
}
