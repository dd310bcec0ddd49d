// Package config resolves run defaults from the environment and an
// optional .env file. Command-line flags override everything here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvPreset  = "GRAYLEVELS_PRESET"
	EnvFormats = "GRAYLEVELS_FORMATS"
	EnvQuality = "GRAYLEVELS_QUALITY"
	EnvWorkers = "GRAYLEVELS_WORKERS"
	EnvOut     = "GRAYLEVELS_OUT"
	EnvMatte   = "GRAYLEVELS_MATTE"
)

// DefaultOutDir is used when neither flags nor env name an output dir.
const DefaultOutDir = "./graylevels_out"

// Config holds environment-level defaults. Zero values mean "unset":
// the preset or built-in default applies.
type Config struct {
	Preset  string
	Formats []string
	Quality int
	Workers int
	OutDir  string
	Matte   string
}

// Load reads envFile into the process environment (existing variables
// win, a missing file is not an error) and then resolves Config.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv resolves Config through lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(k string) string {
		v, _ := lookup(k)
		return strings.TrimSpace(v)
	}

	cfg := Config{
		Preset: get(EnvPreset),
		OutDir: get(EnvOut),
		Matte:  strings.ToLower(get(EnvMatte)),
	}
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}
	if v := get(EnvFormats); v != "" {
		for _, f := range strings.Split(v, ",") {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				cfg.Formats = append(cfg.Formats, f)
			}
		}
	}

	var err error
	if cfg.Quality, err = intVar(EnvQuality, get(EnvQuality), 0, 100); err != nil {
		return cfg, err
	}
	if cfg.Workers, err = intVar(EnvWorkers, get(EnvWorkers), 0, 1024); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func intVar(key, raw string, lo, hi int) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%s: %d out of range [%d, %d]", key, n, lo, hi)
	}
	return n, nil
}
