package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2latex/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "MD2LATEX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // MD2LATEX_CONFIG: config file name or path
	InputDir     string // MD2LATEX_INPUT_DIR: default input directory
	OutputDir    string // MD2LATEX_OUTPUT_DIR: default output directory
	ImageTimeout string // MD2LATEX_IMAGE_TIMEOUT: remote image timeout
	Listings     string // MD2LATEX_LISTINGS: verbatim or minted
	AssetPath    string // MD2LATEX_ASSET_PATH: template override directory
	DocDate      string // MD2LATEX_DOC_DATE: document date
	Offline      bool   // MD2LATEX_OFFLINE: keep remote image URLs
	Workers      int    // MD2LATEX_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2LATEX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2LATEX_CONFIG":        true,
	"MD2LATEX_INPUT_DIR":     true,
	"MD2LATEX_OUTPUT_DIR":    true,
	"MD2LATEX_IMAGE_TIMEOUT": true,
	"MD2LATEX_LISTINGS":      true,
	"MD2LATEX_ASSET_PATH":    true,
	"MD2LATEX_DOC_DATE":      true,
	"MD2LATEX_OFFLINE":       true,
	"MD2LATEX_WORKERS":       true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numeric or boolean values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("MD2LATEX_CONFIG"),
		InputDir:     os.Getenv("MD2LATEX_INPUT_DIR"),
		OutputDir:    os.Getenv("MD2LATEX_OUTPUT_DIR"),
		ImageTimeout: os.Getenv("MD2LATEX_IMAGE_TIMEOUT"),
		Listings:     os.Getenv("MD2LATEX_LISTINGS"),
		AssetPath:    os.Getenv("MD2LATEX_ASSET_PATH"),
		DocDate:      os.Getenv("MD2LATEX_DOC_DATE"),
	}

	if offline := os.Getenv("MD2LATEX_OFFLINE"); offline != "" {
		if b, err := strconv.ParseBool(offline); err == nil {
			cfg.Offline = b
		}
	}

	if workers := os.Getenv("MD2LATEX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2LATEX_* variables.
// Helps catch typos like MD2LATEX_OUTPUTDIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.ImageTimeout != "" && cfg.Images.Timeout == "" {
		cfg.Images.Timeout = env.ImageTimeout
	}
	// Listings is never empty after defaults; the env var only overrides verbatim.
	if env.Listings != "" && cfg.Listings == config.DefaultListings {
		cfg.Listings = env.Listings
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.DocDate != "" && cfg.Document.Date == "" {
		cfg.Document.Date = env.DocDate
	}
	if env.Offline {
		cfg.Images.Offline = true
	}
}
