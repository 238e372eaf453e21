// Package config loads the YAML configuration of the md2latex CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-md2latex/internal/dateutil"
	"github.com/alnah/go-md2latex/internal/fileutil"
	"github.com/alnah/go-md2latex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength   = 4096
	MaxClassLength  = 50
	MaxOptionLength = 100
	MaxTitleLength  = 200
	MaxAuthorLength = 200
	MaxDateLength   = 60
	MaxPackages     = 50
)

// Defaults applied to values left empty.
const (
	DefaultClass        = "report"
	DefaultListings     = "verbatim"
	DefaultImageTimeout = 30 * time.Second
	MaxImageTimeout     = 10 * time.Minute
)

// identRe matches LaTeX class and package names.
var identRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// Config holds all configuration for a conversion run.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Glossary GlossaryConfig `yaml:"glossary"`
	Images   ImagesConfig   `yaml:"images"`
	Listings string         `yaml:"listings"` // "verbatim" (default) or "minted"
	Assets   AssetsConfig   `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DocumentConfig controls standalone document assembly. With Standalone
// off, only the body fragment is written.
type DocumentConfig struct {
	Standalone   bool     `yaml:"standalone"`
	Class        string   `yaml:"class"`
	ClassOptions []string `yaml:"classOptions"`
	Title        string   `yaml:"title"`
	Author       string   `yaml:"author"`
	Date         string   `yaml:"date"` // literal, "today", "auto" or "auto:FORMAT"
	TOC          bool     `yaml:"toc"`
	Packages     []string `yaml:"packages"` // extra \usepackage names
}

// GlossaryConfig points at a glossary definition file.
type GlossaryConfig struct {
	File string `yaml:"file"`
}

// ImagesConfig controls remote image handling.
type ImagesConfig struct {
	Offline bool   `yaml:"offline"` // keep remote URLs without fetching
	Strict  bool   `yaml:"strict"`  // fail on unavailable images
	Timeout string `yaml:"timeout"` // e.g. "30s"; empty = default
}

// AssetsConfig defines template loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded templates
}

// ImageTimeout returns the parsed image timeout, or the default when unset.
func (i ImagesConfig) ImageTimeout() (time.Duration, error) {
	if i.Timeout == "" {
		return DefaultImageTimeout, nil
	}
	d, err := time.ParseDuration(i.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: images.timeout: %v", ErrInvalidValue, err)
	}
	if d <= 0 || d > MaxImageTimeout {
		return 0, fmt.Errorf("%w: images.timeout: %s (must be > 0 and <= %s)", ErrInvalidValue, d, MaxImageTimeout)
	}
	return d, nil
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"glossary.file", c.Glossary.File, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"document.class", c.Document.Class, MaxClassLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.date", c.Document.Date, MaxDateLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Document.Class != "" && !identRe.MatchString(c.Document.Class) {
		return fmt.Errorf("%w: document.class %q", ErrInvalidValue, c.Document.Class)
	}
	for i, opt := range c.Document.ClassOptions {
		if err := validateFieldLength(fmt.Sprintf("document.classOptions[%d]", i), opt, MaxOptionLength); err != nil {
			return err
		}
		if strings.ContainsAny(opt, "[]{}\\") {
			return fmt.Errorf("%w: document.classOptions[%d] %q", ErrInvalidValue, i, opt)
		}
	}
	if len(c.Document.Packages) > MaxPackages {
		return fmt.Errorf("%w: document.packages: %d entries (max %d)", ErrInvalidValue, len(c.Document.Packages), MaxPackages)
	}
	for i, pkg := range c.Document.Packages {
		if !identRe.MatchString(pkg) {
			return fmt.Errorf("%w: document.packages[%d] %q", ErrInvalidValue, i, pkg)
		}
	}
	if _, err := dateutil.Resolve(c.Document.Date, time.Time{}); err != nil {
		return fmt.Errorf("%w: document.date: %v", ErrInvalidValue, err)
	}

	switch strings.ToLower(c.Listings) {
	case "", "verbatim", "minted":
	default:
		return fmt.Errorf("%w: listings %q (must be verbatim or minted)", ErrInvalidValue, c.Listings)
	}

	if _, err := c.Images.ImageTimeout(); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that writes body fragments with
// verbatim listings and fetches remote images.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Document.Class == "" {
		c.Document.Class = DefaultClass
	}
	if c.Listings == "" {
		c.Listings = DefaultListings
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Empty values receive their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2latex", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
