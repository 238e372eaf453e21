package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	md2latex "github.com/alnah/go-md2latex"
	"github.com/alnah/go-md2latex/internal/assets"
	"github.com/alnah/go-md2latex/internal/config"
	"github.com/alnah/go-md2latex/internal/hints"
)

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, envCfg, env)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	logger := env.newLogger(flags.common.quiet, flags.common.verbose)
	opts, err := buildConverterOptions(cfg, logger)
	if err != nil {
		return err
	}

	poolSize := md2latex.ResolvePoolSize(workers)
	logger.Debug("starting conversion", "files", len(files), "workers", poolSize)
	pool := md2latex.NewConverterPool(poolSize, opts...)
	defer func() { _ = pool.Close() }()
	adapter := &poolAdapter{pool: pool}

	params := &conversionParams{
		strictImages: cfg.Images.Strict,
		initErr:      func() error { return withTemplateHint(adapter.initError()) },
	}
	if cfg.Document.Standalone {
		doc, err := buildDocument(ctx, adapter, cfg, env.Now)
		if err != nil {
			return err
		}
		params.document = doc
	} else if cfg.Glossary.File != "" {
		logger.Warn("glossary ignored without --standalone", "file", cfg.Glossary.File)
	}

	results := convertBatch(ctx, adapter, files, params)

	printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	var failed []error
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Err)
		}
	}
	if len(failed) > 0 {
		return &batchError{failed: failed}
	}
	return nil
}

// loadConfig loads the named config, falling back to MD2LATEX_CONFIG and
// then to the environment's default configuration.
func loadConfig(name string, envCfg *envConfig, env *Environment) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		cfg := *env.Config
		return &cfg, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.minted {
		cfg.Listings = md2latex.ListingsMinted.String()
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}

	// Image flags
	if flags.images.offline {
		cfg.Images.Offline = true
	}
	if flags.images.strict {
		cfg.Images.Strict = true
	}
	if flags.images.timeout != "" {
		cfg.Images.Timeout = flags.images.timeout
	}

	// Document flags
	if flags.document.standalone {
		cfg.Document.Standalone = true
	}
	if flags.document.class != "" {
		cfg.Document.Class = flags.document.class
	}
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}
	if flags.document.toc {
		cfg.Document.TOC = true
	}
	if flags.document.glossary != "" {
		cfg.Glossary.File = flags.document.glossary
	}
}

// resolveInputPath returns the positional input or the configured default.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	case len(args) == 1:
		return args[0], nil
	case cfg.Input.DefaultDir != "":
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// buildConverterOptions translates the configuration into converter options.
func buildConverterOptions(cfg *config.Config, logger *slog.Logger) ([]md2latex.Option, error) {
	timeout, err := cfg.Images.ImageTimeout()
	if err != nil {
		return nil, err
	}
	listings, err := md2latex.ParseListings(cfg.Listings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidValue, err)
	}

	opts := []md2latex.Option{
		md2latex.WithLogger(logger),
		md2latex.WithListings(listings),
		md2latex.WithImageTimeout(timeout),
		md2latex.WithStrictImages(cfg.Images.Strict),
	}
	if cfg.Images.Offline {
		opts = append(opts, md2latex.WithFetcher(nil))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2latex.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts, nil
}

// buildDocument prepares the standalone document shared by the batch: the
// date is resolved once and the glossary converted once.
func buildDocument(ctx context.Context, pool *poolAdapter, cfg *config.Config, now func() time.Time) (*md2latex.Document, error) {
	date, err := md2latex.ResolveDate(cfg.Document.Date, now())
	if err != nil {
		return nil, err
	}

	doc := &md2latex.Document{
		Class:        cfg.Document.Class,
		ClassOptions: cfg.Document.ClassOptions,
		Title:        cfg.Document.Title,
		Author:       cfg.Document.Author,
		Date:         date,
		TOC:          cfg.Document.TOC,
	}
	for _, name := range cfg.Document.Packages {
		doc.Packages = append(doc.Packages, md2latex.Package{Name: name})
	}

	if cfg.Glossary.File == "" {
		return doc, nil
	}

	conv := pool.pool.Acquire()
	if conv == nil {
		return nil, withTemplateHint(pool.initError())
	}
	defer pool.pool.Release(conv)

	g, err := conv.LoadGlossary(ctx, cfg.Glossary.File)
	if err != nil {
		return nil, err
	}
	doc.Glossary = md2latex.RenderGlossary(g)
	return doc, nil
}

// withTemplateHint lists overridable templates on template lookup errors.
func withTemplateHint(err error) error {
	if errors.Is(err, md2latex.ErrTemplateNotFound) || errors.Is(err, md2latex.ErrTemplateParse) {
		return fmt.Errorf("%w%s", err, hints.ForTemplateNotFound([]string{assets.DocumentTemplate, assets.SectioningTemplate}))
	}
	return err
}
