package main

import (
	"context"
	"fmt"

	md2latex "github.com/alnah/go-md2latex"
)

// runGlossaryCmd renders a glossary file as LaTeX definitions.
func runGlossaryCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGlossaryFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, loadEnvConfig(), env)
	if err != nil {
		return err
	}

	path := cfg.Glossary.File
	switch {
	case len(positional) > 1:
		return fmt.Errorf("%w: expected one glossary file, got %d", ErrUsage, len(positional))
	case len(positional) == 1:
		path = positional[0]
	case path == "":
		return fmt.Errorf("%w: glossary file", ErrNoInput)
	}

	logger := env.newLogger(flags.common.quiet, flags.common.verbose)
	opts, err := buildConverterOptions(cfg, logger)
	if err != nil {
		return err
	}
	conv, err := md2latex.NewConverter(opts...)
	if err != nil {
		return withTemplateHint(err)
	}
	defer func() { _ = conv.Close() }()

	g, err := conv.LoadGlossary(ctx, path)
	if err != nil {
		return err
	}
	logger.Debug("glossary loaded", "acronyms", len(g.Acronyms), "terms", len(g.Terms))

	return writeOutput(env, flags.output, md2latex.RenderGlossary(g))
}
