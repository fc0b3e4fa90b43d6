package main

import (
	"context"
	"errors"
	"fmt"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for site builds.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrContentDir  = errors.New("content directory not found")
	ErrNoPages     = errors.New("no markdown files found")
	ErrOutputDir   = errors.New("failed to prepare output directory")
	ErrStaticCopy  = errors.New("failed to copy static files")
	ErrBuildFailed = errors.New("build failed")
)

// runBuild parses build flags and builds the site.
// An optional positional argument overrides the content directory.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: build takes at most one content directory, got %d", ErrUsage, len(positional))
	}
	if len(positional) == 1 {
		flags.site.content = positional[0]
	}
	env.setVerbosity(flags.common.quiet, flags.common.verbose)

	cfg, err := loadSiteConfig(&flags.common, &flags.site, env)
	if err != nil {
		return err
	}
	return buildSite(ctx, cfg, &flags.common, env)
}

// buildSite empties the output directory, copies static files, and converts
// every page. Discovery runs first so a bad content dir leaves output intact.
func buildSite(ctx context.Context, cfg *config.Config, common *commonFlags, env *Environment) error {
	start := env.Now()

	if !fileutil.DirExists(cfg.Content.Dir) {
		return fmt.Errorf("%w: %s%s", ErrContentDir, cfg.Content.Dir, hints.ForContentDir())
	}

	conv, err := newSiteConverter(cfg)
	if err != nil {
		return err
	}

	files, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPages, cfg.Content.Dir)
	}

	if err := fileutil.ResetDir(cfg.Output.Dir); err != nil {
		return fmt.Errorf("%w: %v%s", ErrOutputDir, err, hints.ForOutputDirectory())
	}
	if err := copyStatic(cfg.Static.Dir, cfg.Output.Dir, env); err != nil {
		return err
	}

	workers := mdsite.ResolveWorkers(cfg.Build.Workers)
	env.Logger.Debug("building pages", "pages", len(files), "workers", workers, "engine", cfg.Site.Engine)

	results := buildPages(ctx, conv, files, workers)
	summary := printResults(results, common.quiet, common.verbose, env)

	env.Logger.Info("build finished",
		"pages", summary.Succeeded,
		"failed", summary.Failed,
		"output", cfg.Output.Dir,
		"duration", env.Now().Sub(start),
	)

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d pages: %w", ErrBuildFailed, summary.Failed, len(results), firstError(results))
	}
	return nil
}

// newSiteConverter creates the page converter described by cfg.
func newSiteConverter(cfg *config.Config) (*mdsite.Converter, error) {
	conv, err := mdsite.NewConverter(
		mdsite.WithEngine(cfg.Site.Engine),
		mdsite.WithTemplate(cfg.Site.Template),
		mdsite.WithStyle(cfg.Site.Style),
		mdsite.WithBasePath(cfg.Site.BasePath),
		mdsite.WithThemeDir(cfg.Assets.ThemeDir),
	)
	switch {
	case errors.Is(err, mdsite.ErrStyleNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.StyleNames()))
	case errors.Is(err, mdsite.ErrTemplateNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForTemplateNotFound())
	case err != nil:
		return nil, err
	}
	return conv, nil
}

// copyStatic copies the static directory into the output directory.
// A missing static directory is not an error.
func copyStatic(staticDir, outputDir string, env *Environment) error {
	if staticDir == "" || !fileutil.DirExists(staticDir) {
		env.Logger.Debug("no static directory", "dir", staticDir)
		return nil
	}

	count := 0
	err := fileutil.CopyDir(staticDir, outputDir, func(from, to string) {
		count++
		env.Logger.Debug("copied static file", "from", from, "to", to)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStaticCopy, err)
	}
	env.Logger.Debug("copied static files", "count", count)
	return nil
}
