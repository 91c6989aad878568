package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/srcbundle/internal/bundle"
	"github.com/vvka-141/srcbundle/internal/files/collector"
	"github.com/vvka-141/srcbundle/internal/files/filesystem"
	"github.com/vvka-141/srcbundle/internal/report"
	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

// BundleService implements the Bundler interface.
// Thread-Safety: NOT safe for concurrent Bundle() calls on the same instance.
type BundleService struct {
	fsProvider filesystem.FileSystemProvider
	logger     srcbundle.Logger
	reporter   srcbundle.ProgressReporter
}

// NewBundleService creates a BundleService with all dependencies injected.
//
// Nil dependencies are programmer errors and panic at construction time.
// Invalid configuration, a missing root and an unavailable output are
// runtime conditions returned as errors from Bundle.
func NewBundleService(
	fsProvider filesystem.FileSystemProvider,
	logger srcbundle.Logger,
	reporter srcbundle.ProgressReporter,
) *BundleService {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}

	return &BundleService{
		fsProvider: fsProvider,
		logger:     logger,
		reporter:   reporter,
	}
}

// Bundle collects files under cfg.Root and writes them to cfg.Output.
// The output is only created after collection succeeds.
func (s *BundleService) Bundle(ctx context.Context, cfg srcbundle.BundleConfig) (srcbundle.Summary, error) {
	result, outputAbs, err := s.collect(ctx, cfg)
	if err != nil {
		return srcbundle.Summary{}, err
	}

	s.logger.Info("Total files to process: %d", len(result.Files))

	if err := ctx.Err(); err != nil {
		return srcbundle.Summary{}, fmt.Errorf("bundle cancelled before writing: %w", err)
	}

	writer := bundle.NewWriter(s.fsProvider, s.logger, s.reporter)
	summary, err := writer.WriteFile(ctx, cfg.Output, result.Files)
	if err != nil {
		return summary, err
	}
	summary.Root = cfg.Root

	if len(summary.Failures) > 0 {
		s.logger.Verbose("%d of %d files could not be read", len(summary.Failures), summary.ManifestCount)
	}
	s.logger.Info("Files have been combined into %s", outputAbs)

	if cfg.ReportPath != "" {
		if err := report.WriteFile(cfg.ReportPath, summary); err != nil {
			return summary, err
		}
		s.logger.Verbose("Run report written to %s", cfg.ReportPath)
	}

	return summary, nil
}

// List collects files without creating the output.
func (s *BundleService) List(ctx context.Context, cfg srcbundle.BundleConfig) (srcbundle.CollectResult, error) {
	result, _, err := s.collect(ctx, cfg)
	return result, err
}

func (s *BundleService) collect(ctx context.Context, cfg srcbundle.BundleConfig) (srcbundle.CollectResult, string, error) {
	if err := cfg.Validate(); err != nil {
		return srcbundle.CollectResult{}, "", err
	}
	if err := ctx.Err(); err != nil {
		return srcbundle.CollectResult{}, "", err
	}

	outputAbs, err := filepath.Abs(cfg.Output)
	if err != nil {
		return srcbundle.CollectResult{}, "", fmt.Errorf("%w: %v", srcbundle.ErrOutputUnavailable, err)
	}

	s.logger.Verbose("Collecting files under %s", cfg.Root)
	c := collector.NewCollectorWithFS(collector.OptionsFromConfig(cfg, outputAbs), s.logger, s.fsProvider)
	result, err := c.Collect(ctx, cfg.Root)
	if err != nil {
		return srcbundle.CollectResult{}, "", err
	}
	return result, outputAbs, nil
}

// Verify BundleService implements the interface at compile time
var _ srcbundle.Bundler = (*BundleService)(nil)
