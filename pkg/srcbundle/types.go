package srcbundle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

// FileEntry describes one collected file.
type FileEntry struct {
	// Path is the manifest path: the root as given joined with the relative path.
	Path string

	// RelativePath is the slash-separated path relative to the root.
	RelativePath string

	// Name is the base filename.
	Name string

	// Extension is the lowercased extension including the leading dot.
	Extension string

	// SizeBytes is the size observed during the walk.
	SizeBytes int64

	// ID is a deterministic identity derived from RelativePath.
	ID uuid.UUID
}

// ReadFailure records a file that appeared in the manifest but whose body was skipped.
type ReadFailure struct {
	Path string
	Err  error
}

func (f ReadFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

func (f ReadFailure) Unwrap() error { return f.Err }

// FileOutcome is the per-file result of writing a bundle.
type FileOutcome struct {
	Entry    FileEntry
	Written  bool
	Checksum string
	Err      error
}

// Summary describes a completed bundle run.
type Summary struct {
	// Root is the walked directory.
	Root string

	// Output is the bundle path, empty when writing to an arbitrary writer.
	Output string

	// ManifestCount is the number of paths listed in the manifest.
	ManifestCount int

	// WrittenCount is the number of delimiter blocks written.
	// It equals ManifestCount unless Failures is non-empty.
	WrittenCount int

	// Failures lists the files whose bodies were skipped, in manifest order.
	Failures []ReadFailure

	// Outcomes holds one record per manifest entry, in manifest order.
	Outcomes []FileOutcome

	// OutputChecksum is the SHA-256 of every byte written to the output.
	OutputChecksum string
}

// BundleConfig contains all parameters needed for a bundle run.
type BundleConfig struct {
	// Root is the directory to walk.
	Root string

	// Output is the bundle file to create or truncate.
	Output string

	// Extensions is the allow-set, compared case-insensitively.
	Extensions []string

	// ExcludeDirs are directory base names that are never descended into.
	ExcludeDirs []string

	// ExcludeFiles are file base names that are never collected (literal match).
	ExcludeFiles []string

	// IgnorePatterns are doublestar globs matched against root-relative slash paths.
	IgnorePatterns []string

	// ReportPath, when set, receives a YAML run report.
	ReportPath string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the BundleConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *BundleConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Root) == "" {
		errs = append(errs, fmt.Errorf("root is required: %w", ErrInvalidConfig))
	}

	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, fmt.Errorf("output is required: %w", ErrInvalidConfig))
	}

	if len(c.Extensions) == 0 {
		errs = append(errs, fmt.Errorf("at least one extension is required: %w", ErrInvalidConfig))
	}
	for _, ext := range c.Extensions {
		if strings.Trim(strings.TrimSpace(ext), ".") == "" {
			errs = append(errs, fmt.Errorf("empty extension in allow-set: %w", ErrInvalidConfig))
			break
		}
	}

	for _, pattern := range c.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("invalid ignore pattern %q: %w", pattern, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// NormalizeExtension lowercases ext and ensures a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Bundler runs a full collect-and-write cycle.
type Bundler interface {
	// Bundle collects files under cfg.Root and writes them to cfg.Output.
	Bundle(ctx context.Context, cfg BundleConfig) (Summary, error)

	// List collects files without writing anything.
	List(ctx context.Context, cfg BundleConfig) (CollectResult, error)
}
