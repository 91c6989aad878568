package collector

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vvka-141/srcbundle/internal/files/filesystem"
	"github.com/vvka-141/srcbundle/internal/identity"
	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

// Options configures which files a Collector keeps.
type Options struct {
	// Extensions is the allow-set. Values are normalized to lowercase with a leading dot.
	Extensions []string

	// ExcludeDirs are directory base names that are never descended into.
	ExcludeDirs []string

	// ExcludeFiles are file base names that are never collected.
	// Matching is literal and case-sensitive.
	ExcludeFiles []string

	// IgnorePatterns are doublestar globs matched against root-relative slash paths.
	IgnorePatterns []string

	// SkipPaths are absolute paths never collected, such as the bundle output itself.
	SkipPaths []string
}

// OptionsFromConfig builds collector options from a bundle configuration.
// outputAbs is the absolute output path, excluded from collection.
func OptionsFromConfig(cfg srcbundle.BundleConfig, outputAbs string) Options {
	opts := Options{
		Extensions:     cfg.Extensions,
		ExcludeDirs:    cfg.ExcludeDirs,
		ExcludeFiles:   cfg.ExcludeFiles,
		IgnorePatterns: cfg.IgnorePatterns,
	}
	if outputAbs != "" {
		opts.SkipPaths = []string{outputAbs}
	}
	return opts
}

// Collector discovers files from a directory tree.
// Collector is safe for concurrent use as long as the filesystem provider is.
type Collector struct {
	extensions   map[string]struct{}
	excludeDirs  map[string]struct{}
	excludeFiles map[string]struct{}
	ignore       []string
	skip         map[string]struct{}
	fsProvider   filesystem.FileSystemProvider
	logger       srcbundle.Logger
}

// NewCollector creates a collector over the OS filesystem.
// Panics if logger is nil.
func NewCollector(opts Options, logger srcbundle.Logger) *Collector {
	return NewCollectorWithFS(opts, logger, filesystem.NewOSFileSystem())
}

// NewCollectorWithFS creates a collector with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if logger or fsProvider is nil.
func NewCollectorWithFS(opts Options, logger srcbundle.Logger, fsProvider filesystem.FileSystemProvider) *Collector {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}

	c := &Collector{
		extensions:   make(map[string]struct{}, len(opts.Extensions)),
		excludeDirs:  toSet(opts.ExcludeDirs),
		excludeFiles: toSet(opts.ExcludeFiles),
		ignore:       opts.IgnorePatterns,
		skip:         make(map[string]struct{}, len(opts.SkipPaths)),
		fsProvider:   fsProvider,
		logger:       logger,
	}
	for _, ext := range opts.Extensions {
		if ext = srcbundle.NormalizeExtension(ext); ext != "" {
			c.extensions[ext] = struct{}{}
		}
	}
	for _, p := range opts.SkipPaths {
		c.skip[filepath.Clean(p)] = struct{}{}
	}
	return c
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Collect walks root and returns matching files in traversal order.
// Manifest paths are root joined with the file's relative path.
//
// A missing root, or one that is not a directory, wraps srcbundle.ErrRootNotFound.
// Entries below the root that cannot be visited are logged and skipped.
// Cancelling ctx stops the walk; the returned error wraps ctx.Err().
func (c *Collector) Collect(ctx context.Context, root string) (srcbundle.CollectResult, error) {
	dir, err := c.fsProvider.Open(root)
	if err != nil {
		return srcbundle.CollectResult{}, fmt.Errorf("%w: %s: %v", srcbundle.ErrRootNotFound, root, err)
	}

	var files []srcbundle.FileEntry

	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			c.logger.Verbose("Skipping unreadable path: %v", walkErr)
			return nil
		}

		info := file.Info()
		relPath := filepath.ToSlash(file.RelativePath())

		if info.IsDir() {
			if relPath == "." {
				return nil
			}
			if _, excluded := c.excludeDirs[info.Name()]; excluded {
				c.logger.Verbose("Pruning excluded directory: %s", relPath)
				return filesystem.SkipDir
			}
			if c.ignored(relPath) {
				c.logger.Verbose("Pruning ignored directory: %s", relPath)
				return filesystem.SkipDir
			}
			return nil
		}

		if !c.accepts(file, relPath) {
			return nil
		}

		files = append(files, srcbundle.FileEntry{
			Path:         filepath.Join(root, filepath.FromSlash(relPath)),
			RelativePath: relPath,
			Name:         info.Name(),
			Extension:    extensionOf(info.Name()),
			SizeBytes:    info.Size(),
			ID:           identity.ForPath(relPath),
		})
		return nil
	})
	if err != nil {
		return srcbundle.CollectResult{}, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return srcbundle.CollectResult{Files: files}, nil
}

// accepts reports whether a non-directory entry belongs in the manifest.
func (c *Collector) accepts(file filesystem.File, relPath string) bool {
	name := file.Info().Name()

	if _, excluded := c.excludeFiles[name]; excluded {
		return false
	}
	if _, ok := c.extensions[extensionOf(name)]; !ok {
		return false
	}
	if _, skip := c.skip[filepath.Clean(file.Path())]; skip {
		c.logger.Verbose("Skipping bundle output: %s", relPath)
		return false
	}
	if c.ignored(relPath) {
		c.logger.Verbose("Ignoring %s", relPath)
		return false
	}
	return true
}

// extensionOf returns the lowercased extension of a base name. Leading dots
// are not separators, so ".json" and "..js" have no extension while
// ".eslintrc.json" has ".json".
func extensionOf(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	i := strings.LastIndexByte(trimmed, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(trimmed[i:])
}

func (c *Collector) ignored(relPath string) bool {
	for _, pattern := range c.ignore {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

// Verify Collector implements the interface at compile time
var _ srcbundle.FileCollector = (*Collector)(nil)
