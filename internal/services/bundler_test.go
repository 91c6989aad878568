package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/srcbundle/internal/files/filesystem"
	"github.com/vvka-141/srcbundle/internal/logging"
	"github.com/vvka-141/srcbundle/internal/report"
	"github.com/vvka-141/srcbundle/internal/ui"
	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	errs  []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

func exampleTree() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem("/project")
	mfs.AddFile("a.js", "console.log('a');\n")
	mfs.AddFile("b.css", "body {}\n")
	mfs.AddFile("c.txt", "ignored\n")
	mfs.AddFile("node_modules/d.js", "dep\n")
	mfs.AddFile("package-lock.json", "{}\n")
	return mfs
}

func exampleConfig(t *testing.T) srcbundle.BundleConfig {
	return srcbundle.BundleConfig{
		Root:         "/project",
		Output:       filepath.Join(t.TempDir(), "combined.txt"),
		Extensions:   srcbundle.DefaultExtensions(),
		ExcludeDirs:  []string{srcbundle.DefaultExcludeDir},
		ExcludeFiles: []string{srcbundle.DefaultExcludeFile},
	}
}

func TestNewBundleService_NilArgs(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	logger := logging.NewNullLogger()
	reporter := ui.NewNullReporter()

	assert.PanicsWithValue(t, "fsProvider cannot be nil", func() { NewBundleService(nil, logger, reporter) })
	assert.PanicsWithValue(t, "logger cannot be nil", func() { NewBundleService(mfs, nil, reporter) })
	assert.PanicsWithValue(t, "reporter cannot be nil", func() { NewBundleService(mfs, logger, nil) })
}

func TestBundle_ReferenceExample(t *testing.T) {
	logger := &recordingLogger{}
	svc := NewBundleService(exampleTree(), logger, ui.NewNullReporter())
	cfg := exampleConfig(t)

	summary, err := svc.Bundle(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ManifestCount)
	assert.Equal(t, 2, summary.WrittenCount)
	assert.Empty(t, summary.Failures)
	assert.Equal(t, "/project", summary.Root)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	out := string(data)

	manifest := strings.SplitN(out, "\n"+strings.Repeat("=", 60), 2)[0]
	assert.Equal(t, "LIST OF PROCESSED FILES:\n/project/a.js\n/project/b.css\n", manifest)
	assert.Equal(t, 2, strings.Count(out, "\n\n----- "))
	assert.NotContains(t, out, "node_modules")
	assert.NotContains(t, out, "package-lock.json")

	require.Len(t, logger.infos, 2)
	assert.Equal(t, "Total files to process: 2", logger.infos[0])
	assert.True(t, strings.HasPrefix(logger.infos[1], "Files have been combined into "))
}

func TestBundle_UnreadableFileIsLoggedAndSkipped(t *testing.T) {
	mfs := exampleTree()
	mfs.AddFileBytes("bad.json", []byte{0xff, 0xfe, 0x00})
	logger := &recordingLogger{}
	svc := NewBundleService(mfs, logger, ui.NewNullReporter())

	summary, err := svc.Bundle(context.Background(), exampleConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.ManifestCount)
	assert.Equal(t, 2, summary.WrittenCount)
	require.Len(t, summary.Failures, 1)
	assert.ErrorIs(t, summary.Failures[0], srcbundle.ErrReadFailed)
	require.Len(t, logger.errs, 1)
	assert.Contains(t, logger.errs[0], "bad.json")
}

func TestBundle_IsIdempotent(t *testing.T) {
	svc := NewBundleService(exampleTree(), logging.NewNullLogger(), ui.NewNullReporter())
	cfg := exampleConfig(t)

	first, err := svc.Bundle(context.Background(), cfg)
	require.NoError(t, err)
	firstData, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	second, err := svc.Bundle(context.Background(), cfg)
	require.NoError(t, err)
	secondData, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	assert.Equal(t, firstData, secondData)
	assert.Equal(t, first.OutputChecksum, second.OutputChecksum)
}

func TestBundle_WritesReport(t *testing.T) {
	svc := NewBundleService(exampleTree(), logging.NewNullLogger(), ui.NewNullReporter())
	cfg := exampleConfig(t)
	cfg.ReportPath = filepath.Join(t.TempDir(), "report.yaml")

	summary, err := svc.Bundle(context.Background(), cfg)
	require.NoError(t, err)

	r, err := report.Load(cfg.ReportPath)
	require.NoError(t, err)
	assert.Equal(t, summary.OutputChecksum, r.OutputChecksum)
	require.Len(t, r.Files, 2)
	assert.Equal(t, "a.js", r.Files[0].Path)
	assert.Equal(t, report.StatusWritten, r.Files[1].Status)
}

func TestBundle_InvalidConfigCreatesNothing(t *testing.T) {
	svc := NewBundleService(exampleTree(), logging.NewNullLogger(), ui.NewNullReporter())
	cfg := exampleConfig(t)
	cfg.Extensions = nil

	_, err := svc.Bundle(context.Background(), cfg)
	assert.ErrorIs(t, err, srcbundle.ErrInvalidConfig)
	assert.NoFileExists(t, cfg.Output)
}

func TestBundle_MissingRoot(t *testing.T) {
	svc := NewBundleService(exampleTree(), logging.NewNullLogger(), ui.NewNullReporter())
	cfg := exampleConfig(t)
	cfg.Root = "/elsewhere"

	_, err := svc.Bundle(context.Background(), cfg)
	assert.ErrorIs(t, err, srcbundle.ErrRootNotFound)
	assert.Equal(t, srcbundle.ExitRootNotFound, srcbundle.ExitCodeForError(err))
	assert.NoFileExists(t, cfg.Output)
}

func TestBundle_OutputUnavailable(t *testing.T) {
	svc := NewBundleService(exampleTree(), logging.NewNullLogger(), ui.NewNullReporter())
	cfg := exampleConfig(t)
	cfg.Output = filepath.Join(t.TempDir(), "missing-dir", "combined.txt")

	_, err := svc.Bundle(context.Background(), cfg)
	assert.ErrorIs(t, err, srcbundle.ErrOutputUnavailable)
}

func TestBundle_CancelledContext(t *testing.T) {
	svc := NewBundleService(exampleTree(), logging.NewNullLogger(), ui.NewNullReporter())
	cfg := exampleConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Bundle(ctx, cfg)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.NoFileExists(t, cfg.Output)
}

type cancellingReporter struct {
	cancel   context.CancelFunc
	advanced int
}

func (r *cancellingReporter) Start(total int) {}
func (r *cancellingReporter) Finish()         {}

func (r *cancellingReporter) Advance(path string) {
	r.advanced++
	r.cancel()
}

func TestBundle_CancelDuringWriteFails(t *testing.T) {
	mfs := exampleTree()
	mfs.AddFile("c.js", "c\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reporter := &cancellingReporter{cancel: cancel}
	svc := NewBundleService(mfs, logging.NewNullLogger(), reporter)

	summary, err := svc.Bundle(ctx, exampleConfig(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, reporter.advanced)
	assert.Equal(t, 1, summary.WrittenCount)
	assert.Equal(t, 3, summary.ManifestCount)
}

func TestBundle_OutputInsideRootIsNotCollected(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.js"), []byte("a\n"), 0644))

	svc := NewBundleService(filesystem.NewOSFileSystem(), logging.NewNullLogger(), ui.NewNullReporter())
	cfg := srcbundle.BundleConfig{
		Root:       root,
		Output:     filepath.Join(root, "bundle.js"),
		Extensions: srcbundle.DefaultExtensions(),
	}

	for i := 0; i < 2; i++ {
		summary, err := svc.Bundle(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.ManifestCount, "run %d", i+1)
	}
}

func TestList_DoesNotWrite(t *testing.T) {
	svc := NewBundleService(exampleTree(), logging.NewNullLogger(), ui.NewNullReporter())
	cfg := exampleConfig(t)

	result, err := svc.List(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"/project/a.js", "/project/b.css"}, result.Paths())
	assert.NoFileExists(t, cfg.Output)
}
