package bundle

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/vvka-141/srcbundle/internal/checksum"
	"github.com/vvka-141/srcbundle/internal/files/filesystem"
	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

// Writer produces bundle files from collected entries.
// Thread-Safety: NOT safe for concurrent Write() calls on the same instance.
type Writer struct {
	fsProvider filesystem.FileSystemProvider
	logger     srcbundle.Logger
	reporter   srcbundle.ProgressReporter
	calculator checksum.Calculator
}

// NewWriter creates a bundle writer.
// Panics if any dependency is nil.
func NewWriter(fsProvider filesystem.FileSystemProvider, logger srcbundle.Logger, reporter srcbundle.ProgressReporter) *Writer {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	return &Writer{
		fsProvider: fsProvider,
		logger:     logger,
		reporter:   reporter,
		calculator: checksum.New(),
	}
}

// WriteFile creates or truncates outputPath and writes the bundle into it.
// Failure to create the output wraps srcbundle.ErrOutputUnavailable.
func (bw *Writer) WriteFile(ctx context.Context, outputPath string, entries []srcbundle.FileEntry) (srcbundle.Summary, error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return srcbundle.Summary{}, fmt.Errorf("%w: %v", srcbundle.ErrOutputUnavailable, err)
	}

	buffered := bufio.NewWriter(f)
	summary, writeErr := bw.Write(ctx, buffered, entries)
	if writeErr == nil {
		writeErr = buffered.Flush()
	}
	closeErr := f.Close()

	if writeErr != nil {
		return summary, fmt.Errorf("failed to write %s: %w", outputPath, writeErr)
	}
	if closeErr != nil {
		return summary, fmt.Errorf("failed to close %s: %w", outputPath, closeErr)
	}

	summary.Output = outputPath
	return summary, nil
}

// Write emits the manifest followed by one delimiter block per readable entry.
// Per-file read failures are logged and recorded in the summary; only a
// failure to write to w, or ctx being cancelled between files, is returned
// as an error.
func (bw *Writer) Write(ctx context.Context, w io.Writer, entries []srcbundle.FileEntry) (srcbundle.Summary, error) {
	hasher := bw.calculator.NewHasher()
	out := io.MultiWriter(w, hasher)

	summary := srcbundle.Summary{
		ManifestCount: len(entries),
		Outcomes:      make([]srcbundle.FileOutcome, 0, len(entries)),
	}

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	if err := WriteManifest(out, paths); err != nil {
		return summary, err
	}

	bw.reporter.Start(len(entries))
	defer bw.reporter.Finish()

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("bundle cancelled after %d of %d files: %w", len(summary.Outcomes), len(entries), err)
		}
		outcome := srcbundle.FileOutcome{Entry: entry}

		content, err := bw.readText(entry.Path)
		if err != nil {
			failure := srcbundle.ReadFailure{Path: entry.Path, Err: err}
			bw.logger.Error("Error reading %s: %v", entry.Path, err)
			summary.Failures = append(summary.Failures, failure)
			outcome.Err = err
		} else {
			if _, err := io.WriteString(out, DelimiterLine(entry.Path)); err != nil {
				return summary, err
			}
			if _, err := out.Write(content); err != nil {
				return summary, err
			}
			summary.WrittenCount++
			outcome.Written = true
			outcome.Checksum = bw.calculator.CalculateRaw(content)
			bw.logger.Verbose("Appended %s (%d bytes)", entry.Path, len(content))
		}

		summary.Outcomes = append(summary.Outcomes, outcome)
		bw.reporter.Advance(entry.Path)
	}

	summary.OutputChecksum = hasher.Sum()
	return summary, nil
}

// readText reads the whole file and rejects content that is not UTF-8 text.
// Line endings are normalized to "\n". Returned errors wrap srcbundle.ErrReadFailed.
func (bw *Writer) readText(path string) ([]byte, error) {
	content, err := bw.fsProvider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", srcbundle.ErrReadFailed, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %w", srcbundle.ErrReadFailed, srcbundle.ErrNotText)
	}
	return normalizeNewlines(content), nil
}

func normalizeNewlines(content []byte) []byte {
	if bytes.IndexByte(content, '\r') < 0 {
		return content
	}
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))
}
