package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/srcbundle/internal/files/filesystem"
	"github.com/vvka-141/srcbundle/internal/logging"
	"github.com/vvka-141/srcbundle/internal/services"
	"github.com/vvka-141/srcbundle/internal/tui"
	"github.com/vvka-141/srcbundle/internal/ui"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle [root]",
	Short: "Write every matching file under root into one bundle",
	Long: `Bundle walks root (default: current directory), collects files whose
extension is in the allow-set and writes them into a single text file.

The bundle starts with a manifest of all collected paths, followed by each
file's content behind a "----- <path> -----" delimiter line. Files that cannot
be read as UTF-8 text stay in the manifest, are logged, and are skipped.

Paths are listed in lexical order per directory, with files and
subdirectories interleaved: "a/x.js" comes before "b.js". Files whose whole
name is an extension, such as ".json", have no extension and are not collected.

Ctrl+C stops the walk or the write after the current file and exits non-zero.

Configuration precedence: flags > SRCBUNDLE_* environment > srcbundle.yaml > defaults.

Examples:
  # Bundle the current directory into combined.txt
  srcbundle bundle

  # Bundle ./web, TypeScript only, with a run report
  srcbundle bundle ./web -e .ts -e .tsx -o web.txt --report web-report.yaml

  # Skip tests and build output
  srcbundle bundle --exclude-dir node_modules --exclude-dir dist --ignore '**/*.test.js'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBundle,
}

type bundleFlagValues struct {
	selectionFlags
	report string
	quiet  bool
}

var bundleFlags bundleFlagValues

func init() {
	rootCmd.AddCommand(bundleCmd)

	addSelectionFlags(bundleCmd, &bundleFlags.selectionFlags)
	bundleCmd.Flags().StringVar(&bundleFlags.report, "report", "",
		"Write a YAML run report (paths, ids, checksums, failures) to this file")
	bundleCmd.Flags().BoolVarP(&bundleFlags.quiet, "quiet", "q", false,
		"Disable the progress display")
}

func resetBundleFlags() {
	bundleFlags = bundleFlagValues{}
}

func runBundle(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := resolveBundleConfig(rootArg(args), bundleFlags.selectionFlags, verbose)
	if err != nil {
		return err
	}
	if bundleFlags.report != "" {
		cfg.ReportPath = bundleFlags.report
	}

	reporter := ui.NewReporter(bundleFlags.quiet)
	logger := logging.NewConsoleLoggerWithWriter(ui.LogWriter(reporter, os.Stderr), verbose, tui.IsInteractive())
	bundler := services.NewBundleService(
		filesystem.NewOSFileSystem(),
		logger,
		reporter,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling bundle...")
			cancel()
		case <-ctx.Done():
		}
	}()

	summary, err := bundler.Bundle(ctx, cfg)
	if err != nil {
		return fmt.Errorf("bundle failed: %w", err)
	}

	if len(summary.Failures) > 0 {
		fmt.Fprintf(os.Stderr, "%s %d of %d files were skipped because they could not be read\n",
			tui.ErrorStyle.Render(tui.SymbolCross), len(summary.Failures), summary.ManifestCount)
	}
	return nil
}
