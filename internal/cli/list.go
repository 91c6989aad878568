package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/srcbundle/internal/bundle"
	"github.com/vvka-141/srcbundle/internal/files/filesystem"
	"github.com/vvka-141/srcbundle/internal/logging"
	"github.com/vvka-141/srcbundle/internal/services"
	"github.com/vvka-141/srcbundle/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list [root]",
	Short: "Print the manifest a bundle would contain",
	Long: `List runs the same walk as bundle without writing anything and prints the
manifest (header, paths and separator) to stdout.

Examples:
  srcbundle list
  srcbundle list ./web -e .ts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

var listFlags selectionFlags

func init() {
	rootCmd.AddCommand(listCmd)
	addSelectionFlags(listCmd, &listFlags)
}

func resetListFlags() {
	listFlags = selectionFlags{}
}

func runList(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := resolveBundleConfig(rootArg(args), listFlags, verbose)
	if err != nil {
		return err
	}

	lister := services.NewBundleService(
		filesystem.NewOSFileSystem(),
		logging.NewConsoleLogger(verbose),
		ui.NewNullReporter(),
	)

	result, err := lister.List(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	return bundle.WriteManifest(cmd.OutOrStdout(), result.Paths())
}
