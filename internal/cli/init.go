package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/srcbundle/internal/config"
	"github.com/vvka-141/srcbundle/internal/tui"
	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default srcbundle.yaml",
	Long: `Init writes a srcbundle.yaml with the default output, allow-set and
exclusions into dir (default: current directory).

An existing srcbundle.yaml is only replaced with --force, or after
confirmation when running in a terminal.

Examples:
  srcbundle init
  srcbundle init ./web --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initForce bool

// confirmOverwrite asks before replacing an existing config file.
var confirmOverwrite = func(configPath string) bool {
	return tui.PromptContinue(os.Stdin, os.Stderr, fmt.Sprintf("%s already exists. Overwrite?", configPath))
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing srcbundle.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := rootArg(args)
	verbose := getVerboseFlag(cmd)

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", srcbundle.ErrRootNotFound, targetPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", srcbundle.ErrRootNotFound, targetPath)
	}

	configPath := filepath.Join(targetPath, srcbundle.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !initForce {
		if !confirmOverwrite(configPath) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
		}
	}

	data, err := config.Default().Marshal()
	if err != nil {
		return fmt.Errorf("failed to render default config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Wrote %d bytes\n", len(data))
	}
	fmt.Fprintf(os.Stderr, "%s Created %s\n", tui.SuccessStyle.Render(tui.SymbolCheck), configPath)
	fmt.Fprintln(os.Stderr, "\nNext steps:")
	fmt.Fprintf(os.Stderr, "  srcbundle bundle %s\n", targetPath)
	return nil
}
