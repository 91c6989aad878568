package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/srcbundle/internal/config"
	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

// selectionFlags holds the flags shared by bundle and list.
type selectionFlags struct {
	output       string
	extensions   []string
	excludeDirs  []string
	excludeFiles []string
	ignore       []string
	configPath   string
}

func addSelectionFlags(cmd *cobra.Command, f *selectionFlags) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "",
		"Bundle file to create or overwrite\n"+
			"Precedence: --output > $SRCBUNDLE_OUTPUT > srcbundle.yaml > "+srcbundle.DefaultOutputFile)
	cmd.Flags().StringSliceVarP(&f.extensions, "ext", "e", nil,
		"Allowed extension, case-insensitive (can be specified multiple times)\n"+
			"Default: .css, .jsx, .js, .json")
	cmd.Flags().StringSliceVar(&f.excludeDirs, "exclude-dir", nil,
		"Directory name that is never descended into (default: "+srcbundle.DefaultExcludeDir+")")
	cmd.Flags().StringSliceVar(&f.excludeFiles, "exclude-file", nil,
		"File name that is never collected, exact match (default: "+srcbundle.DefaultExcludeFile+")")
	cmd.Flags().StringSliceVar(&f.ignore, "ignore", nil,
		"Doublestar pattern matched against root-relative paths, e.g. '**/*.test.js'\n"+
			"Added to the patterns from srcbundle.yaml")
	cmd.Flags().StringVar(&f.configPath, "config", "",
		"Config file to use instead of <root>/srcbundle.yaml")
}

// loadProjectConfig loads godotenv and project configuration.
// A missing srcbundle.yaml in the root is not an error; a missing explicit
// --config file is.
func loadProjectConfig(root, configPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	var (
		projectCfg *config.ProjectConfig
		err        error
	)
	if configPath != "" {
		projectCfg, err = config.LoadFile(configPath)
	} else {
		projectCfg, err = config.Load(root)
	}
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && configPath == "" {
			return &config.ProjectConfig{}, nil
		}
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: config file %s does not exist", srcbundle.ErrInvalidConfig, configPath)
		}
		return nil, fmt.Errorf("failed to load %s: %w", srcbundle.ConfigFileName, err)
	}
	return projectCfg, nil
}

// resolveBundleConfig merges flags > env > config file > defaults.
func resolveBundleConfig(root string, f selectionFlags, verbose bool) (srcbundle.BundleConfig, error) {
	projectCfg, err := loadProjectConfig(root, f.configPath)
	if err != nil {
		return srcbundle.BundleConfig{}, err
	}
	projectCfg.ApplyEnv(os.LookupEnv)

	cfg := projectCfg.ToBundleConfig(root)
	cfg.Verbose = verbose

	if f.output != "" {
		cfg.Output = f.output
	}
	if len(f.extensions) > 0 {
		cfg.Extensions = f.extensions
	}
	if len(f.excludeDirs) > 0 {
		cfg.ExcludeDirs = f.excludeDirs
	}
	if len(f.excludeFiles) > 0 {
		cfg.ExcludeFiles = f.excludeFiles
	}
	if len(f.ignore) > 0 {
		cfg.IgnorePatterns = append(cfg.IgnorePatterns, f.ignore...)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Configuration resolved:\n")
		fmt.Fprintf(os.Stderr, "  Root: %s\n", cfg.Root)
		fmt.Fprintf(os.Stderr, "  Output: %s\n", cfg.Output)
		fmt.Fprintf(os.Stderr, "  Extensions: %v\n", cfg.Extensions)
		fmt.Fprintf(os.Stderr, "  Excluded directories: %v\n", cfg.ExcludeDirs)
		fmt.Fprintf(os.Stderr, "  Excluded files: %v\n", cfg.ExcludeFiles)
		if len(cfg.IgnorePatterns) > 0 {
			fmt.Fprintf(os.Stderr, "  Ignore patterns: %v\n", cfg.IgnorePatterns)
		}
	}

	return cfg, cfg.Validate()
}

func rootArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
