package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override values from srcbundle.yaml.
const (
	EnvOutput     = "SRCBUNDLE_OUTPUT"
	EnvExtensions = "SRCBUNDLE_EXTENSIONS"
)

// ProjectConfig mirrors the srcbundle.yaml file.
// Unset fields fall back to the built-in defaults.
type ProjectConfig struct {
	Output       string   `yaml:"output,omitempty"`
	Extensions   []string `yaml:"extensions,omitempty"`
	ExcludeDirs  []string `yaml:"exclude_dirs,omitempty"`
	ExcludeFiles []string `yaml:"exclude_files,omitempty"`
	Ignore       []string `yaml:"ignore,omitempty"`
	Report       string   `yaml:"report,omitempty"`
}

// Load reads srcbundle.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, srcbundle.ConfigFileName))
}

// LoadFile reads a config file from an explicit path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", srcbundle.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// Default returns the configuration written by `srcbundle init`.
func Default() ProjectConfig {
	return ProjectConfig{
		Output:       srcbundle.DefaultOutputFile,
		Extensions:   srcbundle.DefaultExtensions(),
		ExcludeDirs:  []string{srcbundle.DefaultExcludeDir},
		ExcludeFiles: []string{srcbundle.DefaultExcludeFile},
	}
}

// Marshal renders the config as YAML.
func (c ProjectConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ApplyEnv overrides file values with SRCBUNDLE_* environment variables.
// SRCBUNDLE_EXTENSIONS is a comma-separated list.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvOutput); ok && strings.TrimSpace(v) != "" {
		c.Output = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvExtensions); ok && strings.TrimSpace(v) != "" {
		c.Extensions = splitList(v)
	}
}

// ToBundleConfig fills the unset fields with defaults and returns a bundle
// configuration for root.
func (c ProjectConfig) ToBundleConfig(root string) srcbundle.BundleConfig {
	d := Default()
	cfg := srcbundle.BundleConfig{
		Root:           root,
		Output:         firstNonEmpty(c.Output, d.Output),
		Extensions:     orDefault(c.Extensions, d.Extensions),
		ExcludeDirs:    orDefault(c.ExcludeDirs, d.ExcludeDirs),
		ExcludeFiles:   orDefault(c.ExcludeFiles, d.ExcludeFiles),
		IgnorePatterns: c.Ignore,
		ReportPath:     c.Report,
	}
	return cfg
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orDefault(values, def []string) []string {
	if len(values) > 0 {
		return values
	}
	return def
}
