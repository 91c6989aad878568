package srcbundle

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Bundle written (individual read failures included)
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration
	ExitRootNotFound      = 11 // Root directory missing or not a directory
	ExitOutputUnavailable = 12 // Output file could not be created
)

const (
	// DefaultOutputFile is the bundle written when no output is configured.
	DefaultOutputFile = "combined.txt"

	// DefaultExcludeDir is the directory name pruned from every walk.
	DefaultExcludeDir = "node_modules"

	// DefaultExcludeFile is the base name that is never collected.
	// Matching is literal and case-sensitive.
	DefaultExcludeFile = "package-lock.json"

	// ManifestHeader is the first line of every bundle.
	ManifestHeader = "LIST OF PROCESSED FILES:"

	// SeparatorWidth is the number of '=' characters closing the manifest.
	SeparatorWidth = 60

	// ConfigFileName is the project configuration file looked up in the root.
	ConfigFileName = "srcbundle.yaml"
)

// DefaultExtensions returns the allow-set used when none is configured.
// A fresh slice is returned so callers may modify it.
func DefaultExtensions() []string {
	return []string{".css", ".jsx", ".js", ".json"}
}
