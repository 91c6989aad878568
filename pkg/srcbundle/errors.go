package srcbundle

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	summary, err := bundler.Bundle(ctx, cfg)
//	if errors.Is(err, srcbundle.ErrOutputUnavailable) {
//	    // nothing was written
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRootNotFound indicates the root directory is missing or not a directory.
	ErrRootNotFound = errors.New("root directory not found")

	// ErrOutputUnavailable indicates the output file could not be created.
	// This is the only runtime failure that aborts a bundle.
	ErrOutputUnavailable = errors.New("output unavailable")

	// ErrReadFailed is wrapped by every per-file failure: missing file,
	// permission denied, or content that is not valid UTF-8 text.
	ErrReadFailed = errors.New("file read failed")

	// ErrNotText indicates file content is not valid UTF-8.
	ErrNotText = errors.New("content is not valid UTF-8 text")
)

// usageErrorPatterns are prefixes of errors produced by cobra/pflag argument parsing.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"requires at most",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrRootNotFound):
		return ExitRootNotFound
	case errors.Is(err, ErrOutputUnavailable):
		return ExitOutputUnavailable
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.HasPrefix(errStr, pattern) || strings.Contains(errStr, " "+pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
