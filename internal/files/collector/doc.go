// Package collector discovers the files that make up a bundle.
//
// The collector is responsible for:
//   - Recursively walking a root directory in deterministic lexical order
//   - Pruning excluded directory names (node_modules by default) at any depth
//   - Dropping excluded file names (package-lock.json by default) by literal match
//   - Keeping only files whose extension is in the allow-set, case-insensitively
//   - Applying optional doublestar ignore patterns to root-relative paths
//
// The collector is filesystem-agnostic through the
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package collector
