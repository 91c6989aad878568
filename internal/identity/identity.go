// Package identity derives stable identifiers for collected files.
package identity

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NamespaceFileIdentity is the UUID namespace for file identities, derived
// from "srcbundle/file-identity/v1" under the standard URL namespace.
var NamespaceFileIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("srcbundle/file-identity/v1"))

// ForPath creates a deterministic UUID v5 from a root-relative file path.
// The same relative path always yields the same ID, across runs and machines.
//
// Examples:
//   - "src/App.jsx"   → uuid_v5(namespace, "src/app.jsx")
//   - "./src/App.jsx" → same as above
//   - "src\App.jsx"   → same as above on Windows
func ForPath(relPath string) uuid.UUID {
	return uuid.NewSHA1(NamespaceFileIdentity, []byte(normalizePath(relPath)))
}

// normalizePath converts a path to canonical form: slash separators,
// lowercase, no leading "./".
func normalizePath(p string) string {
	normalized := strings.ToLower(filepath.ToSlash(p))
	return strings.TrimPrefix(normalized, "./")
}
