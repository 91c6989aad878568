package srcbundle

import "context"

// FileCollector discovers the files that make up a bundle.
type FileCollector interface {
	// Collect walks root and returns the matching files in traversal order.
	// The walk stops with ctx's error once ctx is done.
	Collect(ctx context.Context, root string) (CollectResult, error)
}

// CollectResult contains the results of walking a root directory.
type CollectResult struct {
	Files []FileEntry
}

// Paths returns the manifest paths in traversal order.
func (r CollectResult) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return paths
}
