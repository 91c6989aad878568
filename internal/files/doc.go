// Package files groups the file-related sub-packages.
//
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - collector: directory walk that selects the files of a bundle
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/srcbundle/internal/files/collector"
//	    "github.com/vvka-141/srcbundle/internal/files/filesystem"
//	)
//
//	c := collector.NewCollectorWithFS(opts, logger, filesystem.NewOSFileSystem())
//	result, err := c.Collect(ctx, "./web")
package files
