// Package checksum provides content hashing for bundle inputs and outputs.
//
// Two forms are offered:
//
//   - CalculateRaw hashes a complete byte slice (one collected file)
//   - NewHasher returns a Hasher that is fed through an io.Writer, so the
//     bundle output can be hashed while it is being written
//
// Both produce lowercase hex SHA-256 digests, so a digest computed from a
// finished bundle file matches the one computed while streaming it.
//
// # Example Usage
//
//	calculator := checksum.New()
//	fileChecksum := calculator.CalculateRaw(fileContent)
//
//	h := calculator.NewHasher()
//	w := io.MultiWriter(outFile, h)
//	// ... write bundle to w ...
//	outputChecksum := h.Sum()
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines. A Hasher is not.
package checksum
