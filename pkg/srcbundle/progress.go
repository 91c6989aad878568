package srcbundle

// ProgressReporter receives progress while bundle bodies are written.
// Progress is a console side effect and never reaches the output file.
//
// Implementations:
//   - LineReporter: prints count and percentage lines
//   - TUIReporter: renders a progress bar on interactive terminals
//   - NullReporter: discards everything
type ProgressReporter interface {
	// Start is called once with the number of files to process.
	Start(total int)

	// Advance is called after each file, whether it was written or skipped.
	Advance(path string)

	// Finish is called once after the last file.
	Finish()
}
