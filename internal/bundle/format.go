package bundle

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

// WriteManifest emits the header line, one path per line and the separator.
func WriteManifest(w io.Writer, paths []string) error {
	if _, err := io.WriteString(w, srcbundle.ManifestHeader+"\n"); err != nil {
		return err
	}
	for _, p := range paths {
		if _, err := io.WriteString(w, p+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, Separator())
	return err
}

// Separator returns the block that closes the manifest.
func Separator() string {
	return "\n" + strings.Repeat("=", srcbundle.SeparatorWidth) + "\n\n"
}

// DelimiterLine returns the marker written before a file's content.
func DelimiterLine(path string) string {
	return fmt.Sprintf("\n\n----- %s -----\n\n", path)
}
