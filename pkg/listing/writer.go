package listing

import (
	"fmt"
	"io"

	"github.com/simon/drive-access/pkg/drive"
)

// Write prints NoFiles for an empty listing, otherwise a "Files:" header and one line per file.
func Write(w io.Writer, files []drive.File) error {
	if len(files) == 0 {
		if _, err := fmt.Fprintln(w, NoFiles); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintln(w, "Files:"); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	for _, f := range files {
		if _, err := fmt.Fprintln(w, FormatFile(f)); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}
