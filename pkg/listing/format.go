// Package listing renders the diagnostic Drive file listing for the console.
package listing

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/simon/drive-access/pkg/drive"
)

// NoFiles is printed instead of the listing when the account has no matching files.
const NoFiles = "No files found."

// FormatFile renders f as "name (id) - createdTime (size bytes)".
// Names are NFC-normalized so decomposed names uploaded from macOS print like typed ones.
func FormatFile(f drive.File) string {
	return fmt.Sprintf("%s (%s) - %s (%d bytes)", norm.NFC.String(f.Name), f.ID, f.CreatedTime, f.Size)
}
