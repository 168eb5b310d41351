package drive

// File is the metadata of one listed Drive file.
type File struct {
	ID          string
	Name        string
	CreatedTime string // RFC 3339, as returned by the API
	Size        int64  // bytes; 0 for Google Docs and folders
}
