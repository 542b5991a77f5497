package domain

// FileItem is an immutable snapshot of a file sitting directly under the
// parent folder, taken once at listing time. Identity is the opaque ID
// assigned by the storage backend.
type FileItem struct {
	ID          string
	Name        string
	MimeType    string
	Size        int64
	ContentHash string   // checksum of the file bytes; may be empty until fetched
	ParentIDs   []string
}

// Folder is a candidate destination: a sub-folder directly under the
// run's parent folder.
type Folder struct {
	ID   string
	Name string
}
