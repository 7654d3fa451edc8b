package models

// DirEntry is a single row of a directory listing.
type DirEntry struct {
	// Name is the entry's base name, not a full path.
	Name string `json:"name"`

	// IsDir reports whether the entry is a subdirectory.
	IsDir bool `json:"is_dir"`
}

// DirectorySnapshot is a point-in-time listing of the sync folder. It is
// always recomputed as a whole, never patched incrementally, and carries
// the path it was read from so that listings taken against a previously
// bound folder can be recognized and dropped.
type DirectorySnapshot struct {
	// Path is the folder the listing was taken from.
	Path string `json:"path"`

	// Entries are the folder's direct children in directory order.
	Entries []DirEntry `json:"entries"`
}
