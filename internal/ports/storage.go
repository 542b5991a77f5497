package ports

import (
	"context"

	"ordina/internal/domain"
)

// Storage defines the remote file backend the sorter routes files on.
// Every method is a remote call that may fail transiently or permanently;
// the core treats any error as that file's failure and never retries.
type Storage interface {
	// ListSubfolders returns the folders directly under parentID, in the
	// backend's enumeration order. That order is load-bearing: it breaks
	// ties between equally scored destinations.
	ListSubfolders(ctx context.Context, parentID string) ([]domain.Folder, error)

	// ListFiles returns the non-folder files directly under parentID.
	ListFiles(ctx context.Context, parentID string) ([]domain.FileItem, error)

	// GetMeta re-reads a single file's metadata. The pipeline uses it only
	// to fetch size and content hash lazily when the listing omitted them.
	GetMeta(ctx context.Context, fileID string) (domain.FileItem, error)

	// Download fetches the file's bytes.
	Download(ctx context.Context, fileID string) ([]byte, error)

	// Move reparents the file under destFolderID, removing all previous
	// parents, and returns the new parent set. A partial reparent is the
	// backend's concern and surfaces here as an error.
	Move(ctx context.Context, fileID, destFolderID string) ([]string, error)
}
