// Package filesystem implements ports.Storage on a local directory tree.
// Folder and file IDs are absolute paths; the content hash is the MD5 of
// the file bytes, computed lazily in GetMeta to match remote backends
// that publish checksums in metadata.
package filesystem

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"ordina/internal/domain"
	"ordina/internal/ports"
)

// Storage implements ports.Storage on the local filesystem.
type Storage struct{}

var _ ports.Storage = (*Storage)(nil)

// New creates a filesystem storage adapter.
func New() *Storage { return &Storage{} }

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ListSubfolders returns the directories directly under parentID, in
// directory order (ReadDir sorts by name, so enumeration is stable).
func (s *Storage) ListSubfolders(_ context.Context, parentID string) ([]domain.Folder, error) {
	parent := expandHome(parentID)
	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", parentID, err)
	}

	var folders []domain.Folder
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		folders = append(folders, domain.Folder{
			ID:   filepath.Join(parent, e.Name()),
			Name: e.Name(),
		})
	}
	return folders, nil
}

// ListFiles returns the regular files directly under parentID.
func (s *Storage) ListFiles(_ context.Context, parentID string) ([]domain.FileItem, error) {
	parent := expandHome(parentID)
	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", parentID, err)
	}

	var files []domain.FileItem
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", e.Name(), err)
		}
		files = append(files, domain.FileItem{
			ID:        filepath.Join(parent, e.Name()),
			Name:      e.Name(),
			MimeType:  mime.TypeByExtension(strings.ToLower(filepath.Ext(e.Name()))),
			Size:      info.Size(),
			ParentIDs: []string{parent},
		})
	}
	return files, nil
}

// GetMeta re-reads one file's metadata, computing the MD5 content hash.
func (s *Storage) GetMeta(_ context.Context, fileID string) (domain.FileItem, error) {
	info, err := os.Stat(fileID)
	if err != nil {
		return domain.FileItem{}, fmt.Errorf("failed to stat %s: %w", fileID, err)
	}

	fh, err := os.Open(fileID)
	if err != nil {
		return domain.FileItem{}, fmt.Errorf("failed to open %s: %w", fileID, err)
	}
	defer fh.Close()

	h := md5.New()
	if _, err := io.Copy(h, fh); err != nil {
		return domain.FileItem{}, fmt.Errorf("failed to hash %s: %w", fileID, err)
	}

	name := filepath.Base(fileID)
	return domain.FileItem{
		ID:          fileID,
		Name:        name,
		MimeType:    mime.TypeByExtension(strings.ToLower(filepath.Ext(name))),
		Size:        info.Size(),
		ContentHash: hex.EncodeToString(h.Sum(nil)),
		ParentIDs:   []string{filepath.Dir(fileID)},
	}, nil
}

// Download reads the file's bytes.
func (s *Storage) Download(_ context.Context, fileID string) ([]byte, error) {
	data, err := os.ReadFile(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fileID, err)
	}
	return data, nil
}

// Move renames the file into the destination directory. Rename is atomic
// on the same filesystem, which covers the add-then-remove reparenting
// contract in one step.
func (s *Storage) Move(_ context.Context, fileID, destFolderID string) ([]string, error) {
	dest := filepath.Join(destFolderID, filepath.Base(fileID))
	if _, err := os.Stat(dest); err == nil {
		return nil, fmt.Errorf("destination already exists: %s", dest)
	}
	if err := os.Rename(fileID, dest); err != nil {
		return nil, fmt.Errorf("failed to move %s: %w", fileID, err)
	}
	return []string{destFolderID}, nil
}
