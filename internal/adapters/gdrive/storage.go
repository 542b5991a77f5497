// Package gdrive implements ports.Storage on the Google Drive v3 API.
// Authorization is the caller's concern: construct it with credentials
// or an already-authorized HTTP client.
package gdrive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"ordina/internal/domain"
	"ordina/internal/ports"
)

const folderMime = "application/vnd.google-apps.folder"

// Storage implements ports.Storage against Google Drive.
type Storage struct {
	svc *drive.Service
}

var _ ports.Storage = (*Storage)(nil)

// New creates a Drive adapter from a service-account credentials file.
func New(ctx context.Context, credentialsFile string) (*Storage, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Storage{svc: svc}, nil
}

// NewWithClient creates a Drive adapter from an already-authorized HTTP
// client (user OAuth handled elsewhere).
func NewWithClient(ctx context.Context, client *http.Client) (*Storage, error) {
	svc, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Storage{svc: svc}, nil
}

// ListSubfolders returns the non-trashed folders directly under parentID,
// following pagination. Drive's listing order is the run's tie-break
// order.
func (s *Storage) ListSubfolders(ctx context.Context, parentID string) ([]domain.Folder, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType = '%s' and trashed = false", parentID, folderMime)

	var folders []domain.Folder
	pageToken := ""
	for {
		call := s.svc.Files.List().Q(q).Fields("nextPageToken, files(id,name)").Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("drive list folders: %w", err)
		}
		for _, f := range resp.Files {
			folders = append(folders, domain.Folder{ID: f.Id, Name: f.Name})
		}
		if resp.NextPageToken == "" {
			return folders, nil
		}
		pageToken = resp.NextPageToken
	}
}

// ListFiles returns the non-folder, non-trashed files directly under
// parentID. Drive publishes md5Checksum in the listing for binary
// content, so most files arrive with their content hash prefilled.
func (s *Storage) ListFiles(ctx context.Context, parentID string) ([]domain.FileItem, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false", parentID, folderMime)

	var files []domain.FileItem
	pageToken := ""
	for {
		call := s.svc.Files.List().Q(q).
			Fields("nextPageToken, files(id,name,mimeType,size,md5Checksum,parents)").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("drive list files: %w", err)
		}
		for _, f := range resp.Files {
			files = append(files, toFileItem(f))
		}
		if resp.NextPageToken == "" {
			return files, nil
		}
		pageToken = resp.NextPageToken
	}
}

// GetMeta re-reads one file's metadata.
func (s *Storage) GetMeta(ctx context.Context, fileID string) (domain.FileItem, error) {
	f, err := s.svc.Files.Get(fileID).
		Fields("id,name,mimeType,size,md5Checksum,parents").
		Context(ctx).Do()
	if err != nil {
		return domain.FileItem{}, fmt.Errorf("drive get %s: %w", fileID, err)
	}
	return toFileItem(f), nil
}

// Download fetches the file's bytes.
func (s *Storage) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := s.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("drive download %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("drive download %s: %w", fileID, err)
	}
	return data, nil
}

// Move reparents the file: read the current parent set, then one Update
// call that adds the destination and removes every previous parent.
func (s *Storage) Move(ctx context.Context, fileID, destFolderID string) ([]string, error) {
	meta, err := s.svc.Files.Get(fileID).Fields("parents").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("drive get parents of %s: %w", fileID, err)
	}

	call := s.svc.Files.Update(fileID, &drive.File{}).
		AddParents(destFolderID).
		Fields("id,parents").
		Context(ctx)
	if len(meta.Parents) > 0 {
		call = call.RemoveParents(strings.Join(meta.Parents, ","))
	}
	updated, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("drive move %s: %w", fileID, err)
	}
	return updated.Parents, nil
}

func toFileItem(f *drive.File) domain.FileItem {
	return domain.FileItem{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        f.Size,
		ContentHash: f.Md5Checksum,
		ParentIDs:   f.Parents,
	}
}
