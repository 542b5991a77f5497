// Package s3store implements ports.Storage on an S3-compatible bucket.
// "Folders" are key prefixes: sub-folders of a parent prefix are its
// direct common prefixes, and a move is copy-then-remove under the
// destination prefix.
package s3store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"ordina/internal/config"
	"ordina/internal/domain"
	"ordina/internal/ports"
)

// Storage implements ports.Storage against S3/MinIO.
type Storage struct {
	api    *minio.Client
	bucket string
}

var _ ports.Storage = (*Storage)(nil)

// New creates an S3 adapter from configuration.
func New(cfg config.S3Config) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	return &Storage{api: client, bucket: cfg.Bucket}, nil
}

// normalizePrefix ensures a non-empty prefix ends with a slash.
func normalizePrefix(prefix string) string {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		return prefix + "/"
	}
	return prefix
}

// ListSubfolders returns the direct sub-prefixes of parentID.
func (s *Storage) ListSubfolders(ctx context.Context, parentID string) ([]domain.Folder, error) {
	prefix := normalizePrefix(parentID)

	var folders []domain.Folder
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: false}
	for obj := range s.api.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("s3 list folders: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, "/") || obj.Key == prefix {
			continue
		}
		folders = append(folders, domain.Folder{
			ID:   obj.Key,
			Name: path.Base(strings.TrimSuffix(obj.Key, "/")),
		})
	}
	return folders, nil
}

// ListFiles returns the objects directly under parentID, skipping the
// prefix placeholder and anything nested deeper.
func (s *Storage) ListFiles(ctx context.Context, parentID string) ([]domain.FileItem, error) {
	prefix := normalizePrefix(parentID)

	var files []domain.FileItem
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: false}
	for obj := range s.api.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("s3 list files: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		files = append(files, s.toFileItem(obj, prefix))
	}
	return files, nil
}

// GetMeta stats a single object.
func (s *Storage) GetMeta(ctx context.Context, fileID string) (domain.FileItem, error) {
	info, err := s.api.StatObject(ctx, s.bucket, fileID, minio.StatObjectOptions{})
	if err != nil {
		return domain.FileItem{}, fmt.Errorf("s3 stat %s: %w", fileID, err)
	}
	return s.toFileItem(info, path.Dir(fileID)+"/"), nil
}

// Download fetches the object's bytes.
func (s *Storage) Download(ctx context.Context, fileID string) ([]byte, error) {
	obj, err := s.api.GetObject(ctx, s.bucket, fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("s3 get %s: %w", fileID, err)
	}
	defer obj.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, obj); err != nil {
		return nil, fmt.Errorf("s3 read %s: %w", fileID, err)
	}
	return buf.Bytes(), nil
}

// Move copies the object under the destination prefix and removes the
// original. S3 has no rename; the copy must succeed before the source is
// touched, so a failure can leave a duplicate but never lose the file.
func (s *Storage) Move(ctx context.Context, fileID, destFolderID string) ([]string, error) {
	destKey := normalizePrefix(destFolderID) + path.Base(fileID)

	_, err := s.api.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: s.bucket, Object: destKey},
		minio.CopySrcOptions{Bucket: s.bucket, Object: fileID},
	)
	if err != nil {
		return nil, fmt.Errorf("s3 copy %s: %w", fileID, err)
	}
	if err := s.api.RemoveObject(ctx, s.bucket, fileID, minio.RemoveObjectOptions{}); err != nil {
		return nil, fmt.Errorf("s3 remove %s after copy: %w", fileID, err)
	}
	return []string{normalizePrefix(destFolderID)}, nil
}

func (s *Storage) toFileItem(obj minio.ObjectInfo, parentPrefix string) domain.FileItem {
	name := path.Base(obj.Key)
	mimeType := obj.ContentType
	if mimeType == "" {
		mimeType = mime.TypeByExtension(strings.ToLower(path.Ext(name)))
	}
	return domain.FileItem{
		ID:          obj.Key,
		Name:        name,
		MimeType:    mimeType,
		Size:        obj.Size,
		ContentHash: strings.Trim(obj.ETag, `"`),
		ParentIDs:   []string{parentPrefix},
	}
}
