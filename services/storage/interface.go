package storage

import (
	"context"
)

// StorageService is the blob-store collaborator: it persists an uploaded file
// and returns a public URL for it.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
}
