// Package filestore is the upload-storage collaborator: it stores raw bytes
// and returns an opaque reference string. The core never interprets file
// contents.
package filestore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

type Store interface {
	// Save persists the upload and returns the reference stored verbatim on
	// the User or Post record.
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// objectName builds a collision-resistant name keeping the upload's
// extension: unix milliseconds plus the original extension.
func objectName(filename string) string {
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(filename))
}
