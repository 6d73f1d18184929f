// Package storage persists uploaded payment screenshots on local
// disk and serves them back by public URL.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxReceiptBytes caps a single upload at 5 MB.
const maxReceiptBytes = 5 << 20

// ReceiptStore writes payment screenshots under a directory and
// maps them to URLs under baseURL. File names are prefixed with the
// upload timestamp so customer-chosen names cannot collide.
type ReceiptStore struct {
	dir     string
	baseURL string
}

// NewReceiptStore creates the storage directory if needed.
func NewReceiptStore(dir, baseURL string) (*ReceiptStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipts dir: %w", err)
	}
	return &ReceiptStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the backing directory, for static file serving.
func (s *ReceiptStore) Dir() string { return s.dir }

// Save stores one uploaded file and returns its public URL.
func (s *ReceiptStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxReceiptBytes {
		return "", fmt.Errorf("file too large: %d bytes", fh.Size)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitize(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create receipt file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, io.LimitReader(src, maxReceiptBytes)); err != nil {
		return "", fmt.Errorf("write receipt file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// sanitize strips path separators and whitespace from an uploaded
// file name.
func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
