package blob_store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"blog-backend/utils/logger"

	"github.com/google/uuid"
)

// LocalBlobStore keeps thumbnail blobs on the local filesystem and hands
// out opaque refs (paths relative to the base directory).
type LocalBlobStore struct {
	baseDir  string
	maxBytes int64
}

func NewLocalBlobStore(baseDir string, maxBytes int64) (*LocalBlobStore, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, errors.New("blob store base directory must not be empty")
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob store directory: %w", err)
	}

	return &LocalBlobStore{baseDir: baseDir, maxBytes: maxBytes}, nil
}

// Store writes the blob under a fresh name and returns its ref. The
// original filename contributes only its extension.
func (s *LocalBlobStore) Store(ctx context.Context, filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	ref := uuid.NewString() + ext
	target := filepath.Join(s.baseDir, ref)

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create blob file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(content, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && written > s.maxBytes {
		err = fmt.Errorf("blob exceeds maximum size of %d bytes", s.maxBytes)
	}
	if err != nil {
		_ = os.Remove(target)
		logger.Logger.ErrorContext(ctx, "error storing blob", "error", err, "ref", ref)
		return "", err
	}

	logger.Logger.InfoContext(ctx, "blob stored", "ref", ref, "bytes", written)
	return ref, nil
}

// Release removes the blob behind the ref. A ref that is already gone is
// not an error.
func (s *LocalBlobStore) Release(ctx context.Context, ref string) error {
	target, err := s.resolve(ref)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		err = fmt.Errorf("remove blob: %w", err)
		logger.Logger.ErrorContext(ctx, "error releasing blob", "error", err, "ref", ref)
		return err
	}

	logger.Logger.InfoContext(ctx, "blob released", "ref", ref)
	return nil
}

// Open returns a reader over the blob behind the ref.
func (s *LocalBlobStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(target)
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

// resolve rejects refs that escape the base directory.
func (s *LocalBlobStore) resolve(ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", errors.New("blob ref must not be empty")
	}

	target := filepath.Join(s.baseDir, filepath.Clean("/"+ref))
	rel, err := filepath.Rel(s.baseDir, target)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("invalid blob ref: %q", ref)
	}
	return target, nil
}
