// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/google/uuid"
)

const (
	tempFilePrefix = "nft-upload-"
	tempFileSuffix = ".tmp"
)

// TempFile is a temporary upload owned by exactly one request.
//
// Remove is idempotent and safe to defer right after a successful Save.
type TempFile struct {
	path string
	size int64

	mu      sync.Mutex
	removed bool
}

// Path returns the absolute location of the file.
func (f *TempFile) Path() string {
	return f.path
}

// Size returns the number of bytes written when the file was saved.
func (f *TempFile) Size() int64 {
	return f.size
}

// Bytes reads the whole file. It implements models.FileSource.
func (f *TempFile) Bytes() ([]byte, error) {
	f.mu.Lock()
	removed := f.removed
	f.mu.Unlock()

	if removed {
		return nil, ErrTempFileRemoved
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingTempFile, err)
	}

	return data, nil
}

// Remove deletes the file. Calling it more than once, or after the janitor
// already swept the file, is not an error.
func (f *TempFile) Remove() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.removed {
		return nil
	}
	f.removed = true

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing temporary file: %w", err)
	}

	return nil
}

type uploadStorage struct {
	dir string

	logger *logger.Logger
}

// NewUploadStorage creates an [UploadStorage] rooted at cfg.TempDir, or at
// the operating system's temp directory when it is empty. The directory is
// created if it does not exist.
func NewUploadStorage(cfg config.Files, logger *logger.Logger) (UploadStorage, error) {
	dir := cfg.TempDir
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating upload directory %q: %w", dir, err)
	}

	return &uploadStorage{dir: dir, logger: logger}, nil
}

func (s *uploadStorage) Dir() string {
	return s.dir
}

func (s *uploadStorage) Save(ctx context.Context, r io.Reader) (*TempFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, tempFilePrefix+uuid.NewString()+tempFileSuffix)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingTempFile, err)
	}

	size, copyErr := io.Copy(file, r)
	closeErr := file.Close()

	if err = errors.Join(copyErr, closeErr); err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			s.logger.Err(rmErr).Str("path", path).Msg("failed to remove partially written upload")
		}
		return nil, fmt.Errorf("%w: %w", ErrWritingTempFile, err)
	}

	s.logger.Debug().Str("path", path).Int64("size", size).Msg("upload saved to temporary file")

	return &TempFile{path: path, size: size}, nil
}

func (s *uploadStorage) RemoveStale(ctx context.Context, olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("error listing upload directory: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0

	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return removed, err
		}

		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, tempFilePrefix) || !strings.HasSuffix(name, tempFileSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed concurrently by its owner
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.dir, name)
		if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Err(err).Str("path", path).Msg("failed to remove stale upload")
			continue
		}
		removed++
	}

	return removed, nil
}
