// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UploadStorage keeps uploaded images on local disk for the lifetime of a
// single request.
type UploadStorage interface {
	// Save copies r into a new temporary file and returns its handle. The
	// caller owns the file and must call [TempFile.Remove] on every exit
	// path. On error no file is left behind.
	Save(ctx context.Context, r io.Reader) (*TempFile, error)

	// RemoveStale deletes upload files last modified more than olderThan
	// ago and reports how many were removed.
	RemoveStale(ctx context.Context, olderThan time.Duration) (int, error)

	// Dir returns the directory temporary files are written to.
	Dir() string
}
