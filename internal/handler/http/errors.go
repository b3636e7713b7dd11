// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while reading a multipart mint request. Every one
// of them is reported to the caller as a generic 500.
var (
	// ErrNotMultipart is returned when the request body is not
	// multipart/form-data.
	ErrNotMultipart = errors.New("request is not multipart/form-data")

	// ErrReadingPart is returned when the multipart stream is malformed, cut
	// short, or larger than the configured upload limit.
	ErrReadingPart = errors.New("error reading multipart part")

	// ErrSavingImage is returned when the image part cannot be written to
	// temporary storage.
	ErrSavingImage = errors.New("error saving uploaded image")

	// ErrNoUploadStorage is returned when the handler was built without an
	// upload storage.
	ErrNoUploadStorage = errors.New("upload storage is not configured")
)
