// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured, resulting in no transport handler being initialized.
	// This is treated as a fatal misconfiguration and causes the application
	// to fail at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoUploadStorage is returned by NewHandlers when the mint endpoint
	// would have nowhere to spool uploaded images.
	errNoUploadStorage = errors.New("upload storage is required by the HTTP handler")
)
