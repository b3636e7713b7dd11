// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// nft-creator server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Web front-ends match on them, so the wording must
// stay exactly as is.
package app

const (
	// MsgMethodNotAllowed is returned when a route exists but the request
	// uses a different HTTP method.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError is returned when the mint form cannot be read
	// (not multipart, truncated, or over the upload limit).
	MsgInternalServerError = "Internal server error"

	// MsgMissingRequiredFields is returned when the image, name or address
	// of a mint request is absent or blank.
	MsgMissingRequiredFields = "Missing required fields"

	// MsgMissingEnvironmentVariables is returned when any of the storage or
	// relay parameters is not configured.
	MsgMissingEnvironmentVariables = "Missing environment variables"
)
