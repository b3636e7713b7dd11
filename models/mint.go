// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/goccy/go-json"

// FileSource is the uploaded image as seen by the mint service. It is
// implemented by the temporary upload files of the store package.
type FileSource interface {
	// Bytes reads the whole file into memory.
	Bytes() ([]byte, error)
}

// MintRequest is a single validated mint submission. It lives for the
// duration of one HTTP request and is never persisted.
type MintRequest struct {
	// Image is the composited picture.
	Image FileSource

	// Name is the token's display name.
	Name string

	// Address is the wallet that receives the token.
	Address string
}

// NFTMetadata is the token metadata handed to the relay. Image holds the
// content-addressed URI of the uploaded picture.
type NFTMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// MintToPayload is the body of the relay's ERC-721 mint-to call.
type MintToPayload struct {
	Receiver string      `json:"receiver"`
	Metadata NFTMetadata `json:"metadata"`
}

// MintResult is the relay's answer to a mint-to call.
type MintResult struct {
	// Raw is the relay response body, passed back to the caller verbatim.
	Raw json.RawMessage

	// QueueID identifies the queued transaction when the relay reports one.
	QueueID string
}

// MintSubmission is what the terminal client sends to the mint endpoint.
type MintSubmission struct {
	// Image is the PNG-encoded composited canvas.
	Image []byte

	// FileName is the multipart file name of Image (e.g. "nft.png").
	FileName string

	Name    string
	Address string
}

// MintDraft is what the user picked in the client before minting.
type MintDraft struct {
	Background string
	Shape      string
	Name       string
	Address    string
}

// Complete reports whether every field of the draft is filled in.
func (d MintDraft) Complete() bool {
	return d.Background != "" && d.Shape != "" && d.Name != "" && d.Address != ""
}
