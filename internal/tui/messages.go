package tui

import "github.com/MKhiriev/nft-creator/models"

type mintDoneMsg struct {
	result models.MintResult
	err    error
}

type previewMsg struct {
	size int
	err  error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
