package service

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrMintNotConfigured     = errors.New("mint is not configured")
	ErrReadingImage          = errors.New("error reading uploaded image")
	ErrStorageUpload         = errors.New("error uploading image to storage")
	ErrRelayMint             = errors.New("error minting token via relay")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrMintInFlight   = errors.New("a mint is already in progress")
	ErrComposingImage = errors.New("error composing image")
)
