package compositor

import "errors"

var (
	ErrUnknownAsset    = errors.New("unknown asset")
	ErrNoAssets        = errors.New("asset directory has no backgrounds or no shapes")
	ErrDecodingAsset   = errors.New("error decoding asset")
	ErrEncodingImage   = errors.New("error encoding image")
	ErrInvalidCanvas   = errors.New("canvas size must be positive")
	ErrReadingAssetDir = errors.New("error reading asset directory")
)
