package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAddress         = errors.New("wallet address is required")
	ErrInvalidWalletAddress = errors.New("wallet address must be 0x followed by 40 hex digits")
	ErrEmptyName            = errors.New("name is required")
	ErrNameTooLong          = errors.New("name is too long")
	ErrNoAssetSelected      = errors.New("background and shape must be selected")
)
