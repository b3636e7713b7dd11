package validators

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/nft-creator/models"
)

// Field name constants used to restrict validation to a subset of the
// draft's fields.
const (
	// FieldAddress targets the recipient wallet address.
	FieldAddress = "address"

	// FieldName targets the token name.
	FieldName = "name"

	// FieldAssets targets the selected background and shape.
	FieldAssets = "assets"
)

// MaxNameLength is the longest token name accepted, in characters.
const MaxNameLength = 128

const (
	addressPrefix    = "0x"
	addressHexDigits = 40
)

// MintDraftValidator implements the Validator interface for
// models.MintDraft in both value and pointer form.
type MintDraftValidator struct {
}

// NewMintDraftValidator constructs a new MintDraftValidator and returns it
// as the Validator interface.
func NewMintDraftValidator() Validator {
	return &MintDraftValidator{}
}

// Validate checks the named fields of a draft, or all of them when none are
// given. It returns the first violation found.
func (v *MintDraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MintDraft:
		return v.validateMintDraft(ctx, value, fields...)
	case *models.MintDraft:
		return v.validateMintDraft(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MintDraftValidator) validateMintDraft(_ context.Context, draft models.MintDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress, FieldAssets, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress:
			if err := validateWalletAddress(draft.Address); err != nil {
				return err
			}
		case FieldName:
			name := strings.TrimSpace(draft.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxNameLength {
				return fmt.Errorf("%w: at most %d characters", ErrNameTooLong, MaxNameLength)
			}
		case FieldAssets:
			if draft.Background == "" || draft.Shape == "" {
				return ErrNoAssetSelected
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateWalletAddress accepts an EVM address: "0x" followed by 40 hex
// digits in any case. The checksum is not verified.
func validateWalletAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrEmptyAddress
	}

	digits, ok := strings.CutPrefix(strings.ToLower(address), addressPrefix)
	if !ok || len(digits) != addressHexDigits {
		return ErrInvalidWalletAddress
	}
	if _, err := hex.DecodeString(digits); err != nil {
		return ErrInvalidWalletAddress
	}

	return nil
}
