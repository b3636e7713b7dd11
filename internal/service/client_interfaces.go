package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/nft-creator/models"
)

// ClientMintService defines the client-side contract for composing an image
// and submitting it to the mint endpoint.
type ClientMintService interface {
	// Backgrounds lists the selectable background assets.
	Backgrounds() []string

	// Shapes lists the selectable shape assets.
	Shapes() []string

	// Preview composes draft.Background and draft.Shape and returns the PNG.
	Preview(draft models.MintDraft) ([]byte, error)

	// Mint composes the draft and posts it to the server. Only one mint may
	// be in flight at a time; a concurrent call fails with [ErrMintInFlight]
	// without contacting the server.
	Mint(ctx context.Context, draft models.MintDraft) (models.MintResult, error)

	// InFlight reports whether a mint is currently being submitted.
	InFlight() bool

	// ServerVersion asks the server for its application version.
	ServerVersion(ctx context.Context) (string, error)
}
