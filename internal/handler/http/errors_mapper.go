package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/nft-creator/internal/app"
	"github.com/MKhiriev/nft-creator/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrMissingRequiredFields: http.StatusBadRequest,
	service.ErrMintNotConfigured:     http.StatusInternalServerError,
	service.ErrReadingImage:          http.StatusInternalServerError,
	service.ErrStorageUpload:         http.StatusInternalServerError,
	service.ErrRelayMint:             http.StatusInternalServerError,
}

// plainTextMessages holds the errors answered with a fixed plain-text body
// instead of the JSON error envelope.
var plainTextMessages = map[error]string{
	service.ErrMissingRequiredFields: app.MsgMissingRequiredFields,
	service.ErrMintNotConfigured:     app.MsgMissingEnvironmentVariables,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func plainTextFromError(err error) (string, bool) {
	for target, msg := range plainTextMessages {
		if errors.Is(err, target) {
			return msg, true
		}
	}
	return "", false
}
