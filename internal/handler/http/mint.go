// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/nft-creator/internal/app"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/utils"
	"github.com/MKhiriev/nft-creator/models"
)

// mintNFT handles POST /api/mintNFT.
//
// The multipart form carries the image file and the name and address text
// fields. On success the relay's JSON answer is passed through unchanged.
// The uploaded image is removed before the handler returns on every path.
func (h *Handler) mintNFT(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	form, err := h.parseMintForm(w, r)
	if err != nil {
		log.Err(err).Msg("error parsing mint form")
		utils.WriteText(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}
	defer form.remove(log)

	req := models.MintRequest{
		Name:    form.value(fieldName),
		Address: form.value(fieldAddress),
	}
	if form.image != nil {
		req.Image = form.image
	}

	result, err := h.services.MintService.Mint(r.Context(), req)
	if err != nil {
		h.writeMintError(w, log, err)
		return
	}

	if _, err = utils.WriteRawJSON(w, result.Raw, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing mint response")
	}
}

func (h *Handler) writeMintError(w http.ResponseWriter, log *logger.Logger, err error) {
	status := statusFromError(err)

	if status < http.StatusInternalServerError {
		log.Warn().Err(err).Int("status", status).Msg("mint request rejected")
	} else {
		log.Error().Err(err).Int("status", status).Msg("mint failed")
	}

	if msg, ok := plainTextFromError(err); ok {
		utils.WriteText(w, msg, status)
		return
	}

	if _, err = utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status); err != nil {
		log.Err(err).Msg("error writing mint error response")
	}
}
