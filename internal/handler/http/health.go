package http

import (
	"net/http"

	"github.com/MKhiriev/nft-creator/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, "ok", http.StatusOK)
}
