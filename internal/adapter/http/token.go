package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dexrooms/internal/core/domain"
)

type tokenResponse struct {
	Token *domain.TokenMetadata `json:"token"`
}

// handlePreviewToken returns the metadata a campaign would be created
// from, so clients can show it before submitting.
func (h *Handler) handlePreviewToken(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	meta, err := h.svc.PreviewToken(r.Context(), address)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, tokenResponse{Token: meta})
	case errors.Is(err, domain.ErrMetadataUnavailable):
		h.logger.Warn("token preview failed", slog.String("address", address), slog.Any("error", err))
		h.writeError(w, http.StatusBadGateway, "Token not found or invalid address")
	default:
		h.logger.Error("token preview error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "Failed to fetch token")
	}
}
