package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dexrooms/internal/core/domain"
)

type campaignResponse struct {
	Campaign *domain.Campaign `json:"campaign"`
}

// handleGetCampaign returns a single stored campaign. Malformed ids result
// in HTTP 400 and unknown ids in HTTP 404. Store failures are logged and
// reported as a generic HTTP 500.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := h.svc.GetCampaign(r.Context(), id)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, campaignResponse{Campaign: c})
	case errors.Is(err, domain.ErrInvalidIdentifier):
		h.writeError(w, http.StatusBadRequest, "Invalid campaign ID")
	case errors.Is(err, domain.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "Campaign not found")
	default:
		h.logger.Error("get campaign error", slog.String("id", id), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "Failed to fetch campaign")
	}
}
