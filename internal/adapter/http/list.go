package httpadapter

import (
	"log/slog"
	"net/http"

	"dexrooms/internal/core/domain"
)

type campaignsResponse struct {
	Campaigns []domain.Campaign `json:"campaigns"`
}

// handleListCampaigns returns all campaigns, optionally narrowed by the
// `q` search term and the `status` query parameter ("all" or empty for
// every status). An unknown status results in HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, err := domain.ParseStatusFilter(q.Get("status"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	campaigns, err := h.svc.ListCampaigns(r.Context(), domain.Filter{Query: q.Get("q"), Status: status})
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "Failed to fetch campaigns")
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, campaignsResponse{Campaigns: campaigns})
}
