package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dexrooms/internal/core/domain"
)

const maxCreateBody = 64 << 10

// createRequest accepts either a bare token address, which is resolved
// through the metadata provider, or metadata the client already fetched.
type createRequest struct {
	TokenAddress string                `json:"tokenAddress"`
	TokenData    *domain.TokenMetadata `json:"tokenData"`
}

type createResponse struct {
	CampaignID string `json:"campaignId"`
}

// handleCreateCampaign creates a campaign and returns its id with HTTP 201.
// Validation errors produce HTTP 400, a duplicate active campaign HTTP 409
// and an unavailable metadata provider HTTP 502.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCreateBody)).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var (
		id  primitive.ObjectID
		err error
	)
	switch {
	case req.TokenData != nil:
		id, err = h.svc.CreateCampaignFromMetadata(r.Context(), *req.TokenData)
	case strings.TrimSpace(req.TokenAddress) != "":
		id, err = h.svc.CreateCampaign(r.Context(), req.TokenAddress)
	default:
		h.writeError(w, http.StatusBadRequest, "Token address is required")
		return
	}

	switch {
	case err == nil:
		h.writeJSON(w, http.StatusCreated, createResponse{CampaignID: id.Hex()})
	case errors.Is(err, domain.ErrInvalidCampaign):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicateCampaign):
		h.writeError(w, http.StatusConflict, domain.ErrDuplicateCampaign.Error())
	case errors.Is(err, domain.ErrMetadataUnavailable):
		h.logger.Warn("token metadata unavailable", slog.Any("error", err))
		h.writeError(w, http.StatusBadGateway, "Failed to validate token. Please check the contract address and try again.")
	default:
		h.logger.Error("create campaign error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "Failed to create campaign")
	}
}
