package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fundledger/internal/core/domain"
)

type finalizeResponse struct {
	CampaignID int64         `json:"campaign_id"`
	Status     domain.Status `json:"status"`
}

// handleFinalize settles a campaign as successful or failed. Settlement
// is open-permission: any caller identity may finalize an eligible
// campaign. Precondition failures return 409 with the contract reason
// string.
func (h *Handler) handleFinalize(w http.ResponseWriter, r *http.Request) {
	caller := callerIdentity(r)
	if caller == "" {
		http.Error(w, "missing X-Caller header", http.StatusBadRequest)
		return
	}
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	status, err := h.svc.Finalize(r.Context(), caller, id)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(finalizeResponse{CampaignID: id, Status: status}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
