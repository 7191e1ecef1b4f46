package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type contributeRequest struct {
	Amount int64 `json:"amount"`
}

type contributeResponse struct {
	Token      string `json:"token"`
	CampaignID int64  `json:"campaign_id"`
	Amount     int64  `json:"amount"`
}

// handleContribute pledges value to a campaign on behalf of the caller.
// A non-positive amount is malformed input and rejected with 400 before
// it reaches the ledger; ledger precondition failures come back as 409
// with the contract reason string. On acceptance it returns 201 with the
// contribution receipt.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
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
	var req contributeRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}
	receipt, err := h.svc.Contribute(r.Context(), caller, id, req.Amount)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(contributeResponse{
		Token:      receipt.Token,
		CampaignID: receipt.CampaignID,
		Amount:     receipt.Amount,
	}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
