package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"fundledger/internal/core/domain"
	"fundledger/internal/core/port"
)

// createCampaignRequest is the JSON body of POST /campaigns. The deadline
// is an RFC3339 timestamp. No bounds checking is performed on the target
// or the deadline; the ledger accepts zero targets and past deadlines.
type createCampaignRequest struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	TargetAmount int64     `json:"target_amount"`
	Deadline     time.Time `json:"deadline"`
}

type createCampaignResponse struct {
	CampaignID int64 `json:"campaign_id"`
}

// campaignResponse is the JSON snapshot of a campaign. An unknown id
// yields the zero snapshot rather than 404.
type campaignResponse struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	Creator          string        `json:"creator"`
	TargetAmount     int64         `json:"target_amount"`
	Deadline         time.Time     `json:"deadline"`
	TotalContributed int64         `json:"total_contributed"`
	Finalized        bool          `json:"finalized"`
	Status           domain.Status `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
}

// handleCreateCampaign creates a new campaign owned by the caller. The
// caller identity comes from the X-Caller header and is required for
// mutations. On success it returns 201 with the assigned campaign id.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	caller := callerIdentity(r)
	if caller == "" {
		http.Error(w, "missing X-Caller header", http.StatusBadRequest)
		return
	}
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), caller, port.CreateCampaignReq{
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
	})
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(createCampaignResponse{CampaignID: id}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleCampaignDetails returns the full campaign snapshot.
func (h *Handler) handleCampaignDetails(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	campaign, err := h.svc.GetCampaignDetails(r.Context(), id)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(campaignResponse{
		ID:               campaign.ID,
		Name:             campaign.Name,
		Description:      campaign.Description,
		Creator:          campaign.Creator,
		TargetAmount:     campaign.TargetAmount,
		Deadline:         campaign.Deadline,
		TotalContributed: campaign.TotalContributed,
		Finalized:        campaign.Finalized,
		Status:           campaign.Status,
		CreatedAt:        campaign.CreatedAt,
	}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleListCampaigns returns every assigned campaign id in order.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.GetAllCampaigns(r.Context())
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(struct {
		CampaignIDs []int64 `json:"campaign_ids"`
	}{CampaignIDs: ids}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
