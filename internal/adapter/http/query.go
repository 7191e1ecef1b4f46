package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleContributors returns contributor identities in contribution
// order, one entry per record; a contributor who gave multiple times
// appears multiple times.
func (h *Handler) handleContributors(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	contributors, err := h.svc.GetCampaignContributors(r.Context(), id)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(struct {
		Contributors []string `json:"contributors"`
	}{Contributors: contributors}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleContributorInfo returns the amount of the first contribution
// record matching the contributor, or 0 when none match. It is
// deliberately not a sum.
func (h *Handler) handleContributorInfo(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	contributor := chi.URLParam(r, "contributor")
	if contributor == "" {
		http.Error(w, "missing contributor", http.StatusBadRequest)
		return
	}
	amount, err := h.svc.GetContributorInfo(r.Context(), id, contributor)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(struct {
		Contributor string `json:"contributor"`
		Amount      int64  `json:"amount"`
	}{Contributor: contributor, Amount: amount}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleTotalContributions returns the campaign's running total.
func (h *Handler) handleTotalContributions(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	total, err := h.svc.GetTotalContributions(r.Context(), id)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(struct {
		CampaignID int64 `json:"campaign_id"`
		Total      int64 `json:"total_contributed"`
	}{CampaignID: id, Total: total}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
