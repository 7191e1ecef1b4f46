package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fundledger/internal/core/domain"
	"fundledger/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a LedgerUseCase to execute business logic and a logger
// for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.LedgerUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// LedgerUseCase implementation and a logger. The returned Handler
// registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.LedgerUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleCampaignDetails)
		r.Post("/campaigns/{id}/contributions", h.handleContribute)
		r.Get("/campaigns/{id}/contributions/total", h.handleTotalContributions)
		r.Get("/campaigns/{id}/contributors", h.handleContributors)
		r.Get("/campaigns/{id}/contributors/{contributor}", h.handleContributorInfo)
		r.Post("/campaigns/{id}/finalize", h.handleFinalize)
	})
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// callerIdentity extracts the raw caller identity from the X-Caller
// header. There is no authentication beyond this.
func callerIdentity(r *http.Request) string {
	return r.Header.Get("X-Caller")
}

// campaignID parses the {id} path parameter.
func campaignID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeLedgerError maps a usecase error onto an HTTP response. The five
// ledger rejection reasons are surfaced verbatim with 409 Conflict, so
// clients can match on them; anything else is an internal error.
func (h *Handler) writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDeadlinePassed),
		errors.Is(err, domain.ErrTargetReached),
		errors.Is(err, domain.ErrNotActive),
		errors.Is(err, domain.ErrStillActive),
		errors.Is(err, domain.ErrAlreadyFinalized):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("ledger error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
