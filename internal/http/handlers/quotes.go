package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
)

type submitQuoteRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Message     string `json:"message" validate:"max=2000"`
}

type quoteDTO struct {
	ID          string    `json:"id"`
	TenderID    string    `json:"tender_id"`
	UserID      string    `json:"user_id"`
	AmountCents int64     `json:"amount_cents"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuoteSubmit submits a quote on a tender. The per-tender quote cap is
// enforced from the stored account row.
func (a *App) QuoteSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := a.currentUser(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	tenderID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(tenderID); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid tender id")
		return
	}
	var req submitQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.validate(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	tender, err := a.Tenders.GetByID(r.Context(), tenderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "tender not found")
			return
		}
		a.Logger.Error().Err(err).Str("tender_id", tenderID).Msg("load tender failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load tender")
		return
	}
	if tender.OwnerID == user.ID {
		a.error(w, http.StatusForbidden, "forbidden", "cannot quote your own tender")
		return
	}

	decision := a.Enforcer.CheckQuoteSubmission(r.Context(), user, tender.ID)
	if !decision.Allowed {
		a.error(w, http.StatusForbidden, "quota_exceeded", decision.Message)
		return
	}

	quote := &domain.Quote{
		ID:          uuid.NewString(),
		TenderID:    tender.ID,
		UserID:      user.ID,
		AmountCents: req.AmountCents,
		Message:     req.Message,
	}
	if err := a.Quotes.Create(r.Context(), quote); err != nil {
		a.Logger.Error().Err(err).Str("tender_id", tender.ID).Msg("create quote failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to submit quote")
		return
	}
	a.json(w, http.StatusCreated, quoteDTO{
		ID:          quote.ID,
		TenderID:    quote.TenderID,
		UserID:      quote.UserID,
		AmountCents: quote.AmountCents,
		Message:     quote.Message,
		CreatedAt:   quote.CreatedAt,
	})
}
