package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/minhdao/rebalancer/internal/errors"
	"github.com/minhdao/rebalancer/internal/store"
)

// HeaderOwner carries the calling owner's identity. Identity is established
// upstream (gateway or reverse proxy); this service trusts the header.
const HeaderOwner = "X-Owner"

// HeaderAdminToken carries the price-oracle credential for admin-gated writes.
const HeaderAdminToken = "X-Admin-Token"

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto HTTP status codes. Every
// domain error is a precondition violation; nothing here is retryable.
func writeError(w http.ResponseWriter, err error) {
	var validation *apperrors.ErrValidation
	switch {
	case errors.Is(err, apperrors.ErrNotAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidAllocation), errors.As(err, &validation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrAssetExists), errors.Is(err, apperrors.ErrPortfolioExists),
		errors.Is(err, apperrors.ErrRebalanceNotNeeded):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, apperrors.ErrPortfolioNotFound), errors.Is(err, store.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ownerFromRequest extracts the caller identity, or replies 400 and returns
// false when it is missing.
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner := r.Header.Get(HeaderOwner)
	if owner == "" {
		http.Error(w, "X-Owner header is required", http.StatusBadRequest)
		return "", false
	}
	return owner, true
}
