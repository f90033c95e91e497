package errors

import "errors"

// Precondition failures surfaced directly to the caller. None of these is
// retryable: every error in this package means the request itself was invalid
// for the current state of the portfolio.
var (
	// ErrNotAuthorized means the caller lacks permission for an admin-gated
	// write, or auto-rebalancing is disabled for the portfolio.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrInvalidAllocation means a percentage argument exceeds 10000 basis points.
	ErrInvalidAllocation = errors.New("allocation exceeds 10000 basis points")

	// ErrAssetExists means the (owner, slot) pair already has a holding.
	ErrAssetExists = errors.New("asset already exists for slot")

	// ErrPortfolioNotFound means the operation targets an owner with no portfolio.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrPortfolioExists means the owner already created a portfolio.
	ErrPortfolioExists = errors.New("portfolio already exists")

	// ErrRebalanceNotNeeded means execute was called while drift is within threshold.
	ErrRebalanceNotNeeded = errors.New("rebalance not needed")
)

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}
