package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrLotNotFound):
		return http.StatusNotFound, "lot not found"
	case errors.Is(err, auctionerrors.ErrNoAutoBid):
		return http.StatusNotFound, "no auto-bid set"
	case errors.Is(err, auctionerrors.ErrMissingField):
		return http.StatusBadRequest, "missing required field"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid amount"
	case errors.Is(err, auctionerrors.ErrInvalidTimeRange):
		return http.StatusBadRequest, "invalid auction times"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAlreadyHighestBidder):
		return http.StatusConflict, "bidder already holds the highest bid"
	case errors.Is(err, auctionerrors.ErrLotEnded):
		return http.StatusConflict, "bidding on this lot has ended"
	case errors.Is(err, auctionerrors.ErrEligibilityRequired):
		return http.StatusForbidden, "approval required to bid"
	case errors.Is(err, auctionerrors.ErrEligibilityUnavailable):
		return http.StatusServiceUnavailable, "eligibility check unavailable, try again"
	case errors.Is(err, auctionerrors.ErrAuctionNotCompleted):
		return http.StatusConflict, "auction has not completed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
