package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"nft-marketplace/internal/marketerrors"
	"nft-marketplace/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// CallerKey is the gin context key under which the authenticated caller is stored
const CallerKey = "market.caller"

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload", marketerrors.Kind(marketerrors.ErrInvalidRequest))
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrUnauthorized):
		return http.StatusForbidden, "caller not authorized"
	case errors.Is(err, marketerrors.ErrTransferFailure):
		return http.StatusFailedDependency, "asset transfer failed"
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrLendingNotFound):
		return http.StatusNotFound, "lending not found"
	case errors.Is(err, marketerrors.ErrHoldingNotFound):
		return http.StatusNotFound, "holding not found"
	case errors.Is(err, marketerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, marketerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has already ended"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid is too low"
	case errors.Is(err, marketerrors.ErrAuctionNotEnded):
		return http.StatusConflict, "auction is not ended yet"
	case errors.Is(err, marketerrors.ErrAuctionFinalized):
		return http.StatusConflict, "auction already finalized"
	case errors.Is(err, marketerrors.ErrWinnerMismatch):
		return http.StatusConflict, "winner account mismatch"
	case errors.Is(err, marketerrors.ErrNotAvailable):
		return http.StatusConflict, "nft is not available for lending"
	case errors.Is(err, marketerrors.ErrHoldingExists):
		return http.StatusConflict, "holding already open"
	case errors.Is(err, marketerrors.ErrAssetExists):
		return http.StatusConflict, "nft already deposited"
	case errors.Is(err, marketerrors.ErrInsufficientCollateral):
		return http.StatusUnprocessableEntity, "insufficient collateral"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// WriteServiceError sends the mapped error response and logs it
func WriteServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	kind := marketerrors.Kind(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message, kind)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["kind"] = kind
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// Caller returns the identity the auth middleware attached to the request
func Caller(c *gin.Context) (common.Address, bool) {
	v, ok := c.Get(CallerKey)
	if !ok {
		return common.Address{}, false
	}
	addr, ok := v.(common.Address)
	return addr, ok && addr != (common.Address{})
}

// RequireCaller returns the authenticated caller or writes a 401 response
func RequireCaller(c *gin.Context, handlerName string) (common.Address, bool) {
	caller, ok := Caller(c)
	if !ok {
		err := fmt.Errorf("%w - no authenticated caller", marketerrors.ErrUnauthorized)
		utils.JSONError(c, http.StatusUnauthorized, err, "authentication required", marketerrors.Kind(err))
		utils.Warn(handlerName+": missing caller", nil)
		return common.Address{}, false
	}
	return caller, true
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
