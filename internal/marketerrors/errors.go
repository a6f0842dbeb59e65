package marketerrors

import "errors"

// Record-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrLendingNotFound = errors.New("lending not found")
	ErrHoldingNotFound = errors.New("holding not found")
	ErrInvalidRequest  = errors.New("invalid request")
)

// Authorization errors. Replayed and stale requests are reported together
// with ErrUnauthorized.
var (
	ErrUnauthorized    = errors.New("caller not authorized")
	ErrReplayedRequest = errors.New("request nonce already used")
	ErrStaleRequest    = errors.New("request timestamp outside the accepted window")
)

// Auction errors
var (
	ErrAuctionEnded     = errors.New("auction has already ended")
	ErrBidTooLow        = errors.New("bid is too low")
	ErrAuctionNotEnded  = errors.New("auction is not ended yet")
	ErrAuctionFinalized = errors.New("auction already finalized")
	ErrWinnerMismatch   = errors.New("destination holding does not belong to the winner")
)

// Lending errors
var (
	ErrNotAvailable           = errors.New("nft is not available for lending")
	ErrInsufficientCollateral = errors.New("insufficient collateral")
)

// Custody errors. The causes are always reported together with ErrTransferFailure.
var (
	ErrTransferFailure      = errors.New("asset transfer failed")
	ErrInsufficientBalance  = errors.New("insufficient holding balance")
	ErrMintMismatch         = errors.New("holding mint mismatch")
	ErrHoldingOwnerMismatch = errors.New("transfer authority does not own source holding")
)

// Deposit errors
var (
	ErrHoldingExists = errors.New("holding already open for owner and mint")
	ErrAssetExists   = errors.New("nft already deposited")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrReplayedRequest, "ReplayedRequest"},
	{ErrStaleRequest, "StaleRequest"},
	{ErrUnauthorized, "AuthorizationError"},
	{ErrTransferFailure, "TransferFailure"},
	{ErrAuctionEnded, "AuctionEnded"},
	{ErrBidTooLow, "BidTooLow"},
	{ErrAuctionNotEnded, "AuctionNotEnded"},
	{ErrAuctionFinalized, "AuctionFinalized"},
	{ErrWinnerMismatch, "WinnerMismatch"},
	{ErrNotAvailable, "NotAvailable"},
	{ErrInsufficientCollateral, "InsufficientCollateral"},
	{ErrHoldingExists, "HoldingExists"},
	{ErrAssetExists, "AssetExists"},
	{ErrAuctionNotFound, "AuctionNotFound"},
	{ErrLendingNotFound, "LendingNotFound"},
	{ErrHoldingNotFound, "HoldingNotFound"},
	{ErrInvalidRequest, "InvalidRequest"},
}

// Kind returns the stable name of the error class err belongs to, or
// "Internal" when it is none of the known classes.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}
