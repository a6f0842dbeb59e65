package marketerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "bid_too_low_wrapped", err: fmt.Errorf("service: %w - current highest bid is 10", ErrBidTooLow), want: "BidTooLow"},
		{name: "auction_ended", err: ErrAuctionEnded, want: "AuctionEnded"},
		{name: "not_available", err: ErrNotAvailable, want: "NotAvailable"},
		{name: "transfer_wins_over_cause", err: fmt.Errorf("%w: %w", ErrTransferFailure, ErrInsufficientBalance), want: "TransferFailure"},
		{name: "unauthorized", err: fmt.Errorf("gate: %w", ErrUnauthorized), want: "AuthorizationError"},
		{name: "replay_wins_over_unauthorized", err: fmt.Errorf("auth: %w: %w", ErrUnauthorized, ErrReplayedRequest), want: "ReplayedRequest"},
		{name: "stale", err: fmt.Errorf("auth: %w: %w", ErrUnauthorized, ErrStaleRequest), want: "StaleRequest"},
		{name: "asset_exists", err: fmt.Errorf("service: %w", ErrAssetExists), want: "AssetExists"},
		{name: "unknown", err: errors.New("disk on fire"), want: "Internal"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Kind(tc.err))
		})
	}
}
