package auth

import (
	"errors"
	"fmt"
	"time"

	"nft-marketplace/internal/clock"
	"nft-marketplace/internal/marketerrors"
	model "nft-marketplace/internal/models"
	"nft-marketplace/internal/repository"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultSignatureWindow bounds how far a request timestamp may drift from now
const DefaultSignatureWindow = 5 * time.Minute

// ReplayGuard admits each signed request at most once
type ReplayGuard interface {
	Admit(signer common.Address, timestamp int64, nonce string) error
}

// NonceGuard rejects timestamps outside the window around the clock and
// records every admitted nonce in the record store.
type NonceGuard struct {
	db     repository.MarketDB
	clock  clock.Clock
	window time.Duration
}

// NewNonceGuard creates a guard; a non-positive window uses DefaultSignatureWindow.
func NewNonceGuard(db repository.MarketDB, clk clock.Clock, window time.Duration) *NonceGuard {
	if window <= 0 {
		window = DefaultSignatureWindow
	}
	return &NonceGuard{db: db, clock: clk, window: window}
}

func (g *NonceGuard) Admit(signer common.Address, timestamp int64, nonce string) error {
	now := g.clock.Now()
	signedAt := time.Unix(timestamp, 0)
	if signedAt.Before(now.Add(-g.window)) || signedAt.After(now.Add(g.window)) {
		return fmt.Errorf("auth: %w: %w - signed at %d, now %d", marketerrors.ErrUnauthorized, marketerrors.ErrStaleRequest, timestamp, now.Unix())
	}

	// TODO: prune nonce records older than the window; past it they fail the timestamp check anyway.
	err := g.db.Update(func(recs repository.Records) error {
		return recs.ClaimNonce(model.UsedNonce{Signer: signer, Nonce: nonce, SignedAt: timestamp})
	})
	if errors.Is(err, marketerrors.ErrReplayedRequest) {
		return fmt.Errorf("auth: %w: %w", marketerrors.ErrUnauthorized, err)
	}
	if err != nil {
		return fmt.Errorf("auth: record nonce: %w", err)
	}
	return nil
}
