// Package custody is the asset transfer service. Holdings are records in the
// same store as auctions, so a transfer made inside a request commits or rolls
// back together with the request.
package custody

import (
	"fmt"
	"math"

	"nft-marketplace/internal/marketerrors"
	model "nft-marketplace/internal/models"
	"nft-marketplace/internal/repository"
	"nft-marketplace/utils"
)

// Ledger moves asset units between holdings
type Ledger struct{}

// NewLedger creates a new holding ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Transfer moves req.Amount units of req.NFTMint from the source holding to
// the destination holding. The authority must own the source holding.
func (l *Ledger) Transfer(recs repository.Records, req model.TransferRequest) error {
	if req.Amount == 0 || req.Source == req.Destination {
		return fmt.Errorf("custody: %w: %w - empty or self transfer", marketerrors.ErrTransferFailure, marketerrors.ErrInvalidRequest)
	}

	src, err := recs.GetHolding(req.Source)
	if err != nil {
		return fmt.Errorf("custody: %w: %w", marketerrors.ErrTransferFailure, err)
	}
	dst, err := recs.GetHolding(req.Destination)
	if err != nil {
		return fmt.Errorf("custody: %w: %w", marketerrors.ErrTransferFailure, err)
	}

	if src.Owner != req.Authority {
		return fmt.Errorf("custody: %w: %w - holding %s", marketerrors.ErrTransferFailure, marketerrors.ErrHoldingOwnerMismatch, src.HoldingID)
	}
	if src.NFTMint != req.NFTMint || dst.NFTMint != req.NFTMint {
		return fmt.Errorf("custody: %w: %w - expected %s", marketerrors.ErrTransferFailure, marketerrors.ErrMintMismatch, req.NFTMint.Hex())
	}
	if src.Amount < req.Amount {
		return fmt.Errorf("custody: %w: %w - holding %s has %d", marketerrors.ErrTransferFailure, marketerrors.ErrInsufficientBalance, src.HoldingID, src.Amount)
	}
	if dst.Amount > math.MaxUint64-req.Amount {
		return fmt.Errorf("custody: %w: %w - destination balance overflow", marketerrors.ErrTransferFailure, marketerrors.ErrInvalidRequest)
	}

	src.Amount -= req.Amount
	dst.Amount += req.Amount

	if err := recs.PutHolding(src); err != nil {
		return fmt.Errorf("custody: %w: %w", marketerrors.ErrTransferFailure, err)
	}
	if err := recs.PutHolding(dst); err != nil {
		return fmt.Errorf("custody: %w: %w", marketerrors.ErrTransferFailure, err)
	}

	utils.Debug("custody: transfer applied", map[string]any{
		"source":      src.HoldingID,
		"destination": dst.HoldingID,
		"nft_mint":    req.NFTMint.Hex(),
		"amount":      req.Amount,
	})
	return nil
}
