package custody

import (
	"fmt"

	"nft-marketplace/internal/auth"
	"nft-marketplace/internal/marketerrors"
	model "nft-marketplace/internal/models"
	"nft-marketplace/internal/repository"
	"nft-marketplace/utils"

	"github.com/ethereum/go-ethereum/common"
)

// HoldingService opens and reads custody holdings
type HoldingService struct {
	repo repository.MarketDB
}

// NewHoldingService creates a new HoldingService instance
func NewHoldingService(repo repository.MarketDB) *HoldingService {
	return &HoldingService{repo: repo}
}

// maxDeposit is the supply of every mint: an NFT is a single unit
const maxDeposit = 1

// OpenHolding creates the holding caller keeps for mint. A zero balance is
// how a bidder prepares to receive an asset; a balance of one deposits the
// asset itself, which can happen once per mint. Each owner gets at most one
// holding per mint.
func (s *HoldingService) OpenHolding(caller, mint common.Address, amount uint64) (model.Holding, error) {
	if err := auth.Authenticated(caller); err != nil {
		return model.Holding{}, err
	}
	if mint == (common.Address{}) {
		return model.Holding{}, fmt.Errorf("service: %w - missing nft mint", marketerrors.ErrInvalidRequest)
	}
	if amount > maxDeposit {
		return model.Holding{}, fmt.Errorf("service: %w - deposit of %d exceeds supply of %d", marketerrors.ErrInvalidRequest, amount, maxDeposit)
	}

	var holding model.Holding
	err := s.repo.Update(func(recs repository.Records) error {
		if err := recs.ClaimHoldingSlot(caller, mint); err != nil {
			return err
		}
		if amount > 0 {
			if err := recs.ClaimMintSupply(caller, mint); err != nil {
				return err
			}
		}

		var err error
		holding, err = recs.CreateHolding(caller, model.Holding{Owner: caller, NFTMint: mint, Amount: amount})
		return err
	})
	if err != nil {
		return model.Holding{}, fmt.Errorf("service: failed to open holding for %s: %w", caller.Hex(), err)
	}

	utils.Info("holding opened", map[string]any{
		"holding_id": holding.HoldingID,
		"owner":      caller.Hex(),
		"nft_mint":   mint.Hex(),
		"amount":     amount,
	})
	return holding, nil
}

// GetHolding returns a holding by id
func (s *HoldingService) GetHolding(holdingID string) (model.Holding, error) {
	if holdingID == "" {
		return model.Holding{}, fmt.Errorf("service: %w - empty holding ID", marketerrors.ErrInvalidRequest)
	}

	var holding model.Holding
	err := s.repo.View(func(recs repository.Records) error {
		var err error
		holding, err = recs.GetHolding(holdingID)
		return err
	})
	if err != nil {
		return model.Holding{}, fmt.Errorf("service: failed to get holding %s: %w", holdingID, err)
	}
	return holding, nil
}
