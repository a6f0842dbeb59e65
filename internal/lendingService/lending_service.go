package lending

import (
	"fmt"

	"nft-marketplace/internal/auth"
	"nft-marketplace/internal/marketerrors"
	"nft-marketplace/internal/metrics"
	model "nft-marketplace/internal/models"
	"nft-marketplace/internal/repository"
	"nft-marketplace/utils"

	"github.com/ethereum/go-ethereum/common"
)

// LendingService owns the lending record lifecycle: offer creation and borrow
// admission
type LendingService struct {
	repo    repository.MarketDB
	metrics *metrics.MarketMetrics
}

// NewLendingService creates a new LendingService instance
func NewLendingService(repo repository.MarketDB) *LendingService {
	return &LendingService{
		repo:    repo,
		metrics: metrics.Market(),
	}
}

// LendNFT offers mint for borrowing against at least loanAmount of collateral
func (s *LendingService) LendNFT(caller, mint common.Address, loanAmount uint64) (model.Lending, error) {
	fields := map[string]any{"operation": "lend_nft", "caller": caller.Hex(), "nft_mint": mint.Hex(), "loan_amount": loanAmount}

	if err := auth.Authenticated(caller); err != nil {
		return model.Lending{}, s.finish("lend_nft", err, fields)
	}
	if mint == (common.Address{}) {
		return model.Lending{}, s.finish("lend_nft", fmt.Errorf("service: %w - missing nft mint", marketerrors.ErrInvalidRequest), fields)
	}

	var created model.Lending
	err := s.repo.Update(func(recs repository.Records) error {
		var err error
		created, err = recs.CreateLending(caller, model.Lending{
			Lender:     caller,
			NFTMint:    mint,
			LoanAmount: loanAmount,
			Borrower:   common.Address{},
			IsActive:   true,
		})
		return err
	})
	if err != nil {
		return model.Lending{}, s.finish("lend_nft", err, fields)
	}

	fields["lending_id"] = created.LendingID
	return created, s.finish("lend_nft", nil, fields)
}

// BorrowNFT takes an active lending for caller when the offered collateral
// covers the loan amount. Only the record changes: collateral custody and
// the asset hand-off are not performed here.
func (s *LendingService) BorrowNFT(caller common.Address, lendingID string, collateral uint64) (model.Lending, error) {
	fields := map[string]any{"operation": "borrow_nft", "caller": caller.Hex(), "lending_id": lendingID, "collateral_amount": collateral}

	if err := auth.Authenticated(caller); err != nil {
		return model.Lending{}, s.finish("borrow_nft", err, fields)
	}

	var updated model.Lending
	err := s.repo.Update(func(recs repository.Records) error {
		lending, err := recs.GetLending(lendingID)
		if err != nil {
			return err
		}
		if !lending.IsActive {
			return fmt.Errorf("service: %w - borrowed by %s", marketerrors.ErrNotAvailable, lending.Borrower.Hex())
		}
		if collateral < lending.LoanAmount {
			return fmt.Errorf("service: %w - loan amount is %d", marketerrors.ErrInsufficientCollateral, lending.LoanAmount)
		}

		lending.Borrower = caller
		lending.IsActive = false
		if err := recs.PutLending(lending); err != nil {
			return err
		}
		updated = lending
		return nil
	})
	if err != nil {
		return model.Lending{}, s.finish("borrow_nft", err, fields)
	}

	s.metrics.ObserveBorrowed()
	return updated, s.finish("borrow_nft", nil, fields)
}

// GetLending returns the current state of a lending record
func (s *LendingService) GetLending(lendingID string) (model.Lending, error) {
	if lendingID == "" {
		return model.Lending{}, fmt.Errorf("service: %w - empty lending ID", marketerrors.ErrInvalidRequest)
	}

	var lending model.Lending
	err := s.repo.View(func(recs repository.Records) error {
		var err error
		lending, err = recs.GetLending(lendingID)
		return err
	})
	if err != nil {
		return model.Lending{}, fmt.Errorf("service: failed to get lending %s: %w", lendingID, err)
	}
	return lending, nil
}

func (s *LendingService) finish(operation string, err error, fields map[string]any) error {
	s.metrics.ObserveOperation(operation, err)
	if err != nil {
		fields["kind"] = marketerrors.Kind(err)
		fields["error"] = err.Error()
		utils.Warn("lending: "+operation+" rejected", fields)
		return err
	}
	utils.Info("lending: "+operation+" committed", fields)
	return nil
}
