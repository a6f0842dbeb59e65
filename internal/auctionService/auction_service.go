package auction

import (
	"errors"
	"fmt"
	"math"

	"nft-marketplace/internal/auth"
	"nft-marketplace/internal/clock"
	"nft-marketplace/internal/marketerrors"
	"nft-marketplace/internal/metrics"
	model "nft-marketplace/internal/models"
	"nft-marketplace/internal/repository"
	"nft-marketplace/utils"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=auction_service.go -destination=mock_auction_service.go -package=auction

// AssetTransferer executes the custody change of an asset. It runs inside the
// caller's request, so a failed transfer discards every record write.
type AssetTransferer interface {
	Transfer(recs repository.Records, req model.TransferRequest) error
}

// AuctionService owns the auction record lifecycle: creation, bid admission
// and finalization. Every guard is evaluated against the record as loaded in
// the same atomic update that mutates it.
type AuctionService struct {
	repo     repository.MarketDB
	transfer AssetTransferer
	clock    clock.Clock
	metrics  *metrics.MarketMetrics
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.MarketDB, transfer AssetTransferer, clk clock.Clock) *AuctionService {
	return &AuctionService{
		repo:     repo,
		transfer: transfer,
		clock:    clk,
		metrics:  metrics.Market(),
	}
}

// CreateAuction lists mint for auction by caller. The auction accepts bids for
// duration seconds from now.
func (s *AuctionService) CreateAuction(caller, mint common.Address, minBid uint64, duration int64) (model.Auction, error) {
	fields := map[string]any{"operation": "create_auction", "caller": caller.Hex(), "nft_mint": mint.Hex()}

	if err := auth.Authenticated(caller); err != nil {
		return model.Auction{}, s.finish("create_auction", err, fields)
	}
	if mint == (common.Address{}) {
		return model.Auction{}, s.finish("create_auction", fmt.Errorf("service: %w - missing nft mint", marketerrors.ErrInvalidRequest), fields)
	}
	if duration <= 0 {
		return model.Auction{}, s.finish("create_auction", fmt.Errorf("service: %w - duration must be positive", marketerrors.ErrInvalidRequest), fields)
	}

	var created model.Auction
	err := s.repo.Update(func(recs repository.Records) error {
		now := s.clock.Now().Unix()
		if now > math.MaxInt64-duration {
			return fmt.Errorf("service: %w - duration overflows end time", marketerrors.ErrInvalidRequest)
		}

		var err error
		created, err = recs.CreateAuction(caller, model.Auction{
			Seller:        caller,
			NFTMint:       mint,
			MinBid:        minBid,
			HighestBid:    0,
			HighestBidder: common.Address{},
			EndTime:       now + duration,
			Finalized:     false,
		})
		return err
	})
	if err != nil {
		return model.Auction{}, s.finish("create_auction", err, fields)
	}

	fields["auction_id"] = created.AuctionID
	fields["end_time"] = created.EndTime
	return created, s.finish("create_auction", nil, fields)
}

// PlaceBid admits a bid strictly greater than the current highest bid while
// the auction is still open. min_bid is informational and not compared.
func (s *AuctionService) PlaceBid(caller common.Address, auctionID string, amount uint64) (model.Auction, error) {
	fields := map[string]any{"operation": "place_bid", "caller": caller.Hex(), "auction_id": auctionID, "amount": amount}

	if err := auth.Authenticated(caller); err != nil {
		return model.Auction{}, s.finish("place_bid", err, fields)
	}

	var updated model.Auction
	err := s.repo.Update(func(recs repository.Records) error {
		auction, err := recs.GetAuction(auctionID)
		if err != nil {
			return err
		}

		if s.clock.Now().Unix() >= auction.EndTime {
			return fmt.Errorf("service: %w - ended at %d", marketerrors.ErrAuctionEnded, auction.EndTime)
		}
		if amount <= auction.HighestBid {
			return fmt.Errorf("service: %w - current highest bid is %d", marketerrors.ErrBidTooLow, auction.HighestBid)
		}

		auction.HighestBid = amount
		auction.HighestBidder = caller
		if err := recs.PutAuction(auction); err != nil {
			return err
		}
		updated = auction
		return nil
	})
	if err != nil {
		return model.Auction{}, s.finish("place_bid", err, fields)
	}
	return updated, s.finish("place_bid", nil, fields)
}

// FinalizeAuction moves one unit of the asset from the seller's vault holding
// to the winner's holding and marks the auction finalized. Only the seller may
// finalize, only once, and only after the end time. When nobody bid, the
// destination must be a holding of the seller.
func (s *AuctionService) FinalizeAuction(caller common.Address, auctionID, vault, winnerAccount string) (model.Auction, error) {
	fields := map[string]any{
		"operation":          "finalize_auction",
		"caller":             caller.Hex(),
		"auction_id":         auctionID,
		"nft_vault":          vault,
		"winner_nft_account": winnerAccount,
	}

	if err := auth.Authenticated(caller); err != nil {
		return model.Auction{}, s.finish("finalize_auction", err, fields)
	}
	if vault == "" || winnerAccount == "" {
		return model.Auction{}, s.finish("finalize_auction", fmt.Errorf("service: %w - missing vault or winner account", marketerrors.ErrInvalidRequest), fields)
	}

	var updated model.Auction
	err := s.repo.Update(func(recs repository.Records) error {
		auction, err := recs.GetAuction(auctionID)
		if err != nil {
			return err
		}
		if err := auth.RequireRole(caller, auction.Seller, "seller"); err != nil {
			return err
		}
		if s.clock.Now().Unix() < auction.EndTime {
			return fmt.Errorf("service: %w - ends at %d", marketerrors.ErrAuctionNotEnded, auction.EndTime)
		}
		if auction.Finalized {
			return fmt.Errorf("service: %w", marketerrors.ErrAuctionFinalized)
		}

		recipient := auction.Seller
		if auction.HasBids() {
			recipient = auction.HighestBidder
		}
		destination, err := recs.GetHolding(winnerAccount)
		if err != nil {
			return fmt.Errorf("service: %w: %w", marketerrors.ErrTransferFailure, err)
		}
		if destination.Owner != recipient {
			return fmt.Errorf("service: %w - holding %s is owned by %s, expected %s",
				marketerrors.ErrWinnerMismatch, winnerAccount, destination.Owner.Hex(), recipient.Hex())
		}

		if err := s.transfer.Transfer(recs, model.TransferRequest{
			Source:      vault,
			Destination: winnerAccount,
			Authority:   auction.Seller,
			NFTMint:     auction.NFTMint,
			Amount:      1,
		}); err != nil {
			if !errors.Is(err, marketerrors.ErrTransferFailure) {
				err = fmt.Errorf("%w: %w", marketerrors.ErrTransferFailure, err)
			}
			return fmt.Errorf("service: %w", err)
		}

		auction.Finalized = true
		if err := recs.PutAuction(auction); err != nil {
			return err
		}
		updated = auction
		return nil
	})
	if err != nil {
		return model.Auction{}, s.finish("finalize_auction", err, fields)
	}

	s.metrics.ObserveFinalized()
	fields["winner"] = updated.HighestBidder.Hex()
	fields["highest_bid"] = updated.HighestBid
	return updated, s.finish("finalize_auction", nil, fields)
}

// GetAuction returns the current state of an auction
func (s *AuctionService) GetAuction(auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidRequest)
	}

	var auction model.Auction
	err := s.repo.View(func(recs repository.Records) error {
		var err error
		auction, err = recs.GetAuction(auctionID)
		return err
	})
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// finish records the outcome of an operation and returns err unchanged
func (s *AuctionService) finish(operation string, err error, fields map[string]any) error {
	s.metrics.ObserveOperation(operation, err)
	if err != nil {
		fields["kind"] = marketerrors.Kind(err)
		fields["error"] = err.Error()
		utils.Warn("auction: "+operation+" rejected", fields)
		return err
	}
	utils.Info("auction: "+operation+" committed", fields)
	return nil
}
