package helpers

import model "nft-marketplace/internal/models"

// Request DTOs
type CreateAuctionRequest struct {
	NFTMint  string `json:"nft_mint" binding:"required"`
	MinBid   uint64 `json:"min_bid"`
	Duration int64  `json:"duration" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	BidAmount uint64 `json:"bid_amount"`
}

type FinalizeAuctionRequest struct {
	NFTVault         string `json:"nft_vault" binding:"required"`
	WinnerNFTAccount string `json:"winner_nft_account" binding:"required"`
}

type LendNFTRequest struct {
	NFTMint    string `json:"nft_mint" binding:"required"`
	LoanAmount uint64 `json:"loan_amount"`
}

type BorrowNFTRequest struct {
	CollateralAmount uint64 `json:"collateral_amount"`
}

type OpenHoldingRequest struct {
	NFTMint string `json:"nft_mint" binding:"required"`
	Amount  uint64 `json:"amount"`
}

// Response DTOs
type AuctionResponse struct {
	AuctionID     string `json:"auction_id"`
	Seller        string `json:"seller"`
	NFTMint       string `json:"nft_mint"`
	MinBid        uint64 `json:"min_bid"`
	HighestBid    uint64 `json:"highest_bid"`
	HighestBidder string `json:"highest_bidder"`
	EndTime       int64  `json:"end_time"`
	Finalized     bool   `json:"finalized"`
}

type LendingResponse struct {
	LendingID  string `json:"lending_id"`
	Lender     string `json:"lender"`
	NFTMint    string `json:"nft_mint"`
	LoanAmount uint64 `json:"loan_amount"`
	Borrower   string `json:"borrower"`
	IsActive   bool   `json:"is_active"`
}

type HoldingResponse struct {
	HoldingID string `json:"holding_id"`
	Owner     string `json:"owner"`
	NFTMint   string `json:"nft_mint"`
	Amount    uint64 `json:"amount"`
}

func NewAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:     a.AuctionID,
		Seller:        a.Seller.Hex(),
		NFTMint:       a.NFTMint.Hex(),
		MinBid:        a.MinBid,
		HighestBid:    a.HighestBid,
		HighestBidder: a.HighestBidder.Hex(),
		EndTime:       a.EndTime,
		Finalized:     a.Finalized,
	}
}

func NewLendingResponse(l model.Lending) LendingResponse {
	return LendingResponse{
		LendingID:  l.LendingID,
		Lender:     l.Lender.Hex(),
		NFTMint:    l.NFTMint.Hex(),
		LoanAmount: l.LoanAmount,
		Borrower:   l.Borrower.Hex(),
		IsActive:   l.IsActive,
	}
}

func NewHoldingResponse(h model.Holding) HoldingResponse {
	return HoldingResponse{
		HoldingID: h.HoldingID,
		Owner:     h.Owner.Hex(),
		NFTMint:   h.NFTMint.Hex(),
		Amount:    h.Amount,
	}
}
