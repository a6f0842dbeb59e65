package models

import "github.com/ethereum/go-ethereum/common"

// Auction is the durable record for a time-boxed auction of a single asset
type Auction struct {
	AuctionID     string         `json:"auction_id"`
	Seller        common.Address `json:"seller"`
	NFTMint       common.Address `json:"nft_mint"`
	MinBid        uint64         `json:"min_bid"`
	HighestBid    uint64         `json:"highest_bid"`
	HighestBidder common.Address `json:"highest_bidder"`
	EndTime       int64          `json:"end_time"`
	Finalized     bool           `json:"finalized"`
}

// HasBids reports whether any bid has been admitted
func (a Auction) HasBids() bool {
	return a.HighestBidder != (common.Address{})
}

// Lending is the durable record for an asset offered against collateral
type Lending struct {
	LendingID  string         `json:"lending_id"`
	Lender     common.Address `json:"lender"`
	NFTMint    common.Address `json:"nft_mint"`
	LoanAmount uint64         `json:"loan_amount"`
	Borrower   common.Address `json:"borrower"`
	IsActive   bool           `json:"is_active"`
}

// Holding is a custodial balance of one asset owned by one identity
type Holding struct {
	HoldingID string         `json:"holding_id"`
	Owner     common.Address `json:"owner"`
	NFTMint   common.Address `json:"nft_mint"`
	Amount    uint64         `json:"amount"`
}

// UsedNonce records a signed request nonce that has been consumed
type UsedNonce struct {
	Signer   common.Address `json:"signer"`
	Nonce    string         `json:"nonce"`
	SignedAt int64          `json:"signed_at"`
}

// TransferRequest describes a custody change between two holdings
type TransferRequest struct {
	Source      string
	Destination string
	Authority   common.Address
	NFTMint     common.Address
	Amount      uint64
}
