package handler

import (
	"net/http"

	"nft-marketplace/internal/auth"
	model "nft-marketplace/internal/models"
	"nft-marketplace/services/market/helpers"
	"nft-marketplace/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

type AuctionServiceInterface interface {
	CreateAuction(caller, mint common.Address, minBid uint64, duration int64) (model.Auction, error)
	PlaceBid(caller common.Address, auctionID string, amount uint64) (model.Auction, error)
	FinalizeAuction(caller common.Address, auctionID, vault, winnerAccount string) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "CreateAuctionHandler")
	if !ok {
		return
	}

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}
	mint, err := auth.ParseIdentity(req.NFTMint)
	if err != nil {
		helpers.WriteServiceError(c, "CreateAuctionHandler", err, map[string]any{"nft_mint": req.NFTMint})
		return
	}

	auction, err := h.service.CreateAuction(caller, mint, req.MinBid, req.Duration)
	if err != nil {
		helpers.WriteServiceError(c, "CreateAuctionHandler", err, map[string]any{
			"seller":   caller.Hex(),
			"nft_mint": mint.Hex(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"seller":     caller.Hex(),
		"end_time":   auction.EndTime,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.WriteServiceError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(auction), "auction retrieved successfully")
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "PlaceBidHandler")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	auction, err := h.service.PlaceBid(caller, auctionID, req.BidAmount)
	if err != nil {
		helpers.WriteServiceError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"bidder":     caller.Hex(),
			"amount":     req.BidAmount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(auction), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id": auctionID,
		"bidder":     caller.Hex(),
		"amount":     req.BidAmount,
	})
}

// FinalizeAuctionHandler handles POST /auctions/:auction_id/finalize
func (h *AuctionHandler) FinalizeAuctionHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "FinalizeAuctionHandler")
	if !ok {
		return
	}

	var req helpers.FinalizeAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FinalizeAuctionHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	auction, err := h.service.FinalizeAuction(caller, auctionID, req.NFTVault, req.WinnerNFTAccount)
	if err != nil {
		helpers.WriteServiceError(c, "FinalizeAuctionHandler", err, map[string]any{
			"auction_id":         auctionID,
			"caller":             caller.Hex(),
			"nft_vault":          req.NFTVault,
			"winner_nft_account": req.WinnerNFTAccount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(auction), "auction finalized successfully")
	helpers.LogSuccess("FinalizeAuctionHandler", "auction finalized successfully", map[string]any{
		"auction_id": auctionID,
		"winner":     auction.HighestBidder.Hex(),
	})
}
