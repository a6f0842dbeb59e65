package server

import (
	"nft-marketplace/internal/auth"
	handler "nft-marketplace/services/market/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the services the router exposes
type Dependencies struct {
	Auctions    handler.AuctionServiceInterface
	Lendings    handler.LendingServiceInterface
	Holdings    handler.HoldingServiceInterface
	Verifier    auth.Verifier
	Replay      auth.ReplayGuard
	MetricsPath string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	if deps.MetricsPath != "" {
		router.GET(deps.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	signed := SignerAuthMiddleware(deps.Verifier, deps.Replay)

	auctionHandler := handler.NewAuctionHandler(deps.Auctions)
	auctions := router.Group("/auctions")
	{
		auctions.POST("", signed, auctionHandler.CreateAuctionHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", signed, auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/finalize", signed, auctionHandler.FinalizeAuctionHandler)
	}

	lendingHandler := handler.NewLendingHandler(deps.Lendings)
	lendings := router.Group("/lendings")
	{
		lendings.POST("", signed, lendingHandler.LendNFTHandler)
		lendings.GET("/:lending_id", lendingHandler.GetLendingHandler)
		lendings.POST("/:lending_id/borrow", signed, lendingHandler.BorrowNFTHandler)
	}

	holdingHandler := handler.NewHoldingHandler(deps.Holdings)
	holdings := router.Group("/holdings")
	{
		holdings.POST("", signed, holdingHandler.OpenHoldingHandler)
		holdings.GET("/:holding_id", holdingHandler.GetHoldingHandler)
	}

	return router
}
