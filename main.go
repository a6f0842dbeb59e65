package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	auction "nft-marketplace/internal/auctionService"
	"nft-marketplace/internal/auth"
	"nft-marketplace/internal/clock"
	"nft-marketplace/internal/config"
	"nft-marketplace/internal/custody"
	lending "nft-marketplace/internal/lendingService"
	"nft-marketplace/internal/repository"
	"nft-marketplace/internal/server"
	"nft-marketplace/internal/store"
	"nft-marketplace/utils"
)

func main() {
	configPath := flag.String("config", "market.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := utils.ConfigureLogger(cfg.LogLevel, cfg.LogFile, cfg.LogMaxSizeMB); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
		os.Exit(1)
	}

	records, err := store.Open(cfg.StoreBackend, cfg.DataDir)
	if err != nil {
		utils.Fatal("failed to open record store", map[string]any{"backend": cfg.StoreBackend, "error": err.Error()})
	}
	defer records.Close()

	repo := repository.NewRepo(records)
	clk := clock.NewSystem()

	router := server.SetupRouter(server.Dependencies{
		Auctions:    auction.NewAuctionService(repo, custody.NewLedger(), clk),
		Lendings:    lending.NewLendingService(repo),
		Holdings:    custody.NewHoldingService(repo),
		Verifier:    auth.NewSignatureVerifier(),
		Replay:      auth.NewNonceGuard(repo, clk, time.Duration(cfg.SignatureWindowSeconds)*time.Second),
		MetricsPath: cfg.MetricsPath,
	})

	utils.Info("starting marketplace server", map[string]any{
		"listen":  cfg.ListenAddress,
		"backend": cfg.StoreBackend,
	})
	if err := router.Run(cfg.ListenAddress); err != nil {
		utils.Error("server stopped", map[string]any{"error": err.Error()})
		records.Close()
		os.Exit(1)
	}
}
