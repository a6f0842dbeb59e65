package perftests

import (
	"math/big"
	"testing"
	"time"

	auction "nft-marketplace/internal/auctionService"
	"nft-marketplace/internal/clock"
	"nft-marketplace/internal/custody"
	lending "nft-marketplace/internal/lendingService"
	"nft-marketplace/internal/repository"
	"nft-marketplace/internal/store"

	"github.com/ethereum/go-ethereum/common"
)

var (
	benchSeller = userAddr(1 << 30)
	benchMint   = userAddr(1 << 31)
)

// userAddr derives a deterministic non-null identity from n
func userAddr(n int) common.Address {
	return common.BigToAddress(big.NewInt(int64(n) + 1))
}

// market bundles the services a benchmark drives
type market struct {
	repo     *repository.Repo
	auctions *auction.AuctionService
	lendings *lending.LendingService
}

// setupMarket creates services over the given store backend with the clock
// frozen well before any auction ends.
func setupMarket(b *testing.B, backend string) *market {
	b.Helper()

	st, err := store.Open(backend, b.TempDir())
	if err != nil {
		b.Fatalf("failed to open %s store: %v", backend, err)
	}
	b.Cleanup(func() { _ = st.Close() })

	repo := repository.NewRepo(st)
	clk := clock.NewFixed(time.Unix(1_700_000_000, 0))
	return &market{
		repo:     repo,
		auctions: auction.NewAuctionService(repo, custody.NewLedger(), clk),
		lendings: lending.NewLendingService(repo),
	}
}

// seedAuctions opens n day-long auctions and returns their ids
func (m *market) seedAuctions(b *testing.B, n int, minBid uint64) []string {
	b.Helper()
	ids := make([]string, n)
	for i := range ids {
		a, err := m.auctions.CreateAuction(benchSeller, benchMint, minBid, 86_400)
		if err != nil {
			b.Fatalf("failed to create auction: %v", err)
		}
		ids[i] = a.AuctionID
	}
	return ids
}
