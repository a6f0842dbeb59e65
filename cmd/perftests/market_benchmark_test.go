package perftests

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"
)

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	for _, backend := range []string{"memory", "bolt", "leveldb"} {
		b.Run(backend, func(b *testing.B) {
			m := setupMarket(b, backend)
			ids := m.seedAuctions(b, b.N, 50)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				bidAmount := uint64(50 + rand.Intn(100))
				if _, err := m.auctions.PlaceBid(userAddr(i), ids[i], bidAmount); err != nil {
					b.Fatalf("failed to place bid: %v", err)
				}
			}
		})
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	m := setupMarket(b, "memory")
	id := m.seedAuctions(b, 1, 50)[0]

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = m.auctions.PlaceBid(userAddr(rnd.Int()), id, uint64(nextBid))
		}
	})
}

// Benchmark 3: GetAuction - Concurrent (High Contention)
func Benchmark_GetAuction_ConcurrentSharedAuction(b *testing.B) {
	m := setupMarket(b, "memory")
	id := m.seedAuctions(b, 1, 50)[0]
	for j := 0; j < 100; j++ {
		_, _ = m.auctions.PlaceBid(userAddr(j), id, uint64(50+j))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := m.auctions.GetAuction(id); err != nil {
				b.Errorf("failed to get auction: %v", err)
				return
			}
		}
	})
}

// Benchmark 4: BorrowNFT - many borrowers racing for the same lending
func Benchmark_BorrowNFT_Race(b *testing.B) {
	m := setupMarket(b, "memory")

	var winners int64
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l, err := m.lendings.LendNFT(benchSeller, benchMint, 500)
		if err != nil {
			b.Fatalf("failed to lend: %v", err)
		}
		b.StartTimer()

		done := make(chan struct{})
		for w := 0; w < 8; w++ {
			go func(w int) {
				if _, err := m.lendings.BorrowNFT(userAddr(w), l.LendingID, 500); err == nil {
					atomic.AddInt64(&winners, 1)
				}
				done <- struct{}{}
			}(w)
		}
		for w := 0; w < 8; w++ {
			<-done
		}
	}

	b.StopTimer()
	if winners != int64(b.N) {
		b.Fatalf("expected exactly one borrower per lending, got %d for %d lendings", winners, b.N)
	}
}
