package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	bidding "auction-house/internal/biddingService"
	model "auction-house/internal/models"
	"auction-house/internal/notification"
	repository "auction-house/internal/repository"

	"github.com/shopspring/decimal"
)

type approveAllChecker struct{}

func (approveAllChecker) Check(context.Context, string, model.Auction) error { return nil }

func setupStore(b *testing.B, numAuctions int) (*repository.FileStore, *bidding.BiddingService) {
	b.Helper()
	store, err := repository.NewFileStore(b.TempDir())
	if err != nil {
		b.Fatalf("failed to create store: %v", err)
	}

	outbox := notification.NewOutbox(nil, nil, 1024)
	outbox.Start()
	b.Cleanup(outbox.Close)

	for i := 0; i < numAuctions; i++ {
		auction := model.Auction{
			ID:        fmt.Sprintf("auction_%d", i),
			Title:     fmt.Sprintf("Benchmark Auction %d", i),
			StartTime: time.Now(),
			EndTime:   time.Now().Add(time.Hour),
			Increment: decimal.NewFromInt(10),
			Status:    model.AuctionActive,
			Lots: []model.Lot{{
				ID:         fmt.Sprintf("lot_%d", i),
				AuctionID:  fmt.Sprintf("auction_%d", i),
				LotNumber:  1,
				Title:      "Benchmark lot",
				StartPrice: decimal.NewFromInt(100),
				CurrentBid: decimal.NewFromInt(100),
				Status:     model.LotActive,
			}},
		}
		if err := store.SaveAuction(auction); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}

	return store, bidding.NewBiddingService(store, approveAllChecker{}, outbox)
}

// Benchmark 1: PlaceIncrementBid - Isolated Auctions (Low Contention)
func Benchmark_PlaceIncrementBid_Isolated(b *testing.B) {
	const numAuctions = 64
	_, svc := setupStore(b, numAuctions)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		idx := i % numAuctions
		userID := fmt.Sprintf("user_%d@example.com", i)
		auctionID := fmt.Sprintf("auction_%d", idx)
		lotID := fmt.Sprintf("lot_%d", idx)
		if _, err := svc.PlaceIncrementBid(ctx, auctionID, lotID, userID, ""); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceIncrementBid - Shared Lot (High Contention)
func Benchmark_PlaceIncrementBid_ConcurrentSharedLot(b *testing.B) {
	_, svc := setupStore(b, 1)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			// Distinct bidder per operation so each increment outbids
			// the current leader instead of hitting the self-bid check.
			userID := fmt.Sprintf("user_parallel_%d@example.com", rnd.Int())
			_, _ = svc.PlaceIncrementBid(ctx, "auction_0", "lot_0", userID, "")
		}
	})
}

// Benchmark 3: PlaceExactBid - Shared Lot (High Contention)
func Benchmark_PlaceExactBid_ConcurrentSharedLot(b *testing.B) {
	_, svc := setupStore(b, 1)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := fmt.Sprintf("user_exact_%d@example.com", rnd.Int())
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+10))
			_, _ = svc.PlaceExactBid(ctx, "auction_0", "lot_0", userID, decimal.NewFromInt(nextBid), "")
		}
	})
}

// Benchmark 4: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedLot(b *testing.B) {
	store, svc := setupStore(b, 1)
	ctx := context.Background()

	for j := 0; j < 50; j++ {
		userID := fmt.Sprintf("user_seed_%d@example.com", j)
		if _, err := svc.PlaceIncrementBid(ctx, "auction_0", "lot_0", userID, ""); err != nil {
			b.Fatalf("failed to seed bids: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				userID := fmt.Sprintf("user_writer_%d@example.com", rnd.Int())
				_, _ = svc.PlaceIncrementBid(ctx, "auction_0", "lot_0", userID, "")
			default:
				if _, err := store.GetLot("auction_0", "lot_0"); err != nil {
					b.Fatalf("failed to read lot: %v", err)
				}
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Proxy resolution against a standing ceiling
func Benchmark_PlaceIncrementBid_AgainstAutoBid(b *testing.B) {
	_, svc := setupStore(b, 1)
	ctx := context.Background()

	// A ceiling large enough that it never runs out during the run.
	if _, err := svc.SetAutoBid(ctx, "auction_0", "lot_0", "proxy@example.com", decimal.NewFromInt(1<<40)); err != nil {
		b.Fatalf("failed to set auto-bid: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		userID := fmt.Sprintf("user_%d@example.com", i)
		if _, err := svc.PlaceIncrementBid(ctx, "auction_0", "lot_0", userID, ""); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}
