package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func sampleAuction(id string, lotIDs ...string) model.Auction {
	a := model.Auction{
		ID:        id,
		Title:     "Farm equipment",
		Location:  "Durban",
		StartTime: time.Now().UTC(),
		EndTime:   time.Now().UTC().Add(2 * time.Hour),
		Status:    model.AuctionActive,
	}
	for i, lotID := range lotIDs {
		a.Lots = append(a.Lots, model.Lot{
			ID:         lotID,
			AuctionID:  id,
			LotNumber:  i + 1,
			Title:      fmt.Sprintf("Lot %d", i+1),
			StartPrice: decimal.NewFromInt(100),
			CurrentBid: decimal.NewFromInt(100),
			Status:     model.LotActive,
		})
	}
	return a
}

func TestFileStore_SaveAndGetAuction(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	a := sampleAuction("a1", "l1", "l2")
	require.NoError(t, store.SaveAuction(a))

	got, err := store.GetAuction("a1")
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
	require.Len(t, got.Lots, 2)
	require.True(t, got.Lots[0].CurrentBid.Equal(decimal.NewFromInt(100)))

	_, err = store.GetAuction("missing")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

	_, err = store.GetAuction("../escape")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
}

func TestFileStore_GetLot(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	require.NoError(t, store.SaveAuction(sampleAuction("a1", "l1")))

	lot, err := store.GetLot("a1", "l1")
	require.NoError(t, err)
	require.Equal(t, "l1", lot.ID)

	_, err = store.GetLot("a1", "missing")
	require.ErrorIs(t, err, auctionerrors.ErrLotNotFound)
}

func TestFileStore_ListAuctions(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	require.NoError(t, store.SaveAuction(sampleAuction("a1", "l1")))
	require.NoError(t, store.SaveAuction(sampleAuction("a2", "l2")))

	auctions, err := store.ListAuctions()
	require.NoError(t, err)
	require.Len(t, auctions, 2)
}

func TestFileStore_DeleteAuction(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	require.NoError(t, store.SaveAuction(sampleAuction("a1", "l1")))

	require.NoError(t, store.DeleteAuction("a1"))
	_, err := store.GetAuction("a1")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

	require.ErrorIs(t, store.DeleteAuction("a1"), auctionerrors.ErrAuctionNotFound)
}

func TestFileStore_UpdateLotPersists(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	require.NoError(t, store.SaveAuction(sampleAuction("a1", "l1")))

	err := store.UpdateLot("a1", "l1", func(_ *model.Auction, lot *model.Lot) error {
		lot.CurrentBid = decimal.NewFromInt(150)
		lot.BidHistory = append(lot.BidHistory, model.BidEntry{
			BidderEmail: "alice@example.com",
			Amount:      decimal.NewFromInt(150),
			Time:        time.Now().UTC(),
		})
		return nil
	})
	require.NoError(t, err)

	lot, err := store.GetLot("a1", "l1")
	require.NoError(t, err)
	require.True(t, lot.CurrentBid.Equal(decimal.NewFromInt(150)))
	require.Len(t, lot.BidHistory, 1)
}

// A callback error must leave the stored record untouched.
func TestFileStore_UpdateLotRollsBackOnError(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	require.NoError(t, store.SaveAuction(sampleAuction("a1", "l1")))

	err := store.UpdateLot("a1", "l1", func(_ *model.Auction, lot *model.Lot) error {
		lot.CurrentBid = decimal.NewFromInt(999)
		return fmt.Errorf("validation failed")
	})
	require.Error(t, err)

	lot, err := store.GetLot("a1", "l1")
	require.NoError(t, err)
	require.True(t, lot.CurrentBid.Equal(decimal.NewFromInt(100)))
}

// Concurrent read-modify-write cycles on the same lot must serialize:
// every append survives.
func TestFileStore_UpdateLotSerializes(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	require.NoError(t, store.SaveAuction(sampleAuction("a1", "l1")))

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.UpdateLot("a1", "l1", func(_ *model.Auction, lot *model.Lot) error {
				lot.BidHistory = append(lot.BidHistory, model.BidEntry{
					BidderEmail: fmt.Sprintf("user%d@example.com", i),
					Amount:      decimal.NewFromInt(int64(100 + i)),
					Time:        time.Now().UTC(),
				})
				return nil
			})
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	lot, err := store.GetLot("a1", "l1")
	require.NoError(t, err)
	require.Len(t, lot.BidHistory, writers, "lost updates under concurrency")
}

// Writes to different auctions must not clobber each other.
func TestFileStore_ConcurrentAuctionsIsolated(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	require.NoError(t, store.SaveAuction(sampleAuction("a1", "l1")))
	require.NoError(t, store.SaveAuction(sampleAuction("a2", "l2")))

	var wg sync.WaitGroup
	for _, pair := range [][2]string{{"a1", "l1"}, {"a2", "l2"}} {
		pair := pair
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := store.UpdateLot(pair[0], pair[1], func(_ *model.Auction, lot *model.Lot) error {
					lot.BidHistory = append(lot.BidHistory, model.BidEntry{Time: time.Now().UTC()})
					return nil
				})
				require.NoError(t, err)
			}()
		}
	}
	wg.Wait()

	for _, pair := range [][2]string{{"a1", "l1"}, {"a2", "l2"}} {
		lot, err := store.GetLot(pair[0], pair[1])
		require.NoError(t, err)
		require.Len(t, lot.BidHistory, 20)
	}
}

func TestFileStore_Invoices(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	invoices, err := store.ListInvoices("a1")
	require.NoError(t, err)
	require.Empty(t, invoices)

	require.NoError(t, store.SaveInvoices([]model.Invoice{
		{ID: "i1", AuctionID: "a1", BuyerEmail: "alice@example.com", Amount: decimal.NewFromInt(150)},
		{ID: "i2", AuctionID: "a2", BuyerEmail: "bob@example.com", Amount: decimal.NewFromInt(200)},
	}))
	require.NoError(t, store.SaveInvoices([]model.Invoice{
		{ID: "i3", AuctionID: "a1", BuyerEmail: "carol@example.com", Amount: decimal.NewFromInt(90)},
	}))

	invoices, err = store.ListInvoices("a1")
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	for _, inv := range invoices {
		require.Equal(t, "a1", inv.AuctionID)
	}
}
