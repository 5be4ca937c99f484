package invoice

import (
	"sync"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type captureGateway struct {
	mu       sync.Mutex
	invoiced []string
}

func (g *captureGateway) NotifyOutbid(string, model.Lot, decimal.Decimal) {}
func (g *captureGateway) NotifyWinner(string, model.Lot)                  {}
func (g *captureGateway) NotifySeller(string, model.Lot)                  {}

func (g *captureGateway) NotifyInvoice(email string, _ model.Invoice) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.invoiced = append(g.invoiced, email)
}

func TestGenerator_Generate(t *testing.T) {
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	gateway := &captureGateway{}
	gen := NewGenerator(store, gateway)

	sold := model.Lot{
		ID: "l1", AuctionID: "a1", LotNumber: 1, Title: "Writing desk",
		SellerEmail: "seller@example.com", Status: model.LotEnded,
		CurrentBid: decimal.NewFromInt(340),
		BidHistory: []model.BidEntry{
			{BidderEmail: "alice@example.com", Amount: decimal.NewFromInt(320), Time: time.Now().UTC()},
			{BidderEmail: "bob@example.com", Amount: decimal.NewFromInt(340), Time: time.Now().UTC()},
		},
	}
	unsold := model.Lot{
		ID: "l2", AuctionID: "a1", LotNumber: 2, Title: "Mirror",
		Status: model.LotEnded, StartPrice: decimal.NewFromInt(50),
	}
	require.NoError(t, store.SaveAuction(model.Auction{
		ID: "a1", Status: model.AuctionCompleted, Lots: []model.Lot{sold, unsold},
	}))

	invoices, err := gen.Generate("a1")
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	inv := invoices[0]
	require.Equal(t, "bob@example.com", inv.BuyerEmail, "invoice goes to the final bidder")
	require.Equal(t, "seller@example.com", inv.SellerEmail)
	require.True(t, inv.Amount.Equal(decimal.NewFromInt(340)))
	require.NotEmpty(t, inv.ID)

	stored, err := store.ListInvoices("a1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, []string{"bob@example.com"}, gateway.invoiced)
}

func TestGenerator_RefusesIncompleteAuction(t *testing.T) {
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	gen := NewGenerator(store, &captureGateway{})

	require.NoError(t, store.SaveAuction(model.Auction{ID: "a1", Status: model.AuctionActive}))

	_, err = gen.Generate("a1")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotCompleted)
}
