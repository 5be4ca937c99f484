package invoice

import (
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/notification"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// Generator raises one invoice per sold lot once an auction completes,
// derived from the final entry of each lot's bid history.
type Generator struct {
	store   repository.AuctionStore
	gateway notification.Gateway
}

// NewGenerator creates a Generator.
func NewGenerator(store repository.AuctionStore, gateway notification.Gateway) *Generator {
	return &Generator{store: store, gateway: gateway}
}

// Generate creates and persists invoices for every lot of the auction
// that received bids, then emails each buyer. It refuses to run before
// the auction has completed.
func (g *Generator) Generate(auctionID string) ([]model.Invoice, error) {
	auction, err := g.store.GetAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("invoice: load auction %s: %w", auctionID, err)
	}
	if auction.Status != model.AuctionCompleted {
		return nil, fmt.Errorf("invoice: auction %s: %w", auctionID, auctionerrors.ErrAuctionNotCompleted)
	}

	now := time.Now().UTC()
	var invoices []model.Invoice
	for i := range auction.Lots {
		lot := &auction.Lots[i]
		last := lot.LastBid()
		if last == nil {
			continue // unsold lot
		}
		invoices = append(invoices, model.Invoice{
			ID:          utils.GenerateID(),
			AuctionID:   auction.ID,
			LotID:       lot.ID,
			LotNumber:   lot.LotNumber,
			LotTitle:    lot.Title,
			BuyerEmail:  last.BidderEmail,
			SellerEmail: lot.SellerEmail,
			Amount:      last.Amount,
			IssuedAt:    now,
		})
	}
	if len(invoices) == 0 {
		return nil, nil
	}

	if err := g.store.SaveInvoices(invoices); err != nil {
		return nil, fmt.Errorf("invoice: save invoices for auction %s: %w", auctionID, err)
	}
	for _, inv := range invoices {
		g.gateway.NotifyInvoice(inv.BuyerEmail, inv)
	}
	utils.Info("invoices generated", map[string]any{
		"auction": auctionID,
		"count":   len(invoices),
	})
	return invoices, nil
}
