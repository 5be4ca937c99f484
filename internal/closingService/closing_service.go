package closing

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/invoice"
	model "auction-house/internal/models"
	"auction-house/internal/notification"
	"auction-house/internal/repository"
	"auction-house/utils"
)

const (
	// DefaultLotStagger is the gap between consecutive lot end times, so
	// bidders can focus on one lot closing at a time.
	DefaultLotStagger = 10 * time.Second
	// DefaultSnipeWindow is the quiet period a lot must see before it
	// finalizes; a bid inside the window pushes the end time out.
	DefaultSnipeWindow = 4 * time.Minute
)

// LotEndTime reports the scheduled end for one lot.
type LotEndTime struct {
	LotID     string    `json:"lotId"`
	LotNumber int       `json:"lotNumber"`
	EndTime   time.Time `json:"endTime"`
}

// Closer drives every lot of an auction from active bidding to its
// terminal ended state: staggered end times, anti-snipe extension, then
// sequential finalization and the invoice hand-off.
type Closer struct {
	store       repository.AuctionStore
	gateway     notification.Gateway
	invoices    *invoice.Generator
	stagger     time.Duration
	snipeWindow time.Duration
}

// NewCloser creates a Closer. Non-positive durations fall back to the
// defaults.
func NewCloser(store repository.AuctionStore, gateway notification.Gateway, invoices *invoice.Generator, stagger, snipeWindow time.Duration) *Closer {
	if stagger <= 0 {
		stagger = DefaultLotStagger
	}
	if snipeWindow <= 0 {
		snipeWindow = DefaultSnipeWindow
	}
	return &Closer{
		store:       store,
		gateway:     gateway,
		invoices:    invoices,
		stagger:     stagger,
		snipeWindow: snipeWindow,
	}
}

// ScheduleClose assigns staggered end times to every not-yet-ended lot
// of the auction, marks them scheduled, and starts the closing run in
// the background. It returns the assigned end times.
func (c *Closer) ScheduleClose(auctionID string) ([]LotEndTime, error) {
	now := time.Now().UTC()
	var ends []LotEndTime
	err := c.store.UpdateAuction(auctionID, func(a *model.Auction) error {
		idx := 0
		for i := range a.Lots {
			lot := &a.Lots[i]
			if lot.Ended() {
				continue
			}
			lot.EndTime = now.Add(time.Duration(idx) * c.stagger)
			lot.Status = model.LotScheduled
			ends = append(ends, LotEndTime{LotID: lot.ID, LotNumber: lot.LotNumber, EndTime: lot.EndTime})
			idx++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("closing: schedule auction %s: %w", auctionID, err)
	}

	utils.Info("auction closing scheduled", map[string]any{
		"auction": auctionID,
		"lots":    len(ends),
	})
	go c.run(auctionID, ends)
	return ends, nil
}

// run closes the scheduled lots strictly in order, each one waiting out
// its own end time, then completes the auction and hands off invoicing.
func (c *Closer) run(auctionID string, lots []LotEndTime) {
	sort.Slice(lots, func(i, j int) bool { return lots[i].LotNumber < lots[j].LotNumber })

	for _, l := range lots {
		if !c.closeLot(auctionID, l.LotID) {
			// Auction disappeared mid-countdown; nothing left to close.
			return
		}
	}

	completed := false
	err := c.store.UpdateAuction(auctionID, func(a *model.Auction) error {
		if a.AllLotsEnded() {
			a.Status = model.AuctionCompleted
			completed = true
		}
		return nil
	})
	if err != nil {
		utils.Error("failed to complete auction", map[string]any{"auction": auctionID, "error": err.Error()})
		return
	}
	if !completed {
		return
	}
	utils.Info("auction completed", map[string]any{"auction": auctionID})

	// Invoicing is downstream: a failure here is logged and never
	// touches lot or auction state.
	go func() {
		if _, err := c.invoices.Generate(auctionID); err != nil {
			utils.Error("invoice generation failed", map[string]any{"auction": auctionID, "error": err.Error()})
		}
	}()
}

// closeLot waits out the lot's end time, extending it while bids keep
// landing inside the snipe window, then finalizes the lot and notifies
// winner and seller. The anti-snipe check and the final status flip
// happen inside the same per-lot transaction bidding uses, so a closing
// lot cannot race an in-flight bid. Returns false when the auction or
// lot no longer exists.
func (c *Closer) closeLot(auctionID, lotID string) bool {
	for {
		lot, err := c.store.GetLot(auctionID, lotID)
		if err != nil {
			c.logGone(auctionID, lotID, err)
			return !errors.Is(err, auctionerrors.ErrAuctionNotFound)
		}
		if lot.Ended() {
			return true
		}
		if wait := time.Until(lot.EndTime); wait > 0 {
			time.Sleep(wait)
			// Re-read after every wait: the end time may have moved, or
			// an admin may have deleted the auction under us.
			continue
		}

		var (
			extended bool
			closed   model.Lot
		)
		err = c.store.UpdateLot(auctionID, lotID, func(_ *model.Auction, lot *model.Lot) error {
			if lot.Ended() {
				closed = *lot
				return nil
			}
			if last := lot.LastBid(); last != nil && !last.Time.Before(lot.EndTime.Add(-c.snipeWindow)) {
				newEnd := last.Time.Add(c.snipeWindow)
				if newEnd.After(lot.EndTime) {
					lot.EndTime = newEnd
					extended = true
					return nil
				}
			}
			lot.Status = model.LotEnded
			closed = *lot
			return nil
		})
		if err != nil {
			c.logGone(auctionID, lotID, err)
			return !errors.Is(err, auctionerrors.ErrAuctionNotFound)
		}
		if extended {
			utils.Info("lot end time extended", map[string]any{
				"auction": auctionID,
				"lot":     lotID,
			})
			continue
		}

		if winner := closed.LeadingBidder(); winner != "" {
			c.gateway.NotifyWinner(winner, closed)
			if closed.SellerEmail != "" {
				c.gateway.NotifySeller(closed.SellerEmail, closed)
			}
		}
		utils.Info("lot closed", map[string]any{
			"auction": auctionID,
			"lot":     lotID,
			"winner":  closed.LeadingBidder(),
			"amount":  closed.CurrentBid.String(),
		})
		return true
	}
}

func (c *Closer) logGone(auctionID, lotID string, err error) {
	if errors.Is(err, auctionerrors.ErrAuctionNotFound) || errors.Is(err, auctionerrors.ErrLotNotFound) {
		utils.Warn("lot vanished before closing", map[string]any{
			"auction": auctionID,
			"lot":     lotID,
		})
		return
	}
	utils.Error("failed to close lot", map[string]any{
		"auction": auctionID,
		"lot":     lotID,
		"error":   err.Error(),
	})
}
