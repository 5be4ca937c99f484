package notification

import (
	"fmt"
	"sync"

	model "auction-house/internal/models"
	"auction-house/utils"

	"github.com/shopspring/decimal"
)

// NoticeKind tags what a notice is about; it also names the event on
// the push channel.
type NoticeKind string

const (
	KindOutbid  NoticeKind = "outbid"
	KindLotWon  NoticeKind = "lot_won"
	KindLotSold NoticeKind = "lot_sold"
	KindInvoice NoticeKind = "invoice"
)

// Notice is one queued notification: an email plus a push payload,
// both addressed to a single recipient.
type Notice struct {
	Kind      NoticeKind
	To        string
	Subject   string
	PlainText string
	HTMLText  string
	Payload   map[string]any
}

// Gateway is how the bidding engine and the closer reach bidders.
// Every call enqueues and returns immediately; delivery failures are
// logged and never reach the caller.
type Gateway interface {
	NotifyOutbid(email string, lot model.Lot, newAmount decimal.Decimal)
	NotifyWinner(email string, lot model.Lot)
	NotifySeller(email string, lot model.Lot)
	NotifyInvoice(email string, invoice model.Invoice)
}

// Outbox implements Gateway with a buffered queue drained by a single
// worker goroutine, so a slow mail provider never delays a bid response.
// A full queue drops the notice with a warning.
type Outbox struct {
	queue  chan Notice
	mailer MailSender
	hub    *Hub

	once sync.Once
	wg   sync.WaitGroup
}

// NewOutbox creates an Outbox. mailer and hub may each be nil to
// disable that channel. Start must be called before use.
func NewOutbox(mailer MailSender, hub *Hub, size int) *Outbox {
	if size <= 0 {
		size = 256
	}
	return &Outbox{
		queue:  make(chan Notice, size),
		mailer: mailer,
		hub:    hub,
	}
}

// Start launches the delivery worker.
func (o *Outbox) Start() {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		for n := range o.queue {
			o.deliver(n)
		}
	}()
}

// Close stops accepting notices and waits for the queue to drain.
func (o *Outbox) Close() {
	o.once.Do(func() { close(o.queue) })
	o.wg.Wait()
}

func (o *Outbox) enqueue(n Notice) {
	select {
	case o.queue <- n:
	default:
		utils.Warn("notification queue full, dropping notice", map[string]any{
			"kind": string(n.Kind),
			"to":   n.To,
		})
	}
}

func (o *Outbox) deliver(n Notice) {
	if o.mailer != nil {
		if err := o.mailer.Send(n.To, n.Subject, n.PlainText, n.HTMLText); err != nil {
			utils.Error("notification email failed", map[string]any{
				"kind":  string(n.Kind),
				"to":    n.To,
				"error": err.Error(),
			})
		}
	}
	if o.hub != nil {
		payload := map[string]any{"event": string(n.Kind)}
		for k, v := range n.Payload {
			payload[k] = v
		}
		o.hub.Push(n.To, payload)
	}
}

// NotifyOutbid tells a displaced leader someone has passed their bid.
func (o *Outbox) NotifyOutbid(email string, lot model.Lot, newAmount decimal.Decimal) {
	o.enqueue(Notice{
		Kind:      KindOutbid,
		To:        email,
		Subject:   fmt.Sprintf("You have been outbid on lot %d: %s", lot.LotNumber, lot.Title),
		PlainText: fmt.Sprintf("The bid on %q now stands at %s. Place a new bid to stay in the running.", lot.Title, newAmount.StringFixed(2)),
		HTMLText:  fmt.Sprintf("<p>The bid on <strong>%s</strong> now stands at %s.</p><p>Place a new bid to stay in the running.</p>", lot.Title, newAmount.StringFixed(2)),
		Payload: map[string]any{
			"auctionId":  lot.AuctionID,
			"lotId":      lot.ID,
			"currentBid": newAmount,
		},
	})
}

// NotifyWinner congratulates the final highest bidder once a lot ends.
func (o *Outbox) NotifyWinner(email string, lot model.Lot) {
	o.enqueue(Notice{
		Kind:      KindLotWon,
		To:        email,
		Subject:   fmt.Sprintf("You won lot %d: %s", lot.LotNumber, lot.Title),
		PlainText: fmt.Sprintf("Congratulations, your bid of %s won %q. An invoice will follow.", lot.CurrentBid.StringFixed(2), lot.Title),
		HTMLText:  fmt.Sprintf("<p>Congratulations, your bid of %s won <strong>%s</strong>.</p><p>An invoice will follow.</p>", lot.CurrentBid.StringFixed(2), lot.Title),
		Payload: map[string]any{
			"auctionId":  lot.AuctionID,
			"lotId":      lot.ID,
			"currentBid": lot.CurrentBid,
		},
	})
}

// NotifySeller tells the seller their lot has closed.
func (o *Outbox) NotifySeller(email string, lot model.Lot) {
	o.enqueue(Notice{
		Kind:      KindLotSold,
		To:        email,
		Subject:   fmt.Sprintf("Your lot %d has closed: %s", lot.LotNumber, lot.Title),
		PlainText: fmt.Sprintf("Bidding on %q has ended at %s.", lot.Title, lot.CurrentBid.StringFixed(2)),
		HTMLText:  fmt.Sprintf("<p>Bidding on <strong>%s</strong> has ended at %s.</p>", lot.Title, lot.CurrentBid.StringFixed(2)),
		Payload: map[string]any{
			"auctionId":  lot.AuctionID,
			"lotId":      lot.ID,
			"currentBid": lot.CurrentBid,
		},
	})
}

// NotifyInvoice sends the buyer their invoice for a won lot.
func (o *Outbox) NotifyInvoice(email string, invoice model.Invoice) {
	o.enqueue(Notice{
		Kind:      KindInvoice,
		To:        email,
		Subject:   fmt.Sprintf("Invoice for lot %d: %s", invoice.LotNumber, invoice.LotTitle),
		PlainText: fmt.Sprintf("Invoice %s: %s for %q.", invoice.ID, invoice.Amount.StringFixed(2), invoice.LotTitle),
		HTMLText:  fmt.Sprintf("<p>Invoice %s: %s for <strong>%s</strong>.</p>", invoice.ID, invoice.Amount.StringFixed(2), invoice.LotTitle),
		Payload: map[string]any{
			"auctionId": invoice.AuctionID,
			"invoiceId": invoice.ID,
			"amount":    invoice.Amount,
		},
	})
}
