package notification

import (
	"errors"
	"sync"
	"testing"
	"time"

	model "auction-house/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type captureMailer struct {
	mu   sync.Mutex
	sent []string // recipients
	err  error
}

func (m *captureMailer) Send(to, subject, plainText, htmlText string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return m.err
}

func (m *captureMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func sampleLot() model.Lot {
	return model.Lot{
		ID:         "l1",
		AuctionID:  "a1",
		LotNumber:  3,
		Title:      "Grandfather clock",
		CurrentBid: decimal.NewFromInt(250),
	}
}

func TestOutbox_DeliversEmail(t *testing.T) {
	mailer := &captureMailer{}
	outbox := NewOutbox(mailer, nil, 8)
	outbox.Start()

	outbox.NotifyOutbid("alice@example.com", sampleLot(), decimal.NewFromInt(260))
	outbox.NotifyWinner("bob@example.com", sampleLot())
	outbox.NotifySeller("seller@example.com", sampleLot())
	outbox.NotifyInvoice("bob@example.com", model.Invoice{ID: "i1", LotTitle: "Grandfather clock", Amount: decimal.NewFromInt(250)})
	outbox.Close()

	require.Equal(t, []string{"alice@example.com", "bob@example.com", "seller@example.com", "bob@example.com"}, mailer.recipients())
}

// A failing mail provider is logged and never propagates.
func TestOutbox_MailerFailureDoesNotBlock(t *testing.T) {
	mailer := &captureMailer{err: errors.New("sendgrid down")}
	outbox := NewOutbox(mailer, nil, 8)
	outbox.Start()

	outbox.NotifyOutbid("alice@example.com", sampleLot(), decimal.NewFromInt(260))
	outbox.Close()

	require.Len(t, mailer.recipients(), 1)
}

// Enqueueing into a full queue drops the notice instead of blocking the
// bid path.
func TestOutbox_FullQueueDropsNotBlocks(t *testing.T) {
	mailer := &captureMailer{}
	outbox := NewOutbox(mailer, nil, 1)
	// Worker not started yet: the second notice finds the queue full.
	outbox.NotifyOutbid("alice@example.com", sampleLot(), decimal.NewFromInt(260))

	done := make(chan struct{})
	go func() {
		outbox.NotifyOutbid("bob@example.com", sampleLot(), decimal.NewFromInt(270))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}

	outbox.Start()
	outbox.Close()
	require.Equal(t, []string{"alice@example.com"}, mailer.recipients())
}
