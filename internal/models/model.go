package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields serialize as plain JSON numbers, matching the store
	// files and the HTTP responses.
	decimal.MarshalJSONWithoutQuotes = true
}

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	AuctionActive    AuctionStatus = "active"
	AuctionCompleted AuctionStatus = "completed"
)

// LotStatus is the lifecycle state of a single lot.
// A lot moves scheduled -> active -> ended; ended is terminal.
type LotStatus string

const (
	LotScheduled LotStatus = "scheduled"
	LotActive    LotStatus = "active"
	LotEnded     LotStatus = "ended"
)

// DefaultBidIncrement applies when neither the lot nor its auction
// carries a positive increment.
var DefaultBidIncrement = decimal.NewFromInt(10)

// Auction groups a set of lots sold together under one event.
type Auction struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Location        string          `json:"location"`
	StartTime       time.Time       `json:"startTime"`
	EndTime         time.Time       `json:"endTime"`
	Increment       decimal.Decimal `json:"increment"`
	DepositRequired bool            `json:"depositRequired"`
	DepositAmount   decimal.Decimal `json:"depositAmount"`
	Status          AuctionStatus   `json:"status"`
	Lots            []Lot           `json:"lots"`
}

// Lot is a single item up for bid within an auction.
type Lot struct {
	ID           string          `json:"id"`
	AuctionID    string          `json:"auctionId"`
	LotNumber    int             `json:"lotNumber"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	StartPrice   decimal.Decimal `json:"startPrice"`
	CurrentBid   decimal.Decimal `json:"currentBid"`
	BidIncrement decimal.Decimal `json:"bidIncrement"`
	BidHistory   []BidEntry      `json:"bidHistory"`
	AutoBids     []AutoBid       `json:"autoBids"`
	EndTime      time.Time       `json:"endTime"`
	Status       LotStatus       `json:"status"`
	SellerEmail  string          `json:"sellerEmail"`
}

// BidEntry is one accepted bid. Entries are append-only and ordered;
// the last entry's amount always equals the lot's current bid.
type BidEntry struct {
	BidderEmail string          `json:"bidderEmail"`
	Amount      decimal.Decimal `json:"amount"`
	Time        time.Time       `json:"time"`
	IsAutoBid   bool            `json:"isAutoBid"`
}

// AutoBid is a bidder-supplied ceiling the engine bids against on the
// bidder's behalf. At most one per bidder per lot.
type AutoBid struct {
	BidderEmail string          `json:"bidderEmail"`
	MaxBid      decimal.Decimal `json:"maxBid"`
	SetAt       time.Time       `json:"setAt"`
}

// Invoice is raised for each sold lot once its auction completes.
type Invoice struct {
	ID          string          `json:"id"`
	AuctionID   string          `json:"auctionId"`
	LotID       string          `json:"lotId"`
	LotNumber   int             `json:"lotNumber"`
	LotTitle    string          `json:"lotTitle"`
	BuyerEmail  string          `json:"buyerEmail"`
	SellerEmail string          `json:"sellerEmail"`
	Amount      decimal.Decimal `json:"amount"`
	IssuedAt    time.Time       `json:"issuedAt"`
}

// LastBid returns the most recent bid entry, or nil when no bid has
// been placed yet.
func (l *Lot) LastBid() *BidEntry {
	if len(l.BidHistory) == 0 {
		return nil
	}
	return &l.BidHistory[len(l.BidHistory)-1]
}

// LeadingBidder returns the email of the current highest bidder, or ""
// when the lot has no bids.
func (l *Lot) LeadingBidder() string {
	if last := l.LastBid(); last != nil {
		return last.BidderEmail
	}
	return ""
}

// Price returns the effective current price of the lot: the current bid,
// floored at the start price for lots nobody has bid on yet.
func (l *Lot) Price() decimal.Decimal {
	if l.CurrentBid.LessThan(l.StartPrice) {
		return l.StartPrice
	}
	return l.CurrentBid
}

// Ended reports whether the lot has reached its terminal state.
func (l *Lot) Ended() bool {
	return l.Status == LotEnded
}

// AutoBidFor returns the bidder's auto-bid on this lot, if any.
func (l *Lot) AutoBidFor(email string) (AutoBid, bool) {
	for _, ab := range l.AutoBids {
		if ab.BidderEmail == email {
			return ab, true
		}
	}
	return AutoBid{}, false
}

// IncrementFor resolves the bid step for a lot: the lot's own increment,
// falling back to the auction-wide step, then to DefaultBidIncrement.
func (a *Auction) IncrementFor(l *Lot) decimal.Decimal {
	if l.BidIncrement.IsPositive() {
		return l.BidIncrement
	}
	if a.Increment.IsPositive() {
		return a.Increment
	}
	return DefaultBidIncrement
}

// AllLotsEnded reports whether every lot in the auction is ended.
func (a *Auction) AllLotsEnded() bool {
	for i := range a.Lots {
		if !a.Lots[i].Ended() {
			return false
		}
	}
	return true
}

// LotByID returns a pointer into the auction's lot slice, or nil.
func (a *Auction) LotByID(lotID string) *Lot {
	for i := range a.Lots {
		if a.Lots[i].ID == lotID {
			return &a.Lots[i]
		}
	}
	return nil
}
