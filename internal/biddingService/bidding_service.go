package bidding

import (
	"context"
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/eligibility"
	model "auction-house/internal/models"
	"auction-house/internal/notification"
	"auction-house/internal/repository"

	lru "github.com/hashicorp/golang-lru"
	"github.com/shopspring/decimal"
)

// idempotencyCacheSize bounds the number of remembered bid request ids.
const idempotencyCacheSize = 4096

// BiddingService is the bid resolution engine: it accepts manual bids
// and auto-bid ceilings on a lot and resolves cascading proxy bids to a
// stable state before returning. Every mutation runs inside the store's
// per-lot transaction, so concurrent bids on one lot serialize.
type BiddingService struct {
	store   repository.AuctionStore
	checker eligibility.Checker
	gateway notification.Gateway

	// seen maps "lotID:requestID" to the bid's resolved current bid, so
	// a client retry of an already-applied request replays the result
	// instead of double-applying the bid.
	seen *lru.Cache
}

// NewBiddingService creates a new BiddingService instance.
func NewBiddingService(store repository.AuctionStore, checker eligibility.Checker, gateway notification.Gateway) *BiddingService {
	seen, _ := lru.New(idempotencyCacheSize)
	return &BiddingService{
		store:   store,
		checker: checker,
		gateway: gateway,
		seen:    seen,
	}
}

// outbidNotice is a pending "you were outbid" notification, dispatched
// only after the bid has been persisted.
type outbidNotice struct {
	email  string
	amount decimal.Decimal
}

// PlaceIncrementBid raises the lot's current bid by one increment on
// behalf of bidderEmail and resolves proxy bids. requestID may be empty;
// when set, retrying the same request id replays the original outcome.
func (s *BiddingService) PlaceIncrementBid(ctx context.Context, auctionID, lotID, bidderEmail, requestID string) (decimal.Decimal, error) {
	if auctionID == "" || lotID == "" || bidderEmail == "" {
		return decimal.Decimal{}, fmt.Errorf("bidding: %w - auctionID, lotID and bidderEmail are required", auctionerrors.ErrMissingField)
	}
	return s.applyBid(ctx, auctionID, lotID, bidderEmail, requestID, func(a *model.Auction, lot *model.Lot) (decimal.Decimal, error) {
		return lot.Price().Add(a.IncrementFor(lot)), nil
	})
}

// PlaceExactBid sets the lot's current bid to bidAmount directly,
// bypassing increment stepping, and resolves proxy bids.
func (s *BiddingService) PlaceExactBid(ctx context.Context, auctionID, lotID, bidderEmail string, bidAmount decimal.Decimal, requestID string) (decimal.Decimal, error) {
	if auctionID == "" || lotID == "" || bidderEmail == "" {
		return decimal.Decimal{}, fmt.Errorf("bidding: %w - auctionID, lotID and bidderEmail are required", auctionerrors.ErrMissingField)
	}
	if !bidAmount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("bidding: %w - bid amount must be positive", auctionerrors.ErrInvalidAmount)
	}
	return s.applyBid(ctx, auctionID, lotID, bidderEmail, requestID, func(a *model.Auction, lot *model.Lot) (decimal.Decimal, error) {
		if !bidAmount.GreaterThan(lot.Price()) {
			return decimal.Decimal{}, fmt.Errorf("bidding: %w - current bid is %s", auctionerrors.ErrBidTooLow, lot.Price().StringFixed(2))
		}
		return bidAmount, nil
	})
}

// applyBid runs the shared manual-bid path: eligibility, preconditions,
// the bid itself, then proxy resolution, all inside the per-lot
// transaction. nextAmount computes the manual bid's amount from the lot
// state as seen under the lock.
func (s *BiddingService) applyBid(
	ctx context.Context,
	auctionID, lotID, bidderEmail, requestID string,
	nextAmount func(*model.Auction, *model.Lot) (decimal.Decimal, error),
) (decimal.Decimal, error) {
	idemKey := lotID + ":" + requestID
	if requestID != "" {
		if prev, ok := s.seen.Get(idemKey); ok {
			return prev.(decimal.Decimal), nil
		}
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bidding: load auction %s: %w", auctionID, err)
	}
	if err := s.checker.Check(ctx, bidderEmail, auction); err != nil {
		return decimal.Decimal{}, err
	}

	var (
		result  decimal.Decimal
		notices []outbidNotice
		final   model.Lot
	)
	err = s.store.UpdateLot(auctionID, lotID, func(a *model.Auction, lot *model.Lot) error {
		if lot.Ended() {
			return fmt.Errorf("bidding: lot %s: %w", lotID, auctionerrors.ErrLotEnded)
		}
		if lot.LeadingBidder() == bidderEmail {
			return fmt.Errorf("bidding: %w", auctionerrors.ErrAlreadyHighestBidder)
		}

		amount, err := nextAmount(a, lot)
		if err != nil {
			return err
		}

		prev := lot.LeadingBidder()
		lot.CurrentBid = amount
		lot.BidHistory = append(lot.BidHistory, model.BidEntry{
			BidderEmail: bidderEmail,
			Amount:      amount,
			Time:        time.Now().UTC(),
			IsAutoBid:   false,
		})
		if prev != "" && prev != bidderEmail {
			notices = append(notices, outbidNotice{email: prev, amount: amount})
		}

		notices = append(notices, resolveProxies(a, lot)...)
		result = lot.CurrentBid
		final = *lot
		return nil
	})
	if err != nil {
		return decimal.Decimal{}, err
	}

	// Outbid notifications go out only once the new state is saved;
	// they are best-effort and never block the response.
	for _, n := range notices {
		s.gateway.NotifyOutbid(n.email, final, n.amount)
	}

	if requestID != "" {
		s.seen.Add(idemKey, result)
	}
	return result, nil
}

// resolveProxies cascades auto-bids until no further bidder can top the
// current bid. Each round picks the eligible auto-bid with the highest
// ceiling (ties go to the earliest-set auto-bid), bids the minimum of
// its ceiling and one increment above the current bid, and removes the
// auto-bid once its ceiling is consumed. The loop terminates because
// every round either raises the current bid or removes an auto-bid.
func resolveProxies(a *model.Auction, lot *model.Lot) []outbidNotice {
	var notices []outbidNotice
	inc := a.IncrementFor(lot)
	for {
		next := lot.CurrentBid.Add(inc)
		leader := lot.LeadingBidder()

		winnerIdx := -1
		for i := range lot.AutoBids {
			ab := &lot.AutoBids[i]
			if ab.BidderEmail == leader || ab.MaxBid.LessThan(next) {
				continue
			}
			// Strict greater-than keeps the earliest-set ceiling on ties.
			if winnerIdx < 0 || ab.MaxBid.GreaterThan(lot.AutoBids[winnerIdx].MaxBid) {
				winnerIdx = i
			}
		}
		if winnerIdx < 0 {
			return notices
		}

		winner := lot.AutoBids[winnerIdx]
		amount := decimal.Min(winner.MaxBid, next)
		if leader != "" && leader != winner.BidderEmail {
			notices = append(notices, outbidNotice{email: leader, amount: amount})
		}

		lot.CurrentBid = amount
		lot.BidHistory = append(lot.BidHistory, model.BidEntry{
			BidderEmail: winner.BidderEmail,
			Amount:      amount,
			Time:        time.Now().UTC(),
			IsAutoBid:   true,
		})
		if amount.GreaterThanOrEqual(winner.MaxBid) {
			lot.AutoBids = append(lot.AutoBids[:winnerIdx], lot.AutoBids[winnerIdx+1:]...)
		}
	}
}

// SetAutoBid creates or replaces bidderEmail's proxy ceiling on a lot.
// It does not bid immediately: the ceiling activates the next time
// someone else bids against it.
func (s *BiddingService) SetAutoBid(ctx context.Context, auctionID, lotID, bidderEmail string, maxBid decimal.Decimal) (decimal.Decimal, error) {
	if auctionID == "" || lotID == "" || bidderEmail == "" {
		return decimal.Decimal{}, fmt.Errorf("bidding: %w - auctionID, lotID and bidderEmail are required", auctionerrors.ErrMissingField)
	}
	if !maxBid.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("bidding: %w - max bid must be positive", auctionerrors.ErrInvalidAmount)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bidding: load auction %s: %w", auctionID, err)
	}
	if err := s.checker.Check(ctx, bidderEmail, auction); err != nil {
		return decimal.Decimal{}, err
	}

	err = s.store.UpdateLot(auctionID, lotID, func(_ *model.Auction, lot *model.Lot) error {
		for i := range lot.AutoBids {
			if lot.AutoBids[i].BidderEmail == bidderEmail {
				// Replacing keeps the slot, so the earliest-set
				// tie-break order is stable across updates.
				lot.AutoBids[i].MaxBid = maxBid
				lot.AutoBids[i].SetAt = time.Now().UTC()
				return nil
			}
		}
		lot.AutoBids = append(lot.AutoBids, model.AutoBid{
			BidderEmail: bidderEmail,
			MaxBid:      maxBid,
			SetAt:       time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return decimal.Decimal{}, err
	}
	return maxBid, nil
}

// GetAutoBid returns the bidder's current ceiling on a lot.
func (s *BiddingService) GetAutoBid(auctionID, lotID, bidderEmail string) (decimal.Decimal, error) {
	if auctionID == "" || lotID == "" || bidderEmail == "" {
		return decimal.Decimal{}, fmt.Errorf("bidding: %w - auctionID, lotID and bidderEmail are required", auctionerrors.ErrMissingField)
	}
	lot, err := s.store.GetLot(auctionID, lotID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bidding: load lot %s: %w", lotID, err)
	}
	ab, ok := lot.AutoBidFor(bidderEmail)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("bidding: %w", auctionerrors.ErrNoAutoBid)
	}
	return ab.MaxBid, nil
}
