package auctionerrors

import "errors"

// Store-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrLotNotFound     = errors.New("lot not found")
	ErrNoAutoBid       = errors.New("no auto-bid set for bidder")
)

// Bidding errors
var (
	ErrMissingField         = errors.New("missing required field")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrBidTooLow            = errors.New("bid amount too low")
	ErrAlreadyHighestBidder = errors.New("bidder already holds the highest bid")
	ErrLotEnded             = errors.New("bidding on this lot has ended")
)

// Eligibility errors. ErrEligibilityUnavailable means the checker could
// not be reached; the bid is rejected all the same (fail closed).
var (
	ErrEligibilityRequired    = errors.New("bidder is not approved to bid")
	ErrEligibilityUnavailable = errors.New("eligibility check unavailable")
)

// Closing/invoicing errors
var (
	ErrAuctionNotCompleted = errors.New("auction has not completed")
)

// Auction management errors
var (
	ErrInvalidTimeRange = errors.New("auction end time must be after start time")
)
