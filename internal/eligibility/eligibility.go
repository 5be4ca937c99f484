package eligibility

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"

	lru "github.com/hashicorp/golang-lru"
)

// Checker answers whether a bidder may bid on a given auction. A nil
// return means the bidder is approved; any error rejects the bid.
type Checker interface {
	Check(ctx context.Context, bidderEmail string, auction model.Auction) error
}

// HTTPChecker asks the compliance service for a bidder's standing:
// deposit approval when the auction requires a deposit, FICA approval
// otherwise. Network failures and timeouts reject the bid (fail closed)
// with a distinguishable unavailable error.
type HTTPChecker struct {
	baseURL string
	client  *http.Client
	// approved caches passing answers only; a rejection is always
	// re-checked so a fresh approval takes effect immediately.
	approved *lru.Cache
}

// NewHTTPChecker builds a checker against baseURL with a bounded
// per-request timeout and an LRU cache of approved results.
func NewHTTPChecker(baseURL string, timeout time.Duration, cacheSize int) (*HTTPChecker, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("eligibility: create cache: %w", err)
	}
	return &HTTPChecker{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: timeout},
		approved: cache,
	}, nil
}

type statusResponse struct {
	Status string `json:"status"`
}

// Check implements Checker.
func (c *HTTPChecker) Check(ctx context.Context, bidderEmail string, auction model.Auction) error {
	var endpoint, cacheKey, requirement string
	if auction.DepositRequired {
		endpoint = fmt.Sprintf("%s/deposits/%s/%s", c.baseURL, url.PathEscape(auction.ID), url.PathEscape(bidderEmail))
		cacheKey = "deposit:" + auction.ID + ":" + bidderEmail
		requirement = "deposit approval required to bid on this auction"
	} else {
		endpoint = fmt.Sprintf("%s/fica/%s", c.baseURL, url.PathEscape(bidderEmail))
		cacheKey = "fica:" + bidderEmail
		requirement = "FICA approval required to bid"
	}

	if _, ok := c.approved.Get(cacheKey); ok {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("eligibility: build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("eligibility: %w: %v", auctionerrors.ErrEligibilityUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// No record at all counts as not approved.
		return fmt.Errorf("eligibility: %w - %s", auctionerrors.ErrEligibilityRequired, requirement)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("eligibility: %w: checker returned %d", auctionerrors.ErrEligibilityUnavailable, resp.StatusCode)
	}

	var sr statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return fmt.Errorf("eligibility: %w: bad response: %v", auctionerrors.ErrEligibilityUnavailable, err)
	}
	if sr.Status != "approved" {
		utils.Info("eligibility rejected", map[string]any{
			"bidder":  bidderEmail,
			"auction": auction.ID,
			"status":  sr.Status,
		})
		return fmt.Errorf("eligibility: %w - %s", auctionerrors.ErrEligibilityRequired, requirement)
	}

	c.approved.Add(cacheKey, struct{}{})
	return nil
}
