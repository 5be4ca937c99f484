package helpers

import (
	"time"

	"auction-house/internal/closingService"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	BidderEmail string `json:"bidderEmail" binding:"required,email"`
	RequestID   string `json:"requestId"`
}

type QuickBidRequest struct {
	BidderEmail string          `json:"bidderEmail" binding:"required,email"`
	BidAmount   decimal.Decimal `json:"bidAmount" binding:"required"`
	RequestID   string          `json:"requestId"`
}

type AutoBidRequest struct {
	BidderEmail string          `json:"bidderEmail" binding:"required,email"`
	MaxBid      decimal.Decimal `json:"maxBid" binding:"required"`
}

type BidResponse struct {
	CurrentBid decimal.Decimal `json:"currentBid"`
}

type AutoBidResponse struct {
	MaxBid decimal.Decimal `json:"maxBid"`
}

type EndAuctionResponse struct {
	LotEndTimes []closing.LotEndTime `json:"lotEndTimes"`
}

type CreateLotRequest struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	StartPrice   decimal.Decimal `json:"startPrice"`
	BidIncrement decimal.Decimal `json:"bidIncrement"`
	SellerEmail  string          `json:"sellerEmail" binding:"required,email"`
}

type CreateAuctionRequest struct {
	Title           string             `json:"title" binding:"required"`
	Location        string             `json:"location"`
	StartTime       time.Time          `json:"startTime" binding:"required"`
	EndTime         time.Time          `json:"endTime" binding:"required"`
	Increment       decimal.Decimal    `json:"increment"`
	DepositRequired bool               `json:"depositRequired"`
	DepositAmount   decimal.Decimal    `json:"depositAmount"`
	Lots            []CreateLotRequest `json:"lots" binding:"required,min=1,dive"`
}
