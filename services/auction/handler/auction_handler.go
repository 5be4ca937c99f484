package handler

import (
	"context"
	"fmt"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/closingService"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BiddingServiceInterface interface {
	PlaceIncrementBid(ctx context.Context, auctionID, lotID, bidderEmail, requestID string) (decimal.Decimal, error)
	PlaceExactBid(ctx context.Context, auctionID, lotID, bidderEmail string, bidAmount decimal.Decimal, requestID string) (decimal.Decimal, error)
	SetAutoBid(ctx context.Context, auctionID, lotID, bidderEmail string, maxBid decimal.Decimal) (decimal.Decimal, error)
	GetAutoBid(auctionID, lotID, bidderEmail string) (decimal.Decimal, error)
}

type CloserInterface interface {
	ScheduleClose(auctionID string) ([]closing.LotEndTime, error)
}

// AuctionDirectory is the read/admin slice of the store the handlers use.
type AuctionDirectory interface {
	SaveAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions() ([]model.Auction, error)
	DeleteAuction(auctionID string) error
	ListInvoices(auctionID string) ([]model.Invoice, error)
}

type AuctionHandler struct {
	bidding BiddingServiceInterface
	closer  CloserInterface
	store   AuctionDirectory
}

func NewAuctionHandler(bidding BiddingServiceInterface, closer CloserInterface, store AuctionDirectory) *AuctionHandler {
	return &AuctionHandler{bidding: bidding, closer: closer, store: store}
}

// PlaceBidHandler handles PUT /lots/:auctionId/:lotId/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}
	auctionID, lotID := c.Param("auctionId"), c.Param("lotId")

	currentBid, err := h.bidding.PlaceIncrementBid(c.Request.Context(), auctionID, lotID, req.BidderEmail, req.RequestID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": auctionID,
			"lot_id":     lotID,
			"bidder":     req.BidderEmail,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.BidResponse{CurrentBid: currentBid}, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":  auctionID,
		"lot_id":      lotID,
		"bidder":      req.BidderEmail,
		"current_bid": currentBid.String(),
	})
}

// QuickBidHandler handles PUT /lots/:auctionId/:lotId/quickbid
func (h *AuctionHandler) QuickBidHandler(c *gin.Context) {
	var req helpers.QuickBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "QuickBidHandler", err)
		return
	}
	auctionID, lotID := c.Param("auctionId"), c.Param("lotId")

	currentBid, err := h.bidding.PlaceExactBid(c.Request.Context(), auctionID, lotID, req.BidderEmail, req.BidAmount, req.RequestID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("QuickBidHandler: failed to place bid", map[string]any{
			"auction_id": auctionID,
			"lot_id":     lotID,
			"bidder":     req.BidderEmail,
			"amount":     req.BidAmount.String(),
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.BidResponse{CurrentBid: currentBid}, "bid placed successfully")
	helpers.LogSuccess("QuickBidHandler", "bid placed successfully", map[string]any{
		"auction_id":  auctionID,
		"lot_id":      lotID,
		"bidder":      req.BidderEmail,
		"current_bid": currentBid.String(),
	})
}

// SetAutoBidHandler handles PUT /lots/:auctionId/:lotId/autobid
func (h *AuctionHandler) SetAutoBidHandler(c *gin.Context) {
	var req helpers.AutoBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetAutoBidHandler", err)
		return
	}
	auctionID, lotID := c.Param("auctionId"), c.Param("lotId")

	maxBid, err := h.bidding.SetAutoBid(c.Request.Context(), auctionID, lotID, req.BidderEmail, req.MaxBid)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SetAutoBidHandler: failed to set auto-bid", map[string]any{
			"auction_id": auctionID,
			"lot_id":     lotID,
			"bidder":     req.BidderEmail,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AutoBidResponse{MaxBid: maxBid}, "auto-bid set successfully")
	helpers.LogSuccess("SetAutoBidHandler", "auto-bid set successfully", map[string]any{
		"auction_id": auctionID,
		"lot_id":     lotID,
		"bidder":     req.BidderEmail,
		"max_bid":    maxBid.String(),
	})
}

// GetAutoBidHandler handles GET /lots/:auctionId/:lotId/autobid/:userEmail
func (h *AuctionHandler) GetAutoBidHandler(c *gin.Context) {
	auctionID, lotID, email := c.Param("auctionId"), c.Param("lotId"), c.Param("userEmail")

	maxBid, err := h.bidding.GetAutoBid(auctionID, lotID, email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAutoBidHandler: error retrieving auto-bid", map[string]any{
			"auction_id": auctionID,
			"lot_id":     lotID,
			"bidder":     email,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AutoBidResponse{MaxBid: maxBid}, "auto-bid retrieved successfully")
}

// EndAuctionHandler handles POST /lots/:auctionId/end
func (h *AuctionHandler) EndAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auctionId")

	lotEndTimes, err := h.closer.ScheduleClose(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("EndAuctionHandler: failed to schedule close", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.EndAuctionResponse{LotEndTimes: lotEndTimes}, "auction closing scheduled")
	helpers.LogSuccess("EndAuctionHandler", "auction closing scheduled", map[string]any{
		"auction_id": auctionID,
		"lots":       len(lotEndTimes),
	})
}

// CreateAuctionHandler handles POST /auctions (admin only)
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}
	if !req.EndTime.After(req.StartTime) {
		err := fmt.Errorf("auction: %w", auctionerrors.ErrInvalidTimeRange)
		utils.JSONError(c, http.StatusBadRequest, err, "invalid auction times")
		return
	}

	auction := model.Auction{
		ID:              utils.GenerateID(),
		Title:           req.Title,
		Location:        req.Location,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Increment:       req.Increment,
		DepositRequired: req.DepositRequired,
		DepositAmount:   req.DepositAmount,
		Status:          model.AuctionActive,
	}
	for i, l := range req.Lots {
		auction.Lots = append(auction.Lots, model.Lot{
			ID:           utils.GenerateID(),
			AuctionID:    auction.ID,
			LotNumber:    i + 1,
			Title:        l.Title,
			Description:  l.Description,
			StartPrice:   l.StartPrice,
			CurrentBid:   l.StartPrice,
			BidIncrement: l.BidIncrement,
			Status:       model.LotActive,
			SellerEmail:  l.SellerEmail,
		})
	}

	if err := h.store.SaveAuction(auction); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to save auction", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.ID,
		"lots":       len(auction.Lots),
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:auctionId (admin only)
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auctionId")

	if err := h.store.DeleteAuction(auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteAuctionHandler: failed to delete auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auctionId": auctionID}, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{"auction_id": auctionID})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.store.ListAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListAuctionsHandler: failed to list auctions", map[string]any{"error": err.Error()})
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auctionId
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auctionId")
	auction, err := h.store.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// ListInvoicesHandler handles GET /auctions/:auctionId/invoices
func (h *AuctionHandler) ListInvoicesHandler(c *gin.Context) {
	auctionID := c.Param("auctionId")
	invoices, err := h.store.ListInvoices(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListInvoicesHandler: failed to list invoices", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}
	if invoices == nil {
		invoices = []model.Invoice{}
	}
	utils.JSONResponse(c, http.StatusOK, invoices, "invoices retrieved successfully")
}
