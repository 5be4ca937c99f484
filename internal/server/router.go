package server

import (
	"auction-house/internal/notification"
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionHandler *handler.AuctionHandler, hub *notification.Hub, adminToken string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(ResolveRole(adminToken)) // resolve the caller's role once

	lots := router.Group("/lots")
	{
		lots.PUT("/:auctionId/:lotId/bid", auctionHandler.PlaceBidHandler)
		lots.PUT("/:auctionId/:lotId/quickbid", auctionHandler.QuickBidHandler)
		lots.PUT("/:auctionId/:lotId/autobid", auctionHandler.SetAutoBidHandler)
		lots.GET("/:auctionId/:lotId/autobid/:userEmail", auctionHandler.GetAutoBidHandler)
		lots.POST("/:auctionId/end", RequireAdmin, auctionHandler.EndAuctionHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auctionId", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auctionId/invoices", auctionHandler.ListInvoicesHandler)
		auctions.POST("", RequireAdmin, auctionHandler.CreateAuctionHandler)
		auctions.DELETE("/:auctionId", RequireAdmin, auctionHandler.DeleteAuctionHandler)
	}

	if hub != nil {
		router.GET("/ws", hub.ServeWS)
	}

	return router
}
