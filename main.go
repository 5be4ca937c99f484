package main

import (
	"flag"
	"fmt"
	"os"

	bidding "auction-house/internal/biddingService"
	closing "auction-house/internal/closingService"
	"auction-house/internal/config"
	"auction-house/internal/eligibility"
	"auction-house/internal/invoice"
	"auction-house/internal/notification"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	handler "auction-house/services/auction/handler"
	"auction-house/utils"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.Log.Level)

	store, err := repository.NewFileStore(cfg.Store.DataDir)
	if err != nil {
		utils.Fatal("failed to open auction store", map[string]any{"error": err.Error()})
	}

	hub := notification.NewHub()
	var mailer notification.MailSender
	if cfg.Notify.SendgridKey != "" {
		mailer = notification.NewSendgridMailer(cfg.Notify.SendgridKey, cfg.Notify.FromName, cfg.Notify.FromAddr)
	} else {
		utils.Warn("no sendgrid key configured, email notifications disabled", nil)
	}
	outbox := notification.NewOutbox(mailer, hub, cfg.Notify.QueueSize)
	outbox.Start()
	defer outbox.Close()

	checker, err := eligibility.NewHTTPChecker(cfg.Eligibility.BaseURL, cfg.EligibilityTimeout(), cfg.Eligibility.CacheSize)
	if err != nil {
		utils.Fatal("failed to build eligibility checker", map[string]any{"error": err.Error()})
	}

	biddingSvc := bidding.NewBiddingService(store, checker, outbox)
	invoices := invoice.NewGenerator(store, outbox)
	closer := closing.NewCloser(store, outbox, invoices, cfg.LotStagger(), cfg.SnipeWindow())

	auctionHandler := handler.NewAuctionHandler(biddingSvc, closer, store)
	router := server.SetupRouter(auctionHandler, hub, cfg.Server.AdminToken)

	utils.Info("starting auction server", map[string]any{"port": cfg.Server.Port})
	if err := router.Run(cfg.Server.Port); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}
