package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/studyspot/seat-booking/internal/config"
	"github.com/studyspot/seat-booking/internal/database"
	"github.com/studyspot/seat-booking/internal/handler"
	"github.com/studyspot/seat-booking/internal/queue"
	"github.com/studyspot/seat-booking/internal/repository"
	"github.com/studyspot/seat-booking/internal/router"
	"github.com/studyspot/seat-booking/internal/scheduler"
	"github.com/studyspot/seat-booking/internal/service"
	"github.com/studyspot/seat-booking/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	receipts, err := storage.NewReceiptStore(cfg.ReceiptsDir, cfg.ReceiptsBaseURL)
	if err != nil {
		log.Fatalf("receipts: %v", err)
	}

	// Repositories
	branchRepo := repository.NewBranchRepo(db)
	floorRepo := repository.NewFloorRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	slotRepo := repository.NewSlotRepo(db)
	pricingRepo := repository.NewPricingRepo(db)
	holidayRepo := repository.NewHolidayRepo(db)
	settingRepo := repository.NewSettingRepo(db)
	announcementRepo := repository.NewAnnouncementRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	// Services
	notifier := queue.NewPublisher(cfg.AMQPURL)
	pricingSvc := service.NewPricingService(slotRepo, pricingRepo)
	bookingSvc := service.NewBookingService(branchRepo, floorRepo, roomRepo, seatRepo, bookingRepo, pricingSvc, notifier)
	availabilitySvc := service.NewAvailabilityService(branchRepo, floorRepo, roomRepo, seatRepo, bookingRepo)
	facilitySvc := service.NewFacilityService(branchRepo, floorRepo, roomRepo, seatRepo, bookingRepo)
	holidaySvc := service.NewHolidayService(holidayRepo, branchRepo)
	settingsSvc := service.NewSettingsService(settingRepo, rdb)
	announcementSvc := service.NewAnnouncementService(announcementRepo, bookingRepo, notifier)

	// Background workers
	sender := queue.NewWhatsAppSender(cfg.WhatsAppToken, cfg.WhatsAppPhoneNumber)
	go queue.StartConsumer(cfg.AMQPURL, sender)

	if cfg.SweepEnabled {
		sweeper := scheduler.NewSweeper(bookingSvc, cfg.SweepInterval)
		go sweeper.Run(context.Background())
	}

	// HTTP
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e)
	router.RegisterPublic(e,
		&handler.PublicHandler{
			Facility:     facilitySvc,
			Availability: availabilitySvc,
			Pricing:      pricingSvc,
			Holidays:     holidaySvc,
		},
		&handler.BookingHandler{
			Bookings: bookingSvc,
			Settings: settingsSvc,
			Receipts: receipts,
		},
		settingsSvc, rdb, cfg.ReceiptsDir, cfg.ReceiptsBaseURL)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, adminRepo, tokenRepo), cfg.JWTSecret)
	router.RegisterAdmin(e, router.AdminHandlers{
		Bookings:      &handler.AdminBookingHandler{Bookings: bookingSvc},
		Locations:     &handler.AdminLocationHandler{Facility: facilitySvc},
		Seats:         &handler.AdminSeatHandler{Facility: facilitySvc},
		Pricing:       &handler.AdminPricingHandler{Rules: pricingRepo},
		Holidays:      &handler.AdminHolidayHandler{Holidays: holidaySvc},
		Settings:      &handler.AdminSettingsHandler{Settings: settingsSvc},
		Announcements: &handler.AdminAnnouncementHandler{Announcements: announcementSvc},
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
