package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Edmond40/hotel-management-system/config"
	"github.com/Edmond40/hotel-management-system/controllers"
	"github.com/Edmond40/hotel-management-system/realtime"
	"github.com/Edmond40/hotel-management-system/routes"
	"github.com/Edmond40/hotel-management-system/services"
	"github.com/Edmond40/hotel-management-system/utils"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not found, continuing with environment variables")
	}

	utils.InitLogger()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	log.Info().Msg("database connected, migrations applied")

	hub := realtime.NewHub()

	notificationService := services.NewNotificationService(db, hub)
	availabilityService := services.NewAvailabilityService(db)
	reservationService := services.NewReservationService(db, availabilityService, notificationService)
	authService := services.NewAuthService(db)
	roomService := services.NewRoomService(db)
	userService := services.NewUserService(db)
	statsService := services.NewStatsService(db)
	menuService := services.NewMenuService(db, notificationService)
	invoiceService := services.NewInvoiceService(db, notificationService)
	requestService := services.NewRequestService(db, notificationService)
	settingService := services.NewSettingService(db)

	router := routes.SetupRouter(db, hub, routes.Controllers{
		Auth:         controllers.NewAuthController(authService),
		Room:         controllers.NewRoomController(roomService, availabilityService),
		User:         controllers.NewUserController(userService),
		Reservation:  controllers.NewReservationController(reservationService),
		Stats:        controllers.NewStatsController(statsService),
		Menu:         controllers.NewMenuController(menuService),
		Invoice:      controllers.NewInvoiceController(invoiceService),
		Request:      controllers.NewRequestController(requestService),
		Notification: controllers.NewNotificationController(notificationService),
		Setting:      controllers.NewSettingController(settingService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}
