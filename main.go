package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelbackend/internal/auth"
	intconfig "travelbackend/internal/config"
	intdb "travelbackend/internal/db"
	api "travelbackend/internal/http"
	"travelbackend/internal/metrics"
	"travelbackend/internal/repositories"
	"travelbackend/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if err := intdb.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	metrics.Init()

	tokens := auth.NewTokenManager(env.JWTSecret, 24*time.Hour)

	userRepo := repositories.UserRepository{DB: db}
	destRepo := repositories.DestinationRepository{DB: db}
	avenueRepo := repositories.AvenueRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	txnRepo := repositories.TransactionRepository{DB: db}
	faqRepo := repositories.FAQRepository{DB: db}
	legalRepo := repositories.LegalRepository{DB: db}
	changeLogRepo := repositories.ChangeLogRepository{DB: db}
	contactRepo := repositories.ContactRepository{DB: db}
	statsRepo := repositories.StatsRepository{DB: db}

	bookingSvc := services.BookingService{
		DB:           db,
		Bookings:     bookingRepo,
		Transactions: txnRepo,
		Avenues:      avenueRepo,
		Users:        userRepo,
	}

	deps := api.Deps{
		Tokens:       tokens,
		Auth:         services.AuthService{Users: userRepo, Tokens: tokens},
		Destinations: services.DestinationService{Destinations: destRepo, Avenues: avenueRepo},
		Avenues:      services.AvenueService{Avenues: avenueRepo},
		Availability: services.AvailabilityService{Avenues: avenueRepo, Bookings: bookingRepo},
		Bookings:     bookingSvc,
		Transactions: services.TransactionService{Transactions: txnRepo, Bookings: bookingRepo},
		Content: services.ContentService{
			FAQs:       faqRepo,
			Legal:      legalRepo,
			ChangeLogs: changeLogRepo,
			Contacts:   contactRepo,
		},
		Stats: services.StatsService{Stats: statsRepo},
		Docs:  services.DocsService{Bookings: bookingSvc},
	}

	r := api.NewRouter(env, deps)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
