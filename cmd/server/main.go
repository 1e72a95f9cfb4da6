package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-booking/internal/config"
	"github.com/iliyamo/flight-booking/internal/database"
	"github.com/iliyamo/flight-booking/internal/handler"
	"github.com/iliyamo/flight-booking/internal/notify"
	"github.com/iliyamo/flight-booking/internal/queue"
	"github.com/iliyamo/flight-booking/internal/repository"
	"github.com/iliyamo/flight-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load() // fails fast on missing DB, JWT or Twilio settings

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	// Redis is optional: nil disables the flight cache and rate limiter.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	// Process-wide SMS client; lives as long as the process does.
	smsClient := notify.NewTwilioClient(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	users := repository.NewUserRepo(db)
	admins := repository.NewAdminRepo(db)
	flights := repository.NewFlightRepo(db)
	bookings := repository.NewBookingRepo(db)
	payments := repository.NewPaymentRepo(db)

	notifier := notify.NewNotifier(users, smsClient)

	authHandler := handler.NewAuthHandler(cfg, users, admins)
	flightHandler := handler.NewFlightHandler(flights)
	bookingHandler := handler.NewBookingHandler(bookings)
	paymentHandler := handler.NewPaymentHandler(payments, notifier)

	// Background consumer appends recorded payments to logs/payments.log.
	go func() {
		if err := queue.StartPaymentConsumer(); err != nil {
			log.Printf("payment consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e, cfg, rdb, authHandler, flightHandler, bookingHandler, paymentHandler)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
