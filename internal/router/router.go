package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/flight-booking/internal/config"
	"github.com/iliyamo/flight-booking/internal/handler"
	"github.com/iliyamo/flight-booking/internal/middleware"
)

// RegisterRoutes wires every endpoint of the booking API onto the provided
// Echo instance.  The surface is deliberately unversioned and flat, matching
// the public contract: /register, /login, /flights, /book, /payment and
// /admin/login, plus /healthz for load balancers.
//
// CORS is permissive (all origins) across the whole surface.  Redis, when
// reachable, adds a token-bucket limiter on the credential endpoints and a
// short-lived response cache on the flight search; with rdb == nil both
// degrade to pass-through middleware.
func RegisterRoutes(e *echo.Echo, cfg config.Config, rdb *redis.Client,
	auth *handler.AuthHandler, flights *handler.FlightHandler,
	bookings *handler.BookingHandler, payments *handler.PaymentHandler) {

	e.Use(echomw.CORS()) // allow all origins, per the public API contract

	e.GET("/healthz", handler.Health)

	// Credential endpoints share one rate limit bucket per client IP and
	// route; these are the only routes doing bcrypt work per request.
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	e.POST("/register", auth.Register, limiter)
	e.POST("/login", auth.Login, limiter)
	e.POST("/admin/login", auth.AdminLogin, limiter)

	// The flight catalog is immutable, so search responses can be served
	// from cache for a few seconds without correctness concerns.
	flightCache := middleware.NewFlightCache(config.LoadCacheConfig(), rdb)
	e.GET("/flights", flights.Search, flightCache)

	e.POST("/book", bookings.Create)
	e.POST("/payment", payments.Create)

	// Token-protected introspection endpoint; the booking flow itself does
	// not require a session, session handling is the caller's concern.
	e.GET("/me", auth.Me, middleware.JWTAuth(cfg.JWTSecret))
}
