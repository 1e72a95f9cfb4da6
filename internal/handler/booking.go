package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-booking/internal/model"
	"github.com/iliyamo/flight-booking/internal/queue"
	"github.com/iliyamo/flight-booking/internal/repository"
	queue_publisher "github.com/iliyamo/flight-booking/internal/service"
)

// BookingHandler creates bookings.
type BookingHandler struct {
	Bookings *repository.BookingRepo
}

func NewBookingHandler(b *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Bookings: b}
}

type bookReq struct {
	UserID     uint64  `json:"user_id"`
	FlightID   uint64  `json:"flight_id"`
	SeatNumber string  `json:"seat_number"`
	TotalPrice float64 `json:"total_price"`
}

// Create handles POST /book.  Input is validated before any store call, so
// a malformed request never leaves a partial row behind.  The booking
// insert and the seat update commit in one transaction; on success a
// booking.created event is published without the response waiting on it.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	req.SeatNumber = strings.TrimSpace(req.SeatNumber)
	if req.UserID == 0 || req.FlightID == 0 || req.SeatNumber == "" || req.TotalPrice <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "user_id, flight_id, seat_number and total_price are required"})
	}

	booking := &model.Booking{
		UserID:     req.UserID,
		FlightID:   req.FlightID,
		SeatNumber: req.SeatNumber,
		TotalPrice: req.TotalPrice,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Create(ctx, booking); err != nil {
		c.Logger().Errorf("booking: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error during booking"})
	}

	event := queue.BookingCreatedEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		FlightID:   booking.FlightID,
		SeatNumber: booking.SeatNumber,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	// Fire-and-forget: the confirmation must not depend on the broker.
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishBookingCreated(pubCtx, event)
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Booking confirmed!",
		"bookingId":   booking.ID,
		"user_id":     booking.UserID,
		"flight_id":   booking.FlightID,
		"seat_number": booking.SeatNumber,
		"total_price": booking.TotalPrice,
	})
}
