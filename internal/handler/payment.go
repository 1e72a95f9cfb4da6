package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-booking/internal/model"
	"github.com/iliyamo/flight-booking/internal/queue"
	"github.com/iliyamo/flight-booking/internal/repository"
	queue_publisher "github.com/iliyamo/flight-booking/internal/service"
)

// BookingNotifier is the slice of the notify package the payment flow
// needs.  It is an interface so tests can observe the fire-and-forget
// call without a live SMS provider.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, userID, bookingID uint64)
}

// PaymentHandler records payments and triggers the confirmation side
// effects.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
	Notifier BookingNotifier
}

func NewPaymentHandler(p *repository.PaymentRepo, n BookingNotifier) *PaymentHandler {
	return &PaymentHandler{Payments: p, Notifier: n}
}

type paymentReq struct {
	BookingID     uint64  `json:"booking_id"`
	UserID        uint64  `json:"user_id"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
}

// Create handles POST /payment.  The row is written with status
// "Completed"; there is no duplicate-transaction guard, so resubmitting
// the same transaction_id records a second payment.  On success the SMS
// confirmation and the payment.recorded event run detached from the
// request: the 201 never waits on, or reports, their outcome.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	payment := &model.Payment{
		BookingID:     req.BookingID,
		UserID:        req.UserID,
		AmountPaid:    req.AmountPaid,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Payments.Create(ctx, payment); err != nil {
		c.Logger().Errorf("payment: insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error during payment processing"})
	}

	event := queue.PaymentRecordedEvent{
		PaymentID:     payment.ID,
		BookingID:     payment.BookingID,
		UserID:        payment.UserID,
		AmountPaid:    payment.AmountPaid,
		PaymentMethod: payment.PaymentMethod,
		TransactionID: payment.TransactionID,
		Status:        payment.Status,
		RecordedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		sideCtx, sideCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer sideCancel()
		if h.Notifier != nil {
			h.Notifier.BookingConfirmed(sideCtx, req.UserID, req.BookingID)
		}
		_ = queue_publisher.PublishPaymentRecorded(sideCtx, event)
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Payment processed successfully!",
		"payment_id": payment.ID,
	})
}
