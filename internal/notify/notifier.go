package notify

// Package notify delivers booking confirmation SMS messages.  Delivery is
// strictly best-effort: every failure is logged and swallowed so that the
// payment flow that triggers it never depends on the provider being up.

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/iliyamo/flight-booking/internal/repository"
)

// Notifier looks up a user's contact details and sends the fixed
// confirmation template through an SMSSender.
type Notifier struct {
	Users  *repository.UserRepo
	Sender SMSSender
}

func NewNotifier(users *repository.UserRepo, sender SMSSender) *Notifier {
	return &Notifier{Users: users, Sender: sender}
}

// BookingConfirmed sends the confirmation SMS for a paid booking.  It never
// returns an error: a missing user row, a store failure or a provider
// failure are all logged and dropped.
func (n *Notifier) BookingConfirmed(ctx context.Context, userID, bookingID uint64) {
	u, err := n.Users.GetByID(ctx, userID)
	if err != nil {
		log.Printf("notify: lookup user %d for booking %d failed: %v", userID, bookingID, err)
		return
	}

	body := fmt.Sprintf("Hello %s, your booking (ID: %d) has been confirmed. Thank you for choosing our service!",
		u.FullName, bookingID)

	// Stored numbers are national; default to the +91 country code the
	// user base uses unless the number is already in E.164 form.
	to := u.Phone
	if !strings.HasPrefix(to, "+") {
		to = "+91" + to
	}

	if err := n.Sender.SendSMS(ctx, to, body); err != nil {
		log.Printf("notify: send SMS for booking %d failed: %v", bookingID, err)
		return
	}
	log.Printf("notify: booking %d confirmation sent to user %d", bookingID, userID)
}
