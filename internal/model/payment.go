package model

import "time"

// PaymentStatusCompleted is the only status this service writes: payments
// are recorded after the fact, not processed through a gateway.
const PaymentStatusCompleted = "Completed"

// Payment records money received against a booking.  There is no
// idempotency key: repeated submissions with the same transaction ID
// create separate rows, and reconciliation is left to downstream tooling.
//
// Fields:
//  ID            – primary key identifier.
//  BookingID     – booking the payment applies to.
//  UserID        – paying user.
//  AmountPaid    – amount received.
//  PaymentMethod – free-form method label (card, UPI, ...).
//  TransactionID – external reference supplied by the caller.
//  Status        – always "Completed" on creation.
//  CreatedAt     – creation timestamp.
type Payment struct {
	ID            uint64    // payments.payment_id
	BookingID     uint64    // payments.booking_id
	UserID        uint64    // payments.user_id
	AmountPaid    float64   // payments.amount_paid
	PaymentMethod string    // payments.payment_method
	TransactionID string    // payments.transaction_id
	Status        string    // payments.payment_status
	CreatedAt     time.Time // payments.created_at
}
