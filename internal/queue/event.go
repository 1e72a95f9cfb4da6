// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking row has been written.
// It carries the fields downstream consumers need for logging and
// analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  uint64  `json:"booking_id"`
	UserID     uint64  `json:"user_id"`
	FlightID   uint64  `json:"flight_id"`
	SeatNumber string  `json:"seat_number"`
	TotalPrice float64 `json:"total_price"`
	CreatedAt  string  `json:"created_at"`
}

// PaymentRecordedEvent is published when a payment has been recorded
// against a booking.  Status is always "Completed" today but is carried
// explicitly so consumers do not have to assume it.
type PaymentRecordedEvent struct {
	PaymentID     uint64  `json:"payment_id"`
	BookingID     uint64  `json:"booking_id"`
	UserID        uint64  `json:"user_id"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
	Status        string  `json:"status"`
	RecordedAt    string  `json:"recorded_at"`
}
