package model

import "time"

// Booking records a user's reservation of one seat on one flight.
// Bookings are immutable after creation in this service; payments refer
// to them by ID.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – user who made the booking.
//  FlightID   – flight being booked.
//  SeatNumber – seat taken on the flight.
//  TotalPrice – price charged for the booking.
//  CreatedAt  – creation timestamp.
type Booking struct {
	ID         uint64    // bookings.booking_id
	UserID     uint64    // bookings.user_id
	FlightID   uint64    // bookings.flight_id
	SeatNumber string    // bookings.seat_number
	TotalPrice float64   // bookings.total_price
	CreatedAt  time.Time // bookings.created_at
}
