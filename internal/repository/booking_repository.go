package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/flight-booking/internal/model"
)

// BookingRepo creates booking rows and flips the corresponding seat.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts the booking and marks the seat as booked in a single
// transaction, filling in the generated booking ID.  The seat UPDATE
// matching zero rows is not an error: the seats table may not enumerate
// every seat of every flight.  If either statement fails the whole
// transaction rolls back, so a booking row never exists without its seat
// update having been attempted.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (user_id, flight_id, seat_number, total_price) VALUES (?,?,?,?)",
		b.UserID, b.FlightID, b.SeatNumber, b.TotalPrice)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE seats SET is_booked = TRUE WHERE flight_id=? AND seat_number=?",
		b.FlightID, b.SeatNumber); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	b.ID = uint64(id)
	return nil
}
