package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/flight-booking/internal/model"
)

// PaymentRepo records payments against bookings.
type PaymentRepo struct{ DB *sql.DB }

func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

// Create inserts a payment row with status "Completed" and fills in the
// generated payment ID.  There is deliberately no duplicate check on
// transaction_id; resubmissions create additional rows.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	p.Status = model.PaymentStatusCompleted
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO payments (booking_id, user_id, amount_paid, payment_method, transaction_id, payment_status) VALUES (?,?,?,?,?,?)",
		p.BookingID, p.UserID, p.AmountPaid, p.PaymentMethod, p.TransactionID, p.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}
