package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/flight-booking/internal/model"
)

// AdminRepo reads the 'admins' table.  Admin accounts are provisioned out
// of band, so the repository only supports credential lookup.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// GetByUsername fetches an admin by exact username.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (model.Admin, error) {
	username = strings.TrimSpace(username)
	var a model.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password FROM admins WHERE username=? LIMIT 1",
		username).Scan(&a.ID, &a.Username, &a.Password)
	return a, err
}
