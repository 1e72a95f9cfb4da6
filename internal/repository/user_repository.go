package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/flight-booking/internal/model"
	"github.com/iliyamo/flight-booking/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already registered")

// Create hashes the password and inserts the user, returning its ID.
// DOB and gender may be nil; the columns are nullable.
func (r *UserRepo) Create(ctx context.Context, fullName, email, password, phone string, dob, gender *string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (full_name, email, password, phone, dob, gender) VALUES (?,?,?,?,?,?)",
		fullName, email, hash, phone, dob, gender)
	if err != nil {
		// MySQL error 1062 = duplicate entry on the unique email index
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmailAndName fetches the user whose email AND full name both match.
// Login deliberately keys on the pair rather than email alone; keep this
// in sync with the login handler if product intent ever changes.
func (r *UserRepo) GetByEmailAndName(ctx context.Context, email, fullName string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id,full_name,email,password,phone,dob,gender,created_at FROM users WHERE email=? AND full_name=? LIMIT 1",
		email, fullName).Scan(&u.ID, &u.FullName, &u.Email, &u.Password, &u.Phone, &u.DOB, &u.Gender, &u.CreatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id,full_name,email,password,phone,dob,gender,created_at FROM users WHERE user_id=? LIMIT 1",
		id).Scan(&u.ID, &u.FullName, &u.Email, &u.Password, &u.Phone, &u.DOB, &u.Gender, &u.CreatedAt)
	return u, err
}
