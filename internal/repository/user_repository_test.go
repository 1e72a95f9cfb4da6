package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	userInsert = "INSERT INTO users (full_name, email, password, phone, dob, gender) VALUES (?,?,?,?,?,?)"
	userSelect = "SELECT user_id,full_name,email,password,phone,dob,gender,created_at FROM users WHERE email=? AND full_name=? LIMIT 1"
)

// bcryptHashOf matches any argument that is a valid bcrypt hash of the
// given plaintext and is not the plaintext itself.
type bcryptHashOf string

func (b bcryptHashOf) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return s != string(b) && bcrypt.CompareHashAndPassword([]byte(s), []byte(b)) == nil
}

func newUserMock(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepo(db), mock
}

func TestUserCreateStoresHashNotPlaintext(t *testing.T) {
	repo, mock := newUserMock(t)

	mock.ExpectExec(userInsert).
		WithArgs("Alice Smith", "alice@x.com", bcryptHashOf("pw123"), "+911234567890", nil, nil).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.Create(context.Background(), "Alice Smith", "Alice@X.com", "pw123", "+911234567890", nil, nil, bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateEmailReturnsSentinel(t *testing.T) {
	repo, mock := newUserMock(t)

	mock.ExpectExec(userInsert).
		WithArgs("Alice Smith", "alice@x.com", bcryptHashOf("pw123"), "+911234567890", nil, nil).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice@x.com' for key 'users.email'"))

	_, err := repo.Create(context.Background(), "Alice Smith", "alice@x.com", "pw123", "+911234567890", nil, nil, bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailAndNameRequiresBothToMatch(t *testing.T) {
	repo, mock := newUserMock(t)

	cols := []string{"user_id", "full_name", "email", "password", "phone", "dob", "gender", "created_at"}
	mock.ExpectQuery(userSelect).
		WithArgs("alice@x.com", "Alice Smith").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(11, "Alice Smith", "alice@x.com", "$2a$04$hash", "+911234567890", nil, nil, time.Now()))

	u, err := repo.GetByEmailAndName(context.Background(), "Alice@X.com", "Alice Smith")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), u.ID)
	assert.Nil(t, u.DOB)

	// A name that does not match the email's row yields no rows at all;
	// the repository passes sql.ErrNoRows through untouched.
	mock.ExpectQuery(userSelect).
		WithArgs("alice@x.com", "Someone Else").
		WillReturnRows(sqlmock.NewRows(cols))

	_, err = repo.GetByEmailAndName(context.Background(), "alice@x.com", "Someone Else")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
