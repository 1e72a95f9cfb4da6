package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/flight-booking/internal/config"
	"github.com/iliyamo/flight-booking/internal/repository"
)

const (
	userInsertSQL  = "INSERT INTO users (full_name, email, password, phone, dob, gender) VALUES (?,?,?,?,?,?)"
	userLookupSQL  = "SELECT user_id,full_name,email,password,phone,dob,gender,created_at FROM users WHERE email=? AND full_name=? LIMIT 1"
	adminLookupSQL = "SELECT id,username,password FROM admins WHERE username=? LIMIT 1"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		AccessTTLMin: 15,
		BcryptCost:   bcrypt.MinCost,
	}
}

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAuthHandler(testConfig(), repository.NewUserRepo(db), repository.NewAdminRepo(db)), mock
}

// postJSON runs a handler against a JSON body and returns the recorder.
func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(b)
}

// errDuplicateEmail mimics the driver error MySQL raises on the unique
// email index.
func errDuplicateEmail() error {
	return errors.New("Error 1062 (23000): Duplicate entry 'alice@x.com' for key 'users.email'")
}

func userRow(hash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "full_name", "email", "password", "phone", "dob", "gender", "created_at"}).
		AddRow(11, "Alice Smith", "alice@x.com", hash, "1234567890", nil, nil, time.Now())
}

func TestRegisterMissingFieldsRejectedBeforeStore(t *testing.T) {
	h, mock := newAuthHandler(t)

	bodies := []string{
		`{}`,
		`{"full_name":"Alice Smith","email":"alice@x.com","password":"pw123"}`,
		`{"full_name":"  ","email":"alice@x.com","password":"pw123","phone":"1234567890"}`,
		`{"full_name":"Alice Smith","email":"","password":"pw123","phone":"1234567890"}`,
	}
	for _, body := range bodies {
		rec := postJSON(t, h.Register, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
	// No SQL expectations were set: validation must precede any store call.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterSuccess(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectExec(userInsertSQL).
		WithArgs("Alice Smith", "alice@x.com", sqlmock.AnyArg(), "+911234567890", nil, nil).
		WillReturnResult(sqlmock.NewResult(11, 1))

	rec := postJSON(t, h.Register,
		`{"full_name":"Alice Smith","email":"alice@x.com","password":"pw123","phone":"+911234567890"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully!")
	assert.NotContains(t, rec.Body.String(), "pw123", "no sensitive data is echoed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmailIs400(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectExec(userInsertSQL).
		WithArgs("Alice Smith", "alice@x.com", sqlmock.AnyArg(), "+911234567890", nil, nil).
		WillReturnError(errDuplicateEmail())

	rec := postJSON(t, h.Register,
		`{"full_name":"Alice Smith","email":"alice@x.com","password":"pw123","phone":"+911234567890"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered!")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginMatrix(t *testing.T) {
	hash := mustHash(t, "pw123")

	t.Run("missing fields", func(t *testing.T) {
		h, mock := newAuthHandler(t)
		rec := postJSON(t, h.Login, `{"username":"Alice Smith","email":"alice@x.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email-name pair", func(t *testing.T) {
		h, mock := newAuthHandler(t)
		mock.ExpectQuery(userLookupSQL).
			WithArgs("alice@x.com", "Wrong Name").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "full_name", "email", "password", "phone", "dob", "gender", "created_at"}))

		rec := postJSON(t, h.Login, `{"username":"Wrong Name","email":"alice@x.com","password":"pw123"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "User does not exist. Please sign up.")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password", func(t *testing.T) {
		h, mock := newAuthHandler(t)
		mock.ExpectQuery(userLookupSQL).
			WithArgs("alice@x.com", "Alice Smith").
			WillReturnRows(userRow(hash))

		rec := postJSON(t, h.Login, `{"username":"Alice Smith","email":"alice@x.com","password":"wrongpw"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Incorrect password.")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success issues access token", func(t *testing.T) {
		h, mock := newAuthHandler(t)
		mock.ExpectQuery(userLookupSQL).
			WithArgs("alice@x.com", "Alice Smith").
			WillReturnRows(userRow(hash))

		rec := postJSON(t, h.Login, `{"username":"Alice Smith","email":"alice@x.com","password":"pw123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Login successful!")
		assert.Contains(t, rec.Body.String(), `"token"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdminLoginMatrix(t *testing.T) {
	hash := mustHash(t, "adminpw")
	adminRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "username", "password"}).AddRow(1, "root", hash)
	}

	t.Run("unknown admin", func(t *testing.T) {
		h, mock := newAuthHandler(t)
		mock.ExpectQuery(adminLookupSQL).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}))

		rec := postJSON(t, h.AdminLogin, `{"username":"ghost","password":"adminpw"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Admin not found.")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password", func(t *testing.T) {
		h, mock := newAuthHandler(t)
		mock.ExpectQuery(adminLookupSQL).WithArgs("root").WillReturnRows(adminRow())

		rec := postJSON(t, h.AdminLogin, `{"username":"root","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		h, mock := newAuthHandler(t)
		mock.ExpectQuery(adminLookupSQL).WithArgs("root").WillReturnRows(adminRow())

		rec := postJSON(t, h.AdminLogin, `{"username":"root","password":"adminpw"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Admin login successful")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
