package handler

import (
	"context"      // provides context with cancellation for DB calls
	"database/sql" // SQL database interactions
	"net/http"     // HTTP status codes and primitives
	"strings"      // string manipulation utilities
	"time"         // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/flight-booking/internal/config"     // app configuration
	"github.com/iliyamo/flight-booking/internal/repository" // DB repositories
	"github.com/iliyamo/flight-booking/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Admins *repository.AdminRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, a *repository.AdminRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Admins: a}
}

// ----- DTOs -----

type registerReq struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    string  `json:"phone"`
	DOB      *string `json:"dob"`
	Gender   *string `json:"gender"`
}
type loginReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type adminLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Register: validate required fields, hash, insert.  Nothing sensitive is
// echoed back; the client gets a message and the new user id only.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All required fields must be filled."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.FullName, req.Email, req.Password, req.Phone, req.DOB, req.Gender, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			// Duplicate email is reported as 400, matching the public API contract.
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already registered!"})
		}
		c.Logger().Errorf("register: create user failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully!",
		"user_id": uid,
	})
}

// Login: verify credentials and return an access token.  The lookup
// requires email AND full name to match the same row; this two-field
// match is the documented product behavior, not email-only.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All login fields are required."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmailAndName(ctx, req.Email, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User does not exist. Please sign up."})
		}
		c.Logger().Errorf("login: query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Incorrect password."})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, "user", h.Cfg.AccessTTLMin)
	if err != nil {
		c.Logger().Errorf("login: issue access token failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful! Redirecting to bookings page...",
		"user_id": u.ID,
		"access":  tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// AdminLogin: same failure semantics as user login minus the field
// validation; an unknown or empty username simply yields 404.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req adminLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Admin not found."})
		}
		c.Logger().Errorf("admin login: query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	if !utils.VerifyPassword(a.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Incorrect password."})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, a.ID, "admin", h.Cfg.AccessTTLMin)
	if err != nil {
		c.Logger().Errorf("admin login: issue access token failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Admin login successful",
		"access":  tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Me: simple protected endpoint.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": c.Get("user_id"),
		"role":    c.Get("role"),
	})
}
