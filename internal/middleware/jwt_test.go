package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/flight-booking/internal/utils"
)

const testSecret = "unit-test-secret"

func runJWT(t *testing.T, authorization string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, c, reached
}

func TestJWTAuthAcceptsIssuedTokenAndExposesClaims(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "user", 15)
	require.NoError(t, err)

	rec, c, reached := runJWT(t, "Bearer "+tok.Token)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 7, c.Get("user_id"))
	assert.Equal(t, "user", c.Get("role"))
}

func TestJWTAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Token abc", "Bearer", "bearer abc"} {
		rec, _, reached := runJWT(t, header)
		assert.False(t, reached, "header: %q", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header: %q", header)
	}
}

func TestJWTAuthRejectsForeignSignature(t *testing.T) {
	tok, err := utils.NewAccessToken("some-other-secret", 7, "user", 15)
	require.NoError(t, err)

	rec, _, reached := runJWT(t, "Bearer "+tok.Token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "user", -5)
	require.NoError(t, err)

	rec, _, reached := runJWT(t, "Bearer "+tok.Token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
