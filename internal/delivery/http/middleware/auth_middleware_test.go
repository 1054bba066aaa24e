package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobmatch-backend/internal/delivery/http/middleware"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(tokens), func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"ginID":   c.GetString(string(domain.KeyPrincipalID)),
			"ctxID":   ctx.Value(domain.KeyPrincipalID),
			"ctxType": ctx.Value(domain.KeyAccountType),
		})
	})
	return r
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := newProtectedRouter(auth.NewTokenService("s3cret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Access denied. No token provided."}`, w.Body.String())
}

func TestAuthMiddlewareNonBearerHeader(t *testing.T) {
	r := newProtectedRouter(auth.NewTokenService("s3cret", time.Hour))

	for _, header := range []string{"Basic dXNlcjpwdw==", "token-without-scheme", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Access denied. No token provided."}`, w.Body.String())
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := newProtectedRouter(auth.NewTokenService("s3cret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.here")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Invalid or expired token"}`, w.Body.String())
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expired := auth.NewTokenService("s3cret", time.Nanosecond)
	token, err := expired.Mint("c1", domain.AccountTypeCandidate)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	r := newProtectedRouter(auth.NewTokenService("s3cret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareAttachesPrincipal(t *testing.T) {
	tokens := auth.NewTokenService("s3cret", time.Hour)
	token, err := tokens.Mint("co1", domain.AccountTypeCompany)
	require.NoError(t, err)

	r := newProtectedRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "co1", body["ginID"])
	assert.Equal(t, "co1", body["ctxID"])
	assert.Equal(t, domain.AccountTypeCompany, body["ctxType"])
}
