package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and attaches the decoded
// principal to the request context. A missing token is Unauthenticated (401);
// a bad or expired one is InvalidToken (403). Account-type checks happen in
// the usecases, not here.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// A header without the Bearer scheme carries no usable token.
		tokenString, hasBearer := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")

		if !hasBearer || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		// Gin keys for handlers and logging; request context for usecases,
		// which look the principal up by typed key.
		c.Set(string(domain.KeyPrincipalID), claims.PrincipalID)
		c.Set(string(domain.KeyAccountType), claims.AccountType)

		ctx := context.WithValue(c.Request.Context(), domain.KeyPrincipalID, claims.PrincipalID)
		ctx = context.WithValue(ctx, domain.KeyAccountType, claims.AccountType)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
