package usecase

import (
	"context"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

// TokenMinter mints session tokens for a principal. Satisfied by
// pkg/auth.TokenService; kept narrow so usecases stay mockable.
type TokenMinter interface {
	Mint(principalID, accountType string) (string, error)
}

// requirePrincipal extracts the authenticated principal from the context and
// enforces the operation's required account type. Two flat account types,
// no hierarchy: a mismatch is always Forbidden.
func requirePrincipal(ctx context.Context, accountType, forbiddenMsg string) (string, error) {
	id, ok := ctx.Value(domain.KeyPrincipalID).(string)
	if !ok || id == "" {
		return "", apperror.Unauthorized("Access denied. No token provided.")
	}
	ctxType, _ := ctx.Value(domain.KeyAccountType).(string)
	if ctxType != accountType {
		return "", apperror.Forbidden(forbiddenMsg)
	}
	return id, nil
}
