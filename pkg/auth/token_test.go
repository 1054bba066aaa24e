package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Mint("c1", "candidate")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "c1", claims.PrincipalID)
	assert.Equal(t, "candidate", claims.AccountType)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenWrongSecret(t *testing.T) {
	minter := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := minter.Mint("co1", "company")
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Nanosecond)

	token, err := svc.Mint("c1", "candidate")
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDefaultTTL(t *testing.T) {
	svc := NewTokenService("test-secret", 0)

	token, err := svc.Mint("c1", "candidate")
	assert.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, ttl)
}
