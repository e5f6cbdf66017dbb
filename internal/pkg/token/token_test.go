package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	userId := uuid.New()

	signed, err := svc.Issue(userId)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	got, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userId, got)
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := NewService("secret-a", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyMissingUserIdClaim(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewServiceDefaultTTL(t *testing.T) {
	svc := NewService("test-secret", 0)
	assert.Equal(t, DefaultTTL, svc.TTL())
}
