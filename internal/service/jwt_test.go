package service

import (
	"testing"
	"time"

	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT(secret string) (*JWTService, *time.Time) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s := NewJWTService(secret, 24*time.Hour)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestJWTService_RoundTrip(t *testing.T) {
	s, _ := newTestJWT("secret")

	token, expiresAt, err := s.Issue(7, "ana@x.com", "Ana Silva")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC), expiresAt)

	claims, err := s.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "Ana Silva", claims.Nome)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_Expiry(t *testing.T) {
	s, now := newTestJWT("secret")

	token, _, err := s.Issue(7, "ana@x.com", "Ana Silva")
	require.NoError(t, err)

	*now = now.Add(24*time.Hour - time.Second)
	_, err = s.Validate(token)
	require.NoError(t, err)

	*now = now.Add(2 * time.Second)
	_, err = s.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	s, now := newTestJWT("secret")
	other, _ := newTestJWT("another-secret")

	claims := Claims{
		UserID: 7,
		Email:  "ana@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	otherSecret, _, err := other.Issue(7, "ana@x.com", "Ana Silva")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 7}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: claims.RegisteredClaims}).SignedString([]byte("secret"))
	require.NoError(t, err)

	valid, _, err := s.Issue(7, "ana@x.com", "Ana Silva")
	require.NoError(t, err)
	tampered := valid[:len(valid)-2] + "xx"

	tests := map[string]string{
		"other secret": otherSecret,
		"alg none":     none,
		"hs512":        hs512,
		"no expiry":    noExp,
		"no user id":   noUser,
		"tampered":     tampered,
		"garbage":      "not.a.token",
		"empty":        "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.Validate(token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		})
	}
}
