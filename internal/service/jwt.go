package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by every session token
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Nome   string `json:"nome"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Issue signs an HS256 token that expires ttl after issuance
func (s *JWTService) Issue(userID uint, email, nome string) (string, time.Time, error) {
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := Claims{
		UserID: userID,
		Email:  email,
		Nome:   nome,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Validate checks signature, algorithm and expiry. Every failure is ErrInvalidToken.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, apperrors.WrapError(apperrors.ErrInvalidToken, errors.New("missing user_id claim"))
	}

	return claims, nil
}
