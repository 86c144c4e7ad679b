// Package auth implements the stateless token service: issuing and verifying
// signed, time-limited bearer tokens. The server keeps no session table;
// validity is entirely signature + expiry.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kshitij230106/weather-dashboard-backend/internal/common"
)

// Claims carries the identity encoded in a token: the standard registered
// claims plus the user id and normalized email.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// TokenService signs and verifies HS256 tokens with a process-wide secret.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret string, validity time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), validity: validity}
}

// Issue produces a signed token for the given identity, expiring exactly
// issue time + validity.
func (s *TokenService) Issue(userID, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.validity)),
		},
		UserID: userID,
		Email:  email,
	})

	return token.SignedString(s.secret)
}

// Verify parses and validates a token. Malformed structure, bad signature
// and expiry all surface as common.ErrInvalidToken so callers cannot tell
// them apart; the underlying jwt error is kept wrapped for logging.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
