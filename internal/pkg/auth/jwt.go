// Package auth signs and verifies the bearer tokens that identify shoppers
// and administrators.
package auth

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid authentication token")

// Claims is the JWT payload.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs an HS256 token for the actor.
func (i *TokenIssuer) Issue(actor kernel.Actor) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	now := i.now()
	claims := Claims{
		UserID: actor.ID().String(),
		Role:   string(actor.Role()),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses the token and returns the actor it identifies. Every failure
// wraps ErrInvalidToken; expired tokens also match jwt.ErrTokenExpired.
func (i *TokenIssuer) Verify(token string) (kernel.Actor, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, jwt.ErrTokenInvalidClaims)
	}

	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: user id: %w", ErrInvalidToken, err)
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return kernel.NewActor(id, role)
}
