package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidNonce is returned for nonces that are expired, forged, or bound to
// a different action or user.
var ErrInvalidNonce = errors.New("invalid nonce")

type nonceClaims struct {
	Action string `json:"act"`
	jwt.RegisteredClaims
}

// CreateNonce returns a token that proves a form for action was served to userID.
func CreateNonce(secret, action, userID string, ttl time.Duration) (string, error) {
	jti, err := generateJTI()
	if err != nil {
		return "", err
	}
	now := time.Now()
	c := nonceClaims{
		Action: action,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// VerifyNonce checks a nonce created by CreateNonce for the same action and user.
func VerifyNonce(secret, token, action, userID string) error {
	if token == "" {
		return ErrInvalidNonce
	}
	var c nonceClaims
	t, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithSubject(userID))
	if err != nil || !t.Valid {
		return ErrInvalidNonce
	}
	if c.Action == "" || c.Action != action {
		return ErrInvalidNonce
	}
	return nil
}
