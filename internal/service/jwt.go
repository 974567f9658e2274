package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSubject means the signature checked out but the token carries
	// no caller identity.
	ErrNoSubject = errors.New("token has no subject claim")
	// ErrInvalidToken covers malformed tokens, wrong signing methods and
	// bad signatures.
	ErrInvalidToken = errors.New("invalid token")
)

// TokenVerifier validates Supabase-issued bearer tokens against the
// project's shared JWT secret. The gateway only verifies, it never signs.
type TokenVerifier struct {
	secretKey []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secretKey: []byte(secret)}
}

// ValidateToken checks the HS256 signature and returns the subject claim,
// which Supabase sets to the user id.
func (v *TokenVerifier) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return v.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrNoSubject
	}

	return claims.Subject, nil
}
