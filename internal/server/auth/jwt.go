// Package auth implements token issuing/validation and password hashing for
// the API server.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avolkov/dogshelter/internal/common"
)

// DefaultTokenValidity is used when the caller does not specify a ttl.
const DefaultTokenValidity = 15 * time.Minute

// hmacMethods are the signing algorithms accepted from configuration.
var hmacMethods = map[string]jwt.SigningMethod{
	jwt.SigningMethodHS256.Name: jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Name: jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Name: jwt.SigningMethodHS512,
}

// SigningMethod resolves a configured algorithm name ("HS256", ...) to a
// jwt.SigningMethod. Only HMAC methods are supported since the secret is a
// shared key.
func SigningMethod(name string) (jwt.SigningMethod, error) {
	m, ok := hmacMethods[name]
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", name)
	}
	return m, nil
}

// GenerateToken encodes {sub: subject, exp: now+ttl} into a signed compact
// JWT. A non-positive ttl falls back to DefaultTokenValidity.
func GenerateToken(subject string, secretKey []byte, method jwt.SigningMethod, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenValidity
	}

	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies the signature and expiry of a compact JWT and
// returns its subject claim.
//
// Failures are surfaced as distinct sentinel errors so tests can tell them
// apart, even though the HTTP boundary maps all of them to 401:
//   - common.ErrTokenExpired: exp has passed
//   - common.ErrMalformedToken: not a JWT, or the sub claim is missing
//   - common.ErrInvalidToken: bad signature, wrong secret or algorithm
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	names := make([]string, 0, len(hmacMethods))
	for name := range hmacMethods {
		names = append(names, name)
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods(names), jwt.WithExpirationRequired())

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", common.ErrMalformedToken
		default:
			return "", common.ErrInvalidToken
		}
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", common.ErrMalformedToken
	}

	return claims.Subject, nil
}
