// Package common defines shared constants and sentinel errors used across
// the API server and the staging worker. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInactiveUser = errors.New("inactive user")

	// External collaborators.
	ErrorUpstream     = errors.New("upstream service error")
	ErrorTaskDelivery = errors.New("task delivery failed")

	// Credential errors.
	ErrorCorruptHash = errors.New("corrupt password hash")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken   = errors.New("invalid token")
	ErrMalformedToken = errors.New("malformed token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
