// Package models holds the persistence-layer entities shared by
// repositories and services.
package models

import "time"

// User is an account record. Password holds the bcrypt hash and must never
// leave the service layer.
//
// Disabled defaults to true at signup (the activation flow lives outside
// this service), so freshly registered users cannot log in until the flag
// is cleared.
type User struct {
	ID         int64
	Email      string
	Password   string
	Name       string
	LastName   string
	Disabled   bool
	CreateDate time.Time
}
