package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/avolkov/dogshelter/internal/common"
)

// HashPassword produces a salted bcrypt hash of the password. The salt is
// embedded in the hash, so hashing the same password twice yields different
// strings.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether password matches the stored hash. Any error,
// including a corrupt hash, reads as a mismatch.
func CheckPassword(password, hash string) bool {
	ok, _ := CheckPasswordErr(password, hash)
	return ok
}

// CheckPasswordErr is CheckPassword with the failure cause preserved:
// a malformed stored hash is reported as common.ErrorCorruptHash rather than
// a plain mismatch.
func CheckPasswordErr(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, common.ErrorCorruptHash
}
