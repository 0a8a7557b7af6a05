// Package credential isolates how account passwords are stored and checked.
// Call sites only ever see Seal and Verify; whether the sealed form is the
// literal password or a bcrypt hash is a configuration choice
// (PASSWORD_HASHING=plain|bcrypt).
//
// Plain is the default and stores the password as-is. That is a known
// security defect carried over from the data this service must stay
// compatible with — existing user records hold literal passwords, and a
// hashing default would lock those users out. Switch new deployments to
// Bcrypt.
package credential

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/tripsync/backend/internal/domain"
)

// Store seals a password for persistence and verifies a login attempt
// against the sealed form.
type Store interface {
	Seal(password string) (string, error)
	Verify(sealed, password string) error
}

// Plain stores passwords unmodified. Verify is a constant-time comparison.
type Plain struct{}

// NewPlain returns the pass-through credential store.
func NewPlain() Plain { return Plain{} }

// Seal returns the password unchanged.
func (Plain) Seal(password string) (string, error) { return password, nil }

// Verify compares the stored and supplied passwords in constant time.
func (Plain) Verify(sealed, password string) error {
	if subtle.ConstantTimeCompare([]byte(sealed), []byte(password)) != 1 {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// Bcrypt hashes passwords with bcrypt at the default cost.
type Bcrypt struct{}

// NewBcrypt returns the bcrypt credential store.
func NewBcrypt() Bcrypt { return Bcrypt{} }

// Seal returns the bcrypt hash of password.
func (Bcrypt) Seal(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify checks password against the stored hash.
func (Bcrypt) Verify(sealed, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(sealed), []byte(password)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
