package usecase

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Authenticator decides whether an admin credential pair is valid.
type Authenticator interface {
	Authenticate(email, password string) bool
}

// staticAuthenticator checks against one configured credential pair.
type staticAuthenticator struct {
	email        []byte
	passwordHash []byte
}

// NewStaticAuthenticator hashes password once so the plain value is not kept in memory.
func NewStaticAuthenticator(email, password string) (Authenticator, error) {
	hash, err := HashPassword(passwordDigest(password))
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &staticAuthenticator{
		email:        []byte(email),
		passwordHash: []byte(hash),
	}, nil
}

// Authenticate evaluates both parts so callers cannot tell which one was wrong.
func (a *staticAuthenticator) Authenticate(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), a.email) == 1
	passwordOK := CheckPasswordHash(passwordDigest(password), string(a.passwordHash))
	return emailOK && passwordOK
}

// passwordDigest feeds bcrypt a fixed-length key. bcrypt truncates at 72
// bytes and stops at NUL, so distinct raw passwords could share a hash.
func passwordDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
