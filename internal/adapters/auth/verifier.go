package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tyler-dunkel/vendo/internal/ports"
)

// Verifier checks a supplied admin password against one pre-configured bcrypt
// reference hash. Which hash applies is decided at wire time from the
// configured environment.
type Verifier struct {
	referenceHash string
}

var _ ports.CredentialVerifier = (*Verifier)(nil)

func NewVerifier(referenceHash string) *Verifier {
	return &Verifier{referenceHash: strings.TrimSpace(referenceHash)}
}

// Verify reports whether the password matches the reference hash. With no
// hash configured for the environment there is no admin to be had, so every
// credential fails.
func (v *Verifier) Verify(password string) bool {
	if v.referenceHash == "" || password == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(v.referenceHash), []byte(password)) == nil
}

// HashPassword produces a bcrypt reference hash suitable for the config file
// or the secret store.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}

	return string(hash), nil
}

// SecretKey is the secret-store key holding the reference hash for an
// environment.
func SecretKey(environment string) string {
	return "admin/" + environment
}
