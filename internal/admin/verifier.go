package admin

import (
	"crypto/subtle"

	"github.com/insuredesk/insure-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier compares a stored secret with a login attempt.
// Isolating the comparison lets the plaintext scheme be swapped for a
// hashed one without touching handler logic.
type CredentialVerifier interface {
	Verify(secret, candidate string) bool
}

// PlaintextVerifier compares the stored password byte for byte.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(secret, candidate string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(candidate)) == 1
}

// BcryptVerifier treats the stored secret as a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(secret, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(secret), []byte(candidate)) == nil
}

// VerifierFor picks the verifier matching how the admin seed was configured.
func VerifierFor(cfg config.AdminConfig) CredentialVerifier {
	if cfg.PasswordHash != "" {
		return BcryptVerifier{}
	}
	return PlaintextVerifier{}
}
