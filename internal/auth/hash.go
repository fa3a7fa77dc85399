package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword derives the stored credential digest. The digest is a pure
// function of the process secret, the password and the email, so login checks
// are a direct string comparison against the stored value.
func HashPassword(secret, password, email string) string {
	sum := sha256.Sum256([]byte(secret + password + email))
	return hex.EncodeToString(sum[:])
}
