package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// HashPassword returns the deterministic one-way hash stored in the
// usuarios table. SHA-256 hex, no salt: the scheme must match the rows
// seeded at bootstrap.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether the password matches the stored hash.
// Constant-time comparison on the hex digests.
func VerifyPassword(password, storedHash string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// SeedPassword derives the bootstrap password for a seeded operator
// account: the local part of the email followed by "123". For
// admin@guaraciaba.ce.gov.br that is "admin123".
func SeedPassword(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		local = email
	}
	return local + "123"
}
