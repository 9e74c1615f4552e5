package signup

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password.
//
// bcrypt only reads the first 72 bytes of its input and rejects anything
// longer, while the signup rules put no upper bound on the password. The
// password is therefore reduced to a base64 SHA-256 digest (44 bytes) before
// hashing, so every password the rules accept can be stored.
func HashPassword(password string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword(prehash(password), cost)
}

// PasswordMatches reports whether password produced the account's hash.
func (a *Account) PasswordMatches(password string) bool {
	if a == nil || len(a.PasswordHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.PasswordHash, prehash(password)) == nil
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
