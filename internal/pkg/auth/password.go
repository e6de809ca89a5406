package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// IsHash reports whether stored looks like a bcrypt hash rather than a
// legacy plain-text password.
func IsHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

// CheckPassword compares password against stored. needsRehash is true when
// stored is a plain-text value that matched and should be replaced with a hash.
func CheckPassword(password, stored string) (ok bool, needsRehash bool) {
	if IsHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
	}

	if stored == "" {
		return false, false
	}
	match := subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
	return match, match
}
