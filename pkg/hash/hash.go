// Package hash wraps bcrypt for storing account passwords.
package hash

import "golang.org/x/crypto/bcrypt"

// Make creates a bcrypt hash from the given plaintext password.
func Make(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check reports whether the plaintext password matches the stored hash.
func Check(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
