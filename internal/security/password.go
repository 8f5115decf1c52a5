package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Ambiguous characters (0/O, 1/l/I) are left out because these passwords
// get read off a terminal and typed into a login form.
const passwordAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

var errPasswordTooShort = errors.New("password length must be at least 8")

// TemporaryPassword returns a cryptographically random password for seeded
// demo accounts and CLI password resets. Selection is unbiased: each
// character is drawn uniformly from the alphabet.
func TemporaryPassword(length int) (string, error) {
	if length < 8 {
		return "", errPasswordTooShort
	}

	limit := big.NewInt(int64(len(passwordAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = passwordAlphabet[position.Int64()]
	}
	return string(value), nil
}
