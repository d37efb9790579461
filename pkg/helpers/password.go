package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// BcryptAdapter hashes and compares passwords with bcrypt at a fixed cost.
type BcryptAdapter struct {
	Cost int
}

func NewBcryptAdapter(cost int) *BcryptAdapter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptAdapter{Cost: cost}
}

// Hash hashes the plain text password using bcrypt
func (b *BcryptAdapter) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Compare reports whether plain matches hash. A wrong password is not an
// error; a malformed hash is.
func (b *BcryptAdapter) Compare(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
