package auth

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is enforced by registration, not by the hasher.
const MinPasswordLength = 6

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

// ErrPasswordTooLong is returned by Hash for inputs bcrypt would reject.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// Hasher hashes and verifies passwords with bcrypt. Each hash embeds its own
// random salt and cost.
type Hasher struct {
	cost int

	dummyOnce sync.Once
	dummy     []byte
}

// NewHasher returns a hasher using cost, falling back to bcrypt.DefaultCost
// when cost is out of range.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes yield false.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Burn performs a comparison against a throwaway hash so that a login for an
// unknown username costs the same as a wrong password.
func (h *Hasher) Burn(plaintext string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("movies-be-timing-equaliser"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plaintext))
}
