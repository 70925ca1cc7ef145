package service

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and checks passwords with bcrypt
type PasswordHasher struct {
	cost      int
	dummyHash []byte
	compare   func(hash, password []byte) error
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	// same cost as real hashes, so a miss costs as much as a wrong password.
	// Cannot fail: the cost is in range and the input is short.
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("transportadora:no-such-user"), cost)

	return &PasswordHasher{
		cost:      cost,
		dummyHash: dummyHash,
		compare:   bcrypt.CompareHashAndPassword,
	}
}

// Hash salts every call, so equal passwords never share a hash
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares in constant time. A malformed hash never matches.
func (h *PasswordHasher) Verify(hash, password string) bool {
	return h.compare([]byte(hash), []byte(password)) == nil
}

// VerifyMissing spends one comparison on a fixed hash. Callers use it when
// the account does not exist so the response time does not reveal that.
func (h *PasswordHasher) VerifyMissing(password string) {
	_ = h.compare(h.dummyHash, []byte(password))
}
