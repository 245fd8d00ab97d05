package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"allocate/internal/domain"
)

// BcryptCost is the fixed work factor for admin password hashes.
const BcryptCost = 10

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher backed by bcrypt. bcrypt embeds a
// random salt in every hash, so two hashes of the same password differ in
// encoding but both verify.
func NewBcryptHasher(cost int) domain.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare distinguishes a wrong password (ErrInvalidCredentials) from a
// malformed stored hash, which is an internal fault and never presented as an
// authentication failure.
func (h *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrInvalidCredentials
	}
	return fmt.Errorf("malformed password hash: %w", err)
}
