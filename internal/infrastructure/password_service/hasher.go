package passwordservice

import (
	"errors"
	"fmt"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor for stored passwords.
const Cost = 10

// ErrPasswordMismatch is returned when a candidate does not match the hash.
var ErrPasswordMismatch = errors.New("password verification failed")

type Hasher struct {
	cost int
}

// check if IHasher was implemented at compile time
var _ contract.IHasher = (*Hasher)(nil)

func NewHasher() *Hasher {
	return &Hasher{cost: Cost}
}

func (h *Hasher) HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

func (h *Hasher) ComparePasswordHash(password, hashedPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("failed to check password hash: %w", err)
	}
	return nil
}
