package http_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"
	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
)

// memoryUserRepo mirrors the Mongo repository's contract, including the
// unique constraints and hash-on-write behaviour.
type memoryUserRepo struct {
	mu     sync.Mutex
	hasher contract.IHasher
	users  map[string]entity.User
	nextID int
}

var _ contract.IUserRepository = (*memoryUserRepo)(nil)

func newMemoryUserRepo(hasher contract.IHasher) *memoryUserRepo {
	return &memoryUserRepo{hasher: hasher, users: map[string]entity.User{}}
}

func (r *memoryUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	if err := r.hashPending(user); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		switch {
		case u.Email == user.Email:
			return entity.ErrDuplicateEmail
		case user.StudentNumber != "" && u.StudentNumber == user.StudentNumber:
			return entity.ErrDuplicateStudentNumber
		case user.StaffNumber != "" && u.StaffNumber == user.StaffNumber:
			return entity.ErrDuplicateStaffNumber
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.ID == id })
}

func (r *memoryUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email })
}

func (r *memoryUserRepo) GetUserByStudentNumber(ctx context.Context, studentNumber string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.StudentNumber == studentNumber })
}

func (r *memoryUserRepo) GetUserByStaffNumber(ctx context.Context, staffNumber string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.StaffNumber == staffNumber })
}

func (r *memoryUserRepo) UpdateUser(ctx context.Context, user *entity.User) error {
	if err := r.hashPending(user); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return entity.ErrUserNotFound
	}
	hash := stored.PasswordHash
	if user.PasswordHash != "" {
		hash = user.PasswordHash
	}
	updated := *user
	updated.PasswordHash = hash
	updated.CreatedAt = stored.CreatedAt
	r.users[user.ID] = updated
	return nil
}

func (r *memoryUserRepo) stored(id string) entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id]
}

func (r *memoryUserRepo) find(match func(entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *memoryUserRepo) hashPending(user *entity.User) error {
	plain, ok := user.PendingPassword()
	if !ok {
		return nil
	}
	hash, err := r.hasher.HashPassword(plain)
	if err != nil {
		return err
	}
	user.ApplyPasswordHash(hash)
	return nil
}
