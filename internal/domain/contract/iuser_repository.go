package contract

import (
	"context"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser persists a new user, assigning its ID and hashing any pending password.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email, including the password hash.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByStudentNumber(ctx context.Context, studentNumber string) (*entity.User, error)
	GetUserByStaffNumber(ctx context.Context, staffNumber string) (*entity.User, error)
	// UpdateUser writes the mutable fields of an existing user by ID.
	UpdateUser(ctx context.Context, user *entity.User) error
}
