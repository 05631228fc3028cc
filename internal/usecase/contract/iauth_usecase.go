package usecasecontract

import (
	"context"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
)

// RegisterInput carries the registration form. Role-conditional fields may be
// empty when they do not apply.
type RegisterInput struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	Role          entity.UserRole
	StudentNumber string
	StaffNumber   string
	Faculty       string
	Campus        string
}

// AuthResult is a user together with a freshly issued bearer token.
type AuthResult struct {
	User  *entity.User
	Token string
}

// IAuthUseCase defines registration, login and profile access.
type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Authenticate verifies a bearer token and loads the referenced user.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
}
