package mocks

import (
	"context"
	"errors"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
	"github.com/PaulBilal/Edunova-School-System/internal/usecase"
	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the auth and email
// verification use cases.
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailRegister     bool
	ShouldFailLogin        bool
	ShouldFailAuthenticate bool
	ShouldFailGetProfile   bool
	ShouldFailVerifyEmail  bool
	ShouldFailResend       bool
	// ShouldBreak makes every call fail with an unclassified error
	ShouldBreak bool

	// Return values
	MockUser  entity.User
	MockToken string

	// Recorded arguments
	LastRegisterInput usecasecontract.RegisterInput
	LastToken         string
	LastCode          string
}

var (
	_ usecasecontract.IAuthUseCase         = (*MockAuthUsecase)(nil)
	_ usecasecontract.IEmailVerificationUC = (*MockAuthUsecase)(nil)
)

var errBroken = errors.New("database unavailable")

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:            "mock-user-id",
			FirstName:     "Thandi",
			LastName:      "Mokoena",
			Email:         "test@example.com",
			Role:          entity.UserRoleStudent,
			StudentNumber: "219000001",
			Faculty:       "Science",
			Campus:        "Main Campus",
		},
		MockToken: "mock_token",
	}
}

func (m *MockAuthUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*usecasecontract.AuthResult, error) {
	m.LastRegisterInput = in
	if m.ShouldBreak {
		return nil, errBroken
	}
	if m.ShouldFailRegister {
		return nil, usecase.NewConflict("User already exists")
	}
	user := m.MockUser
	return &usecasecontract.AuthResult{User: &user, Token: m.MockToken}, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (*usecasecontract.AuthResult, error) {
	if m.ShouldBreak {
		return nil, errBroken
	}
	if m.ShouldFailLogin {
		return nil, usecase.NewUnauthorized("Invalid email or password")
	}
	user := m.MockUser
	return &usecasecontract.AuthResult{User: &user, Token: m.MockToken}, nil
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	m.LastToken = token
	if m.ShouldBreak {
		return nil, errBroken
	}
	if m.ShouldFailAuthenticate {
		return nil, usecase.NewUnauthorized(usecase.MsgTokenVerifyFailed)
	}
	user := m.MockUser.Public()
	return &user, nil
}

func (m *MockAuthUsecase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldBreak {
		return nil, errBroken
	}
	if m.ShouldFailGetProfile {
		return nil, usecase.NewNotFound("User not found")
	}
	user := m.MockUser.Public()
	return &user, nil
}

func (m *MockAuthUsecase) VerifyEmail(ctx context.Context, token, code string) (*usecasecontract.AuthResult, error) {
	m.LastToken = token
	m.LastCode = code
	if m.ShouldBreak {
		return nil, errBroken
	}
	if m.ShouldFailVerifyEmail {
		return nil, usecase.NewBadRequest("Invalid verification code")
	}
	user := m.MockUser.Public()
	user.IsVerified = true
	return &usecasecontract.AuthResult{User: &user, Token: m.MockToken}, nil
}

func (m *MockAuthUsecase) ResendVerification(ctx context.Context, token string) error {
	m.LastToken = token
	if m.ShouldBreak {
		return errBroken
	}
	if m.ShouldFailResend {
		return usecase.NewBadRequest("User is already verified")
	}
	return nil
}
