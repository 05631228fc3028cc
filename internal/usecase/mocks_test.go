package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
	"github.com/PaulBilal/Edunova-School-System/internal/usecase"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetUserByStudentNumber(ctx context.Context, studentNumber string) (*entity.User, error) {
	args := m.Called(ctx, studentNumber)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetUserByStaffNumber(ctx context.Context, staffNumber string) (*entity.User, error) {
	args := m.Called(ctx, staffNumber)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockTokens struct{ mock.Mock }

func (m *mockTokens) Issue(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *mockTokens) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type mockCodes struct{ mock.Mock }

func (m *mockCodes) Issue(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *mockCodes) Check(ctx context.Context, userID, candidate string) (bool, error) {
	args := m.Called(ctx, userID, candidate)
	return args.Bool(0), args.Error(1)
}

type mockDeliverer struct{ mock.Mock }

func (m *mockDeliverer) DeliverVerificationCode(ctx context.Context, user *entity.User, code string) error {
	return m.Called(ctx, user, code).Error(0)
}

// prefixHasher treats "hashed:<plain>" as the hash of plain.
type prefixHasher struct{}

var errMismatch = errors.New("mismatch")

func (prefixHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (prefixHasher) ComparePasswordHash(password, hashedPassword string) error {
	if hashedPassword != "hashed:"+password {
		return errMismatch
	}
	return nil
}

func assertAppError(t *testing.T, err error, kind usecase.ErrorKind, message string) {
	t.Helper()
	var appErr *usecase.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind, "kind")
	assert.Equal(t, message, appErr.Message)
}

func ctx() context.Context {
	return context.Background()
}
