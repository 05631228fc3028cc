package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/logger"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/validator"
	"github.com/PaulBilal/Edunova-School-System/internal/usecase"
	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

type authDeps struct {
	repo      *mockUserRepo
	tokens    *mockTokens
	codes     *mockCodes
	deliverer *mockDeliverer
	uc        *usecase.AuthUsecase
}

func newAuthDeps() *authDeps {
	d := &authDeps{
		repo:      &mockUserRepo{},
		tokens:    &mockTokens{},
		codes:     &mockCodes{},
		deliverer: &mockDeliverer{},
	}
	d.uc = usecase.NewAuthUsecase(d.repo, prefixHasher{}, d.tokens, d.codes, d.deliverer, validator.NewValidator(), logger.NewNop())
	return d
}

func (d *authDeps) assertExpectations(t *testing.T) {
	d.repo.AssertExpectations(t)
	d.tokens.AssertExpectations(t)
	d.codes.AssertExpectations(t)
	d.deliverer.AssertExpectations(t)
}

func validStudent() usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		FirstName:     " Thandi ",
		LastName:      "Mokoena",
		Email:         " Thandi@Example.COM ",
		Password:      "password123",
		Role:          entity.UserRoleStudent,
		StudentNumber: "219000001",
		StaffNumber:   "L-should-be-dropped",
		Faculty:       "Science",
		Campus:        "Main Campus",
	}
}

func TestRegister_Student(t *testing.T) {
	d := newAuthDeps()
	d.repo.On("GetUserByEmail", mock.Anything, "thandi@example.com").Return(nil, entity.ErrUserNotFound)
	d.repo.On("GetUserByStudentNumber", mock.Anything, "219000001").Return(nil, entity.ErrUserNotFound)
	d.repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		plain, pending := u.PendingPassword()
		return pending && plain == "password123" &&
			u.FirstName == "Thandi" &&
			u.Email == "thandi@example.com" &&
			u.StudentNumber == "219000001" &&
			u.StaffNumber == "" &&
			u.Faculty == "Science" &&
			!u.IsVerified &&
			!u.CreatedAt.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = "u1"
	}).Return(nil)
	d.tokens.On("Issue", "u1").Return("tok", nil)
	d.codes.On("Issue", mock.Anything, "u1").Return("654321", nil)
	d.deliverer.On("DeliverVerificationCode", mock.Anything, mock.AnythingOfType("*entity.User"), "654321").Return(nil)

	result, err := d.uc.Register(ctx(), validStudent())

	require.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, entity.UserRoleStudent, result.User.Role)
	d.assertExpectations(t)
}

func TestRegister_DefaultsRoleToStudent(t *testing.T) {
	d := newAuthDeps()
	in := validStudent()
	in.Role = ""
	d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
	d.repo.On("GetUserByStudentNumber", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
	d.repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.UserRoleStudent
	})).Return(nil)
	d.tokens.On("Issue", mock.Anything).Return("tok", nil)
	d.codes.On("Issue", mock.Anything, mock.Anything).Return("1", nil)
	d.deliverer.On("DeliverVerificationCode", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := d.uc.Register(ctx(), in)

	require.NoError(t, err)
	d.assertExpectations(t)
}

func TestRegister_AdminKeepsOnlyStaffNumber(t *testing.T) {
	d := newAuthDeps()
	in := validStudent()
	in.Role = entity.UserRoleAdmin
	in.StaffNumber = "A1"
	d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
	d.repo.On("GetUserByStaffNumber", mock.Anything, "A1").Return(nil, entity.ErrUserNotFound)
	d.repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.StaffNumber == "A1" && u.StudentNumber == "" && u.Faculty == "" && u.Campus == ""
	})).Return(nil)
	d.tokens.On("Issue", mock.Anything).Return("tok", nil)
	d.codes.On("Issue", mock.Anything, mock.Anything).Return("1", nil)
	d.deliverer.On("DeliverVerificationCode", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := d.uc.Register(ctx(), in)

	require.NoError(t, err)
	d.assertExpectations(t)
}

func TestRegister_Conflicts(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		d := newAuthDeps()
		d.repo.On("GetUserByEmail", mock.Anything, "thandi@example.com").Return(&entity.User{ID: "other"}, nil)

		_, err := d.uc.Register(ctx(), validStudent())

		assertAppError(t, err, usecase.KindConflict, "User already exists")
		d.repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("student number", func(t *testing.T) {
		d := newAuthDeps()
		d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
		d.repo.On("GetUserByStudentNumber", mock.Anything, "219000001").Return(&entity.User{ID: "other"}, nil)

		_, err := d.uc.Register(ctx(), validStudent())

		assertAppError(t, err, usecase.KindConflict, "Student number already in use")
	})

	t.Run("staff number", func(t *testing.T) {
		d := newAuthDeps()
		in := validStudent()
		in.Role = entity.UserRoleLecturer
		in.StaffNumber = "L1"
		d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
		d.repo.On("GetUserByStaffNumber", mock.Anything, "L1").Return(&entity.User{ID: "other"}, nil)

		_, err := d.uc.Register(ctx(), in)

		assertAppError(t, err, usecase.KindConflict, "Staff number already in use")
		d.repo.AssertNotCalled(t, "GetUserByStudentNumber", mock.Anything, mock.Anything)
	})

	t.Run("lost race on insert", func(t *testing.T) {
		d := newAuthDeps()
		d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
		d.repo.On("GetUserByStudentNumber", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
		d.repo.On("CreateUser", mock.Anything, mock.Anything).Return(entity.ErrDuplicateEmail)

		_, err := d.uc.Register(ctx(), validStudent())

		assertAppError(t, err, usecase.KindConflict, "User already exists")
		d.tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})
}

func TestRegister_ValidationErrors(t *testing.T) {
	d := newAuthDeps()
	in := validStudent()
	in.Password = "short"
	in.Campus = "Moon Campus"
	d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
	d.repo.On("GetUserByStudentNumber", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)

	_, err := d.uc.Register(ctx(), in)

	assertAppError(t, err, usecase.KindBadRequest, "Password must be at least 8 characters, `Moon Campus` is not a valid campus")
	var verrs usecasecontract.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	d.repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_StoreRejection(t *testing.T) {
	d := newAuthDeps()
	d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
	d.repo.On("GetUserByStudentNumber", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
	d.repo.On("CreateUser", mock.Anything, mock.Anything).Return(errors.New("document failed validation"))

	_, err := d.uc.Register(ctx(), validStudent())

	assertAppError(t, err, usecase.KindBadRequest, "document failed validation")
}

func TestRegister_LookupFailureIsInternal(t *testing.T) {
	d := newAuthDeps()
	d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := d.uc.Register(ctx(), validStudent())

	assertAppError(t, err, usecase.KindInternal, "Server error")
}

func TestRegister_DeliveryFailureDoesNotFail(t *testing.T) {
	d := newAuthDeps()
	d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
	d.repo.On("GetUserByStudentNumber", mock.Anything, mock.Anything).Return(nil, entity.ErrUserNotFound)
	d.repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
	d.tokens.On("Issue", mock.Anything).Return("tok", nil)
	d.codes.On("Issue", mock.Anything, mock.Anything).Return("1", nil)
	d.deliverer.On("DeliverVerificationCode", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	result, err := d.uc.Register(ctx(), validStudent())

	require.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
}

func storedStudent() *entity.User {
	return &entity.User{
		ID:            "u1",
		FirstName:     "Thandi",
		LastName:      "Mokoena",
		Email:         "thandi@example.com",
		PasswordHash:  "hashed:password123",
		Role:          entity.UserRoleStudent,
		StudentNumber: "219000001",
	}
}

func TestLogin(t *testing.T) {
	d := newAuthDeps()
	d.repo.On("GetUserByEmail", mock.Anything, "thandi@example.com").Return(storedStudent(), nil)
	d.tokens.On("Issue", "u1").Return("tok", nil)

	result, err := d.uc.Login(ctx(), " Thandi@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
	assert.Equal(t, "219000001", result.User.StudentNumber)
	d.assertExpectations(t)
}

func TestLogin_Failures(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		d := newAuthDeps()
		_, err := d.uc.Login(ctx(), "thandi@example.com", "")
		assertAppError(t, err, usecase.KindBadRequest, "Please provide email and password")

		_, err = d.uc.Login(ctx(), "   ", "password123")
		assertAppError(t, err, usecase.KindBadRequest, "Please provide email and password")
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		d := newAuthDeps()
		d.repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, entity.ErrUserNotFound)
		d.repo.On("GetUserByEmail", mock.Anything, "thandi@example.com").Return(storedStudent(), nil)

		_, unknownErr := d.uc.Login(ctx(), "nobody@example.com", "password123")
		_, wrongErr := d.uc.Login(ctx(), "thandi@example.com", "password124")

		assertAppError(t, unknownErr, usecase.KindUnauthorized, "Invalid email or password")
		assertAppError(t, wrongErr, usecase.KindUnauthorized, "Invalid email or password")
		d.tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("incomplete profile", func(t *testing.T) {
		d := newAuthDeps()
		user := storedStudent()
		user.LastName = ""
		d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(user, nil)

		_, err := d.uc.Login(ctx(), "thandi@example.com", "password123")

		assertAppError(t, err, usecase.KindBadRequest, "User profile incomplete: missing firstName, lastName, or role")
	})

	t.Run("store failure", func(t *testing.T) {
		d := newAuthDeps()
		d.repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := d.uc.Login(ctx(), "thandi@example.com", "password123")

		assertAppError(t, err, usecase.KindInternal, "Server error")
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("strips password hash", func(t *testing.T) {
		d := newAuthDeps()
		stored := storedStudent()
		d.tokens.On("Verify", "tok").Return("u1", nil)
		d.repo.On("GetUserByID", mock.Anything, "u1").Return(stored, nil)

		user, err := d.uc.Authenticate(ctx(), "tok")

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Empty(t, user.PasswordHash)
		assert.Equal(t, "hashed:password123", stored.PasswordHash)
	})

	t.Run("invalid token", func(t *testing.T) {
		d := newAuthDeps()
		d.tokens.On("Verify", "bad").Return("", errors.New("signature is invalid"))

		_, err := d.uc.Authenticate(ctx(), "bad")

		assertAppError(t, err, usecase.KindUnauthorized, usecase.MsgTokenVerifyFailed)
	})

	t.Run("user gone", func(t *testing.T) {
		d := newAuthDeps()
		d.tokens.On("Verify", "tok").Return("u1", nil)
		d.repo.On("GetUserByID", mock.Anything, "u1").Return(nil, entity.ErrUserNotFound)

		_, err := d.uc.Authenticate(ctx(), "tok")

		assertAppError(t, err, usecase.KindUnauthorized, usecase.MsgTokenUserNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		d := newAuthDeps()
		d.tokens.On("Verify", "tok").Return("u1", nil)
		d.repo.On("GetUserByID", mock.Anything, "u1").Return(nil, errors.New("timeout"))

		_, err := d.uc.Authenticate(ctx(), "tok")

		assert.Equal(t, usecase.KindInternal, usecase.KindOf(err))
	})
}

func TestGetProfile(t *testing.T) {
	d := newAuthDeps()
	d.repo.On("GetUserByID", mock.Anything, "u1").Return(storedStudent(), nil)
	d.repo.On("GetUserByID", mock.Anything, "gone").Return(nil, entity.ErrUserNotFound)

	user, err := d.uc.GetProfile(ctx(), "u1")
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	_, err = d.uc.GetProfile(ctx(), "gone")
	assertAppError(t, err, usecase.KindNotFound, "User not found")
}
