package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"
	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

// AuthUsecase implements the IAuthUseCase interface.
type AuthUsecase struct {
	userRepo  contract.IUserRepository
	hasher    contract.IHasher
	tokens    TokenService
	codes     contract.IVerificationCodeIssuer
	deliverer contract.ICodeDeliverer
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
	now       func() time.Time
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	tokens TokenService,
	codes contract.IVerificationCodeIssuer,
	deliverer contract.ICodeDeliverer,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		codes:     codes,
		deliverer: deliverer,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// check if AuthUsecase implements the IAuthUseCase
var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// NormalizeEmail trims and lowercases an address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified account and returns it with a token that
// also serves as the email verification token.
func (uc *AuthUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*usecasecontract.AuthResult, error) {
	in.Email = NormalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.Role == "" {
		in.Role = entity.DefaultRole()
	}

	if err := uc.ensureAvailable(ctx, in); err != nil {
		return nil, err
	}

	if verrs := uc.validator.ValidateRegistration(in); len(verrs) > 0 {
		return nil, &AppError{Kind: KindBadRequest, Message: verrs.Error(), Err: verrs}
	}

	user := &entity.User{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Role:       in.Role,
		IsVerified: false,
		CreatedAt:  uc.now().UTC(),
	}
	if in.Role == entity.UserRoleStudent {
		user.StudentNumber = in.StudentNumber
	}
	if in.Role.IsStaff() {
		user.StaffNumber = in.StaffNumber
	}
	if in.Role.BelongsToFaculty() {
		user.Faculty = in.Faculty
		user.Campus = in.Campus
	}
	user.SetPassword(in.Password)

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, entity.ErrDuplicateEmail):
			return nil, NewConflict(msgUserExists)
		case errors.Is(err, entity.ErrDuplicateStudentNumber):
			return nil, NewConflict(msgStudentNumberInUse)
		case errors.Is(err, entity.ErrDuplicateStaffNumber):
			return nil, NewConflict(msgStaffNumberInUse)
		}
		uc.logger.Errorf("failed to create user %s: %v", in.Email, err)
		return nil, &AppError{Kind: KindBadRequest, Message: err.Error(), Err: err}
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to issue token for user %s: %v", user.ID, err)
		return nil, NewInternal(err)
	}

	uc.sendVerificationCode(ctx, user)

	return &usecasecontract.AuthResult{User: user, Token: token}, nil
}

// ensureAvailable is the fast-path uniqueness check; the store's unique
// indexes remain the authority.
func (uc *AuthUsecase) ensureAvailable(ctx context.Context, in usecasecontract.RegisterInput) error {
	exists, err := uc.exists(uc.userRepo.GetUserByEmail(ctx, in.Email))
	if err != nil {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return NewInternal(err)
	}
	if exists {
		return NewConflict(msgUserExists)
	}

	if in.Role == entity.UserRoleStudent && in.StudentNumber != "" {
		exists, err = uc.exists(uc.userRepo.GetUserByStudentNumber(ctx, in.StudentNumber))
		if err != nil {
			uc.logger.Errorf("failed to check for existing student number: %v", err)
			return NewInternal(err)
		}
		if exists {
			return NewConflict(msgStudentNumberInUse)
		}
	}

	if in.Role.IsStaff() && in.StaffNumber != "" {
		exists, err = uc.exists(uc.userRepo.GetUserByStaffNumber(ctx, in.StaffNumber))
		if err != nil {
			uc.logger.Errorf("failed to check for existing staff number: %v", err)
			return NewInternal(err)
		}
		if exists {
			return NewConflict(msgStaffNumberInUse)
		}
	}
	return nil
}

func (uc *AuthUsecase) exists(user *entity.User, err error) (bool, error) {
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user != nil, nil
}

// sendVerificationCode never fails the surrounding flow; delivery problems are logged.
func (uc *AuthUsecase) sendVerificationCode(ctx context.Context, user *entity.User) {
	code, err := uc.codes.Issue(ctx, user.ID)
	if err != nil {
		uc.logger.Warnf("failed to issue verification code for user %s: %v", user.ID, err)
		return
	}
	if err := uc.deliverer.DeliverVerificationCode(ctx, user, code); err != nil {
		uc.logger.Warnf("failed to deliver verification code for user %s: %v", user.ID, err)
	}
}

// Login checks credentials and issues a fresh token.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*usecasecontract.AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, NewBadRequest(msgMissingCredentials)
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, NewUnauthorized(msgInvalidCredentials)
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, NewInternal(err)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, NewUnauthorized(msgInvalidCredentials)
	}

	if user.FirstName == "" || user.LastName == "" || user.Role == "" {
		uc.logger.Errorf("user %s missing required fields: firstName=%q lastName=%q role=%q",
			user.ID, user.FirstName, user.LastName, user.Role)
		return nil, NewBadRequest(msgIncompleteProfile)
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to issue token for user %s: %v", user.ID, err)
		return nil, NewInternal(err)
	}

	return &usecasecontract.AuthResult{User: user, Token: token}, nil
}

// Authenticate handles user authentication using bearer tokens.
func (uc *AuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	userID, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, &AppError{Kind: KindUnauthorized, Message: MsgTokenVerifyFailed, Err: err}
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			uc.logger.Warnf("user not found for token subject %s", userID)
			return nil, NewUnauthorized(MsgTokenUserNotFound)
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, NewInternal(err)
	}

	public := user.Public()
	return &public, nil
}

func (uc *AuthUsecase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, NewNotFound(msgUserNotFound)
		}
		uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		return nil, NewInternal(err)
	}

	public := user.Public()
	return &public, nil
}
