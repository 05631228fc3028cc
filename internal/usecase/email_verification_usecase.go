package usecase

import (
	"context"
	"errors"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"
	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

type EmailVerificationUseCase struct {
	userRepository contract.IUserRepository
	tokens         TokenService
	codes          contract.IVerificationCodeIssuer
	deliverer      contract.ICodeDeliverer
	logger         usecasecontract.IAppLogger
}

func NewEmailVerificationUseCase(ur contract.IUserRepository, tokens TokenService, codes contract.IVerificationCodeIssuer, deliverer contract.ICodeDeliverer, logger usecasecontract.IAppLogger) *EmailVerificationUseCase {
	return &EmailVerificationUseCase{
		userRepository: ur,
		tokens:         tokens,
		codes:          codes,
		deliverer:      deliverer,
		logger:         logger,
	}
}

var _ usecasecontract.IEmailVerificationUC = (*EmailVerificationUseCase)(nil)

// VerifyEmail marks the token's user as verified when the code matches and
// returns a new token.
func (eu *EmailVerificationUseCase) VerifyEmail(ctx context.Context, token, code string) (*usecasecontract.AuthResult, error) {
	user, err := eu.userFromToken(ctx, token)
	if err != nil {
		return nil, err
	}

	ok, err := eu.codes.Check(ctx, user.ID, code)
	if err != nil {
		eu.logger.Errorf("failed to check verification code for user %s: %v", user.ID, err)
		return nil, NewInternal(err)
	}
	if !ok {
		return nil, NewBadRequest(msgInvalidCode)
	}

	user.IsVerified = true
	if err := eu.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, NewNotFound(msgUserNotFound)
		}
		eu.logger.Errorf("failed to update user verification status: %v", err)
		return nil, NewInternal(err)
	}

	authToken, err := eu.tokens.Issue(user.ID)
	if err != nil {
		eu.logger.Errorf("failed to issue token for user %s: %v", user.ID, err)
		return nil, NewInternal(err)
	}

	public := user.Public()
	return &usecasecontract.AuthResult{User: &public, Token: authToken}, nil
}

// ResendVerification issues a new code for a user that is not verified yet.
func (eu *EmailVerificationUseCase) ResendVerification(ctx context.Context, token string) error {
	user, err := eu.userFromToken(ctx, token)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return NewBadRequest(msgAlreadyVerified)
	}

	code, err := eu.codes.Issue(ctx, user.ID)
	if err != nil {
		eu.logger.Errorf("failed to issue verification code for user %s: %v", user.ID, err)
		return NewInternal(err)
	}
	if err := eu.deliverer.DeliverVerificationCode(ctx, user, code); err != nil {
		eu.logger.Errorf("failed to deliver verification code for user %s: %v", user.ID, err)
		return NewInternal(err)
	}
	return nil
}

func (eu *EmailVerificationUseCase) userFromToken(ctx context.Context, token string) (*entity.User, error) {
	userID, err := eu.tokens.Verify(token)
	if err != nil {
		return nil, &AppError{Kind: KindUnauthorized, Message: msgInvalidToken, Err: err}
	}

	user, err := eu.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, NewNotFound(msgUserNotFound)
		}
		eu.logger.Errorf("failed to fetch user %s: %v", userID, err)
		return nil, NewInternal(err)
	}
	return user, nil
}
