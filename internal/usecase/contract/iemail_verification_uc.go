package usecasecontract

import (
	"context"
)

type IEmailVerificationUC interface {
	VerifyEmail(ctx context.Context, token, code string) (*AuthResult, error)
	ResendVerification(ctx context.Context, token string) error
}
