package contract

import (
	"context"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
)

// IVerificationCodeIssuer produces and checks email verification codes.
type IVerificationCodeIssuer interface {
	Issue(ctx context.Context, userID string) (string, error)
	Check(ctx context.Context, userID, candidate string) (bool, error)
}

// ICodeDeliverer hands a verification code to the user.
type ICodeDeliverer interface {
	DeliverVerificationCode(ctx context.Context, user *entity.User, code string) error
}
