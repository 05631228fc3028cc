package external_services

import (
	"context"

	"go.uber.org/zap"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"
	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
)

// LogCodeDeliverer writes verification codes to the service log instead of
// sending mail. Replace it with a real transport when one is available.
type LogCodeDeliverer struct {
	logger *zap.Logger
}

var _ contract.ICodeDeliverer = (*LogCodeDeliverer)(nil)

func NewLogCodeDeliverer(logger *zap.Logger) *LogCodeDeliverer {
	return &LogCodeDeliverer{logger: logger}
}

func (d *LogCodeDeliverer) DeliverVerificationCode(ctx context.Context, user *entity.User, code string) error {
	d.logger.Info("verification code issued",
		zap.String("userID", user.ID),
		zap.String("email", user.Email),
		zap.String("code", code),
	)
	return nil
}
