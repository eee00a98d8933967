package user

import (
	"context"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
)

// CreditWallet adds a verified payment amount to the user's wallet.
// Callers must have verified the payment provider's signature first;
// this method only guards the amount itself.
func (u *UserUseCase) CreditWallet(ctx context.Context, userID string, amount int64) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if amount <= 0 {
		u.logger.Warn("Rejected non-positive wallet credit", map[string]any{
			"userId": userID,
			"amount": amount,
		})
		return nil, errs.ErrInvalidAmount
	}

	user, err := u.userRepo.Credit(ctx, userID, amount)
	if err != nil {
		u.logger.Error("Failed to credit wallet", map[string]any{
			"userId": userID,
			"amount": amount,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Wallet credited", map[string]any{
		"userId":    userID,
		"amount":    amount,
		"newWallet": user.Wallet(),
	})
	return user, nil
}
