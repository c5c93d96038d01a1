package stubapi

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/models"
)

func (b *Backend) ListUsers(ctx context.Context) ([]models.User, error) {
	accounts, err := b.accounts.listAccounts(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(accounts))
	for _, acc := range accounts {
		users = append(users, acc.user)
	}
	return users, nil
}

func (b *Backend) GetUser(ctx context.Context, id string) (models.User, error) {
	acc, err := b.accounts.accountByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	return acc.user, nil
}

// UpdateProfile sets the non-empty fields of update on the user.
func (b *Backend) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	acc, err := b.accounts.updateAccount(ctx, userID, func(acc *account) error {
		if name := strings.TrimSpace(update.Name); name != "" {
			acc.user.Name = name
		}
		if update.Phone != "" {
			acc.user.Phone = update.Phone
		}
		if update.Company != "" {
			acc.user.Company = update.Company
		}
		acc.user.UpdatedAt = b.timestamp()
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return acc.user, nil
}

func (b *Backend) DeleteUser(ctx context.Context, id string) error {
	if err := b.accounts.deleteAccount(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Str("user_id", id).Msg("user deleted")
	return nil
}
