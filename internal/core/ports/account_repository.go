package ports

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
// Besides plain CRUD it carries the lookups the access guard and the
// notification dispatcher depend on.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByToken resolves an opaque bearer token to its account.
	// Returns an error unwrapping to errs.ErrObjectNotFound for unknown tokens.
	GetByToken(ctx context.Context, token string) (*account.Account, error)

	// GetByChatID resolves a Telegram chat to its account, used by the bot
	// to identify who pressed a button.
	GetByChatID(ctx context.Context, chatID int64) (*account.Account, error)

	// GetAdminsByRestaurant retrieves all restaurant_admin accounts scoped to
	// the given restaurant, used to fan out restaurant notifications.
	GetAdminsByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*account.Account, error)
}
