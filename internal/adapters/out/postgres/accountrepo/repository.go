package accountrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account with its restaurant grants to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account. Grants are replaced wholesale; the set is
// small and rewriting it is simpler than diffing.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":             dto.Name,
			"role":             dto.Role,
			"token":            dto.Token,
			"telegram_chat_id": dto.TelegramChatID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("account_id = ?", dto.ID).Delete(&RestaurantGrant{}).Error; err != nil {
		return err
	}
	if len(dto.Grants) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Grants).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account with its grants by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getOne(ctx, "id = ?", id.Bytes())
}

// GetByToken resolves an opaque bearer token to its account.
func (r *GormAccountRepository) GetByToken(ctx context.Context, token string) (*account.Account, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	return r.getOne(ctx, "token = ?", token)
}

// GetByChatID resolves a Telegram chat to its account.
func (r *GormAccountRepository) GetByChatID(ctx context.Context, chatID int64) (*account.Account, error) {
	if chatID == 0 {
		return nil, errs.NewValueIsRequiredError("chatID")
	}

	return r.getOne(ctx, "telegram_chat_id = ?", chatID)
}

// GetAdminsByRestaurant retrieves all restaurant admin accounts scoped to the
// given restaurant.
func (r *GormAccountRepository) GetAdminsByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*account.Account, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AccountDTO
	if err := r.db.WithContext(ctx).Preload("Grants").
		Joins("JOIN account_restaurants ON account_restaurants.account_id = accounts.id").
		Where("account_restaurants.restaurant_id = ? AND accounts.role = ?",
			restaurantID.Bytes(), kernel.RoleRestaurantAdmin.String()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	admins := make([]*account.Account, 0, len(dtos))
	for _, dto := range dtos {
		admin, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}

	return admins, nil
}

func (r *GormAccountRepository) getOne(ctx context.Context, cond string, arg any) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).Preload("Grants").First(&dto, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", arg)
		}
		return nil, err
	}

	return toDomain(dto)
}
