// Package accountrepo provides data transfer objects and mapping functions
// for account persistence. Besides the aggregate rows it stores the
// restaurant grants that scope restaurant admins to their restaurants.
package accountrepo

import (
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account
// aggregates. Token carries a unique index so the access guard can resolve
// bearers with a single lookup; TelegramChatID does the same for the bot.
type AccountDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Name           string             `gorm:"type:varchar(255);not null"`
	Role           string             `gorm:"type:varchar(32);not null;index"`
	Token          string             `gorm:"type:varchar(255);not null;uniqueIndex"`
	TelegramChatID int64              `gorm:"index"`
	Grants         []RestaurantGrant  `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// RestaurantGrant links a restaurant admin account to one restaurant it
// administers.
type RestaurantGrant struct {
	AccountID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for restaurant grants.
func (RestaurantGrant) TableName() string {
	return "account_restaurants"
}

// fromDomain converts an account aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	grants := make([]RestaurantGrant, 0, len(aggregate.RestaurantIDs()))
	for _, restaurantID := range aggregate.RestaurantIDs() {
		grants = append(grants, RestaurantGrant{
			AccountID:    aggregate.ID().Bytes(),
			RestaurantID: restaurantID.Bytes(),
		})
	}

	return AccountDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Role:           aggregate.Role().String(),
		Token:          aggregate.Token(),
		TelegramChatID: aggregate.TelegramChatID(),
		Grants:         grants,
	}
}

// toDomain converts a database DTO to an account aggregate using RestoreAccount.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	restaurantIDs := make([]kernel.UUID, 0, len(dto.Grants))
	for _, grant := range dto.Grants {
		restaurantID, grantErr := kernel.UUIDFromBytes(grant.RestaurantID[:])
		if grantErr != nil {
			return nil, grantErr
		}
		restaurantIDs = append(restaurantIDs, restaurantID)
	}

	return account.RestoreAccount(id, dto.Name, role, dto.Token, restaurantIDs, dto.TelegramChatID)
}
