package account

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")

	// ErrRestaurantScopeNotAllowed is returned when restaurant grants are given
	// to a role other than restaurant_admin.
	ErrRestaurantScopeNotAllowed = errors.New("only restaurant_admin accounts carry restaurant grants")
)

// Account binds a user identity to a role and, for restaurant admins, to the
// restaurants they may act on. It is the aggregate behind both the access
// guard (token → identity → role/scope) and notification addressing
// (identity → telegram chat).
//
// Account maintains these invariants:
//   - identifier and role are valid, name is non-empty
//   - only restaurant_admin accounts hold restaurant grants
//   - a restaurant_admin may only act on resources of granted restaurants
type Account struct {
	// id is the unique identifier for the account
	id kernel.UUID

	// name is the display name used in notifications and logs
	name string

	// role is the actor role the identity is bound to
	role kernel.Role

	// token is the opaque bearer token identifying the account on HTTP
	// requests; empty for accounts that only interact through the bot
	token string

	// restaurantIDs are the restaurants a restaurant_admin is scoped to
	restaurantIDs []kernel.UUID

	// telegramChatID is the linked Telegram chat (0 when unlinked)
	telegramChatID int64

	// isConstructed ensures the account was created via a constructor
	isConstructed bool
}

// NewAccount creates a validated Account with no restaurant grants and no
// Telegram link; use GrantRestaurant and LinkTelegram for those.
//
// The token may be empty for bot-only identities. RoleSystem is an internal
// actor and cannot have an account.
func NewAccount(id kernel.UUID, name string, role kernel.Role, token string) (*Account, error) {
	a := &Account{
		token:         token,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account from persistence.
// Used exclusively by repositories.
func RestoreAccount(
	id kernel.UUID,
	name string,
	role kernel.Role,
	token string,
	restaurantIDs []kernel.UUID,
	telegramChatID int64,
) (*Account, error) {
	a, err := NewAccount(id, name, role, token)
	if err != nil {
		return nil, err
	}

	for _, restaurantID := range restaurantIDs {
		if grantErr := a.GrantRestaurant(restaurantID); grantErr != nil {
			return nil, grantErr
		}
	}
	a.telegramChatID = telegramChatID

	return a, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the account's display name.
func (a *Account) Name() string {
	return a.name
}

// Role returns the actor role bound to the identity.
func (a *Account) Role() kernel.Role {
	return a.role
}

// Token returns the opaque bearer token, empty for bot-only identities.
func (a *Account) Token() string {
	return a.token
}

// RestaurantIDs returns a copy of the restaurant grants.
func (a *Account) RestaurantIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(a.restaurantIDs))
	copy(ids, a.restaurantIDs)
	return ids
}

// TelegramChatID returns the linked Telegram chat, 0 when unlinked.
func (a *Account) TelegramChatID() int64 {
	return a.telegramChatID
}

// GrantRestaurant scopes the account to an additional restaurant.
// Only restaurant_admin accounts may carry grants; granting the same
// restaurant twice is a no-op.
func (a *Account) GrantRestaurant(restaurantID kernel.UUID) error {
	if a.role != kernel.RoleRestaurantAdmin {
		return fmt.Errorf("%w: role is %s", ErrRestaurantScopeNotAllowed, a.role)
	}
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	for _, id := range a.restaurantIDs {
		if id.IsEqual(restaurantID) {
			return nil
		}
	}
	a.restaurantIDs = append(a.restaurantIDs, restaurantID)
	return nil
}

// LinkTelegram binds the account to a Telegram chat for notifications and
// bot interaction.
func (a *Account) LinkTelegram(chatID int64) error {
	if chatID == 0 {
		return errs.NewValueIsRequiredError("telegram chat id")
	}
	a.telegramChatID = chatID
	return nil
}

// OwnsRestaurant reports whether the account may act on resources of the
// given restaurant: super admins always may, restaurant admins only within
// their grants, every other role never does.
func (a *Account) OwnsRestaurant(restaurantID kernel.UUID) bool {
	switch a.role {
	case kernel.RoleSuperAdmin:
		return true
	case kernel.RoleRestaurantAdmin:
		for _, id := range a.restaurantIDs {
			if id.IsEqual(restaurantID) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == kernel.RoleSystem {
		return errs.NewValueIsInvalidErrorWithCause("role",
			errors.New("system is an internal actor and cannot have an account"))
	}
	a.role = role
	return nil
}
