package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("12 Baker Street", "second floor")
	require.NoError(t, err)
	return address
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 2, 1250)
	require.NoError(t, err)
	return []order.Item{item}
}

func testCustomer(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()
	actor, err := account.NewAccount(id, "Alice", kernel.RoleCustomer, "tok-customer")
	require.NoError(t, err)
	return actor
}

func testRestaurantAdmin(t *testing.T, restaurantID kernel.UUID) *account.Account {
	t.Helper()
	actor, err := account.NewAccount(kernel.NewUUID(), "Bob", kernel.RoleRestaurantAdmin, "tok-admin")
	require.NoError(t, err)
	require.NoError(t, actor.GrantRestaurant(restaurantID))
	return actor
}

func accountWithRole(role kernel.Role) (*account.Account, error) {
	return account.NewAccount(kernel.NewUUID(), "Sam", role, "tok-"+role.String())
}

func testCourierAccount(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()
	actor, err := account.NewAccount(id, "Carol", kernel.RoleCourier, "tok-courier")
	require.NoError(t, err)
	return actor
}

// testStoredOrder reconstructs an order the way a repository would return it.
func testStoredOrder(
	t *testing.T,
	restaurantID, customerID kernel.UUID,
	courierID *kernel.UUID,
	status order.Status,
) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), restaurantID, customerID, courierID,
		testAddress(t), testItems(t), status, now, now,
	)
	require.NoError(t, err)
	return aggregate
}
