package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate defined statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Confirmed,
			order.Preparing,
			order.ReadyForPickup,
			order.PickedUp,
			order.Delivered,
			order.Cancelled,
			order.Archived,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.Confirmed, "confirmed"},
		{order.Preparing, "preparing"},
		{order.ReadyForPickup, "ready_for_pickup"},
		{order.PickedUp, "picked_up"},
		{order.Delivered, "delivered"},
		{order.Cancelled, "cancelled"},
		{order.Archived, "archived"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip all valid statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.ReadyForPickup,
			order.PickedUp, order.Delivered, order.Cancelled, order.Archived,
		}

		for _, status := range statuses {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "done", "PENDING"} {
			_, err := order.StatusFromString(name)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should allow the happy path in order", func(t *testing.T) {
		path := []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.ReadyForPickup, order.PickedUp, order.Delivered,
		}

		for i := range len(path) - 1 {
			assert.True(t, path[i].CanTransitionTo(path[i+1]),
				"%s should transition to %s", path[i], path[i+1])
		}
	})

	t.Run("should allow cancellation from every active status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.ReadyForPickup, order.PickedUp,
		} {
			assert.True(t, status.CanTransitionTo(order.Cancelled), "%s should be cancellable", status)
		}
	})

	t.Run("should allow archival only from finished statuses", func(t *testing.T) {
		assert.True(t, order.Delivered.CanTransitionTo(order.Archived))
		assert.True(t, order.Cancelled.CanTransitionTo(order.Archived))
		assert.False(t, order.PickedUp.CanTransitionTo(order.Archived))
		assert.False(t, order.Pending.CanTransitionTo(order.Archived))
	})

	t.Run("should reject skipping statuses", func(t *testing.T) {
		assert.False(t, order.Pending.CanTransitionTo(order.Preparing))
		assert.False(t, order.Confirmed.CanTransitionTo(order.ReadyForPickup))
		assert.False(t, order.Pending.CanTransitionTo(order.Delivered))
	})

	t.Run("should reject backward transitions", func(t *testing.T) {
		assert.False(t, order.Confirmed.CanTransitionTo(order.Pending))
		assert.False(t, order.Delivered.CanTransitionTo(order.PickedUp))
		assert.False(t, order.Cancelled.CanTransitionTo(order.Pending))
	})

	t.Run("should reject cancelling a delivered order", func(t *testing.T) {
		assert.False(t, order.Delivered.CanTransitionTo(order.Cancelled))
	})

	t.Run("archived is terminal", func(t *testing.T) {
		for _, to := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.ReadyForPickup,
			order.PickedUp, order.Delivered, order.Cancelled, order.Archived,
		} {
			assert.False(t, order.Archived.CanTransitionTo(to))
		}
	})
}

// TestStatus_GraphIsAcyclic walks every edge from every status and verifies
// no sequence of valid transitions ever revisits a status.
func TestStatus_GraphIsAcyclic(t *testing.T) {
	all := []order.Status{
		order.Pending, order.Confirmed, order.Preparing, order.ReadyForPickup,
		order.PickedUp, order.Delivered, order.Cancelled, order.Archived,
	}

	var walk func(t *testing.T, current order.Status, visited map[order.Status]bool)
	walk = func(t *testing.T, current order.Status, visited map[order.Status]bool) {
		t.Helper()
		for _, next := range all {
			if !current.CanTransitionTo(next) {
				continue
			}
			require.False(t, visited[next],
				"cycle detected: %s reachable again via %s", next, current)
			visited[next] = true
			walk(t, next, visited)
			delete(visited, next)
		}
	}

	for _, start := range all {
		walk(t, start, map[order.Status]bool{start: true})
	}
}

func TestStatus_RolePermitted(t *testing.T) {
	t.Run("restaurant admin drives kitchen edges", func(t *testing.T) {
		assert.True(t, order.Pending.RolePermitted(order.Confirmed, kernel.RoleRestaurantAdmin))
		assert.True(t, order.Confirmed.RolePermitted(order.Preparing, kernel.RoleRestaurantAdmin))
		assert.True(t, order.Preparing.RolePermitted(order.ReadyForPickup, kernel.RoleRestaurantAdmin))
	})

	t.Run("only courier may pick up and deliver", func(t *testing.T) {
		assert.True(t, order.ReadyForPickup.RolePermitted(order.PickedUp, kernel.RoleCourier))
		assert.True(t, order.PickedUp.RolePermitted(order.Delivered, kernel.RoleCourier))

		for _, role := range []kernel.Role{
			kernel.RoleCustomer, kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin, kernel.RoleSystem,
		} {
			assert.False(t, order.ReadyForPickup.RolePermitted(order.PickedUp, role),
				"%s should not pick up orders", role)
		}
	})

	t.Run("courier may not confirm or cancel", func(t *testing.T) {
		assert.False(t, order.Pending.RolePermitted(order.Confirmed, kernel.RoleCourier))
		assert.False(t, order.Preparing.RolePermitted(order.Cancelled, kernel.RoleCourier))
	})

	t.Run("customer may cancel active orders", func(t *testing.T) {
		assert.True(t, order.Pending.RolePermitted(order.Cancelled, kernel.RoleCustomer))
		assert.True(t, order.Preparing.RolePermitted(order.Cancelled, kernel.RoleCustomer))
	})

	t.Run("system archives finished orders", func(t *testing.T) {
		assert.True(t, order.Delivered.RolePermitted(order.Archived, kernel.RoleSystem))
		assert.True(t, order.Cancelled.RolePermitted(order.Archived, kernel.RoleSuperAdmin))
		assert.False(t, order.Delivered.RolePermitted(order.Archived, kernel.RoleCustomer))
	})

	t.Run("unknown edges are permitted for nobody", func(t *testing.T) {
		assert.False(t, order.Pending.RolePermitted(order.Delivered, kernel.RoleSuperAdmin))
	})
}

func TestStatus_NextFor(t *testing.T) {
	t.Run("restaurant admin options from pending", func(t *testing.T) {
		next := order.Pending.NextFor(kernel.RoleRestaurantAdmin)
		assert.Equal(t, []order.Status{order.Confirmed, order.Cancelled}, next)
	})

	t.Run("courier options from ready_for_pickup", func(t *testing.T) {
		next := order.ReadyForPickup.NextFor(kernel.RoleCourier)
		assert.Equal(t, []order.Status{order.PickedUp}, next)
	})

	t.Run("customer options from picked_up", func(t *testing.T) {
		next := order.PickedUp.NextFor(kernel.RoleCustomer)
		assert.Equal(t, []order.Status{order.Cancelled}, next)
	})

	t.Run("no options from archived", func(t *testing.T) {
		for _, role := range []kernel.Role{
			kernel.RoleCustomer, kernel.RoleCourier, kernel.RoleRestaurantAdmin,
			kernel.RoleSuperAdmin, kernel.RoleSystem,
		} {
			assert.Empty(t, order.Archived.NextFor(role))
		}
	})
}

func TestStatus_IsActive(t *testing.T) {
	for _, status := range []order.Status{
		order.Pending, order.Confirmed, order.Preparing, order.ReadyForPickup, order.PickedUp,
	} {
		assert.True(t, status.IsActive(), "%s should be active", status)
	}
	for _, status := range []order.Status{
		order.Unknown, order.Delivered, order.Cancelled, order.Archived,
	} {
		assert.False(t, status.IsActive(), "%s should not be active", status)
	}
}

func TestStatus_IsFinished(t *testing.T) {
	assert.True(t, order.Delivered.IsFinished())
	assert.True(t, order.Cancelled.IsFinished())
	assert.False(t, order.PickedUp.IsFinished())
	assert.False(t, order.Archived.IsFinished())
}
