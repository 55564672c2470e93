package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignCourierCommand_ValidInput(t *testing.T) {
	// Arrange
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	actor := testRestaurantAdmin(t, kernel.NewUUID())

	// Act
	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, actor)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, courierID, cmd.CourierID())
	assert.Same(t, actor, cmd.Actor())
	assert.NoError(t, cmd.Validate())
}

func TestNewAssignCourierCommand_InvalidInput(t *testing.T) {
	actor := testRestaurantAdmin(t, kernel.NewUUID())

	testCases := []struct {
		name      string
		orderID   kernel.UUID
		courierID kernel.UUID
	}{
		{name: "zero order id", orderID: kernel.UUID{}, courierID: kernel.NewUUID()},
		{name: "zero courier id", orderID: kernel.NewUUID(), courierID: kernel.UUID{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewAssignCourierCommand(tc.orderID, tc.courierID, actor)
			require.Error(t, err)
		})
	}
}

func TestNewAssignCourierCommand_NilActor(t *testing.T) {
	_, err := commands.NewAssignCourierCommand(kernel.NewUUID(), kernel.NewUUID(), nil)

	require.Error(t, err)
}

func TestAssignCourierCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AssignCourierCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAssignCourierCommandIsNotConstructed)
}
