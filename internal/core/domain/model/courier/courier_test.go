package courier_test

import (
	"testing"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("should create courier off shift", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.NewCourier(id, "Dave", "+15551234567")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Dave", c.Name())
		assert.Equal(t, "+15551234567", c.Phone())
		assert.False(t, c.OnShift())
		require.NoError(t, c.Validate())
	})

	t.Run("should reject invalid inputs", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.UUID{}, "Dave", "+15551234567")
		require.Error(t, err)

		_, err = courier.NewCourier(kernel.NewUUID(), "", "+15551234567")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = courier.NewCourier(kernel.NewUUID(), "Dave", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCourier_Validate(t *testing.T) {
	t.Run("should reject zero value and nil couriers", func(t *testing.T) {
		var zero courier.Courier
		require.ErrorIs(t, zero.Validate(), courier.ErrCourierIsNotConstructed)

		var nilCourier *courier.Courier
		require.ErrorIs(t, nilCourier.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestCourier_Shift(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Dave", "+15551234567")
	require.NoError(t, err)

	c.StartShift()
	assert.True(t, c.OnShift())

	c.EndShift()
	assert.False(t, c.OnShift())
}

func TestRestoreCourier(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.RestoreCourier(id, "Dave", "+15551234567", true)

		require.NoError(t, err)
		assert.True(t, c.OnShift())
	})

	t.Run("rejects invalid persisted data", func(t *testing.T) {
		_, err := courier.RestoreCourier(kernel.NewUUID(), "", "+15551234567", false)

		require.Error(t, err)
	})
}
