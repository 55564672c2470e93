package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCouriersQuery(t *testing.T) {
	query := queries.NewGetCouriersQuery(true)

	assert.True(t, query.OnShiftOnly())
	assert.NoError(t, query.Validate())
}

func TestGetCouriersQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.GetCouriersQuery

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCouriersQueryIsNotConstructed)
}
