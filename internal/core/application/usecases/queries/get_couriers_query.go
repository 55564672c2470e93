package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCouriersQueryIsNotConstructed = errors.New(
		"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
	)
)

// GetCouriersQuery retrieves the courier pool, optionally narrowed to the
// couriers currently on shift. Restaurant admins use the on-shift view when
// choosing who to assign.
type GetCouriersQuery struct {
	onShiftOnly bool

	guard guard.ConstructorGuard
}

// NewGetCouriersQuery creates a query for the courier pool.
func NewGetCouriersQuery(onShiftOnly bool) GetCouriersQuery {
	return GetCouriersQuery{
		onShiftOnly: onShiftOnly,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

// OnShiftOnly reports whether off-shift couriers are filtered out.
func (q GetCouriersQuery) OnShiftOnly() bool {
	return q.onShiftOnly
}

// GetCouriersQueryResponse represents one courier in the pool.
type GetCouriersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Phone   string
	OnShift bool
}
