package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// MaxItemQuantity bounds a single order line.
const MaxItemQuantity = 99

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory method.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Item is a single order line: a product reference with a quantity and the
// unit price captured at ordering time. The price snapshot makes the order
// total immune to later menu changes.
//
// Item is an immutable value object; use NewItem.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice int64

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
//
// Parameters:
//   - productID: the menu item the line refers to
//   - name: product name snapshot for display in notifications
//   - quantity: number of units, in [1..MaxItemQuantity]
//   - unitPrice: price per unit in minor currency units, non-negative
func NewItem(productID kernel.UUID, name string, quantity int, unitPrice int64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 || quantity > MaxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity)
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%d is negative", unitPrice))
	}

	return Item{
		productID: productID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ProductID returns the referenced menu product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price snapshot in minor currency units.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// Total returns quantity times unit price.
func (i Item) Total() int64 {
	return int64(i.quantity) * i.unitPrice
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
