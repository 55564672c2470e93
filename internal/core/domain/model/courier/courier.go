package courier

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrCourierIsNotConstructed is returned when a Courier instance was not
// created through the NewCourier or RestoreCourier factory methods.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")

// Courier represents a delivery worker's operational profile.
//
// Couriers start off shift; only on-shift couriers are offered for
// assignment. The aggregate does not track per-order state: which order a
// courier is working on is recorded on the order itself.
type Courier struct {
	// id is the unique identifier for the courier
	id kernel.UUID

	// name is the courier's display name
	name string

	// phone is the contact number shown to restaurant staff
	phone string

	// onShift reports whether the courier is currently taking orders
	onShift bool

	// isConstructed ensures the courier was created via a constructor
	isConstructed bool
}

// NewCourier creates a validated Courier, initially off shift.
func NewCourier(id kernel.UUID, name, phone string) (*Courier, error) {
	c := &Courier{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistence.
// Used exclusively by repositories.
func RestoreCourier(id kernel.UUID, name, phone string, onShift bool) (*Courier, error) {
	c, err := NewCourier(id, name, phone)
	if err != nil {
		return nil, err
	}
	c.onShift = onShift
	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// OnShift reports whether the courier is currently taking orders.
func (c *Courier) OnShift() bool {
	return c.onShift
}

// StartShift marks the courier as available for assignment.
func (c *Courier) StartShift() {
	c.onShift = true
}

// EndShift marks the courier as unavailable. Orders already assigned stay
// assigned; reassignment is an explicit operation on the order.
func (c *Courier) EndShift() {
	c.onShift = false
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
