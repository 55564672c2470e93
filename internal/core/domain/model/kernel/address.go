package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// MaxAddressLength bounds the street line to keep stored addresses and
// outbound notification messages reasonable.
const MaxAddressLength = 500

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is the delivery destination of an order. It is an immutable value
// object consisting of a required street line and an optional note for the
// courier ("entrance B", "leave at the door").
//
// The zero value is invalid and fails Validate; use NewAddress.
//
// Example:
//
//	addr, err := kernel.NewAddress("12 Baker Street", "ring twice")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street string
	note   string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. The street must be non-empty and
// no longer than MaxAddressLength; the note may be empty.
func NewAddress(street, note string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if len(street) > MaxAddressLength {
		return Address{}, errs.NewValueIsOutOfRangeError("street length", len(street), 1, MaxAddressLength)
	}

	return Address{
		street: street,
		note:   note,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Street returns the required street line of the address.
func (a Address) Street() string {
	return a.street
}

// Note returns the optional courier note. Empty when none was given.
func (a Address) Note() string {
	return a.note
}

// IsEqual compares two addresses by value.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.note == other.note
}

// String returns a single-line human-readable representation, used in logs
// and notification messages.
func (a Address) String() string {
	if a.note == "" {
		return a.street
	}
	return fmt.Sprintf("%s (%s)", a.street, a.note)
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
