// Package kernel contains the shared value objects of the marketplace domain.
//
// The kernel holds concepts that every aggregate depends on and that carry no
// aggregate-specific behavior of their own:
//
//   - UUID: validated identifier wrapping github.com/google/uuid
//   - Address: delivery destination (street plus optional note)
//   - Role: the actor roles recognized by the access rules
//
// All kernel types are immutable value objects. The zero value of each type
// is invalid; instances must be created through the provided constructors,
// which enforce validation at construction time.
package kernel
