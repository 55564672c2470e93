package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending → Confirmed → Preparing → ReadyForPickup → PickedUp → Delivered
//	   │          │           │              │            │           │
//	   └──────────┴───────────┴── Cancelled ─┴────────────┘           │
//	                                  │                               │
//	                                  └────────── Archived ───────────┘
//
// Cancelled is reachable from every active status; Archived only from
// Delivered and Cancelled. There are no backward edges and no skipping.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order,
	// waiting for the restaurant to confirm it.
	Pending

	// Confirmed means the restaurant accepted the order.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// ReadyForPickup means the order is packed and waiting for its courier.
	ReadyForPickup

	// PickedUp means the assigned courier has collected the order.
	PickedUp

	// Delivered means the courier handed the order to the customer.
	Delivered

	// Cancelled means the order was aborted before delivery.
	Cancelled

	// Archived is the terminal state for finished orders; orders are never
	// hard-deleted, only archived.
	Archived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		ReadyForPickup: "ready_for_pickup",
		PickedUp:       "picked_up",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Archived:       "archived",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		ReadyForPickup: "ready_for_pickup",
		PickedUp:       "picked_up",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Archived:       "archived",
	}
}

// StatusFromString parses the persisted/wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the order is still in flight: not delivered,
// cancelled, or archived. Only active orders may be cancelled.
func (s Status) IsActive() bool {
	switch s {
	case Pending, Confirmed, Preparing, ReadyForPickup, PickedUp:
		return true
	default:
		return false
	}
}

// IsFinished reports whether the order reached an outcome (delivered or
// cancelled) and is eligible for archival.
func (s Status) IsFinished() bool {
	return s == Delivered || s == Cancelled
}

// Edge is an allowed (From, To) status pair of the transition graph.
type Edge struct {
	From Status
	To   Status
}

// String formats the edge as "from->to" for logs and error messages.
func (e Edge) String() string {
	return fmt.Sprintf("%s->%s", e.From, e.To)
}

// getTransitionRules returns the authoritative state machine definition:
// every allowed edge mapped to the set of roles permitted to trigger it.
// An edge absent from the map is an invalid transition for everyone.
func getTransitionRules() map[Edge][]kernel.Role {
	return map[Edge][]kernel.Role{
		{Pending, Confirmed}:         {kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin},
		{Confirmed, Preparing}:       {kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin},
		{Preparing, ReadyForPickup}:  {kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin},
		{ReadyForPickup, PickedUp}:   {kernel.RoleCourier},
		{PickedUp, Delivered}:        {kernel.RoleCourier},
		{Pending, Cancelled}:         {kernel.RoleCustomer, kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin},
		{Confirmed, Cancelled}:       {kernel.RoleCustomer, kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin},
		{Preparing, Cancelled}:       {kernel.RoleCustomer, kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin},
		{ReadyForPickup, Cancelled}:  {kernel.RoleCustomer, kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin},
		{PickedUp, Cancelled}:        {kernel.RoleCustomer, kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin},
		{Delivered, Archived}:        {kernel.RoleSuperAdmin, kernel.RoleSystem},
		{Cancelled, Archived}:        {kernel.RoleSuperAdmin, kernel.RoleSystem},
	}
}

// CanTransitionTo reports whether the graph contains the (s, to) edge,
// regardless of the acting role.
func (s Status) CanTransitionTo(to Status) bool {
	_, ok := getTransitionRules()[Edge{From: s, To: to}]
	return ok
}

// RolePermitted reports whether role may trigger the (s, to) edge.
// Returns false for edges that are not in the graph at all.
func (s Status) RolePermitted(to Status, role kernel.Role) bool {
	roles, ok := getTransitionRules()[Edge{From: s, To: to}]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// NextFor returns the statuses the given role may move an order in status s
// into. Used to render actionable keyboards for a recipient's role.
func (s Status) NextFor(role kernel.Role) []Status {
	next := make([]Status, 0, 2)
	// Iterate in graph order so keyboards are stable.
	for _, to := range []Status{Confirmed, Preparing, ReadyForPickup, PickedUp, Delivered, Cancelled, Archived} {
		if s.RolePermitted(to, role) {
			next = append(next, to)
		}
	}
	return next
}
