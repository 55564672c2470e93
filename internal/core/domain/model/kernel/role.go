package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role identifies the kind of actor performing an operation. Roles drive both
// the access rules on HTTP routes and the permitted-role sets on order status
// transition edges.
//
// Role is a value object; RoleSystem is reserved for internal actors such as
// scheduled jobs and is never resolved from an inbound request.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and may cancel their own active orders.
	RoleCustomer

	// RoleCourier picks up and delivers orders assigned to them.
	RoleCourier

	// RoleRestaurantAdmin manages orders of the restaurants they are scoped to.
	RoleRestaurantAdmin

	// RoleSuperAdmin has unrestricted access to every resource.
	RoleSuperAdmin

	// RoleSystem is the internal actor used by background jobs.
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "unknown",
		RoleCustomer:        "customer",
		RoleCourier:         "courier",
		RoleRestaurantAdmin: "restaurant_admin",
		RoleSuperAdmin:      "super_admin",
		RoleSystem:          "system",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:        "customer",
		RoleCourier:         "courier",
		RoleRestaurantAdmin: "restaurant_admin",
		RoleSuperAdmin:      "super_admin",
		RoleSystem:          "system",
	}
}

// RoleFromString parses the persisted/wire representation of a role.
// Returns an error for unknown names and for the reserved "unknown" value.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined actor roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical name of the role, "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
