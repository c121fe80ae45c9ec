package user

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role identifies what a user may do in the marketplace. It is fixed at
// registration and never transitioned afterwards.
//
// Roles:
//   - Customer places orders and receives deliveries.
//   - Maker owns products and fulfills orders.
//   - DeliveryPartner carries at most one active delivery at a time.
//   - Supplier tracks raw-material inventory alongside makers.
//   - Admin reads platform-wide analytics.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer places orders.
	Customer

	// Maker produces and sells products.
	Maker

	// DeliveryPartner fulfills deliveries.
	DeliveryPartner

	// Supplier provides raw materials and keeps inventory.
	Supplier

	// Admin administers the platform.
	Admin
)

// getRoleStrings returns the string representation for every Role value.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:     "unknown",
		Customer:        "customer",
		Maker:           "maker",
		DeliveryPartner: "delivery_partner",
		Supplier:        "supplier",
		Admin:           "admin",
	}
}

// getValidRoleStrings returns only the roles a user may actually hold.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer:        "customer",
		Maker:           "maker",
		DeliveryPartner: "delivery_partner",
		Supplier:        "supplier",
		Admin:           "admin",
	}
}

// RoleFromString parses a role name ("customer", "maker", "delivery_partner",
// "supplier", "admin") into a Role. Returns an error for unknown names.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the Role is one of the defined valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lowercase role name, or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
