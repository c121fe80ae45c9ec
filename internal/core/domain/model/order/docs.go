// Package order provides the Order aggregate and its lifecycle state machine,
// the core of the marketplace.
//
// The package includes:
//   - Order: the aggregate root holding customer/product references, quantity,
//     and the derived total price
//   - Status: a state machine enforcing
//     pending -> accepted -> paid -> in_delivery -> delivered, with
//     cancellation possible from pending or accepted only
//
// Key business rules:
//   - TotalPrice is always unit price × quantity and is recomputed from the
//     current product price before every save
//   - Delivered and cancelled are terminal states
//   - The in_delivery transition is unguarded to support manual dispatch
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
