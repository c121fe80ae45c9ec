// Package user provides the User aggregate and the Role value object for
// marketplace participants.
//
// The package enforces two rules the rest of the system relies on:
//   - a role is fixed at registration and never transitioned, and
//   - a delivery partner's availability flag acts as an exclusivity lock,
//     flipped to busy when a delivery is taken and back when it completes.
package user
