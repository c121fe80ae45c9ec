// Package services contains domain services that coordinate multiple
// aggregates. DeliveryDispatcher is the canonical assignment path attaching a
// delivery partner to an order, shared by the automatic (post-payment) and
// manual (admin) dispatch flows.
package services
