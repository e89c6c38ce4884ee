// Package services provides domain services that span more than one aggregate
// of the storefront core.
//
// The package includes:
//   - OrderCheckout: turns a user's cart items, their current catalog prices and
//     the user's shipping address into a new Order aggregate
package services
