// Package order provides the Order aggregate of the storefront core: an
// immutable snapshot of a converted cart plus a status lifecycle with an
// append-only audit trail.
//
// The package includes:
//   - Order: the aggregate root (owner, net amount, address snapshot, status)
//   - Line: an order line item with the unit price captured at placement
//   - Event: one audit record per status the order has entered
//   - Status: the closed lifecycle enumeration and its transition table
//
// Key business rules:
//   - An order has at least one line; its net amount is the sum of quantity × unit price
//   - The address is a formatted snapshot, not a reference
//   - Status follows: Pending -> Confirmed -> OutForDelivery -> Delivered, with
//     Pending and Confirmed also allowed to move to Cancelled
//   - Delivered and Cancelled are terminal
//   - Every status the order enters, including the initial Pending, produces exactly one Event
//   - Event timestamps never decrease within one order
package order
