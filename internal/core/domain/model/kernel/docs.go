// Package kernel provides the shared domain primitives of the storefront core.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//   - Money: a non-negative decimal amount used for prices and order totals
//   - Actor: the authenticated caller (user id and role) on whose behalf an operation runs
//
// These primitives are immutable and safe for concurrent use.
package kernel
