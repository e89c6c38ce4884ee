// Package cart provides the cart line item entity. A cart is the set of items
// a user has collected; it carries no prices, which are resolved from the
// catalog when the cart is converted into an order.
package cart
