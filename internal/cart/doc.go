// Package cart implements the session shopping cart.
//
// The cart is a quantity-keyed collection of product snapshots, owned by a
// single writer and read through cloned snapshots. Lookup is linear per
// operation, which is fine at cart sizes; the observable behavior is what
// matters: one line per product, adds append at the end, removes drop the
// line at quantity zero.
package cart
