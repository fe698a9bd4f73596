// Package payment contains the monetary side of order fulfillment.
//
// A Transaction mirrors the order it pays for: its amount equals the order
// total and its date the order date. A transaction is Completed unless the
// order was cancelled, in which case it is Refunded.
package payment
