// Package order contains the Order aggregate and its status state machine.
//
// An order moves along a fixed transition graph:
//
//	Pending → Confirmed → Preparing → ReadyForPickup → PickedUp → Delivered
//
// with Cancelled reachable from every active status and Archived reachable
// from Delivered and Cancelled only. Every edge of the graph carries a
// permitted-role set; transitions are validated against both the graph and
// the acting role inside the aggregate, so no caller can move an order into
// an illegal state.
//
// The aggregate keeps the status it was loaded with, which repositories use
// for conditional updates: of two concurrent transitions on the same order,
// at most one commits.
package order
