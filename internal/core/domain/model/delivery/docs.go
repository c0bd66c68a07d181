// Package delivery contains the Delivery aggregate: the state machine that
// tracks one order from preparation to drop-off, its location tracker, and the
// subject that fans every status change out to attached observers.
//
// A Delivery never knows who is listening. Customer and restaurant notifiers,
// analytics recorders and infrastructure sinks all implement Observer and
// receive an immutable Snapshot after each transition.
//
// Lifecycle (forward path driven by AdvanceProgress):
//
//	Preparing ─> Ready ─> Assigned ─> PickedUp ─> OnTheWay ─> Near ─> Arrived ─> Delivered
//
// Cancelled is terminal and reached through UpdateStatus like any other value.
// Only AdvanceProgress treats Delivered and Cancelled as final; UpdateStatus
// stays callable for manual corrections.
package delivery
