// Package editsession implements speculative editing of an order.
//
// A session takes a deep copy of the order and of the assignment pool when it
// begins. Scalar fields, staffing and the auto-assign flag are all changed on
// the working copy after validation, so commit persists one consistent order
// and cancel restores both copies exactly. A failed commit leaves the session
// open with its staged changes.
package editsession
