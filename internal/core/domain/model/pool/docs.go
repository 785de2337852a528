// Package pool keeps the expertise-bucketed list of sprayers that can still be
// put on an order while it is being edited.
package pool
