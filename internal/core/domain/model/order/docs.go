// Package order provides the Order aggregate root of the spraying marketplace.
//
// The package includes:
//   - Order: identity, scheduled session, staffing list, feedback and payment
//   - Status: lifecycle states with the modeled and known-but-unmodeled edges
//   - SpraySession: the one-day time window of a job
//   - Assignment: a sprayer on the order, exactly one of them primary
//   - FieldKey: textual editing of scalar fields
//
// Key business rules:
//   - New orders start Pending with no sprayers
//   - The first sprayer added becomes primary; removing the primary promotes
//     the first remaining sprayer
//   - Completed and Cancelled are terminal
//   - Version is an optimistic concurrency counter that only the repository advances
package order
