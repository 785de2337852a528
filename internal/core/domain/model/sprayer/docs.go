// Package sprayer defines the reference to a field worker used by order
// assignments and the assignment pool, and the expertise tiers sprayers
// are classified into.
package sprayer
