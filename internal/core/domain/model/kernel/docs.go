// Package kernel provides the shared value objects of the spraying domain.
//
// The package includes:
//   - UUID: identifier for orders, sprayers, farmers and feedback entries
//   - Coordinates: validated WGS84 position of the field to be sprayed
//
// Both are immutable; their zero values fail Validate so that values read
// from storage or requests are always funnelled through a constructor.
package kernel
