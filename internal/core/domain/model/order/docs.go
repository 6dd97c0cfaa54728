// Package order provides domain entities and business logic for order management.
// It implements the Order aggregate root with its owned Items and lifecycle status.
//
// The package includes:
//   - Order: The aggregate root that owns the ordered sequence of items
//   - Item: A line capturing a product snapshot, unit value and quantity
//   - Status: The closed lifecycle enumeration (Open, Closed)
//
// Key business rules:
//   - An order always has at least one item
//   - Newly created orders always start in Open status
//   - Item values are captured at creation time and never recomputed from the catalog
//   - The store assigns order identifiers at persistence time
//   - Closing an order is a guarded transition that no core operation performs
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
