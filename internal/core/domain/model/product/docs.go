// Package product provides the catalog entity that order items reference.
//
// The package includes:
//   - Product: an immutable catalog entry with a catalog-assigned identifier
//   - NotFoundError: the typed error raised when an order references a
//     product identifier absent from the catalog
//
// Products are never mutated by the ordering core. Order items capture a copy
// of the referenced product, so an item's snapshot survives later catalog
// changes or deletions.
package product
