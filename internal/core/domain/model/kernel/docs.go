// Package kernel provides shared value objects used by every aggregate in the
// courier manager domain model.
//
// Currently it contains:
//   - UUID: the internal identifier for accounts and shipments
//
// UUID is a value object in the Domain-Driven Design sense: immutable,
// compared by value, and only constructable through validating factory
// functions. The public tracking number is intentionally not part of this
// package; it lives with the shipment aggregate because its format and
// normalization rules are shipment business rules.
package kernel
