// Package shipment provides the shipment aggregate of the courier manager.
//
// The package includes:
//   - Shipment: the aggregate root holding sender, recipient, details,
//     ownership, and delivery status
//   - Status: the three-value delivery state (Pending, In Transit, Delivered)
//   - TrackingNumber: the public, human-enterable identifier
//
// Key business rules:
//   - A shipment is created by a client for themselves; the owning account
//     reference and the tracking number never change afterwards
//   - The tracking number is generated without a storage round trip; the
//     unique index on the shipments table is the actual uniqueness guarantee
//   - Status transitions are unconstrained in direction: there is no
//     forward-only state machine, so Delivered back to Pending is legal
//   - Every mutation bumps the modification timestamp
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
