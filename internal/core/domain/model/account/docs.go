// Package account provides the identity aggregate of the courier manager.
//
// The package includes:
//   - Account: the aggregate root holding credentials and a fixed role
//   - Role: a closed two-value enumeration (client, admin)
//
// Key business rules:
//   - Email is unique case-insensitively; it is normalized to lower case at
//     construction and the storage layer enforces the uniqueness constraint
//   - The password credential is only ever stored as a hash
//   - Role is assigned at registration and never changes; registration input
//     defaults to client unless the caller explicitly asks for admin
//
// The package follows the same Domain-Driven Design conventions as the
// shipment aggregate: private fields, validating factory methods, and a
// Validate method that rejects instances that bypassed construction.
package account
