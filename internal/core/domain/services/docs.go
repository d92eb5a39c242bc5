// Package services contains domain services: business logic that does not
// naturally belong to a single aggregate.
//
// The package currently provides AccessPolicy, which maps
// (role, operation) pairs to allow/deny decisions and determines the
// row-level scope of listing results. Keeping the rules in one table here,
// rather than as conditionals scattered through handlers, means every
// surface of the application answers authorization questions identically.
package services
