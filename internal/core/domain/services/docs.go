// Package services provides domain services of the order flow: business rules that
// do not belong to a single entity.
//
// The package includes:
//   - DeliverySelector: maps order attributes to exactly one delivery strategy
package services
