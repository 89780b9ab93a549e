// Package kernel provides core domain primitives shared by the order flow model.
//
// The package includes:
//   - OrderID: a caller-assigned, non-empty order identifier
//   - Parcel: the immutable attribute tuple (distance, weight, weather) delivery
//     selection works on
//   - Journal: the line-based output channel strategies and observers write to
//
// These primitives enforce their invariants at construction time and are immutable,
// so they are safe to share between goroutines.
package kernel
