// Package order provides the Order entity, the subject of order status notifications.
//
// The package includes:
//   - Order: holds the order identifier, its current status and the ordered registry
//     of observers interested in status changes
//   - Status: a free-form status label with a set of well-known values
//   - Observer: the single "react to a status change" capability
//
// Key rules:
//   - An order starts in CREATED and any status may follow any other
//   - Every SetStatus call, even with the current value, runs one notification cycle
//   - Observers are compared by identity and registered at most once
//   - A notification cycle visits the observers registered when it started, in
//     registration order, even if the registry changes while it runs
//   - An observer error stops the cycle and is returned to the caller
package order
