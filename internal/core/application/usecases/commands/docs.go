// Package commands contains business operations that change the state of live orders.
//
// All commands follow a consistent pattern: a command value built and validated by its
// constructor, and a handler that loads what it needs from the order registry and
// applies the change.
//
// Status changes from every handler pass through a shared gate, so two notification
// cycles never interleave.
package commands

import "sync"

type statusGate struct {
	mu sync.Mutex
}

func newStatusGate() *statusGate {
	return &statusGate{}
}
