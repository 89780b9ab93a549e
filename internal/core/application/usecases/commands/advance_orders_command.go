package commands

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
	"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
)

// AdvanceOrdersCommand moves every live order one step along its lifecycle.
type AdvanceOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewAdvanceOrdersCommand() (AdvanceOrdersCommand, error) {
	return AdvanceOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}
