package commands

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var ErrPurgeArchivedOrdersCommandIsNotConstructed = errors.New(
	"PurgeArchivedOrdersCommand must be created via NewPurgeArchivedOrdersCommand constructor",
)

// PurgeArchivedOrdersCommand forgets every order that reached the end of its lifecycle.
type PurgeArchivedOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeArchivedOrdersCommand() (PurgeArchivedOrdersCommand, error) {
	return PurgeArchivedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeArchivedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeArchivedOrdersCommandIsNotConstructed)
}
