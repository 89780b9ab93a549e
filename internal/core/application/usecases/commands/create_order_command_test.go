package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command with trimmed address", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.MustOrderID("ORD-100"), "  cliente@example.com ")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "ORD-100", cmd.OrderID().String())
		assert.Equal(t, "cliente@example.com", cmd.CustomerAddress())
	})

	t.Run("should allow an empty address", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.MustOrderID("ORD-100"), "")

		require.NoError(t, err)
		assert.Empty(t, cmd.CustomerAddress())
	})

	t.Run("should reject an order id not built by its constructor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.OrderID{}, "cliente@example.com")

		require.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
	})

	t.Run("should fail validation when created as zero value", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
