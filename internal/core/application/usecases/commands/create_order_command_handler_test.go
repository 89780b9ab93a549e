package commands_test

import (
	"errors"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/observer"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.MustOrderID("ORD-100"), "cliente@example.com")

	var added *order.Order
	registry := new(MockOrderRegistry)
	registry.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
		Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(registry, kernel.NewMemoryJournal(), nil)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	registry.AssertExpectations(t)
	require.NotNil(t, added)
	assert.Equal(t, "ORD-100", added.ID().String())
	assert.Equal(t, order.Created, added.Status())

	labels := make([]string, 0)
	for _, obs := range added.Observers() {
		labels = append(labels, observer.Describe(obs))
	}
	assert.Equal(t, []string{
		"customer_notifier:cliente@example.com",
		"admin_dashboard",
		"delivery_tracker",
	}, labels)
}

func TestCreateOrderCommandHandler_Handle_WithoutCustomer(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.MustOrderID("ORD-101"), "")

	registry := new(MockOrderRegistry)
	registry.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return len(o.Observers()) == 2
	})).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(registry, kernel.NewMemoryJournal(), nil)

	require.NoError(t, h.Handle(ctx, cmd))
	registry.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	registry := new(MockOrderRegistry)

	h := commands.NewCreateOrderCommandHandler(registry, kernel.NewMemoryJournal(), nil)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	registry.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.MustOrderID("ORD-100"), "")

	registry := new(MockOrderRegistry)
	registry.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewObjectAlreadyExistsError("order", "ORD-100")).Once()

	h := commands.NewCreateOrderCommandHandler(registry, kernel.NewMemoryJournal(), nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrObjectAlreadyExists))
	registry.AssertExpectations(t)
}
