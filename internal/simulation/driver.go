package simulation

import (
	"context"
	"fmt"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// Driver runs scenarios against the command handlers.
type Driver struct {
	dispatchOrderHandler       commands.DispatchOrderCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	unsubscribeCustomerHandler commands.UnsubscribeCustomerCommandHandler
	journal                    kernel.Journal
	logger                     *slog.Logger
}

func NewDriver(
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	unsubscribeCustomerHandler commands.UnsubscribeCustomerCommandHandler,
	journal kernel.Journal,
	logger *slog.Logger,
) *Driver {
	return &Driver{
		dispatchOrderHandler:       dispatchOrderHandler,
		createOrderHandler:         createOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		unsubscribeCustomerHandler: unsubscribeCustomerHandler,
		journal:                    journal,
		logger:                     logger.With("component", "simulation"),
	}
}

// Report summarises a run.
type Report struct {
	// Modes maps each dispatched order id to the mode that delivered it.
	Modes map[string]delivery.Mode
	// FinalStatuses maps each flow's order id to its last status.
	FinalStatuses map[string]order.Status
}

// Run dispatches every delivery case, then plays every flow. It stops at the first
// error.
func (d *Driver) Run(ctx context.Context, s Scenario) (Report, error) {
	report := Report{
		Modes:         make(map[string]delivery.Mode, len(s.Deliveries)),
		FinalStatuses: make(map[string]order.Status, len(s.Flows)),
	}

	for _, c := range s.Deliveries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		mode, err := d.dispatch(ctx, c)
		if err != nil {
			return report, fmt.Errorf("delivery %s: %w", c.OrderID, err)
		}
		report.Modes[c.OrderID] = mode
	}

	for _, f := range s.Flows {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		last, err := d.play(ctx, f)
		if err != nil {
			return report, fmt.Errorf("flow %s: %w", f.OrderID, err)
		}
		report.FinalStatuses[f.OrderID] = last
	}

	d.logger.InfoContext(ctx, "Scenario finished",
		"deliveries", len(report.Modes),
		"flows", len(report.FinalStatuses),
	)
	return report, nil
}

func (d *Driver) dispatch(ctx context.Context, c DeliveryCase) (delivery.Mode, error) {
	orderID, err := kernel.NewOrderID(c.OrderID)
	if err != nil {
		return delivery.Unknown, err
	}

	parcel, err := kernel.NewParcel(c.DistanceKm, c.WeightKg, c.Weather())
	if err != nil {
		return delivery.Unknown, err
	}

	if err = d.journal.Record(fmt.Sprintf("-- order %s: distance=%gkm, weight=%gkg, weather_ok=%t",
		orderID, parcel.DistanceKm(), parcel.WeightKg(), parcel.WeatherOK())); err != nil {
		return delivery.Unknown, err
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, parcel)
	if err != nil {
		return delivery.Unknown, err
	}
	return d.dispatchOrderHandler.Handle(ctx, cmd)
}

func (d *Driver) play(ctx context.Context, f StatusFlow) (order.Status, error) {
	orderID, err := kernel.NewOrderID(f.OrderID)
	if err != nil {
		return "", err
	}

	create, err := commands.NewCreateOrderCommand(orderID, f.CustomerAddress)
	if err != nil {
		return "", err
	}
	if err = d.createOrderHandler.Handle(ctx, create); err != nil {
		return "", err
	}

	last := order.Created
	for i, raw := range f.Statuses {
		if f.DetachCustomerBefore != nil && *f.DetachCustomerBefore == i {
			if err = d.unsubscribe(ctx, orderID); err != nil {
				return last, err
			}
		}

		change, cmdErr := commands.NewChangeOrderStatusCommand(orderID, order.Status(raw))
		if cmdErr != nil {
			return last, cmdErr
		}
		if err = d.changeOrderStatusHandler.Handle(ctx, change); err != nil {
			return last, err
		}
		last = change.Status()
	}

	if f.DetachCustomerBefore != nil && *f.DetachCustomerBefore == len(f.Statuses) {
		if err = d.unsubscribe(ctx, orderID); err != nil {
			return last, err
		}
	}
	return last, nil
}

func (d *Driver) unsubscribe(ctx context.Context, orderID kernel.OrderID) error {
	cmd, err := commands.NewUnsubscribeCustomerCommand(orderID)
	if err != nil {
		return err
	}

	detached, err := d.unsubscribeCustomerHandler.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	d.logger.DebugContext(ctx, "Customer unsubscribed", "order_id", orderID.String(), "detached", detached)
	return nil
}
