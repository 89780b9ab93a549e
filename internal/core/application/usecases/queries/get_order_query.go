// Package queries contains read-only operations over the live orders.
package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/observer"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// OrderResponse is the read model of a live order. Observers are listed in
// registration order.
type OrderResponse struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	Observers []string `json:"observers"`
}

func newOrderResponse(o *order.Order) OrderResponse {
	attached := o.Observers()
	labels := make([]string, 0, len(attached))
	for _, obs := range attached {
		labels = append(labels, observer.Describe(obs))
	}

	return OrderResponse{
		ID:        o.ID().String(),
		Status:    o.Status().String(),
		Observers: labels,
	}
}

type GetOrderQueryResponse struct {
	Order OrderResponse
}
