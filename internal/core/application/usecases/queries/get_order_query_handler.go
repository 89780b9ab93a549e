package queries

import (
	"context"

	"orderflow/internal/core/ports"
)

// GetOrderQueryHandler reads a single live order.
//
// Example:
//
//	query, _ := NewGetOrderQuery(kernel.MustOrderID("ORD-100"))
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err // errs.ObjectNotFoundError for unknown orders
//	}
//	fmt.Println(resp.Order.Status)
type GetOrderQueryHandler struct {
	registry ports.OrderRegistry
}

func NewGetOrderQueryHandler(registry ports.OrderRegistry) GetOrderQueryHandler {
	return GetOrderQueryHandler{registry: registry}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.registry.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{Order: newOrderResponse(o)}, nil
}
