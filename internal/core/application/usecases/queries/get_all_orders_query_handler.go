package queries

import (
	"context"

	"orderflow/internal/core/ports"
)

// GetAllOrdersQueryHandler lists every live order in registration order.
type GetAllOrdersQueryHandler struct {
	registry ports.OrderRegistry
}

func NewGetAllOrdersQueryHandler(registry ports.OrderRegistry) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{registry: registry}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) (GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	orders, err := h.registry.All(ctx)
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	resp := GetAllOrdersQueryResponse{Orders: make([]OrderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, newOrderResponse(o))
	}
	return resp, nil
}
