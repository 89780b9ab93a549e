package queries

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() (GetAllOrdersQuery, error) {
	return GetAllOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

type GetAllOrdersQueryResponse struct {
	Orders []OrderResponse
}
