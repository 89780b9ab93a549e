package http

import (
	"net/http"
	"strconv"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const defaultJournalLimit = 100

// Server handles the order flow HTTP API and delegates to the application use cases.
type Server struct {
	// Command handlers
	dispatchOrderHandler       commands.DispatchOrderCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	unsubscribeCustomerHandler commands.UnsubscribeCustomerCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler

	journal ports.JournalReader
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	unsubscribeCustomerHandler commands.UnsubscribeCustomerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	journal ports.JournalReader,
) *Server {
	return &Server{
		dispatchOrderHandler:       dispatchOrderHandler,
		createOrderHandler:         createOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		unsubscribeCustomerHandler: unsubscribeCustomerHandler,
		getOrderHandler:            getOrderHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		journal:                    journal,
	}
}

// RegisterHandlers mounts every route of the API on e.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/deliveries", s.CreateDelivery)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id/status", s.ChangeOrderStatus)
	v1.DELETE("/orders/:id/customer", s.UnsubscribeCustomer)
	v1.GET("/journal", s.GetJournal)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateDelivery handles POST /api/v1/deliveries - selects a delivery mode and runs it.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req NewDelivery
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if req.DistanceKm == nil || req.WeightKg == nil || req.WeatherOK == nil {
		return writeError(ctx, http.StatusBadRequest, "distance_km, weight_kg and weather_ok are required")
	}

	orderID, err := orderIDOrGenerate(req.OrderID)
	if err != nil {
		return fail(ctx, "Invalid order id", err)
	}

	parcel, err := kernel.NewParcel(*req.DistanceKm, *req.WeightKg, *req.WeatherOK)
	if err != nil {
		return fail(ctx, "Invalid parcel", err)
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, parcel)
	if err != nil {
		return fail(ctx, "Invalid delivery data", err)
	}

	mode, err := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "Failed to dispatch order", err)
	}

	strategy, err := delivery.NewStrategy(mode)
	if err != nil {
		return fail(ctx, "Failed to describe delivery", err)
	}

	return ctx.JSON(http.StatusOK, Delivery{
		OrderID:  orderID.String(),
		Mode:     mode.String(),
		SpeedKmh: strategy.SpeedKmh(),
	})
}

// CreateOrder handles POST /api/v1/orders - creates an order with the default observers.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := orderIDOrGenerate(req.ID)
	if err != nil {
		return fail(ctx, "Invalid order id", err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, req.CustomerAddress)
	if err != nil {
		return fail(ctx, "Invalid order data", err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, "Failed to create order", err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrders handles GET /api/v1/orders - lists every live order.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetAllOrdersQuery()
	if err != nil {
		return fail(ctx, "Invalid query", err)
	}

	resp, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, "Failed to retrieve orders", err)
	}

	orders := make([]Order, len(resp.Orders))
	for i, o := range resp.Orders {
		orders[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return fail(ctx, "Invalid order id", err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - notifies every observer.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var req StatusChange
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return fail(ctx, "Invalid order id", err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(req.Status))
	if err != nil {
		return fail(ctx, "Invalid status", err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, "Failed to change order status", err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// UnsubscribeCustomer handles DELETE /api/v1/orders/:id/customer.
func (s *Server) UnsubscribeCustomer(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return fail(ctx, "Invalid order id", err)
	}

	cmd, err := commands.NewUnsubscribeCustomerCommand(orderID)
	if err != nil {
		return fail(ctx, "Invalid order id", err)
	}

	detached, err := s.unsubscribeCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "Failed to unsubscribe customer", err)
	}

	return ctx.JSON(http.StatusOK, Unsubscribed{OrderID: orderID.String(), Detached: detached})
}

// GetJournal handles GET /api/v1/journal?limit=N - the most recent journal lines.
func (s *Server) GetJournal(ctx echo.Context) error {
	limit := defaultJournalLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return writeError(ctx, http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	lines, err := s.journal.Recent(ctx.Request().Context(), limit)
	if err != nil {
		return fail(ctx, "Failed to read journal", err)
	}
	return ctx.JSON(http.StatusOK, JournalLines{Lines: lines})
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.OrderID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fail(ctx, "Invalid order id", err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, "Failed to retrieve order", err)
	}
	return ctx.JSON(code, toOrder(resp.Order))
}

func orderIDOrGenerate(raw string) (kernel.OrderID, error) {
	if raw == "" {
		return kernel.GenerateOrderID(), nil
	}
	return kernel.NewOrderID(raw)
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:        o.ID,
		Status:    o.Status,
		Observers: o.Observers,
	}
}
