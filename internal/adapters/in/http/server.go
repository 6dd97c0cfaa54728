package http

import (
	"errors"
	"net/http"
	"strconv"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
)

// Server exposes the ordering use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler

	// Query handlers
	getOrderByIDHandler      queries.GetOrderByIDQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
	}
}

// RegisterRoutes attaches the ordering endpoints to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderByID)
}

// NewOrderItem is one line of an incoming order request. The price is taken
// as sent; this service does not own product pricing.
type NewOrderItem struct {
	ProductID int64   `json:"productId"`
	Value     float64 `json:"value"`
	Quantity  int     `json:"quantity"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	DeliveryDate string         `json:"deliveryDate"`
	OrderDate    string         `json:"orderDate"`
	Items        []NewOrderItem `json:"items"`
}

// OrderItem is one line of an order response.
type OrderItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Value       float64 `json:"value"`
	Quantity    int     `json:"quantity"`
}

// Order is the response body describing a persisted order.
type Order struct {
	ID           int64       `json:"id"`
	Status       string      `json:"status"`
	DeliveryDate string      `json:"deliveryDate"`
	OrderDate    string      `json:"orderDate"`
	Items        []OrderItem `json:"items"`
}

// Error is the standard error envelope returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrder
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	itemRequests := make([]commands.ItemRequest, 0, len(request.Items))
	for _, item := range request.Items {
		itemRequest, err := commands.NewItemRequest(item.ProductID, item.Value, item.Quantity)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order data: " + err.Error(),
			})
		}
		itemRequests = append(itemRequests, itemRequest)
	}

	cmd, err := commands.NewCreateOrderCommand(request.DeliveryDate, request.OrderDate, itemRequests)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var notFound *product.NotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: notFound.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	response, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}
	if response == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(*response))
}

// GetOrders handles GET /api/v1/orders - retrieves orders, optionally
// filtered by the status query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		return s.getOrdersByStatus(ctx, statusParam)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

func (s *Server) getOrdersByStatus(ctx echo.Context, statusParam string) error {
	status, err := order.StatusFromString(statusParam)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + statusParam,
		})
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + statusParam,
		})
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

func orderFromDomain(aggregate *order.Order) Order {
	items := make([]OrderItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItem{
			ProductID:   item.Product().ID(),
			ProductName: item.Product().Name(),
			Value:       item.Value(),
			Quantity:    item.Quantity(),
		})
	}

	return Order{
		ID:           aggregate.ID(),
		Status:       aggregate.Status().String(),
		DeliveryDate: aggregate.DeliveryDate(),
		OrderDate:    aggregate.OrderDate(),
		Items:        items,
	}
}

func orderFromResponse(response queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Value:       item.Value,
			Quantity:    item.Quantity,
		})
	}

	return Order{
		ID:           response.ID,
		Status:       response.Status.String(),
		DeliveryDate: response.DeliveryDate,
		OrderDate:    response.OrderDate,
		Items:        items,
	}
}

func ordersFromResponses(responses []queries.OrderResponse) []Order {
	orders := make([]Order, 0, len(responses))
	for _, response := range responses {
		orders = append(orders, orderFromResponse(response))
	}
	return orders
}
