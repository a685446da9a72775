// Package http adapts the order use cases to the generated HTTP surface.
package http

import (
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func init() {
	// Money travels as JSON numbers on the wire, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases. Every
// operation acts on behalf of the verified caller established by the
// identity middleware.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	editOrderHandler   commands.EditOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		editOrderHandler:   editOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// CreateOrder handles POST /orders - creates a new order for the caller.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	body, err := bodyFromRequest(newOrder)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var orderID *kernel.UUID
	if newOrder.Id != nil {
		id, idErr := kernel.UUIDFromBytes(newOrder.Id[:])
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}
		orderID = &id
	}

	var token string
	if params.IdempotencyKey != nil {
		token = *params.IdempotencyKey
	}

	cmd, err := commands.NewCreateOrderCommand(OwnerID(ctx), orderID, token, body)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(created))
}

// GetOrder handles GET /orders/{orderId} - retrieves one of the caller's orders.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(OwnerID(ctx), id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(result))
}

// ListOrders handles GET /orders - retrieves every order of the caller.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(OwnerID(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	results, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders := make([]servers.Order, 0, len(results))
	for _, result := range results {
		orders = append(orders, orderFromReadModel(result))
	}

	return ctx.JSON(http.StatusOK, servers.OrderList{Orders: orders})
}

// EditOrder handles PUT /orders/{orderId} - replaces the order's content.
func (s *Server) EditOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	body, err := bodyFromRequest(newOrder)
	if err != nil {
		return errorResponse(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewEditOrderCommand(OwnerID(ctx), id, body)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.editOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// CancelOrder handles DELETE /orders/{orderId} - cancels the order.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(OwnerID(ctx), id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	canceled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(canceled))
}

// bodyFromRequest converts the wire form of an order's content to the domain
// value object, validating it in the process.
func bodyFromRequest(newOrder servers.NewOrder) (order.Body, error) {
	items := make([]order.Item, 0, len(newOrder.OrderItems))
	for _, wireItem := range newOrder.OrderItems {
		item, err := order.NewItem(wireItem.Id, wireItem.Name, wireItem.Price, wireItem.Quantity)
		if err != nil {
			return order.Body{}, err
		}
		items = append(items, item)
	}

	return order.NewBody(newOrder.RestaurantId, items, newOrder.TotalAmount)
}

// orderFromDomain converts an order aggregate to its wire representation.
func orderFromDomain(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Body().Items()))
	for _, item := range o.Body().Items() {
		items = append(items, servers.OrderItem{
			Id:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	return servers.Order{
		OrderId:      o.ID().Bytes(),
		RestaurantId: o.Body().RestaurantID(),
		OrderItems:   items,
		TotalAmount:  o.Body().TotalAmount(),
		Status:       servers.OrderStatus(o.Status().String()),
		OrderTime:    o.CreatedAt(),
	}
}

// orderFromReadModel converts a query read model to its wire representation.
func orderFromReadModel(result queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, servers.OrderItem{
			Id:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return servers.Order{
		OrderId:      result.OrderID.Bytes(),
		RestaurantId: result.RestaurantID,
		OrderItems:   items,
		TotalAmount:  result.TotalAmount,
		Status:       servers.OrderStatus(result.Status),
		OrderTime:    result.CreatedAt,
	}
}

// errorResponse maps domain errors onto HTTP statuses. Denials from the state
// machine are client errors, lost races and duplicate identifiers are
// conflicts, anything unrecognized is a server error with the detail withheld.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrWriteConflict), errors.Is(err, errs.ErrDuplicateKey):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}
