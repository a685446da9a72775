package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// EditOrderCommandHandler handles the business logic for order edits.
//
// The handler reads the current order, asks the state machine whether an edit
// is allowed, and then issues a conditional body replacement using the status
// it read as the precondition. A concurrent transition between the read and
// the write fails the precondition and is surfaced as a retryable conflict
// instead of silently overwriting.
type EditOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewEditOrderCommandHandler creates a handler for order edit operations.
func NewEditOrderCommandHandler(orders ports.OrderRepository) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		orders: orders,
	}
}

// Handle processes the edit command and returns the updated order.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.orders.Get(ctx, cmd.OwnerID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	expected := current.Status()
	if err = current.Edit(cmd.NewBody()); err != nil {
		return nil, err
	}

	return h.orders.ReplaceBody(ctx, cmd.OwnerID(), cmd.OrderID(), expected, cmd.NewBody())
}
