package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
//
// The handler reads the current order, lets the state machine decide whether
// cancellation is allowed for the current status and order age, and issues a
// conditional status write expecting the status it read. Two concurrent
// cancellations race on that precondition: exactly one wins, the loser gets a
// retryable conflict.
type CancelOrderCommandHandler struct {
	orders ports.OrderRepository
	clock  Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(orders ports.OrderRepository, clock Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orders: orders,
		clock:  clock,
	}
}

// Handle processes the cancellation command and returns the canceled order.
// Denials carry the state machine's reason ("wrong status", "too old") and
// leave the order unchanged.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.orders.Get(ctx, cmd.OwnerID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	expected := current.Status()
	if err = current.Cancel(h.clock.Now()); err != nil {
		return nil, err
	}

	return h.orders.UpdateStatus(ctx, cmd.OwnerID(), cmd.OrderID(), expected, order.Canceled)
}
