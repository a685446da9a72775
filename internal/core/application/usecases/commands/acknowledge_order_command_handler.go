package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// AcknowledgeOrderCommandHandler moves a placed order to Sent on behalf of
// the external acknowledgment process, using the same read-validate-
// conditionally-write discipline as the public operations.
type AcknowledgeOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewAcknowledgeOrderCommandHandler creates a handler for order acknowledgment.
func NewAcknowledgeOrderCommandHandler(orders ports.OrderRepository) AcknowledgeOrderCommandHandler {
	return AcknowledgeOrderCommandHandler{
		orders: orders,
	}
}

// Handle processes the acknowledgment command and returns the updated order.
func (h AcknowledgeOrderCommandHandler) Handle(ctx context.Context, cmd AcknowledgeOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.orders.Get(ctx, cmd.OwnerID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	expected := current.Status()
	if err = current.Acknowledge(); err != nil {
		return nil, err
	}

	return h.orders.UpdateStatus(ctx, cmd.OwnerID(), cmd.OrderID(), expected, order.Sent)
}
