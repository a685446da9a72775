package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new customer order.
// The owner is always the verified caller identity. The order identifier and
// the idempotency token are both optional: a missing identifier is generated
// by the handler, and a missing token disables deduplication for this request.
//
// Example:
//
//	body, _ := order.NewBody(1, items, total)
//	cmd, err := NewCreateOrderCommand("user-1", nil, "retry-token-42", body)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID          string
	orderID          *kernel.UUID
	idempotencyToken string
	body             order.Body

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the owner is present, the body is constructed, and a
// client-supplied order identifier, when given, is valid.
func NewCreateOrderCommand(
	ownerID string,
	orderID *kernel.UUID,
	idempotencyToken string,
	body order.Body,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		idempotencyToken: idempotencyToken,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setOrderID(orderID),
		cmd.setBody(body),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OwnerID returns the verified caller identity.
func (c CreateOrderCommand) OwnerID() string {
	return c.ownerID
}

// OrderID returns the client-supplied order identifier, or nil when the
// handler should generate one.
func (c CreateOrderCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// IdempotencyToken returns the caller-supplied deduplication token.
// Empty when the caller opted out of deduplication.
func (c CreateOrderCommand) IdempotencyToken() string {
	return c.idempotencyToken
}

// Body returns the order content to create.
func (c CreateOrderCommand) Body() order.Body {
	return c.body
}

func (c *CreateOrderCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("owner id")
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	id := *orderID
	c.orderID = &id
	return nil
}

func (c *CreateOrderCommand) setBody(body order.Body) error {
	if err := body.Validate(); err != nil {
		return err
	}
	c.body = body
	return nil
}
