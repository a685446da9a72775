package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
)

// EditOrderCommand represents a request to replace the body of an existing
// order. Editing never changes the order's status or creation time.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID string
	orderID kernel.UUID
	newBody order.Body

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to replace an order's body.
func NewEditOrderCommand(ownerID string, orderID kernel.UUID, newBody order.Body) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setOrderID(orderID),
		cmd.setNewBody(newBody),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OwnerID returns the verified caller identity.
func (c EditOrderCommand) OwnerID() string {
	return c.ownerID
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewBody returns the replacement order content.
func (c EditOrderCommand) NewBody() order.Body {
	return c.newBody
}

func (c *EditOrderCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("owner id")
	}
	c.ownerID = ownerID
	return nil
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setNewBody(newBody order.Body) error {
	if err := newBody.Validate(); err != nil {
		return err
	}
	c.newBody = newBody
	return nil
}
