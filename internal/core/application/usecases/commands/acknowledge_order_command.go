package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrAcknowledgeOrderCommandIsNotConstructed = errors.New(
		"AcknowledgeOrderCommand must be created via NewAcknowledgeOrderCommand constructor",
	)
)

// AcknowledgeOrderCommand represents the downstream acknowledgment of a
// placed order (PLACED -> SENT). It is issued by the external acknowledgment
// process, not by the public HTTP operations.
type AcknowledgeOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID string
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcknowledgeOrderCommand creates a command to acknowledge a placed order.
func NewAcknowledgeOrderCommand(ownerID string, orderID kernel.UUID) (AcknowledgeOrderCommand, error) {
	cmd := AcknowledgeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setOrderID(orderID),
	); err != nil {
		return AcknowledgeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcknowledgeOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgeOrderCommandIsNotConstructed)
}

// OwnerID returns the owner of the acknowledged order.
func (c AcknowledgeOrderCommand) OwnerID() string {
	return c.ownerID
}

// OrderID returns the identifier of the acknowledged order.
func (c AcknowledgeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AcknowledgeOrderCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("owner id")
	}
	c.ownerID = ownerID
	return nil
}

func (c *AcknowledgeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
