package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by identifier, scoped to its owner.
// A caller can never read another owner's order through this query: the owner
// is part of the lookup key, so a foreign identifier behaves as not found.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	ownerID string
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch one order for the given owner.
func NewGetOrderQuery(ownerID string, orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOwnerID(ownerID),
		query.setOrderID(orderID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OwnerID returns the verified caller identity.
func (q GetOrderQuery) OwnerID() string {
	return q.ownerID
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("owner id")
	}
	q.ownerID = ownerID
	return nil
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// OrderResponse is the read model returned by order queries.
type OrderResponse struct {
	OrderID      kernel.UUID
	RestaurantID int64
	Items        []ItemResponse
	TotalAmount  decimal.Decimal
	Status       string
	CreatedAt    time.Time
}

// ItemResponse is a single order line in the read model.
type ItemResponse struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Quantity int
}
