package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves every order belonging to one owner.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	ownerID string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list an owner's orders.
func NewListOrdersQuery(ownerID string) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOwnerID(ownerID); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OwnerID returns the verified caller identity.
func (q ListOrdersQuery) OwnerID() string {
	return q.ownerID
}

func (q *ListOrdersQuery) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("owner id")
	}
	q.ownerID = ownerID
	return nil
}
