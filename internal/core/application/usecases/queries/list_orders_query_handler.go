package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads an owner's orders straight from the database.
// An owner who has never placed an order gets an empty list, never an error.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for owner order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the owner's orders sorted by creation
// time, newest last, with the order identifier as a tiebreaker.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			restaurant_id,
			total_amount,
			status,
			created_at
		FROM orders
		WHERE owner_id = ?
		ORDER BY created_at, order_id
	`, query.OwnerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(responses))
	for _, response := range responses {
		orderIDs = append(orderIDs, response.OrderID)
	}

	items, err := loadItems(ctx, h.db, query.OwnerID(), orderIDs)
	if err != nil {
		return nil, err
	}
	for i := range responses {
		responses[i].Items = items[responses[i].OrderID.String()]
	}

	return responses, nil
}
