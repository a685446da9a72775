package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order straight from the database,
// bypassing the aggregate. Reads are point lookups on the composite primary
// key, so they are never blocked by the conditional writes on the command side.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order read model.
// Returns errs.ObjectNotFoundError when no order exists for this owner and
// identifier, including the case where the order belongs to someone else.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			restaurant_id,
			total_amount,
			status,
			created_at
		FROM orders
		WHERE owner_id = ? AND order_id = ?
	`, query.OwnerID(), query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	response, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = rows.Err(); err != nil {
		return OrderResponse{}, err
	}

	items, err := loadItems(ctx, h.db, query.OwnerID(), []kernel.UUID{response.OrderID})
	if err != nil {
		return OrderResponse{}, err
	}
	response.Items = items[response.OrderID.String()]

	return response, nil
}
