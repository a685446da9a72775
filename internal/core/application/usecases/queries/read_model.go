package queries

import (
	"context"
	"database/sql"
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// scanOrderRow maps one row of the order projection into the read model.
// Items are loaded separately.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		id           uuid.UUID
		restaurantID int64
		totalAmount  decimal.Decimal
		status       string
		createdAt    time.Time
	)

	if err := rows.Scan(&id, &restaurantID, &totalAmount, &status, &createdAt); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		OrderID:      orderID,
		RestaurantID: restaurantID,
		TotalAmount:  totalAmount,
		Status:       status,
		CreatedAt:    createdAt.UTC(),
	}, nil
}

// loadItems fetches the order lines for the given orders in one round trip
// and groups them by order identifier, preserving line order.
func loadItems(
	ctx context.Context,
	db *gorm.DB,
	ownerID string,
	orderIDs []kernel.UUID,
) (map[string][]ItemResponse, error) {
	grouped := make(map[string][]ItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	ids := make([]uuid.UUID, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		ids = append(ids, orderID.Bytes())
		grouped[orderID.String()] = make([]ItemResponse, 0)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			item_id,
			name,
			price,
			quantity
		FROM order_items
		WHERE owner_id = ? AND order_id IN ?
		ORDER BY order_id, line_no
	`, ownerID, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       uuid.UUID
			itemID   int64
			name     string
			price    decimal.Decimal
			quantity int
		)
		if err = rows.Scan(&id, &itemID, &name, &price, &quantity); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		key := orderID.String()
		grouped[key] = append(grouped[key], ItemResponse{
			ID:       itemID,
			Name:     name,
			Price:    price,
			Quantity: quantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return grouped, nil
}
