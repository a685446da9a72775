package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// orderSnapshot is the serialized form of a created order stored in an
// idempotency record. Retried creation requests are answered from this
// snapshot, so it captures everything needed to rebuild the result.
type orderSnapshot struct {
	OwnerID      string          `json:"ownerId"`
	OrderID      string          `json:"orderId"`
	RestaurantID int64           `json:"restaurantId"`
	Items        []itemSnapshot  `json:"orderItems"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       string          `json:"status"`
	OrderTime    time.Time       `json:"orderTime"`
}

type itemSnapshot struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// snapshotOrder serializes an order for storage in an idempotency record.
func snapshotOrder(o *order.Order) ([]byte, error) {
	items := make([]itemSnapshot, 0, len(o.Body().Items()))
	for _, item := range o.Body().Items() {
		items = append(items, itemSnapshot{
			ID:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	return json.Marshal(orderSnapshot{
		OwnerID:      o.OwnerID(),
		OrderID:      o.ID().String(),
		RestaurantID: o.Body().RestaurantID(),
		Items:        items,
		TotalAmount:  o.Body().TotalAmount(),
		Status:       o.Status().String(),
		OrderTime:    o.CreatedAt(),
	})
}

// orderFromSnapshot rebuilds the original creation result from a stored
// snapshot.
func orderFromSnapshot(data []byte) (*order.Order, error) {
	var snap orderSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("corrupt idempotency snapshot: %w", err)
	}

	orderID, err := kernel.UUIDFromString(snap.OrderID)
	if err != nil {
		return nil, fmt.Errorf("corrupt idempotency snapshot: %w", err)
	}

	status, err := order.StatusFromString(snap.Status)
	if err != nil {
		return nil, fmt.Errorf("corrupt idempotency snapshot: %w", err)
	}

	items := make([]order.Item, 0, len(snap.Items))
	for _, item := range snap.Items {
		restored, itemErr := order.NewItem(item.ID, item.Name, item.Price, item.Quantity)
		if itemErr != nil {
			return nil, fmt.Errorf("corrupt idempotency snapshot: %w", itemErr)
		}
		items = append(items, restored)
	}

	body, err := order.NewBody(snap.RestaurantID, items, snap.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("corrupt idempotency snapshot: %w", err)
	}

	return order.RestoreOrder(snap.OwnerID, orderID, body, status, snap.OrderTime)
}
