// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is composite (owner, order identifier), so ownership is
// enforced by the schema itself: every lookup and every conditional write
// carries the owner as part of the key.
type OrderDTO struct {
	OwnerID      string          `gorm:"type:text;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID int64           `gorm:"not null"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric;not null"`
	Status       string          `gorm:"type:text;not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Lines live in their own table keyed by
// the owning order plus a line number that preserves the original ordering.
type ItemDTO struct {
	OwnerID  string          `gorm:"type:text;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LineNo   int             `gorm:"primaryKey;autoIncrement:false"`
	ItemID   int64           `gorm:"not null"`
	Name     string          `gorm:"type:text;not null"`
	Price    decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity int             `gorm:"not null"`
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) (OrderDTO, []ItemDTO) {
	dto := OrderDTO{
		OwnerID:      o.OwnerID(),
		OrderID:      o.ID().Bytes(),
		RestaurantID: o.Body().RestaurantID(),
		TotalAmount:  o.Body().TotalAmount(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
	}

	return dto, itemsFromBody(o.OwnerID(), o.ID(), o.Body())
}

// itemsFromBody converts the body's lines to row form, numbering them in
// their original order.
func itemsFromBody(ownerID string, orderID kernel.UUID, body order.Body) []ItemDTO {
	items := make([]ItemDTO, 0, len(body.Items()))
	for i, item := range body.Items() {
		items = append(items, ItemDTO{
			OwnerID:  ownerID,
			OrderID:  orderID.Bytes(),
			LineNo:   i + 1,
			ItemID:   item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}
	return items
}

// toDomain converts database rows back to an order aggregate.
// Item rows must already be sorted by line number.
func toDomain(dto OrderDTO, itemDTOs []ItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := order.NewItem(itemDTO.ItemID, itemDTO.Name, itemDTO.Price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	body, err := order.NewBody(dto.RestaurantID, items, dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.OwnerID, id, body, status, dto.CreatedAt.UTC())
}
