package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// All mutations after creation are single-statement conditional writes: the
// UPDATE carries the caller's expected status in its WHERE clause, and an
// affected-row count of zero means the precondition no longer holds. No row
// locks are held across round trips.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its lines. An order that already exists for this
// owner and identifier is reported as a duplicate key, never overwritten.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Create(&dto).Error; txErr != nil {
			return txErr
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("orderId", aggregate.ID().String(), err)
		}
		return err
	}

	return nil
}

// Get retrieves one order scoped to its owner. A foreign owner's order is
// indistinguishable from a missing one.
func (r *GormOrderRepository) Get(ctx context.Context, ownerID string, orderID kernel.UUID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "owner_id = ? AND order_id = ?", ownerID, orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, ownerID, orderID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// UpdateStatus transitions the order's status with the expected current
// status as the write precondition. When the precondition fails the order is
// re-read to tell a vanished order apart from a lost race.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	ownerID string,
	orderID kernel.UUID,
	expected, next order.Status,
) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("owner_id = ? AND order_id = ? AND status = ?", ownerID, orderID.Bytes(), expected.String()).
		Update("status", next.String())
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, preconditionFailure(ctx, r.db, ownerID, orderID)
	}

	return r.Get(ctx, ownerID, orderID)
}

// ReplaceBody swaps the order's content under the same status precondition
// used by UpdateStatus. Status and creation time stay untouched. The header
// update and the line rewrite commit together or not at all.
func (r *GormOrderRepository) ReplaceBody(
	ctx context.Context,
	ownerID string,
	orderID kernel.UUID,
	expected order.Status,
	body order.Body,
) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := body.Validate(); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("owner_id = ? AND order_id = ? AND status = ?", ownerID, orderID.Bytes(), expected.String()).
			Updates(map[string]any{
				"restaurant_id": body.RestaurantID(),
				"total_amount":  body.TotalAmount(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return preconditionFailure(ctx, tx, ownerID, orderID)
		}

		if txErr := tx.
			Delete(&ItemDTO{}, "owner_id = ? AND order_id = ?", ownerID, orderID.Bytes()).Error; txErr != nil {
			return txErr
		}

		items := itemsFromBody(ownerID, orderID, body)
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, ownerID, orderID)
}

// loadItems fetches an order's lines sorted by line number.
func (r *GormOrderRepository) loadItems(
	ctx context.Context, ownerID string, orderID kernel.UUID,
) ([]ItemDTO, error) {
	var items []ItemDTO
	err := r.db.WithContext(ctx).
		Order("line_no").
		Find(&items, "owner_id = ? AND order_id = ?", ownerID, orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// preconditionFailure classifies a conditional write that touched no rows:
// the order either never existed for this owner or changed status since it
// was read. The classification read runs on the caller's connection so that
// inside a transaction it sees the transaction's view.
func preconditionFailure(
	ctx context.Context, db *gorm.DB, ownerID string, orderID kernel.UUID,
) error {
	var count int64
	err := db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("owner_id = ? AND order_id = ?", ownerID, orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("orderId", orderID.String())
	}
	return errs.NewWriteConflictError("orderId", orderID.String())
}
