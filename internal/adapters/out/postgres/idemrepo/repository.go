package idemrepo

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/idempotency"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormIdempotencyRepository implements IdempotencyRepository using GORM.
type GormIdempotencyRepository struct {
	db *gorm.DB
}

// NewGormIdempotencyRepository creates a new GORM idempotency repository.
func NewGormIdempotencyRepository(db *gorm.DB) *GormIdempotencyRepository {
	return &GormIdempotencyRepository{db: db}
}

// Reserve atomically claims the reservation's token for its owner.
// Returns (nil, nil) when this claim won the token. When the token is already
// held, returns the incumbent record instead. An expired incumbent is removed
// and the claim retried, so a crashed earlier attempt cannot block the token
// forever.
func (r *GormIdempotencyRepository) Reserve(
	ctx context.Context,
	reservation *idempotency.Reservation,
) (*idempotency.Reservation, error) {
	if err := reservation.Validate(); err != nil {
		return nil, err
	}

	for {
		dto := fromDomain(reservation)
		result := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 1 {
			return nil, nil
		}

		var existingDTO ReservationDTO
		err := r.db.WithContext(ctx).
			First(&existingDTO, "owner_id = ? AND token = ?", reservation.OwnerID(), reservation.Token()).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// The incumbent vanished between the insert and the read.
				continue
			}
			return nil, err
		}

		existing, err := toDomain(existingDTO)
		if err != nil {
			return nil, err
		}

		if !existing.Expired(reservation.CreatedAt()) {
			return existing, nil
		}

		err = r.db.WithContext(ctx).
			Delete(&ReservationDTO{},
				"owner_id = ? AND token = ? AND expires_at = ?",
				reservation.OwnerID(), reservation.Token(), existingDTO.ExpiresAt).Error
		if err != nil {
			return nil, err
		}
	}
}

// Commit attaches the creation result to an existing reservation.
func (r *GormIdempotencyRepository) Commit(ctx context.Context, reservation *idempotency.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return err
	}

	dto := fromDomain(reservation)
	result := r.db.WithContext(ctx).
		Model(&ReservationDTO{}).
		Where("owner_id = ? AND token = ?", dto.OwnerID, dto.Token).
		Updates(map[string]any{
			"order_id":        dto.OrderID,
			"result_snapshot": dto.ResultSnapshot,
			"committed":       dto.Committed,
			"expires_at":      dto.ExpiresAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("idempotencyToken", dto.Token)
	}

	return nil
}

// PurgeExpired deletes every record whose expiry is at or before now and
// reports how many were removed.
func (r *GormIdempotencyRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&ReservationDTO{}, "expires_at <= ?", now.UTC())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
