// Package idemrepo persists idempotency reservations for order creation.
// The table's composite primary key (owner, token) is what makes claiming a
// token atomic: an insert with conflict-do-nothing either wins the token or
// touches no rows.
package idemrepo

import (
	"time"

	"orders/internal/core/domain/model/idempotency"
	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ReservationDTO represents the database structure for idempotency records.
type ReservationDTO struct {
	OwnerID        string     `gorm:"type:text;primaryKey"`
	Token          string     `gorm:"type:text;primaryKey"`
	OrderID        *uuid.UUID `gorm:"type:uuid"`
	ResultSnapshot []byte
	Committed      bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	ExpiresAt      time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for idempotency records.
func (ReservationDTO) TableName() string {
	return "idempotency_records"
}

// fromDomain converts a reservation to its database representation.
func fromDomain(reservation *idempotency.Reservation) ReservationDTO {
	var orderID *uuid.UUID
	if reservation.Committed() {
		raw := reservation.OrderID().Bytes()
		orderID = &raw
	}

	return ReservationDTO{
		OwnerID:        reservation.OwnerID(),
		Token:          reservation.Token(),
		OrderID:        orderID,
		ResultSnapshot: reservation.ResultSnapshot(),
		Committed:      reservation.Committed(),
		CreatedAt:      reservation.CreatedAt(),
		ExpiresAt:      reservation.ExpiresAt(),
	}
}

// toDomain converts a database row back to a reservation.
func toDomain(dto ReservationDTO) (*idempotency.Reservation, error) {
	var orderID kernel.UUID
	if dto.OrderID != nil {
		id, err := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if err != nil {
			return nil, err
		}
		orderID = id
	}

	return idempotency.RestoreReservation(
		dto.OwnerID,
		dto.Token,
		orderID,
		dto.ResultSnapshot,
		dto.Committed,
		dto.CreatedAt,
		dto.ExpiresAt,
	)
}
