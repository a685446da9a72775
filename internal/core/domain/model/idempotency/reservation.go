// Package idempotency models the deduplication state for order creation.
// A Reservation claims a caller-supplied idempotency token for one owner and,
// once committed, pins the result every retry of the same creation request
// receives. Reservations expire so storage stays bounded; an expired record
// behaves as if the token was never seen.
package idempotency

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

const (
	// ReservationTTL bounds how long an uncommitted reservation may block the
	// token. A crashed creation attempt frees its token after this duration.
	ReservationTTL = 15 * time.Minute

	// CommittedRetention is how long a committed record keeps answering
	// retries with the original result before becoming eligible for purge.
	CommittedRetention = 24 * time.Hour
)

// ErrReservationIsNotConstructed is returned when a Reservation was not
// created through one of the factory methods.
var ErrReservationIsNotConstructed = errors.New("Reservation must be created via NewReservation or RestoreReservation constructor")

// Reservation is the idempotency record for one (owner, token) pair.
// Its lifecycle: created uncommitted when a token is first claimed, committed
// with the resulting order once creation succeeds, purged after expiry.
type Reservation struct {
	ownerID        string
	token          string
	orderID        kernel.UUID
	resultSnapshot []byte
	committed      bool
	createdAt      time.Time
	expiresAt      time.Time

	isConstructed bool
}

// NewReservation creates an uncommitted reservation claiming the token for
// the owner. It expires after ReservationTTL unless committed first.
func NewReservation(ownerID, token string, now time.Time) (*Reservation, error) {
	r := &Reservation{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setOwnerID(ownerID),
		r.setToken(token),
	); err != nil {
		return nil, err
	}

	r.createdAt = now.UTC().Truncate(time.Second)
	r.expiresAt = r.createdAt.Add(ReservationTTL)
	return r, nil
}

// RestoreReservation reconstructs a reservation from persistence.
func RestoreReservation(
	ownerID, token string,
	orderID kernel.UUID,
	resultSnapshot []byte,
	committed bool,
	createdAt, expiresAt time.Time,
) (*Reservation, error) {
	r := &Reservation{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setOwnerID(ownerID),
		r.setToken(token),
	); err != nil {
		return nil, err
	}

	if committed {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	r.orderID = orderID
	r.resultSnapshot = resultSnapshot
	r.committed = committed
	r.createdAt = createdAt.UTC()
	r.expiresAt = expiresAt.UTC()
	return r, nil
}

// Validate ensures the reservation was created through a factory method.
func (r *Reservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// Commit attaches the creation result to the reservation. Subsequent claims
// of the same token return this result instead of re-executing creation.
// Committing extends the expiry to the committed retention window.
func (r *Reservation) Commit(orderID kernel.UUID, resultSnapshot []byte, now time.Time) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(resultSnapshot) == 0 {
		return errs.NewValueIsRequiredError("result snapshot")
	}

	r.orderID = orderID
	r.resultSnapshot = resultSnapshot
	r.committed = true
	r.expiresAt = now.UTC().Truncate(time.Second).Add(CommittedRetention)
	return nil
}

// Expired reports whether the record must be treated as unseen.
func (r *Reservation) Expired(now time.Time) bool {
	return now.UTC().After(r.expiresAt)
}

// OwnerID returns the owner the token is scoped to.
func (r *Reservation) OwnerID() string {
	return r.ownerID
}

// Token returns the caller-supplied idempotency token.
func (r *Reservation) Token() string {
	return r.token
}

// OrderID returns the resulting order identifier. Valid only once committed.
func (r *Reservation) OrderID() kernel.UUID {
	return r.orderID
}

// ResultSnapshot returns the serialized creation result. Empty until committed.
func (r *Reservation) ResultSnapshot() []byte {
	return r.resultSnapshot
}

// Committed reports whether a creation result is attached.
func (r *Reservation) Committed() bool {
	return r.committed
}

// CreatedAt returns when the token was first claimed.
func (r *Reservation) CreatedAt() time.Time {
	return r.createdAt
}

// ExpiresAt returns when the record becomes eligible for purge.
func (r *Reservation) ExpiresAt() time.Time {
	return r.expiresAt
}

func (r *Reservation) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("owner id")
	}
	r.ownerID = ownerID
	return nil
}

func (r *Reservation) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("idempotency token")
	}
	r.token = token
	return nil
}
