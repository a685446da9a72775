package commands

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/idempotency"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Creation is exactly-once-effective under retries: when the command carries
// an idempotency token, the handler first claims the token through the
// idempotency repository's atomic conditional put. A retry whose token is
// already committed gets the original creation result back, with no store
// mutation. Only a winning claim proceeds to write the order.
type CreateOrderCommandHandler struct {
	orders       ports.OrderRepository
	reservations ports.IdempotencyRepository
	clock        Clock
	logger       *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	reservations ports.IdempotencyRepository,
	clock Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:       orders,
		reservations: reservations,
		clock:        clock,
		logger:       logger,
	}
}

// Handle processes the order creation command and returns the created order,
// or the previously created order when the idempotency token was seen before.
//
// A token that is reserved but not yet committed means another request with
// the same token is in flight; that is surfaced as a write conflict so the
// caller retries instead of risking a duplicate.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()

	var reservation *idempotency.Reservation
	if cmd.IdempotencyToken() != "" {
		claim, err := idempotency.NewReservation(cmd.OwnerID(), cmd.IdempotencyToken(), now)
		if err != nil {
			return nil, err
		}

		existing, err := h.reservations.Reserve(ctx, claim)
		if err != nil {
			return nil, err
		}

		if existing != nil {
			if existing.Committed() {
				return orderFromSnapshot(existing.ResultSnapshot())
			}
			return nil, errs.NewWriteConflictError("idempotencyToken", cmd.IdempotencyToken())
		}

		reservation = claim
	}

	orderID := kernel.NewUUID()
	if cmd.OrderID() != nil {
		orderID = *cmd.OrderID()
	}

	created, err := order.NewOrder(cmd.OwnerID(), orderID, cmd.Body(), now)
	if err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, created); err != nil {
		return nil, err
	}

	// The order is durable from here on. A failed reservation commit must not
	// fail the request: the reservation stays uncommitted and lapses after its
	// TTL, while the caller already holds the result.
	if reservation != nil {
		if commitErr := h.commitReservation(ctx, reservation, created, now); commitErr != nil {
			h.logger.ErrorContext(ctx, "failed to commit idempotency reservation",
				"idempotencyToken", cmd.IdempotencyToken(), "error", commitErr)
		}
	}

	return created, nil
}

func (h CreateOrderCommandHandler) commitReservation(
	ctx context.Context,
	reservation *idempotency.Reservation,
	created *order.Order,
	now time.Time,
) error {
	snapshot, err := snapshotOrder(created)
	if err != nil {
		return err
	}
	if err = reservation.Commit(created.ID(), snapshot, now); err != nil {
		return err
	}
	return h.reservations.Commit(ctx, reservation)
}
