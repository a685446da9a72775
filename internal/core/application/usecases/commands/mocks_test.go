package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"orders/internal/core/domain/model/idempotency"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, ownerID string, orderID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, ownerID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, ownerID string, orderID kernel.UUID, expected, next order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, ownerID, orderID, expected, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ReplaceBody(
	ctx context.Context, ownerID string, orderID kernel.UUID, expected order.Status, body order.Body,
) (*order.Order, error) {
	args := m.Called(ctx, ownerID, orderID, expected, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockIdempotencyRepository struct{ mock.Mock }

func (m *MockIdempotencyRepository) Reserve(
	ctx context.Context, reservation *idempotency.Reservation,
) (*idempotency.Reservation, error) {
	args := m.Called(ctx, reservation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idempotency.Reservation), args.Error(1)
}

func (m *MockIdempotencyRepository) Commit(ctx context.Context, reservation *idempotency.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockIdempotencyRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// fixedClock pins the handler's view of wall-clock time for deterministic
// age checks.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mustItem(t *testing.T, id int64, name string, price string, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(id, name, decimal.RequireFromString(price), quantity)
	require.NoError(t, err)
	return item
}

func testBody(t *testing.T) order.Body {
	t.Helper()
	items := []order.Item{
		mustItem(t, 1, "spaghetti carbonara", "9.99", 1),
		mustItem(t, 2, "spaghetti aglio e olio", "8.99", 2),
		mustItem(t, 10, "cotton pizza", "5", 1),
	}
	body, err := order.NewBody(1, items, decimal.RequireFromString("32.97"))
	require.NoError(t, err)
	return body
}

func sentOrder(t *testing.T, ownerID string, createdAt time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(ownerID, kernel.NewUUID(), testBody(t), createdAt)
	require.NoError(t, err)
	return o
}
