package order_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validBody := testBody(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 500_000_000, time.UTC)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder("user-1", validID, validBody, now)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.Equal(t, "user-1", o.OwnerID())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, order.Sent, o.Status())
		assert.True(t, o.Body().TotalAmount().Equal(decimal.RequireFromString("32.97")))
	})

	t.Run("should truncate creation time to seconds in UTC", func(t *testing.T) {
		o, err := order.NewOrder("user-1", validID, validBody, now)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), o.CreatedAt())
	})

	t.Run("should fail with empty owner", func(t *testing.T) {
		o, err := order.NewOrder("", validID, validBody, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder("user-1", invalidID, validBody, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with unconstructed body", func(t *testing.T) {
		var invalidBody order.Body

		o, err := order.NewOrder("user-1", validID, invalidBody, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "Body must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidBody order.Body

		o, err := order.NewOrder("", invalidID, invalidBody, now)

		require.Error(t, err)
		assert.Nil(t, o)
		// Should contain all validation errors joined
		assert.Contains(t, err.Error(), "owner id")
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "Body must be created")
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validBody := testBody(t)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should restore order with persisted status", func(t *testing.T) {
		o, err := order.RestoreOrder("user-1", validID, validBody, order.Canceled, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Canceled, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject invalid persisted status", func(t *testing.T) {
		o, err := order.RestoreOrder("user-1", validID, validBody, order.Unknown, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	body := testBody(t)
	now := time.Now()

	t.Run("orders with same identity are equal", func(t *testing.T) {
		o1, err := order.NewOrder("user-1", id, body, now)
		require.NoError(t, err)
		o2, err := order.NewOrder("user-1", id, body, now.Add(time.Hour))
		require.NoError(t, err)

		assert.True(t, o1.IsEqual(o2))
	})

	t.Run("orders with different owners are not equal", func(t *testing.T) {
		o1, err := order.NewOrder("user-1", id, body, now)
		require.NoError(t, err)
		o2, err := order.NewOrder("user-2", id, body, now)
		require.NoError(t, err)

		assert.False(t, o1.IsEqual(o2))
	})

	t.Run("nil comparison returns false", func(t *testing.T) {
		o1, err := order.NewOrder("user-1", id, body, now)
		require.NoError(t, err)

		assert.False(t, o1.IsEqual(nil))
	})
}

func TestOrder_Cancel(t *testing.T) {
	id := kernel.NewUUID()
	body := testBody(t)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should cancel order within the window", func(t *testing.T) {
		o, err := order.NewOrder("user-1", id, body, createdAt)
		require.NoError(t, err)

		err = o.Cancel(createdAt.Add(9 * time.Minute))

		require.NoError(t, err)
		assert.Equal(t, order.Canceled, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should deny cancel after the window and leave order unchanged", func(t *testing.T) {
		o, err := order.NewOrder("user-1", id, body, createdAt)
		require.NoError(t, err)

		err = o.Cancel(createdAt.Add(order.CancelWindow + time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), order.ReasonTooOld)
		assert.Equal(t, order.Sent, o.Status())
	})

	t.Run("should deny second cancel with wrong status", func(t *testing.T) {
		o, err := order.NewOrder("user-1", id, body, createdAt)
		require.NoError(t, err)
		require.NoError(t, o.Cancel(createdAt.Add(time.Minute)))

		err = o.Cancel(createdAt.Add(2 * time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), order.ReasonWrongStatus)
		assert.Equal(t, order.Canceled, o.Status())
	})
}

func TestOrder_Edit(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newBody := func(t *testing.T) order.Body {
		t.Helper()
		items := []order.Item{
			mustItem(t, 17, "spicy chicken sandwich", "12.99", 1),
			mustItem(t, 22, "8\" pepperoni pizza", "15", 1),
		}
		body, err := order.NewBody(1, items, decimal.RequireFromString("47.98"))
		require.NoError(t, err)
		return body
	}

	t.Run("should replace body while Sent and preserve status and creation time", func(t *testing.T) {
		o, err := order.NewOrder("user-1", id, testBody(t), createdAt)
		require.NoError(t, err)

		err = o.Edit(newBody(t))

		require.NoError(t, err)
		assert.Equal(t, order.Sent, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, "47.98", o.Body().TotalAmount().String())
		assert.Len(t, o.Body().Items(), 2)
	})

	t.Run("should deny edit after cancellation", func(t *testing.T) {
		o, err := order.NewOrder("user-1", id, testBody(t), createdAt)
		require.NoError(t, err)
		require.NoError(t, o.Cancel(createdAt.Add(time.Minute)))

		err = o.Edit(newBody(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, "32.97", o.Body().TotalAmount().String())
	})

	t.Run("should reject unconstructed body", func(t *testing.T) {
		o, err := order.NewOrder("user-1", id, testBody(t), createdAt)
		require.NoError(t, err)

		err = o.Edit(order.Body{})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrBodyIsNotConstructed)
	})
}

func TestOrder_Acknowledge(t *testing.T) {
	id := kernel.NewUUID()
	body := testBody(t)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should acknowledge placed order", func(t *testing.T) {
		o, err := order.RestoreOrder("user-1", id, body, order.Placed, createdAt)
		require.NoError(t, err)

		require.NoError(t, o.Acknowledge())
		assert.Equal(t, order.Sent, o.Status())
	})

	t.Run("should deny acknowledgment of sent order", func(t *testing.T) {
		o, err := order.NewOrder("user-1", id, body, createdAt)
		require.NoError(t, err)

		err = o.Acknowledge()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Age(t *testing.T) {
	t.Run("should measure age from creation", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		o, err := order.NewOrder("user-1", kernel.NewUUID(), testBody(t), createdAt)
		require.NoError(t, err)

		assert.Equal(t, 601*time.Second, o.Age(createdAt.Add(601*time.Second)))
	})
}
