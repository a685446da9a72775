package commands_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func replacementBody(t *testing.T) order.Body {
	t.Helper()
	items := []order.Item{
		mustItem(t, 7, "tiramisu", "6.50", 2),
	}
	body, err := order.NewBody(1, items, decimal.RequireFromString("13.00"))
	require.NoError(t, err)
	return body
}

func TestEditOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("should replace the body of a sent order and keep its status", func(t *testing.T) {
		orderRepo := &MockOrderRepository{}
		handler := commands.NewEditOrderCommandHandler(orderRepo)

		current := sentOrder(t, "user-1", now.Add(-time.Minute))
		newBody := replacementBody(t)
		edited, err := order.RestoreOrder(
			current.OwnerID(), current.ID(), newBody, order.Sent, current.CreatedAt())
		require.NoError(t, err)

		cmd, err := commands.NewEditOrderCommand("user-1", current.ID(), newBody)
		require.NoError(t, err)

		getCall := orderRepo.On("Get", ctx, "user-1", current.ID()).Return(current, nil)
		replaceCall := orderRepo.On(
			"ReplaceBody", ctx, "user-1", current.ID(), order.Sent, newBody,
		).Return(edited, nil)
		mock.InOrder(getCall, replaceCall)

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Sent, result.Status())
		assert.True(t, result.Body().TotalAmount().Equal(newBody.TotalAmount()))
		assert.True(t, result.CreatedAt().Equal(current.CreatedAt()))
		orderRepo.AssertExpectations(t)
	})

	t.Run("should deny edits on a canceled order without writing", func(t *testing.T) {
		orderRepo := &MockOrderRepository{}
		handler := commands.NewEditOrderCommandHandler(orderRepo)

		base := sentOrder(t, "user-1", now.Add(-time.Minute))
		current, err := order.RestoreOrder(
			base.OwnerID(), base.ID(), base.Body(), order.Canceled, base.CreatedAt())
		require.NoError(t, err)

		cmd, err := commands.NewEditOrderCommand("user-1", current.ID(), replacementBody(t))
		require.NoError(t, err)

		orderRepo.On("Get", ctx, "user-1", current.ID()).Return(current, nil)

		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		orderRepo.AssertNotCalled(t, "ReplaceBody",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should surface a concurrent transition as a write conflict", func(t *testing.T) {
		orderRepo := &MockOrderRepository{}
		handler := commands.NewEditOrderCommandHandler(orderRepo)

		current := sentOrder(t, "user-1", now.Add(-time.Minute))
		newBody := replacementBody(t)
		cmd, err := commands.NewEditOrderCommand("user-1", current.ID(), newBody)
		require.NoError(t, err)

		orderRepo.On("Get", ctx, "user-1", current.ID()).Return(current, nil)
		orderRepo.On("ReplaceBody", ctx, "user-1", current.ID(), order.Sent, newBody).
			Return(nil, errs.NewWriteConflictError("orderId", current.ID().String()))

		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrWriteConflict)
	})

	t.Run("should reject a command that skipped the constructor", func(t *testing.T) {
		handler := commands.NewEditOrderCommandHandler(&MockOrderRepository{})

		_, err := handler.Handle(ctx, commands.EditOrderCommand{})

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrEditOrderCommandIsNotConstructed)
	})
}
