package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

func TestNewTransitionOrderCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewTransitionOrderCommand(id, order.Confirmed, "merchant", "")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, order.Confirmed, cmd.Target())
		assert.Equal(t, "merchant", cmd.Actor())
		assert.Empty(t, cmd.Reason())
	})

	t.Run("should carry an optional reason", func(t *testing.T) {
		cmd, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Cancelled, "customer", "changed my mind")

		require.NoError(t, err)
		assert.Equal(t, "changed my mind", cmd.Reason())
	})

	t.Run("should return error with invalid order id", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(kernel.UUID{}, order.Confirmed, "merchant", "")

		assert.Error(t, err)
	})

	t.Run("should return error with unknown target status", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Unknown, "merchant", "")

		assert.Error(t, err)
	})

	t.Run("should return error with empty actor", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Confirmed, "", "")

		assert.Error(t, err)
	})

	t.Run("should reject manually constructed command", func(t *testing.T) {
		cmd := commands.TransitionOrderCommand{}

		assert.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
	})
}

func TestNewBulkTransitionOrdersCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		cmd, err := commands.NewBulkTransitionOrdersCommand(ids, order.Ready, "merchant", "")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Len(t, cmd.OrderIDs(), 2)
		assert.Equal(t, order.Ready, cmd.Target())
	})

	t.Run("should return error with no order ids", func(t *testing.T) {
		_, err := commands.NewBulkTransitionOrdersCommand(nil, order.Ready, "merchant", "")

		assert.Error(t, err)
	})

	t.Run("should return error with an invalid order id in the batch", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), {}}

		_, err := commands.NewBulkTransitionOrdersCommand(ids, order.Ready, "merchant", "")

		assert.Error(t, err)
	})
}
