package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// bulkUoWFixture wires a fresh unit of work per order, the way the factory
// behaves in production.
func bulkUoWFixture(ctx any, repo *MockOrderRepository, count int) *MockOrderUoWFactory {
	factory := new(MockOrderUoWFactory)
	for range count {
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("Commit", ctx).Return(nil).Maybe()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory.On("Create").Return(uow).Once()
	}
	return factory
}

func TestBulkTransitionOrdersCommandHandler_Handle_Tally(t *testing.T) {
	ctx := t.Context()

	// Two orders can be confirmed; the third is already delivered.
	confirmableA := kernel.NewUUID()
	confirmableB := kernel.NewUUID()
	delivered := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, confirmableA).
		Return(restoredOrder(t, confirmableA, order.Pending), nil).Once()
	repo.On("Get", mock.Anything, confirmableB).
		Return(restoredOrder(t, confirmableB, order.Pending), nil).Once()
	repo.On("Get", mock.Anything, delivered).
		Return(restoredOrder(t, delivered, order.Delivered), nil).Once()
	repo.On("UpdateStatus", mock.Anything, mock.Anything, order.Pending).Return(nil).Twice()

	factory := bulkUoWFixture(ctx, repo, 3)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Twice()

	cmd, err := commands.NewBulkTransitionOrdersCommand(
		[]kernel.UUID{confirmableA, confirmableB, delivered},
		order.Confirmed, "merchant", "",
	)
	require.NoError(t, err)

	h := commands.NewBulkTransitionOrdersCommandHandler(factory, notifier)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, 3, result.TotalCount)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestBulkTransitionOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.BulkTransitionOrdersCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)

	h := commands.NewBulkTransitionOrdersCommandHandler(factory, notifier)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
