package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRankedOrder(t *testing.T, number string, position int) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(kernel.NewUUID(), number, "", "Acme Cabinets",
		time.Now().AddDate(0, 0, 7), 10)
	require.NoError(t, err)
	require.NoError(t, ord.PlaceInGlobalQueue(position))
	return ord
}

func TestSetGlobalQueuePositionCommandHandler_Handle_InsertAtHeadShiftsOthers(t *testing.T) {
	ctx := t.Context()

	a := newRankedOrder(t, "W-1", 1)
	b := newRankedOrder(t, "W-2", 2)
	c := newRankedOrder(t, "W-3", 3)
	target, err := order.NewOrder(kernel.NewUUID(), "W-4", "", "Acme Cabinets",
		time.Now().AddDate(0, 0, 7), 10)
	require.NoError(t, err)

	cmd, err := commands.NewSetGlobalQueuePositionCommand(target.ID(), 1, testActor(t, kernel.RoleManager))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orderRepo.On("GetAllInGlobalQueue", mock.Anything).
			Return([]*order.Order{a, b, c}, nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, a).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, c).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetGlobalQueuePositionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 1, *target.GlobalQueuePosition())
	assert.Equal(t, 2, *a.GlobalQueuePosition())
	assert.Equal(t, 3, *b.GlobalQueuePosition())
	assert.Equal(t, 4, *c.GlobalQueuePosition())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetGlobalQueuePositionCommandHandler_Handle_PositionBelowOneFails(t *testing.T) {
	ctx := t.Context()

	target := newRankedOrder(t, "W-1", 1)
	cmd, err := commands.NewSetGlobalQueuePositionCommand(target.ID(), 0, testActor(t, kernel.RoleManager))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orderRepo.On("GetAllInGlobalQueue", mock.Anything).
			Return([]*order.Order{target}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetGlobalQueuePositionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrQueuePositionOutOfRange)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestSetGlobalQueuePositionCommandHandler_Handle_WorkerIsNotPermitted(t *testing.T) {
	ctx := t.Context()

	target := newRankedOrder(t, "W-1", 1)
	cmd, err := commands.NewSetGlobalQueuePositionCommand(target.ID(), 1, testActor(t, kernel.RoleWorker))
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	h := commands.NewSetGlobalQueuePositionCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrActorNotPermitted)
	factory.AssertNotCalled(t, "Create")
}
