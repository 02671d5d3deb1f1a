package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worklog"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func startedWorkLog(t *testing.T, orderID, locationID kernel.UUID) *worklog.WorkLog {
	t.Helper()
	wl, err := worklog.NewWorkLog(kernel.NewUUID(), orderID, locationID)
	require.NoError(t, err)
	require.NoError(t, wl.Enqueue(1))
	require.NoError(t, wl.Start(time.Now()))
	return wl
}

func TestFinishAtLocationCommandHandler_Handle_CompletesWork(t *testing.T) {
	ctx := t.Context()

	ord := newUnshippedOrder(t, 10)
	locationID := kernel.NewUUID()
	wl := startedWorkLog(t, ord.ID(), locationID)

	cmd, err := commands.NewFinishAtLocationCommand(ord.ID(), locationID, 8, testActor(t, kernel.RoleWorker))
	require.NoError(t, err)

	finished := mock.MatchedBy(func(got *worklog.WorkLog) bool {
		return got.IsEqual(wl) &&
			got.Status() == worklog.Done &&
			got.CompletedQuantity() == 8 &&
			got.CompletedAt() != nil
	})

	orderRepo := new(MockOrderRepository)
	workLogRepo := new(MockWorkLogRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("WorkLogRepository").Return(workLogRepo).Once(),
		workLogRepo.On("GetByOrderAndLocation", mock.Anything, ord.ID(), locationID).
			Return(wl, nil).Once(),
		workLogRepo.On("Update", mock.Anything, finished).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinishAtLocationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	workLogRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFinishAtLocationCommandHandler_Handle_QuantityAboveTotalFails(t *testing.T) {
	ctx := t.Context()

	ord := newUnshippedOrder(t, 10)
	locationID := kernel.NewUUID()
	wl := startedWorkLog(t, ord.ID(), locationID)

	cmd, err := commands.NewFinishAtLocationCommand(ord.ID(), locationID, 11, testActor(t, kernel.RoleWorker))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	workLogRepo := new(MockWorkLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("WorkLogRepository").Return(workLogRepo).Once(),
		workLogRepo.On("GetByOrderAndLocation", mock.Anything, ord.ID(), locationID).
			Return(wl, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinishAtLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, worklog.ErrInvalidQuantity)
	require.Equal(t, worklog.InProgress, wl.Status())
	workLogRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
