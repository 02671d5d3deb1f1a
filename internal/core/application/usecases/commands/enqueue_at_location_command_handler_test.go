package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/location"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnqueueAtLocationCommandHandler_Handle_CreatesRecordOnFirstContact(t *testing.T) {
	ctx := t.Context()

	ord := newUnshippedOrder(t, 10)
	welding, err := location.NewLocation(kernel.NewUUID(), "Welding", 3, 1.0)
	require.NoError(t, err)

	cmd, err := commands.NewEnqueueAtLocationCommand(ord.ID(), welding.ID(), testActor(t, kernel.RoleWorker))
	require.NoError(t, err)

	// another order already holds position 1
	queued, err := worklog.NewWorkLog(kernel.NewUUID(), kernel.NewUUID(), welding.ID())
	require.NoError(t, err)
	require.NoError(t, queued.Enqueue(1))

	newRecordAtTail := mock.MatchedBy(func(wl *worklog.WorkLog) bool {
		return wl.OrderID().IsEqual(ord.ID()) &&
			wl.LocationID().IsEqual(welding.ID()) &&
			wl.Status() == worklog.InQueue &&
			*wl.QueuePosition() == 2
	})

	orderRepo := new(MockOrderRepository)
	locationRepo := new(MockLocationRepository)
	workLogRepo := new(MockWorkLogRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", mock.Anything, welding.ID()).Return(welding, nil).Once(),
		uow.On("WorkLogRepository").Return(workLogRepo).Once(),
		workLogRepo.On("GetByOrderAndLocation", mock.Anything, ord.ID(), welding.ID()).
			Return(nil, errs.NewObjectNotFoundError("workLog", ord.ID().String())).Once(),
		workLogRepo.On("GetQueuedByLocation", mock.Anything, welding.ID()).
			Return([]*worklog.WorkLog{queued}, nil).Once(),
		workLogRepo.On("Add", mock.Anything, newRecordAtTail).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEnqueueAtLocationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	workLogRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	workLogRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEnqueueAtLocationCommandHandler_Handle_ReusesExistingRecord(t *testing.T) {
	ctx := t.Context()

	ord := newUnshippedOrder(t, 10)
	welding, err := location.NewLocation(kernel.NewUUID(), "Welding", 3, 1.0)
	require.NoError(t, err)

	cmd, err := commands.NewEnqueueAtLocationCommand(ord.ID(), welding.ID(), testActor(t, kernel.RoleWorker))
	require.NoError(t, err)

	// the record exists from an earlier pass, not started and unqueued
	existing, err := worklog.NewWorkLog(kernel.NewUUID(), ord.ID(), welding.ID())
	require.NoError(t, err)

	requeued := mock.MatchedBy(func(wl *worklog.WorkLog) bool {
		return wl.IsEqual(existing) && wl.Status() == worklog.InQueue && *wl.QueuePosition() == 1
	})

	orderRepo := new(MockOrderRepository)
	locationRepo := new(MockLocationRepository)
	workLogRepo := new(MockWorkLogRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", mock.Anything, welding.ID()).Return(welding, nil).Once(),
		uow.On("WorkLogRepository").Return(workLogRepo).Once(),
		workLogRepo.On("GetByOrderAndLocation", mock.Anything, ord.ID(), welding.ID()).
			Return(existing, nil).Once(),
		workLogRepo.On("GetQueuedByLocation", mock.Anything, welding.ID()).
			Return([]*worklog.WorkLog{}, nil).Once(),
		workLogRepo.On("Update", mock.Anything, requeued).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEnqueueAtLocationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	workLogRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	workLogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEnqueueAtLocationCommandHandler_Handle_AlreadyStartedFails(t *testing.T) {
	ctx := t.Context()

	ord := newUnshippedOrder(t, 10)
	welding, err := location.NewLocation(kernel.NewUUID(), "Welding", 3, 1.0)
	require.NoError(t, err)

	cmd, err := commands.NewEnqueueAtLocationCommand(ord.ID(), welding.ID(), testActor(t, kernel.RoleWorker))
	require.NoError(t, err)

	active, err := worklog.NewWorkLog(kernel.NewUUID(), ord.ID(), welding.ID())
	require.NoError(t, err)
	require.NoError(t, active.Enqueue(1))
	require.NoError(t, active.Start(time.Now()))

	orderRepo := new(MockOrderRepository)
	locationRepo := new(MockLocationRepository)
	workLogRepo := new(MockWorkLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", mock.Anything, welding.ID()).Return(welding, nil).Once(),
		uow.On("WorkLogRepository").Return(workLogRepo).Once(),
		workLogRepo.On("GetByOrderAndLocation", mock.Anything, ord.ID(), welding.ID()).
			Return(active, nil).Once(),
		workLogRepo.On("GetQueuedByLocation", mock.Anything, welding.ID()).
			Return([]*worklog.WorkLog{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEnqueueAtLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, worklog.ErrInvalidTransition)
	workLogRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
