package commands_test

import (
	"context"
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/location"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInGlobalQueue(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllDueBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, aggregate *location.Location) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) GetAll(ctx context.Context) ([]*location.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*location.Location), args.Error(1)
}

func (m *MockLocationRepository) GetAllAutoQueue(ctx context.Context) ([]*location.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*location.Location), args.Error(1)
}

type MockWorkLogRepository struct{ mock.Mock }

func (m *MockWorkLogRepository) Add(ctx context.Context, aggregate *worklog.WorkLog) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWorkLogRepository) Update(ctx context.Context, aggregate *worklog.WorkLog) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWorkLogRepository) Get(ctx context.Context, id kernel.UUID) (*worklog.WorkLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worklog.WorkLog), args.Error(1)
}

func (m *MockWorkLogRepository) GetByOrderAndLocation(
	ctx context.Context,
	orderID kernel.UUID,
	locationID kernel.UUID,
) (*worklog.WorkLog, error) {
	args := m.Called(ctx, orderID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worklog.WorkLog), args.Error(1)
}

func (m *MockWorkLogRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*worklog.WorkLog, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worklog.WorkLog), args.Error(1)
}

func (m *MockWorkLogRepository) GetQueuedByLocation(
	ctx context.Context,
	locationID kernel.UUID,
) ([]*worklog.WorkLog, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worklog.WorkLog), args.Error(1)
}

func (m *MockWorkLogRepository) GetQueuedByOrder(ctx context.Context, orderID kernel.UUID) ([]*worklog.WorkLog, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worklog.WorkLog), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface the handlers declare.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) WorkLogRepository() ports.WorkLogRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkLogRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockWorkLogUoWFactory struct{ mock.Mock }

func (m *MockWorkLogUoWFactory) Create() commands.WorkLogUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkLogUoW)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Notify(ctx context.Context, notification ports.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func testActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}
