package cmd

import (
	"log/slog"
	"time"

	"workshop/internal/adapters/out/notify"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/ports"
	"workshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sink       ports.NotificationSink
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	sink, err := notify.NewSlogNotifier(slog.Default())
	if err != nil {
		panic(err)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sink:       sink,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateEnqueueAtLocationCommandHandler() commands.EnqueueAtLocationCommandHandler {
	return commands.NewEnqueueAtLocationCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateStartAtLocationCommandHandler() commands.StartAtLocationCommandHandler {
	return commands.NewStartAtLocationCommandHandler(c.workLogUoWFactory())
}

func (c *CompositionRoot) CreatePauseAtLocationCommandHandler() commands.PauseAtLocationCommandHandler {
	return commands.NewPauseAtLocationCommandHandler(c.workLogUoWFactory())
}

func (c *CompositionRoot) CreateFinishAtLocationCommandHandler() commands.FinishAtLocationCommandHandler {
	return commands.NewFinishAtLocationCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateUpdateQuantityAtLocationCommandHandler() commands.UpdateQuantityAtLocationCommandHandler {
	return commands.NewUpdateQuantityAtLocationCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRequestHelpCommandHandler() commands.RequestHelpCommandHandler {
	return commands.NewRequestHelpCommandHandler(c.fullUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateSetGlobalQueuePositionCommandHandler() commands.SetGlobalQueuePositionCommandHandler {
	return commands.NewSetGlobalQueuePositionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveFromAllQueuesCommandHandler() commands.RemoveFromAllQueuesCommandHandler {
	return commands.NewRemoveFromAllQueuesCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLocationQueueQueryHandler() queries.GetLocationQueueQueryHandler {
	return queries.NewGetLocationQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNeededOrdersQueryHandler() queries.GetNeededOrdersQueryHandler {
	return queries.NewGetNeededOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

// CreateJobManager wires the due date reminder over the unit of work factory
// and the notification sink.
func (c *CompositionRoot) CreateJobManager(window time.Duration) *jobs.JobManager {
	schedule := c.configs.ReminderSchedule
	if schedule == "" {
		schedule = "0 8 * * *"
	}

	reminder := jobs.NewDueDateReminderJob(
		&c.uowFactory, c.sink, schedule, window, slog.Default(),
	)
	return jobs.NewJobManager(reminder)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workLogUoWFactory() commands.WorkLogUoWFactory {
	return FuncWorkLogUoWFactory(func() commands.WorkLogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWorkLogUoWFactory func() commands.WorkLogUoW

func (f FuncWorkLogUoWFactory) Create() commands.WorkLogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
