package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"workshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DueDateReminderJob periodically scans for unshipped orders whose due date
// falls within the reminder window and pushes due_soon notifications.
type DueDateReminderJob struct {
	uowFactory ports.UnitOfWorkFactory
	sink       ports.NotificationSink
	schedule   string
	window     time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDueDateReminderJob creates the reminder job. The schedule is a standard
// five-field cron expression; the window is how far ahead of the due date a
// reminder fires.
func NewDueDateReminderJob(
	uowFactory ports.UnitOfWorkFactory,
	sink ports.NotificationSink,
	schedule string,
	window time.Duration,
	logger *slog.Logger,
) *DueDateReminderJob {
	return &DueDateReminderJob{
		uowFactory: uowFactory,
		sink:       sink,
		schedule:   schedule,
		window:     window,
		cron:       cron.New(),
		logger:     logger.With("component", "due_date_reminder_job"),
	}
}

// Start schedules the reminder scan.
func (j *DueDateReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Due date reminder job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Due date reminder job started",
		"schedule", j.schedule, "window", j.window.String())
	return nil
}

// Stop stops the reminder scan.
func (j *DueDateReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Due date reminder job stopped")
}

// Run executes one reminder scan. Notification failures are logged but do
// not abort the scan for the remaining orders.
func (j *DueDateReminderJob) Run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	deadline := time.Now().Add(j.window)
	dueOrders, err := uow.OrderRepository().GetAllDueBefore(ctx, deadline)
	if err != nil {
		return fmt.Errorf("failed to load orders due before %s: %w", deadline.Format(time.RFC3339), err)
	}

	for _, dueOrder := range dueOrders {
		notification := ports.Notification{
			Kind:        ports.NotificationDueSoon,
			OrderID:     dueOrder.ID(),
			OrderNumber: dueOrder.OrderNumber(),
			Message: fmt.Sprintf("order %s for %s is due %s",
				dueOrder.OrderNumber(), dueOrder.Client(), dueOrder.DueDate().Format("2006-01-02")),
		}
		if err := j.sink.Notify(ctx, notification); err != nil {
			j.logger.WarnContext(ctx, "Failed to deliver due date reminder",
				"order_id", dueOrder.ID().String(), "error", err)
		}
	}
	return nil
}
