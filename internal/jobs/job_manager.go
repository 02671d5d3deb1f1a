package jobs

import "fmt"

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dueDateReminderJob *DueDateReminderJob
}

// NewJobManager creates a job manager owning every scheduled job.
func NewJobManager(dueDateReminderJob *DueDateReminderJob) *JobManager {
	return &JobManager{
		dueDateReminderJob: dueDateReminderJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dueDateReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start due date reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dueDateReminderJob.Stop()
}
