// Package jobs provides scheduled background tasks for the workshop.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and are managed
// through JobManager which provides a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(reminderJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is DueDateReminderJob, which scans for unshipped orders
// approaching their due date and pushes due_soon notifications. The core
// workflow stays synchronous request/response; jobs are collaborator glue.
package jobs
