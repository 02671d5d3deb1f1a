// Package worklog provides the per-(order, location) workflow record for the
// workshop system. It is where the production state machine lives.
//
// The package includes:
//   - WorkLog: the aggregate root tracking one order's progress at one location
//   - Status: a state machine enforcing the not_started -> in_queue ->
//     in_progress <-> paused -> done workflow
//
// Key business rules:
//   - A queue position exists exactly while the record is in_queue
//   - Work may start from not_started, in_queue, or paused; done is terminal
//   - Completed quantities are bounded by the order's total quantity and may
//     only decrease through explicit corrections
//   - The start timestamp is recorded once and survives pause/resume cycles
package worklog
