// Package services provides domain services that coordinate business rules
// across multiple aggregates in the workshop system.
//
// The package includes:
//   - QueuePlanner: maintains the dense per-location and global queue orderings
//   - ReadinessCalculator: derives completion percentage and ship-eligibility
//     from an order's workflow records
//
// Domain services hold no state of their own. They mutate the aggregates they
// are handed and leave persistence to the calling unit of work, which keeps
// queue re-packing atomic with respect to other commands.
package services
