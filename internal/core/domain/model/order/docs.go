// Package order provides the production order aggregate for the workshop system.
//
// The package includes:
//   - Order: the aggregate root holding identity, client details, quantities,
//     shipping state, the rush flag, and the global queue rank
//
// Key business rules:
//   - Orders must have a non-empty order number, a client, and a positive total quantity
//   - Shipped quantity accumulates and never exceeds the total quantity
//   - An order is shipped when the full quantity left the workshop, partially
//     shipped when only part of it did
//   - The rush flag records when it was first set so the dashboard can rank
//     rush orders by urgency
//   - The global queue position is a 1-based rank maintained exclusively by the
//     queue planner; it is independent of any per-station queue
package order
