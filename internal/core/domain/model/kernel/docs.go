// Package kernel provides shared value objects used across the workshop domain model.
//
// The package includes:
//   - UUID: validated entity identifier wrapping github.com/google/uuid
//   - Actor: the acting user (or system) behind a command, with its role
//
// Kernel types are immutable value objects with constructor validation and no
// dependencies on other domain packages, so every aggregate may use them freely.
package kernel
