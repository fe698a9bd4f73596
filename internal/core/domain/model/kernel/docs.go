// Package kernel contains shared value objects used across all domain
// aggregates in the storefront system.
//
// The package provides:
//   - UUID: an immutable identifier wrapping github.com/google/uuid
//   - Money: an exact decimal monetary amount wrapping shopspring/decimal
//
// Both types follow the same discipline: zero values are invalid, instances
// are created through factory functions, and Validate() detects improperly
// constructed values when reconstructing objects from persistence or
// external input. Monetary amounts are always kept to two decimal places so
// totals computed in the domain match what the relational store persists in
// its numeric columns.
package kernel
