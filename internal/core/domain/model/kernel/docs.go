// Package kernel provides the shared value objects of the storefront domain.
//
// The package includes:
//   - UUID: identifier for aggregates and entities, backed by github.com/google/uuid
//   - Money: non-negative two-decimal amount, backed by github.com/shopspring/decimal
//
// Both are immutable and their zero values fail validation.
package kernel
