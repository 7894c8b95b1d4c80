// Package kernel provides the domain primitives shared by the catalog, settings
// and order models:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Money: non-negative decimal amount backed by github.com/shopspring/decimal
//   - Actor: the authenticated user (id and role) a use case runs for
//
// All primitives are immutable values and safe for concurrent use.
package kernel
