// Package order provides domain entities and business logic for the order
// lifecycle in the storefront system. It implements the Order aggregate root
// together with its owned entities.
//
// The package includes:
//   - Order: the aggregate root owning items and status history
//   - Item: an order line with a price snapshot taken at order time
//   - StatusRecord: one append-only entry of the status history
//   - Status: the order status enumeration
//   - AppliedDiscount: the discount captured on an order at creation
//
// Key business rules:
//   - The total amount equals the sum of item line extensions (unit price ×
//     quantity), net of any applied discount, computed once at creation
//   - Every status mutation appends exactly one history record in the same
//     operation; setting the current status again is a no-op with no record
//   - The most recent history record always equals the current status; a
//     Pending record is seeded at creation so this holds from birth
//   - History timestamps never precede the order date
//   - Orders are historical records and are never deleted
//
// Status transitions are deliberately unconstrained: any status may follow
// any other. The admin workflow moves orders freely, including backwards,
// so the engine validates only that the target status is a known value.
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
