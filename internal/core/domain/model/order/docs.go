// Package order provides domain entities and business logic for customer order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, body, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Body: The mutable part of an order (restaurant, line items, total amount)
//   - Item: A single order line item with an exact decimal unit price
//
// Key business rules:
//   - Orders are identified by the composite (owner, order id); the owner is
//     always the verified caller identity, never client input
//   - New orders are written in SENT status; PLACED -> SENT acknowledgment is
//     driven by an external process
//   - Orders can be canceled only while SENT and no older than 10 minutes
//   - Orders can be edited only while SENT; editing never changes the status
//     or the creation time
//   - All monetary values are exact decimals; binary floating point is never
//     used for amounts
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
