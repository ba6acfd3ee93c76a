// Package order provides the Order aggregate of the storefront and the order
// lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding line items, totals, payment method,
//     status and tracking code
//   - LineItem: a cart item attached to an order, immutable once attached
//   - Status: the closed status enumeration and the transition graph
//   - PaymentMethod: PIX, BOLETO or CREDIT_CARD
//   - TrackingCode: the code issued when the invoice is emitted
//
// Key business rules:
//   - Orders are created in EM_PROCESSAMENTO with total = Σ(unit price × quantity)
//   - A payment instrument is linked if and only if the method is CREDIT_CARD
//   - Status moves only along the transition graph; REPROVADO, DEVOLVIDO and
//     DEVOLUCAO_CANCELADA are terminal and CANCELADO is unreachable
//   - The tracking code is set exactly once, when the order enters
//     NOTA_FISCAL_EMITIDA, and never changes afterwards
//
// Who may request which transition is decided by the lifecycle engine in the
// services package; this package only guards the aggregate's own invariants.
package order
