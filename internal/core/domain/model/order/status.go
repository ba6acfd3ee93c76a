package order

import (
	"fmt"
	"slices"
	"strings"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	EM_PROCESSAMENTO ──┬──> PAGAMENTO_APROVADO ──> NOTA_FISCAL_EMITIDA ──> EM_PREPARACAO ──> ENVIADO
//	                   └──> PAGAMENTO_REPROVADO (terminal)                                      │
//	                                                                                           v
//	DEVOLUCAO_CANCELADA <──┬── EM_DEVOLUCAO <── SOLICITACAO_DEVOLUCAO <────────────── RECEBIDO
//	   (terminal)          └──> DEVOLVIDO (terminal)
//
// CANCELADO is part of the enumeration but has no incoming edge.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status of every new order.
	Processing

	// PaymentApproved is set by finance once payment clears.
	PaymentApproved

	// PaymentRejected is set by finance when payment fails. Terminal.
	PaymentRejected

	// InvoiceIssued is set by finance when the invoice is emitted.
	// Entering it issues the tracking code.
	InvoiceIssued

	// InPreparation is set by logistics while the package is assembled.
	InPreparation

	// Shipped is set by logistics when the package leaves the warehouse.
	Shipped

	// Received is set by the customer on delivery.
	Received

	// ReturnRequested is set by the customer to open a return.
	ReturnRequested

	// Returning is set by post-sale while the return is in transit.
	Returning

	// Returned is set by post-sale when the return is accepted. Terminal.
	Returned

	// ReturnCanceled is set by post-sale when the return is refused. Terminal.
	ReturnCanceled

	// Canceled exists in the enumeration but is not reachable through the graph.
	Canceled
)

// transitionGraph is the one-hop successor table. It is built once and never mutated.
//
//nolint:gochecknoglobals // immutable lookup table
var transitionGraph = map[Status][]Status{
	Processing:      {PaymentApproved, PaymentRejected},
	PaymentApproved: {InvoiceIssued},
	PaymentRejected: {},
	InvoiceIssued:   {InPreparation},
	InPreparation:   {Shipped},
	Shipped:         {Received},
	Received:        {ReturnRequested},
	ReturnRequested: {Returning},
	Returning:       {Returned, ReturnCanceled},
	Returned:        {},
	ReturnCanceled:  {},
	Canceled:        {},
}

// statusCodes holds the wire representation of each valid status.
//
//nolint:gochecknoglobals // immutable lookup table
var statusCodes = map[Status]string{
	Processing:      "EM_PROCESSAMENTO",
	PaymentApproved: "PAGAMENTO_APROVADO",
	PaymentRejected: "PAGAMENTO_REPROVADO",
	InvoiceIssued:   "NOTA_FISCAL_EMITIDA",
	InPreparation:   "EM_PREPARACAO",
	Shipped:         "ENVIADO",
	Received:        "RECEBIDO",
	ReturnRequested: "SOLICITACAO_DEVOLUCAO",
	Returning:       "EM_DEVOLUCAO",
	Returned:        "DEVOLVIDO",
	ReturnCanceled:  "DEVOLUCAO_CANCELADA",
	Canceled:        "CANCELADO",
}

// statusAliases maps the short names used by back-office tooling to statuses.
//
//nolint:gochecknoglobals // immutable lookup table
var statusAliases = map[string]Status{
	"APROVADO":    PaymentApproved,
	"REPROVADO":   PaymentRejected,
	"NOTA_FISCAL": InvoiceIssued,
	"PREPARACAO":  InPreparation,
	"SOLIC_DEV":   ReturnRequested,
	"EM_DEV":      Returning,
	"DEV_CANCEL":  ReturnCanceled,
}

// AllStatuses returns every valid status in declaration order.
func AllStatuses() []Status {
	return []Status{
		Processing, PaymentApproved, PaymentRejected, InvoiceIssued, InPreparation, Shipped,
		Received, ReturnRequested, Returning, Returned, ReturnCanceled, Canceled,
	}
}

// ParseStatus converts a wire code (e.g. "PAGAMENTO_APROVADO") or its short
// alias (e.g. "APROVADO") into a Status. Matching is case-insensitive.
//
// Example:
//
//	s, err := order.ParseStatus("nota_fiscal")
//	// s == order.InvoiceIssued
func ParseStatus(code string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for s, c := range statusCodes {
		if c == normalized {
			return s, nil
		}
	}
	if s, ok := statusAliases[normalized]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate checks that s is a member of the enumeration.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := statusCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code of the status, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := statusCodes[s]; ok {
		return str
	}
	return "Unknown"
}

// Successors returns the statuses reachable from s in one hop.
// The returned slice is a copy; terminal and invalid statuses return an empty slice.
func (s Status) Successors() []Status {
	return slices.Clone(transitionGraph[s])
}

// CanTransitionTo reports whether the graph has an edge s -> to.
func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(transitionGraph[s], to)
}

// IsTerminal reports whether s is a valid status without outgoing edges.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(transitionGraph[s]) == 0
}

// ValidateTransition returns an InvalidTransitionError if the graph has no edge s -> to.
func (s Status) ValidateTransition(to Status) error {
	if !s.CanTransitionTo(to) {
		return errs.NewInvalidTransitionError(s, to)
	}
	return nil
}

// ValidateCanHaveTrackingCode checks the consistency between status and tracking code.
//
// Business Rules:
//   - Statuses from NOTA_FISCAL_EMITIDA onwards in the normal path must have a code
//   - Every other status must not have one
func (s Status) ValidateCanHaveTrackingCode(hasCode bool) error {
	requires := s.hasPassedInvoice()
	if hasCode && !requires {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a tracking code", s.String()),
		)
	}
	if !hasCode && requires {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no tracking code", s.String()),
		)
	}
	return nil
}

func (s Status) hasPassedInvoice() bool {
	switch s { //nolint:exhaustive // the remaining statuses precede the invoice or are off-path
	case InvoiceIssued, InPreparation, Shipped, Received, ReturnRequested, Returning, Returned, ReturnCanceled:
		return true
	default:
		return false
	}
}
