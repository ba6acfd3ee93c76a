package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a storefront purchase. It is the aggregate root that owns the
// line items, the amounts, the payment choice and the lifecycle status.
//
// Order follows these invariants:
//   - Has a valid identifier and a valid owner
//   - Has at least one line item, each with quantity >= 1
//   - Total and discount are non-negative and discount <= total
//   - A payment instrument is linked if and only if the method is CREDIT_CARD
//   - Status is always a member of the enumeration and moves only along the graph
//   - The tracking code is present if and only if the order has reached NOTA_FISCAL_EMITIDA
//   - Creation time never changes
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID is the actor who placed the order
	ownerID kernel.UUID

	// lineItems are the cart items attached at creation, in request order
	lineItems []*LineItem

	// total is Σ(unit price × quantity) computed at creation
	total kernel.Money

	// discount is subtracted by billing, never greater than total
	discount kernel.Money

	// paymentMethod is how the customer chose to pay
	paymentMethod PaymentMethod

	// paymentInstrumentID references the vaulted card (CREDIT_CARD only)
	paymentInstrumentID *kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// trackingCode is issued when the invoice is emitted
	trackingCode *TrackingCode

	// createdAt is set once, at placement
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder places a new order. This is the only way to create an order in
// EM_PROCESSAMENTO; the total is computed from the line items and the
// discount starts at zero.
//
// Parameters:
//   - id: Unique identifier for the order
//   - ownerID: The actor placing the order
//   - lineItems: At least one line item
//   - method: Payment method
//   - paymentInstrumentID: Vaulted card reference, required iff method is CreditCard
//   - createdAt: Placement time
//
// Example:
//
//	item, _ := order.NewLineItem(cartItemID, productID, price, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), actorID, []*order.LineItem{item}, order.Pix, nil, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	lineItems []*LineItem,
	method PaymentMethod,
	paymentInstrumentID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Processing,
		discount:      kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setLineItems(lineItems),
		o.setPayment(method, paymentInstrumentID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.total = o.computeTotal()
	return o, nil
}

// RestoreOrder rebuilds an order from persistence, re-checking every invariant
// so that corrupted rows are rejected instead of being loaded.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	lineItems []*LineItem,
	total kernel.Money,
	discount kernel.Money,
	method PaymentMethod,
	paymentInstrumentID *kernel.UUID,
	status Status,
	trackingCode *TrackingCode,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setLineItems(lineItems),
		o.setTotals(total, discount),
		o.setPayment(method, paymentInstrumentID),
		o.setStatus(status, trackingCode),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder
// or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the actor who placed the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// IsOwnedBy reports whether actorID placed the order.
func (o *Order) IsOwnedBy(actorID kernel.UUID) bool {
	return o.ownerID.IsEqual(actorID)
}

// LineItems returns a copy of the line item list.
func (o *Order) LineItems() []*LineItem {
	items := make([]*LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// LineItem looks up a line item of this order by ID.
func (o *Order) LineItem(id kernel.UUID) (*LineItem, bool) {
	for _, item := range o.lineItems {
		if item.ID().IsEqual(id) {
			return item, true
		}
	}
	return nil, false
}

// Total returns the order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Discount returns the order discount.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// PaymentMethod returns the chosen payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentInstrumentID returns the vaulted card reference, nil unless paid by credit card.
func (o *Order) PaymentInstrumentID() *kernel.UUID {
	return o.paymentInstrumentID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TrackingCode returns the tracking code, nil until the invoice is emitted.
func (o *Order) TrackingCode() *TrackingCode {
	return o.trackingCode
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MoveTo advances the order along the transition graph.
//
// This method enforces the following business rules:
//   - The graph must have an edge from the current status to the target
//   - NOTA_FISCAL_EMITIDA cannot be entered here because it needs a tracking
//     code; use IssueInvoice
//   - The tracking code, if any, is left untouched
//
// Returns:
//   - nil on success
//   - InvalidTransitionError if the edge does not exist
//
// Role checks are not done here; callers go through the lifecycle engine.
func (o *Order) MoveTo(target Status) error {
	if target == InvoiceIssued {
		return errs.NewValueIsRequiredError("tracking code")
	}

	if err := o.status.ValidateTransition(target); err != nil {
		return err
	}

	o.status = target
	return nil
}

// IssueInvoice moves the order to NOTA_FISCAL_EMITIDA and assigns its tracking code.
//
// Example:
//
//	code, _ := order.GenerateTrackingCode()
//	if err := o.IssueInvoice(code); err != nil {
//	    // Order was not in PAGAMENTO_APROVADO
//	}
func (o *Order) IssueInvoice(code TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateTransition(InvoiceIssued); err != nil {
		return err
	}

	o.status = InvoiceIssued
	o.trackingCode = &code
	return nil
}

func (o *Order) computeTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.lineItems {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	seen := make(map[kernel.UUID]struct{}, len(lineItems))
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("line items", fmt.Errorf("%s is listed twice", item.ID()))
		}
		seen[item.ID()] = struct{}{}
	}

	o.lineItems = make([]*LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

func (o *Order) setPayment(method PaymentMethod, instrumentID *kernel.UUID) error {
	if err := method.Validate(); err != nil {
		return err
	}

	if method.RequiresInstrument() && instrumentID == nil {
		return errs.NewValueIsRequiredError("payment instrument")
	}
	if !method.RequiresInstrument() && instrumentID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment instrument", fmt.Errorf("%s orders do not take a card", method))
	}
	if instrumentID != nil {
		if err := instrumentID.Validate(); err != nil {
			return err
		}
		id := *instrumentID
		o.paymentInstrumentID = &id
	}

	o.paymentMethod = method
	return nil
}

func (o *Order) setTotals(total, discount kernel.Money) error {
	if err := errors.Join(total.Validate(), discount.Validate()); err != nil {
		return err
	}
	if discount.IsGreaterThan(total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount", fmt.Errorf("%s is greater than total %s", discount, total))
	}
	o.total = total
	o.discount = discount
	return nil
}

func (o *Order) setStatus(status Status, trackingCode *TrackingCode) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveTrackingCode(trackingCode != nil); err != nil {
		return err
	}
	if trackingCode != nil {
		if err := trackingCode.Validate(); err != nil {
			return err
		}
		code := *trackingCode
		o.trackingCode = &code
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
