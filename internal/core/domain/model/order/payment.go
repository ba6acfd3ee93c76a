package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// PaymentMethod is the closed set of payment methods an order can be placed with.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	Pix
	Boleto
	CreditCard
)

//nolint:gochecknoglobals // immutable lookup table
var paymentMethodCodes = map[PaymentMethod]string{
	Pix:        "PIX",
	Boleto:     "BOLETO",
	CreditCard: "CREDIT_CARD",
}

// legacy storefront spellings
//
//nolint:gochecknoglobals // immutable lookup table
var paymentMethodAliases = map[string]PaymentMethod{
	"CARTAO":            CreditCard,
	"CARTAO_DE_CREDITO": CreditCard,
}

// ParsePaymentMethod converts a wire code into a PaymentMethod, case-insensitively.
func ParsePaymentMethod(code string) (PaymentMethod, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for m, c := range paymentMethodCodes {
		if c == normalized {
			return m, nil
		}
	}
	if m, ok := paymentMethodAliases[normalized]; ok {
		return m, nil
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a valid payment method", code))
}

// Validate checks that m is a member of the enumeration.
func (m PaymentMethod) Validate() error {
	if _, ok := paymentMethodCodes[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// RequiresInstrument reports whether orders paid this way must link a vaulted card.
func (m PaymentMethod) RequiresInstrument() bool {
	return m == CreditCard
}

func (m PaymentMethod) String() string {
	if str, ok := paymentMethodCodes[m]; ok {
		return str
	}
	return "Unknown"
}
