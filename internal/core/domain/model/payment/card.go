// Package payment holds the card details captured at checkout. The card is
// handed to the vault, which returns an opaque instrument reference; card
// data never lives on the order.
package payment

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCardDetailsIsNotConstructed = errs.NewValueIsRequiredError("card details must be created via NewCardDetails")

	cardNumberPattern = regexp.MustCompile(`^[0-9]{12,19}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
)

// CardDetails are the four card fields required for CREDIT_CARD orders.
type CardDetails struct { //nolint:recvcheck //using for validation
	number     string
	holderName string
	expiry     string
	cvv        string
	guard      guard.ConstructorGuard
}

// NewCardDetails validates the four fields. Spaces and dashes in the number
// are ignored; expiry uses the MM/YY form.
func NewCardDetails(number, holderName, expiry, cvv string) (CardDetails, error) {
	number = strings.NewReplacer(" ", "", "-", "").Replace(number)
	holderName = strings.TrimSpace(holderName)
	expiry = strings.TrimSpace(expiry)
	cvv = strings.TrimSpace(cvv)

	if err := errors.Join(
		validateField("card number", number, cardNumberPattern),
		validateHolder(holderName),
		validateField("card expiry", expiry, expiryPattern),
		validateField("card cvv", cvv, cvvPattern),
	); err != nil {
		return CardDetails{}, err
	}

	return CardDetails{
		number:     number,
		holderName: holderName,
		expiry:     expiry,
		cvv:        cvv,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CardDetails) Validate() error {
	return c.guard.Validate(ErrCardDetailsIsNotConstructed)
}

func (c CardDetails) Number() string {
	return c.number
}

func (c CardDetails) HolderName() string {
	return c.holderName
}

func (c CardDetails) Expiry() string {
	return c.expiry
}

func (c CardDetails) CVV() string {
	return c.cvv
}

// LastFour returns the last four digits of the number.
func (c CardDetails) LastFour() string {
	return c.number[len(c.number)-4:]
}

// Masked hides all but the last four digits.
func (c CardDetails) Masked() string {
	return strings.Repeat("*", len(c.number)-4) + c.LastFour()
}

// IsExpired reports whether the card expired before the month of now.
// A card is valid through the last day of its expiry month.
func (c CardDetails) IsExpired(now time.Time) bool {
	m := expiryPattern.FindStringSubmatch(c.expiry)
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	year += 2000

	return year < now.Year() || (year == now.Year() && time.Month(month) < now.Month())
}

// String never prints the full number or the cvv.
func (c CardDetails) String() string {
	return fmt.Sprintf("card %s (%s)", c.Masked(), c.holderName)
}

func validateField(name, value string, pattern *regexp.Regexp) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if !pattern.MatchString(value) {
		return errs.NewValueIsInvalidError(name)
	}
	return nil
}

func validateHolder(holderName string) error {
	if holderName == "" {
		return errs.NewValueIsRequiredError("card holder name")
	}
	return nil
}
