package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// TrackingCodePrefix starts every tracking code.
	TrackingCodePrefix = "BR"
	// TrackingCodeSuffixLength is the number of random characters after the prefix.
	TrackingCodeSuffixLength = 11

	trackingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
		"tracking code must be created via NewTrackingCode or GenerateTrackingCode")

	trackingCodePattern = regexp.MustCompile(`^BR[0-9A-Z]{11}$`)
)

// TrackingCode identifies a shipment. It is issued once per order, when the
// invoice is emitted, and has the form "BR" followed by 11 characters of [0-9A-Z].
type TrackingCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingCode validates the format of an existing code, typically one
// read back from storage.
func NewTrackingCode(value string) (TrackingCode, error) {
	if !trackingCodePattern.MatchString(value) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking code", fmt.Errorf("%q does not match %s", value, trackingCodePattern.String()))
	}
	return TrackingCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

// GenerateTrackingCode draws a fresh code from crypto/rand.
// Uniqueness across orders is checked by the caller against storage.
func GenerateTrackingCode() (TrackingCode, error) {
	suffix := make([]byte, TrackingCodeSuffixLength)
	limit := big.NewInt(int64(len(trackingCodeAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return TrackingCode{}, fmt.Errorf("generate tracking code: %w", err)
		}
		suffix[i] = trackingCodeAlphabet[n.Int64()]
	}
	return NewTrackingCode(TrackingCodePrefix + string(suffix))
}

// Validate ensures the code was created through a constructor.
func (c TrackingCode) Validate() error {
	return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
}

// IsEqual compares two codes by value.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

func (c TrackingCode) String() string {
	return c.value
}
