package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
)

// PaymentVault stores card details and hands back an opaque instrument
// reference that orders link to. How the vault keeps the card is its own
// concern; callers only ever see the reference.
type PaymentVault interface {
	Vault(ctx context.Context, ownerID kernel.UUID, card payment.CardDetails) (kernel.UUID, error)
}
