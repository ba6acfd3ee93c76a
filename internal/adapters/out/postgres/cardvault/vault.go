// Package cardvault stores payment instruments for credit-card orders.
//
// Only what is needed to show the card back to its owner is kept: the masked
// number, the last four digits, the holder and the expiry. The full number
// is replaced by an opaque token and the CVV is never written.
package cardvault

import (
	"context"
	"time"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstrumentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	MaskedNumber string    `gorm:"size:32;not null"`
	LastFour     string    `gorm:"size:4;not null"`
	HolderName   string    `gorm:"size:255;not null"`
	Expiry       string    `gorm:"size:5;not null"`
	Token        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt    time.Time
}

func (InstrumentDTO) TableName() string {
	return "payment_instruments"
}

// GormCardVault implements ports.PaymentVault using GORM.
type GormCardVault struct {
	db *gorm.DB
}

func NewGormCardVault(db *gorm.DB) *GormCardVault {
	return &GormCardVault{db: db}
}

// Vault stores the card and returns the instrument id orders refer to.
func (v *GormCardVault) Vault(ctx context.Context, ownerID kernel.UUID, card payment.CardDetails) (kernel.UUID, error) {
	if err := ownerID.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := card.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	id := kernel.NewUUID()
	dto := InstrumentDTO{
		ID:           id.Bytes(),
		OwnerID:      ownerID.Bytes(),
		MaskedNumber: card.Masked(),
		LastFour:     card.LastFour(),
		HolderName:   card.HolderName(),
		Expiry:       card.Expiry(),
		Token:        uuid.New(),
	}
	if err := v.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.UUID{}, pgerr.Conflict(err, "payment instrument", id.String())
	}

	return id, nil
}
