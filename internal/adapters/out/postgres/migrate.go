package postgres

import (
	"fmt"

	"storefront/internal/adapters/out/postgres/actorrepo"
	"storefront/internal/adapters/out/postgres/cardvault"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/outboxrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/ratingrepo"
	"storefront/internal/adapters/out/postgres/returnrepo"

	"gorm.io/gorm"
)

// models lists every persisted DTO in creation order.
func models() []any {
	return []any{
		&actorrepo.ActorDTO{},
		&productrepo.ProductDTO{},
		&cartrepo.CartItemDTO{},
		&cardvault.InstrumentDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&returnrepo.ReturnDTO{},
		&ratingrepo.RatingDTO{},
		&outboxrepo.MessageDTO{},
	}
}

// Migrate creates or updates the schema, including the unique indexes that
// back return and rating uniqueness.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Tables returns the names of every storefront table.
func Tables() []string {
	names := make([]string, 0, len(models()))
	for _, m := range models() {
		if t, ok := m.(interface{ TableName() string }); ok {
			names = append(names, t.TableName())
		}
	}
	return names
}
