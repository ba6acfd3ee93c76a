// Package actorrepo resolves actor ids to roles. Authentication happens
// upstream; this table only records which role an authenticated id holds.
package actorrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      string    `gorm:"size:32;not null"`
	UpdatedAt time.Time
}

func (ActorDTO) TableName() string {
	return "actors"
}

// GormActorRepository implements ports.ActorRepository using GORM.
type GormActorRepository struct {
	db *gorm.DB
}

func NewGormActorRepository(db *gorm.DB) *GormActorRepository {
	return &GormActorRepository{db: db}
}

// Get loads the actor. A role code that is no longer recognised loads as
// actor.RoleUnknown, which every policy denies.
func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, err
	}

	return actor.NewActor(id, actor.ParseRole(dto.Role))
}

func (r *GormActorRepository) Save(ctx context.Context, a *actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := ActorDTO{ID: a.ID().Bytes(), Role: a.Role().String()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(&dto).Error
}
