package repository

import (
	"context"
	"errors"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	domainRepo "github.com/agustiinveraa/inmoflow/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type agencyRepository struct {
	db *gorm.DB
}

// NewAgencyRepository creates a new agency repository
func NewAgencyRepository(db *gorm.DB) domainRepo.AgencyRepository {
	return &agencyRepository{db: db}
}

func (r *agencyRepository) Create(ctx context.Context, agency *entity.Agency) error {
	return r.db.WithContext(ctx).Create(agency).Error
}

func (r *agencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Agency, error) {
	var agency entity.Agency
	err := r.db.WithContext(ctx).First(&agency, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &agency, err
}

func (r *agencyRepository) Update(ctx context.Context, agency *entity.Agency) error {
	return r.db.WithContext(ctx).Save(agency).Error
}
