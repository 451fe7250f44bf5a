package repository

import (
	"context"
	"errors"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	domainRepo "github.com/agustiinveraa/inmoflow/internal/domain/repository"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db *gorm.DB) domainRepo.VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visit entity.Visit
	err := r.db.WithContext(ctx).
		Scopes(AgencyScope(ctx)).
		Preload("Property").
		Preload("Client").
		First(&visit, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &visit, err
}

func (r *visitRepository) Update(ctx context.Context, visit *entity.Visit) error {
	return r.db.WithContext(ctx).Save(visit).Error
}

func (r *visitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(AgencyScope(ctx)).
		Delete(&entity.Visit{}, "id = ?", id).Error
}

func (r *visitRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Visit, int64, error) {
	var visits []entity.Visit
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Visit{}).Scopes(AgencyScope(ctx))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Property").
		Preload("Client").
		Order("visit_date ASC").
		Find(&visits).Error

	return visits, total, err
}

// ListByDateRange relies on wall-clock strings sorting chronologically.
func (r *visitRepository) ListByDateRange(ctx context.Context, start, end string) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := r.db.WithContext(ctx).
		Scopes(AgencyScope(ctx)).
		Where("visit_date >= ? AND visit_date < ?", start, end).
		Preload("Property").
		Preload("Client").
		Order("visit_date ASC").
		Find(&visits).Error
	return visits, err
}

func (r *visitRepository) CountFrom(ctx context.Context, from string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Visit{}).
		Scopes(AgencyScope(ctx)).
		Where("visit_date >= ?", from).
		Count(&total).Error
	return total, err
}
