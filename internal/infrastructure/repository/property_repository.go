package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/internal/domain/enum"
	domainRepo "github.com/agustiinveraa/inmoflow/internal/domain/repository"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) domainRepo.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var property entity.Property
	err := r.db.WithContext(ctx).
		Scopes(AgencyScope(ctx)).
		Preload("Client").
		First(&property, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &property, err
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(AgencyScope(ctx)).
		Delete(&entity.Property{}, "id = ?", id).Error
}

func (r *propertyRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.PropertyFilter) ([]entity.Property, int64, error) {
	var properties []entity.Property
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Property{}).Scopes(AgencyScope(ctx))

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(address) LIKE ?", term, term)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", filter.PropertyType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Client").
		Order("created_at DESC").
		Find(&properties).Error

	return properties, total, err
}

func (r *propertyRepository) CountByStatus(ctx context.Context) (map[enum.PropertyStatus]int64, error) {
	type row struct {
		Status enum.PropertyStatus
		Count  int64
	}
	var rows []row

	err := r.db.WithContext(ctx).Model(&entity.Property{}).
		Scopes(AgencyScope(ctx)).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.PropertyStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
