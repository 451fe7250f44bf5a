package repository

import (
	"context"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/internal/domain/enum"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/google/uuid"
)

// PropertyFilter narrows property listings
type PropertyFilter struct {
	Search       string
	Status       enum.PropertyStatus
	PropertyType enum.PropertyType
}

// PropertyRepository defines the interface for property data operations.
// Every method is scoped to the agency carried in the context.
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, filter PropertyFilter) ([]entity.Property, int64, error)
	CountByStatus(ctx context.Context) (map[enum.PropertyStatus]int64, error)
}
