package repository

import (
	"context"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/google/uuid"
)

// VisitRepository defines the interface for visit data operations.
// Every method is scoped to the agency carried in the context. Date bounds
// are wall-clock day keys compared as strings.
type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)
	Update(ctx context.Context, visit *entity.Visit) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Visit, int64, error)
	// ListByDateRange returns visits whose wall-clock date falls in [start, end).
	ListByDateRange(ctx context.Context, start, end string) ([]entity.Visit, error)
	CountFrom(ctx context.Context, from string) (int64, error)
}
