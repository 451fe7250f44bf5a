package repository

import (
	"context"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/google/uuid"
)

// AgencyRepository defines the interface for agency data operations
type AgencyRepository interface {
	Create(ctx context.Context, agency *entity.Agency) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Agency, error)
	Update(ctx context.Context, agency *entity.Agency) error
}
