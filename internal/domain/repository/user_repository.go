package repository

import (
	"context"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations.
// Lookups by id/email/provider are identity operations and are not agency
// scoped; ListByAgency is scoped through the agency carried in the context.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByProvider(ctx context.Context, provider, providerID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByAgency(ctx context.Context) ([]entity.User, error)
}
