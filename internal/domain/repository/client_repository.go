package repository

import (
	"context"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for client data operations.
// Every method is scoped to the agency carried in the context.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns clients with page-based pagination, optionally filtered by
	// a case-insensitive substring over full_name/email/phone.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
	// ListWithCursor returns clients using cursor-based pagination.
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Client, error)
	Count(ctx context.Context) (int64, error)
}
