package service

import (
	"context"
	"strings"
	"time"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/internal/domain/enum"
	"github.com/agustiinveraa/inmoflow/internal/domain/repository"
	infraRepo "github.com/agustiinveraa/inmoflow/internal/infrastructure/repository"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/google/uuid"
)

// ClientService handles client business logic
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the input for creating a client
type CreateClientInput struct {
	FullName string `json:"full_name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,max=50"`
	Notes    string `json:"notes"`
	Status   string `json:"status"`
}

// CreateClient creates a client inside the caller's agency. The agency is
// taken from the context, never from the payload.
func (s *ClientService) CreateClient(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	agencyID, ok := infraRepo.GetAgencyID(ctx)
	if !ok {
		return nil, apperror.ErrNoAgencyAssigned
	}

	name := strings.TrimSpace(input.FullName)
	if name == "" {
		return nil, apperror.NewFieldError("full_name", "full_name is required")
	}

	status := enum.ClientStatusActive
	if input.Status != "" {
		status = enum.ClientStatus(input.Status)
		if !status.IsValid() {
			return nil, apperror.NewFieldError("status", "status must be one of: active, inactive, potential")
		}
	}

	client := &entity.Client{
		AgencyID: agencyID,
		FullName: name,
		Status:   status,
	}
	if input.Email != "" {
		client.Email = &input.Email
	}
	if input.Phone != "" {
		client.Phone = &input.Phone
	}
	if input.Notes != "" {
		client.Notes = &input.Notes
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient returns a single client from the caller's agency
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// UpdateClientInput represents the input for updating a client.
// Nil fields are left untouched.
type UpdateClientInput struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	Notes    *string `json:"notes"`
	Status   *string `json:"status"`
}

// UpdateClient applies a partial update to a client in the caller's agency
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*entity.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if name == "" {
			return nil, apperror.NewFieldError("full_name", "full_name cannot be empty")
		}
		client.FullName = name
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Notes != nil {
		client.Notes = input.Notes
	}
	if input.Status != nil {
		status := enum.ClientStatus(*input.Status)
		if !status.IsValid() {
			return nil, apperror.NewFieldError("status", "status must be one of: active, inactive, potential")
		}
		client.Status = status
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client from the caller's agency. A client in
// another agency is indistinguishable from a missing one.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, id)
}

// ListClients returns a page of the agency's clients, optionally filtered
// server-side by a search term over name, email and phone.
func (s *ClientService) ListClients(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	params.Validate()

	clients, total, err := s.clientRepo.List(ctx, params, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(clients, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListClientsWithCursor returns clients via keyset pagination for infinite
// scrolling views.
func (s *ClientService) ListClientsWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Client], error) {
	params.Validate()

	clients, err := s.clientRepo.ListWithCursor(ctx, params, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	cursorPagination, items := pagination.NewCursorPagination(clients, params.Limit,
		func(c entity.Client) string { return c.ID.String() },
		func(c entity.Client) time.Time { return c.CreatedAt },
	)
	cursorPagination.HasPrev = params.Cursor != ""

	return pagination.NewCursorPaginatedResult(items, cursorPagination), nil
}
