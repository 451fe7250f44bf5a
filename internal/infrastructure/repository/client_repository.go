package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	domainRepo "github.com/agustiinveraa/inmoflow/internal/domain/repository"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).
		Scopes(AgencyScope(ctx)).
		First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// scoped by both id and agency so a guessed cross-tenant id deletes nothing
	return r.db.WithContext(ctx).
		Scopes(AgencyScope(ctx)).
		Delete(&entity.Client{}, "id = ?", id).Error
}

// searchFilter matches a case-insensitive substring over name/email/phone.
// An empty term leaves the query untouched.
func searchFilter(query *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return query
	}
	term := "%" + strings.ToLower(search) + "%"
	return query.Where(
		"LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?",
		term, term, term,
	)
}

func (r *clientRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	var clients []entity.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Client{}).Scopes(AgencyScope(ctx))
	query = searchFilter(query, search)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("full_name ASC").
		Find(&clients).Error

	return clients, total, err
}

// ListWithCursor returns clients using cursor-based pagination.
// Fetches limit+1 items to detect if there are more results.
func (r *clientRepository) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Client, error) {
	var clients []entity.Client

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Client{}).Scopes(AgencyScope(ctx))
	query = searchFilter(query, search)

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&clients).Error

	return clients, err
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Client{}).
		Scopes(AgencyScope(ctx)).
		Count(&total).Error
	return total, err
}
