package service

import (
	"context"
	"strings"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/internal/domain/enum"
	"github.com/agustiinveraa/inmoflow/internal/domain/repository"
	infraRepo "github.com/agustiinveraa/inmoflow/internal/infrastructure/repository"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/google/uuid"
)

// PropertyService handles property business logic
type PropertyService struct {
	propertyRepo repository.PropertyRepository
	clientRepo   repository.ClientRepository
}

// NewPropertyService creates a new property service
func NewPropertyService(propertyRepo repository.PropertyRepository, clientRepo repository.ClientRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		clientRepo:   clientRepo,
	}
}

// CreatePropertyInput represents the input for creating a property
type CreatePropertyInput struct {
	Title        string   `json:"title" binding:"required,min=1,max=255"`
	Description  string   `json:"description"`
	Address      string   `json:"address" binding:"omitempty,max=255"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	PropertyType string   `json:"property_type"`
	Status       string   `json:"status"`
	Images       []string `json:"images"`
	ClientID     *string  `json:"client_id"`
}

// CreateProperty creates a property inside the caller's agency. The agency
// is taken from the context, never from the payload; an owner client must
// already exist in the same agency.
func (s *PropertyService) CreateProperty(ctx context.Context, input CreatePropertyInput) (*entity.Property, error) {
	agencyID, ok := infraRepo.GetAgencyID(ctx)
	if !ok {
		return nil, apperror.ErrNoAgencyAssigned
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.NewFieldError("title", "title is required")
	}

	status := enum.PropertyStatusAvailable
	if input.Status != "" {
		status = enum.PropertyStatus(input.Status)
		if !status.IsValid() {
			return nil, apperror.NewFieldError("status", "status must be one of: available, sold, rented, reserved")
		}
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	property := &entity.Property{
		AgencyID: agencyID,
		Title:    title,
		Status:   status,
		Images:   images,
	}
	if input.Description != "" {
		property.Description = &input.Description
	}
	if input.Address != "" {
		property.Address = &input.Address
	}
	if input.Price != nil {
		property.Price = input.Price
	}
	if input.PropertyType != "" {
		propertyType := enum.PropertyType(input.PropertyType)
		if !propertyType.IsValid() {
			return nil, apperror.NewFieldError("property_type", "unknown property type")
		}
		property.PropertyType = &propertyType
	}
	if input.ClientID != nil && *input.ClientID != "" {
		clientID, err := s.resolveOwner(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		property.ClientID = clientID
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// GetProperty returns a single property from the caller's agency
func (s *PropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewNotFoundError("Property")
	}
	return property, nil
}

// UpdatePropertyInput represents the input for updating a property.
// Nil fields are left untouched; an empty client_id string detaches the owner.
type UpdatePropertyInput struct {
	Title        *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Description  *string  `json:"description"`
	Address      *string  `json:"address" binding:"omitempty,max=255"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	PropertyType *string  `json:"property_type"`
	Status       *string  `json:"status"`
	Images       []string `json:"images"`
	ClientID     *string  `json:"client_id"`
}

// UpdateProperty applies a partial update to a property in the caller's agency
func (s *PropertyService) UpdateProperty(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*entity.Property, error) {
	property, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperror.NewFieldError("title", "title cannot be empty")
		}
		property.Title = title
	}
	if input.Description != nil {
		property.Description = input.Description
	}
	if input.Address != nil {
		property.Address = input.Address
	}
	if input.Price != nil {
		property.Price = input.Price
	}
	if input.PropertyType != nil {
		propertyType := enum.PropertyType(*input.PropertyType)
		if !propertyType.IsValid() {
			return nil, apperror.NewFieldError("property_type", "unknown property type")
		}
		property.PropertyType = &propertyType
	}
	if input.Status != nil {
		status := enum.PropertyStatus(*input.Status)
		if !status.IsValid() {
			return nil, apperror.NewFieldError("status", "status must be one of: available, sold, rented, reserved")
		}
		property.Status = status
	}
	if input.Images != nil {
		// The payload's order is the display order; the first URL is the
		// primary image.
		property.Images = input.Images
	}
	if input.ClientID != nil {
		if *input.ClientID == "" {
			property.ClientID = nil
			property.Client = nil
		} else {
			clientID, err := s.resolveOwner(ctx, *input.ClientID)
			if err != nil {
				return nil, err
			}
			property.ClientID = clientID
		}
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// DeleteProperty removes a property from the caller's agency
func (s *PropertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProperty(ctx, id); err != nil {
		return err
	}
	return s.propertyRepo.Delete(ctx, id)
}

// ListProperties returns a page of the agency's properties with server-side
// search and status/type filters.
func (s *PropertyService) ListProperties(ctx context.Context, params *pagination.PaginationParams, filter repository.PropertyFilter) (*pagination.PaginatedResult[entity.Property], error) {
	params.Validate()

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperror.NewFieldError("status", "unknown property status")
	}
	if filter.PropertyType != "" && !filter.PropertyType.IsValid() {
		return nil, apperror.NewFieldError("property_type", "unknown property type")
	}
	filter.Search = strings.TrimSpace(filter.Search)

	properties, total, err := s.propertyRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(properties, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// AddImages appends uploaded image URLs to a property, preserving order.
// The first image of the resulting list is the primary one.
func (s *PropertyService) AddImages(ctx context.Context, id uuid.UUID, urls []string) (*entity.Property, error) {
	property, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	property.Images = append(property.Images, urls...)
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// RemoveImage drops a single image URL from a property, keeping the order
// of the remaining ones.
func (s *PropertyService) RemoveImage(ctx context.Context, id uuid.UUID, imageURL string) (*entity.Property, error) {
	property, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(property.Images))
	found := false
	for _, img := range property.Images {
		if img == imageURL && !found {
			found = true
			continue
		}
		images = append(images, img)
	}
	if !found {
		return nil, apperror.NewNotFoundError("Image")
	}

	property.Images = images
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) resolveOwner(ctx context.Context, raw string) (*uuid.UUID, error) {
	clientID, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.NewFieldError("client_id", "client_id must be a valid UUID")
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return &client.ID, nil
}
