package service

import (
	"context"
	"time"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/internal/domain/repository"
	infraRepo "github.com/agustiinveraa/inmoflow/internal/infrastructure/repository"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/agustiinveraa/inmoflow/pkg/calendar"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/google/uuid"
)

// VisitService handles visit scheduling and the calendar view
type VisitService struct {
	visitRepo    repository.VisitRepository
	propertyRepo repository.PropertyRepository
	clientRepo   repository.ClientRepository
}

// NewVisitService creates a new visit service
func NewVisitService(
	visitRepo repository.VisitRepository,
	propertyRepo repository.PropertyRepository,
	clientRepo repository.ClientRepository,
) *VisitService {
	return &VisitService{
		visitRepo:    visitRepo,
		propertyRepo: propertyRepo,
		clientRepo:   clientRepo,
	}
}

// CreateVisitInput represents the input for scheduling a visit
type CreateVisitInput struct {
	PropertyID string `json:"property_id" binding:"required"`
	ClientID   string `json:"client_id" binding:"required"`
	VisitDate  string `json:"visit_date" binding:"required"`
	Notes      string `json:"notes"`
}

// CreateVisit schedules a visit inside the caller's agency. The date is a
// wall-clock string stored exactly as entered; property and client must
// both belong to the same agency.
func (s *VisitService) CreateVisit(ctx context.Context, input CreateVisitInput) (*entity.Visit, error) {
	agencyID, ok := infraRepo.GetAgencyID(ctx)
	if !ok {
		return nil, apperror.ErrNoAgencyAssigned
	}

	if _, err := calendar.ParseWallClock(input.VisitDate); err != nil {
		return nil, apperror.NewFieldError("visit_date", "visit_date must be formatted as YYYY-MM-DDTHH:MM:SS")
	}

	propertyID, err := uuid.Parse(input.PropertyID)
	if err != nil {
		return nil, apperror.NewFieldError("property_id", "property_id must be a valid UUID")
	}
	clientID, err := uuid.Parse(input.ClientID)
	if err != nil {
		return nil, apperror.NewFieldError("client_id", "client_id must be a valid UUID")
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewNotFoundError("Property")
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	visit := &entity.Visit{
		AgencyID:   agencyID,
		PropertyID: property.ID,
		ClientID:   client.ID,
		VisitDate:  input.VisitDate,
	}
	if input.Notes != "" {
		visit.Notes = &input.Notes
	}

	if err := s.visitRepo.Create(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// GetVisit returns a single visit from the caller's agency
func (s *VisitService) GetVisit(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, apperror.NewNotFoundError("Visit")
	}
	return visit, nil
}

// UpdateVisitInput represents the input for updating a visit.
// Nil fields are left untouched.
type UpdateVisitInput struct {
	PropertyID *string `json:"property_id"`
	ClientID   *string `json:"client_id"`
	VisitDate  *string `json:"visit_date"`
	Notes      *string `json:"notes"`
}

// UpdateVisit applies a partial update to a visit in the caller's agency
func (s *VisitService) UpdateVisit(ctx context.Context, id uuid.UUID, input UpdateVisitInput) (*entity.Visit, error) {
	visit, err := s.GetVisit(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.VisitDate != nil {
		if _, err := calendar.ParseWallClock(*input.VisitDate); err != nil {
			return nil, apperror.NewFieldError("visit_date", "visit_date must be formatted as YYYY-MM-DDTHH:MM:SS")
		}
		visit.VisitDate = *input.VisitDate
	}
	if input.PropertyID != nil {
		propertyID, err := uuid.Parse(*input.PropertyID)
		if err != nil {
			return nil, apperror.NewFieldError("property_id", "property_id must be a valid UUID")
		}
		property, err := s.propertyRepo.GetByID(ctx, propertyID)
		if err != nil {
			return nil, err
		}
		if property == nil {
			return nil, apperror.NewNotFoundError("Property")
		}
		visit.PropertyID = property.ID
		visit.Property = nil
	}
	if input.ClientID != nil {
		clientID, err := uuid.Parse(*input.ClientID)
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
		visit.ClientID = client.ID
		visit.Client = nil
	}
	if input.Notes != nil {
		visit.Notes = input.Notes
	}

	if err := s.visitRepo.Update(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// DeleteVisit removes a visit from the caller's agency
func (s *VisitService) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetVisit(ctx, id); err != nil {
		return err
	}
	return s.visitRepo.Delete(ctx, id)
}

// ListVisits returns a page of the agency's visits ordered by date
func (s *VisitService) ListVisits(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Visit], error) {
	params.Validate()

	visits, total, err := s.visitRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(visits, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// MonthSchedule is a month of visits bucketed by day, with the grid
// metadata the calendar view needs to lay itself out.
type MonthSchedule struct {
	Year           int                       `json:"year"`
	Month          int                       `json:"month"`
	DaysInMonth    int                       `json:"days_in_month"`
	LeadingWeekday int                       `json:"leading_weekday"`
	Days           map[string][]entity.Visit `json:"days"`
}

// GetMonthSchedule loads all visits in a month and buckets them by their
// wall-clock day key. No timezone conversion is involved: a visit stored
// for the 21st lands on the 21st wherever it is rendered.
func (s *VisitService) GetMonthSchedule(ctx context.Context, year int, month time.Month) (*MonthSchedule, error) {
	if year < 1970 || year > 9999 {
		return nil, apperror.NewFieldError("year", "year is out of range")
	}
	if month < time.January || month > time.December {
		return nil, apperror.NewFieldError("month", "month must be between 1 and 12")
	}

	start, end := calendar.MonthKeyRange(year, month)
	visits, err := s.visitRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	days := make(map[string][]entity.Visit)
	for _, visit := range visits {
		key := calendar.DayKey(visit.VisitDate)
		days[key] = append(days[key], visit)
	}

	return &MonthSchedule{
		Year:           year,
		Month:          int(month),
		DaysInMonth:    calendar.DaysIn(year, month),
		LeadingWeekday: calendar.LeadingWeekday(year, month),
		Days:           days,
	}, nil
}
