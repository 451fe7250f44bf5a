package service

import (
	"context"
	"time"

	"github.com/agustiinveraa/inmoflow/internal/domain/enum"
	"github.com/agustiinveraa/inmoflow/internal/domain/repository"
	"github.com/agustiinveraa/inmoflow/pkg/calendar"
)

// DashboardService aggregates headline numbers for the agency overview
type DashboardService struct {
	propertyRepo repository.PropertyRepository
	clientRepo   repository.ClientRepository
	visitRepo    repository.VisitRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	propertyRepo repository.PropertyRepository,
	clientRepo repository.ClientRepository,
	visitRepo repository.VisitRepository,
) *DashboardService {
	return &DashboardService{
		propertyRepo: propertyRepo,
		clientRepo:   clientRepo,
		visitRepo:    visitRepo,
	}
}

// DashboardStats holds the agency's headline counts
type DashboardStats struct {
	TotalClients       int64                         `json:"total_clients"`
	TotalProperties    int64                         `json:"total_properties"`
	PropertiesByStatus map[enum.PropertyStatus]int64 `json:"properties_by_status"`
	UpcomingVisits     int64                         `json:"upcoming_visits"`
}

// GetStats computes the dashboard counters for the agency in the context.
// Upcoming visits are counted from the start of today in wall-clock terms.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	clients, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.propertyRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var properties int64
	for _, count := range byStatus {
		properties += count
	}

	now := time.Now()
	today := calendar.DayKeyOf(now.Year(), now.Month(), now.Day())
	upcoming, err := s.visitRepo.CountFrom(ctx, today)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalClients:       clients,
		TotalProperties:    properties,
		PropertiesByStatus: byStatus,
		UpcomingVisits:     upcoming,
	}, nil
}
