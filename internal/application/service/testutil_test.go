package service_test

import (
	"context"
	"testing"

	"github.com/agustiinveraa/inmoflow/internal/application/service"
	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	infraRepo "github.com/agustiinveraa/inmoflow/internal/infrastructure/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires real repositories over an in-memory database so service
// tests exercise the same scoping queries production runs.
type testEnv struct {
	db          *gorm.DB
	agencySvc   *service.AgencyService
	clientSvc   *service.ClientService
	propertySvc *service.PropertyService
	visitSvc    *service.VisitService
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Agency{},
		&entity.User{},
		&entity.Client{},
		&entity.Property{},
		&entity.Visit{},
		&entity.IdempotencyKey{},
	))

	agencyRepo := infraRepo.NewAgencyRepository(db)
	userRepo := infraRepo.NewUserRepository(db)
	clientRepo := infraRepo.NewClientRepository(db)
	propertyRepo := infraRepo.NewPropertyRepository(db)
	visitRepo := infraRepo.NewVisitRepository(db)

	return &testEnv{
		db:          db,
		agencySvc:   service.NewAgencyService(agencyRepo, userRepo),
		clientSvc:   service.NewClientService(clientRepo),
		propertySvc: service.NewPropertyService(propertyRepo, clientRepo),
		visitSvc:    service.NewVisitService(visitRepo, propertyRepo, clientRepo),
	}
}

func (e *testEnv) newAgency(t *testing.T, name string) (uuid.UUID, context.Context) {
	agency := &entity.Agency{Name: name}
	require.NoError(t, e.db.Create(agency).Error)
	return agency.ID, infraRepo.WithAgency(context.Background(), agency.ID)
}

func (e *testEnv) newUser(t *testing.T, email string, agencyID *uuid.UUID, admin bool) *entity.User {
	user := &entity.User{
		FullName:    "Test User",
		Email:       email,
		Provider:    "local",
		AgencyID:    agencyID,
		AgencyAdmin: admin,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}
