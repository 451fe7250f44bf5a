package repository

import (
	"context"
	"testing"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedAgency(t *testing.T, db *gorm.DB, name string) *entity.Agency {
	agency := &entity.Agency{Name: name}
	require.NoError(t, db.Create(agency).Error)
	return agency
}

func seedClient(t *testing.T, db *gorm.DB, agencyID uuid.UUID, name string) *entity.Client {
	client := &entity.Client{AgencyID: agencyID, FullName: name, Status: "active"}
	require.NoError(t, db.Create(client).Error)
	return client
}

func TestAgencyScope_MissingAgencyYieldsNoRows(t *testing.T) {
	db := setupTestDB(t)
	agency := seedAgency(t, db, "Inmobiliaria Vera")
	seedClient(t, db, agency.ID, "Laura Gómez")

	repo := NewClientRepository(db)

	// Context without a resolved agency must see nothing, not everything
	clients, total, err := repo.List(context.Background(), pagination.DefaultPagination(), "")
	assert.NoError(t, err)
	assert.Empty(t, clients)
	assert.Zero(t, total)
}

func TestAgencyScope_IsolatesTenants(t *testing.T) {
	db := setupTestDB(t)
	agencyA := seedAgency(t, db, "Agencia A")
	agencyB := seedAgency(t, db, "Agencia B")
	clientA := seedClient(t, db, agencyA.ID, "Cliente de A")
	seedClient(t, db, agencyB.ID, "Cliente de B")

	repo := NewClientRepository(db)
	ctxA := WithAgency(context.Background(), agencyA.ID)
	ctxB := WithAgency(context.Background(), agencyB.ID)

	clientsA, totalA, err := repo.List(ctxA, pagination.DefaultPagination(), "")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), totalA)
	require.Len(t, clientsA, 1)
	assert.Equal(t, "Cliente de A", clientsA[0].FullName)

	// A row from another agency reads as missing, not as forbidden
	got, err := repo.GetByID(ctxB, clientA.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestAgencyScope_CrossTenantDeleteIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	agencyA := seedAgency(t, db, "Agencia A")
	agencyB := seedAgency(t, db, "Agencia B")
	clientA := seedClient(t, db, agencyA.ID, "Cliente de A")

	repo := NewClientRepository(db)
	ctxB := WithAgency(context.Background(), agencyB.ID)

	assert.NoError(t, repo.Delete(ctxB, clientA.ID))

	// Still there for its own agency
	ctxA := WithAgency(context.Background(), agencyA.ID)
	got, err := repo.GetByID(ctxA, clientA.ID)
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, clientA.ID, got.ID)
}

func TestClientSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	agency := seedAgency(t, db, "Agencia")
	seedClient(t, db, agency.ID, "Laura Gómez")
	seedClient(t, db, agency.ID, "Pedro Martín")

	email := "laura@example.com"
	require.NoError(t, db.Model(&entity.Client{}).
		Where("full_name = ?", "Laura Gómez").
		Update("email", email).Error)

	repo := NewClientRepository(db)
	ctx := WithAgency(context.Background(), agency.ID)

	clients, total, err := repo.List(ctx, pagination.DefaultPagination(), "laura")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, clients, 1)
	assert.Equal(t, "Laura Gómez", clients[0].FullName)

	// Matches over email too
	clients, _, err = repo.List(ctx, pagination.DefaultPagination(), "EXAMPLE.COM")
	assert.NoError(t, err)
	assert.Len(t, clients, 1)

	// No match
	_, total, err = repo.List(ctx, pagination.DefaultPagination(), "nobody")
	assert.NoError(t, err)
	assert.Zero(t, total)
}

func TestGetAgencyIDRoundTrip(t *testing.T) {
	agencyID := uuid.New()
	ctx := WithAgency(context.Background(), agencyID)

	got, ok := GetAgencyID(ctx)
	assert.True(t, ok)
	assert.Equal(t, agencyID, got)

	_, ok = GetAgencyID(context.Background())
	assert.False(t, ok)
}
