package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agustiinveraa/inmoflow/internal/application/service"
	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	infraRepo "github.com/agustiinveraa/inmoflow/internal/infrastructure/repository"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAgencyTest(t *testing.T) (*gorm.DB, *service.AgencyService) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Agency{}, &entity.User{}))

	agencySvc := service.NewAgencyService(
		infraRepo.NewAgencyRepository(db),
		infraRepo.NewUserRepository(db),
	)
	return db, agencySvc
}

// routerWithCaller fakes the auth middleware by injecting a user ID, then
// runs RequireAgency and records what the handler saw.
func routerWithCaller(agencySvc *service.AgencyService, userID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.GET("/probe",
		func(c *gin.Context) { c.Set(middleware.UserIDKey, userID) },
		middleware.RequireAgency(agencySvc),
		handler,
	)
	return router
}

func TestRequireAgencyStampsContext(t *testing.T) {
	db, agencySvc := setupAgencyTest(t)

	agency := &entity.Agency{Name: "Agencia"}
	require.NoError(t, db.Create(agency).Error)
	user := &entity.User{FullName: "Agent", Email: "agent@example.com", AgencyID: &agency.ID, AgencyAdmin: true}
	require.NoError(t, db.Create(user).Error)

	var seenAgency uuid.UUID
	var sawScope bool
	router := routerWithCaller(agencySvc, user.ID, func(c *gin.Context) {
		seenAgency, _ = c.MustGet(middleware.AgencyIDKey).(uuid.UUID)
		_, sawScope = infraRepo.GetAgencyID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, agency.ID, seenAgency)
	assert.True(t, sawScope, "request context should carry the agency for repository scoping")
}

func TestRequireAgencyRejectsUnknownUser(t *testing.T) {
	_, agencySvc := setupAgencyTest(t)

	router := routerWithCaller(agencySvc, uuid.New(), func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAgencyRejectsUserWithoutAgency(t *testing.T) {
	db, agencySvc := setupAgencyTest(t)

	user := &entity.User{FullName: "Solo", Email: "solo@example.com"}
	require.NoError(t, db.Create(user).Error)

	router := routerWithCaller(agencySvc, user.ID, func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAgencyFailsClosedOnLookupError(t *testing.T) {
	db, agencySvc := setupAgencyTest(t)

	// Breaking the users table makes the membership lookup error out; that
	// must surface as a server error, not as "no agency".
	require.NoError(t, db.Migrator().DropTable(&entity.User{}))

	router := routerWithCaller(agencySvc, uuid.New(), func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAgencyAdminBlocksNonAdmins(t *testing.T) {
	db, agencySvc := setupAgencyTest(t)

	agency := &entity.Agency{Name: "Agencia"}
	require.NoError(t, db.Create(agency).Error)
	member := &entity.User{FullName: "Member", Email: "member@example.com", AgencyID: &agency.ID}
	require.NoError(t, db.Create(member).Error)
	admin := &entity.User{FullName: "Admin", Email: "admin@example.com", AgencyID: &agency.ID, AgencyAdmin: true}
	require.NoError(t, db.Create(admin).Error)

	newRouter := func(userID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
		router := gin.New()
		router.GET("/admin-only",
			func(c *gin.Context) { c.Set(middleware.UserIDKey, userID) },
			middleware.RequireAgency(agencySvc),
			middleware.RequireAgencyAdmin(),
			handler,
		)
		return router
	}

	// Non-admin is rejected before the handler runs
	w := httptest.NewRecorder()
	newRouter(member.ID, func(c *gin.Context) {
		t.Fatal("handler must not run for non-admins")
	}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin passes
	w = httptest.NewRecorder()
	newRouter(admin.ID, func(c *gin.Context) {
		c.Status(http.StatusOK)
	}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
