package middleware

import (
	"github.com/agustiinveraa/inmoflow/internal/application/service"
	infraRepo "github.com/agustiinveraa/inmoflow/internal/infrastructure/repository"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/dto/response"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// AgencyIDKey is the gin context key for the resolved agency ID
	AgencyIDKey = "agency_id"
	// AgencyAdminKey is the gin context key for the caller's admin flag
	AgencyAdminKey = "agency_admin"
)

// RequireAgency resolves the caller's membership fresh from the database and
// stamps the agency onto the request context, so every downstream query is
// tenant scoped. A failed lookup is a server error, never a silent
// "not a member": 401 means unauthenticated, 403 means no agency, 500 means
// the lookup itself broke.
func RequireAgency(agencySvc *service.AgencyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get(UserIDKey)
		if !ok {
			response.AbortWithError(c, apperror.ErrUnauthenticated)
			return
		}

		membership, err := agencySvc.Membership(c.Request.Context(), userID.(uuid.UUID))
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		c.Set(AgencyIDKey, membership.AgencyID)
		c.Set(AgencyAdminKey, membership.Admin)
		c.Request = c.Request.WithContext(infraRepo.WithAgency(c.Request.Context(), membership.AgencyID))
		c.Next()
	}
}

// RequireAgencyAdmin rejects non-admin members before the handler runs.
// It assumes RequireAgency already resolved the membership.
func RequireAgencyAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := c.Get(AgencyAdminKey)
		if !ok || !admin.(bool) {
			response.AbortWithError(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
