package handler

import (
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the authenticated user's ID from the gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// GetAgencyID extracts the resolved agency ID from the gin context
func GetAgencyID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.AgencyIDKey)
	if !exists {
		return uuid.Nil, false
	}
	agencyID, ok := value.(uuid.UUID)
	return agencyID, ok
}

// ParseIDParam parses a UUID path parameter
func ParseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
