package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

// AgencyIDKey is the context key for the resolved agency ID
const AgencyIDKey ctxKey = "agency_id"

// AgencyScope returns a GORM scope that filters by the agency carried in the
// context. Every query against an agency-owned table goes through this; a
// missing agency yields zero rows rather than an unscoped query, so a
// forgotten resolution step can never leak another tenant's data.
func AgencyScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		agencyID, ok := ctx.Value(AgencyIDKey).(uuid.UUID)
		if !ok {
			return db.Where("1 = 0")
		}
		return db.Where("agency_id = ?", agencyID)
	}
}

// WithAgency adds the resolved agency ID to the context
func WithAgency(ctx context.Context, agencyID uuid.UUID) context.Context {
	return context.WithValue(ctx, AgencyIDKey, agencyID)
}

// GetAgencyID extracts the agency ID from the context
func GetAgencyID(ctx context.Context) (uuid.UUID, bool) {
	agencyID, ok := ctx.Value(AgencyIDKey).(uuid.UUID)
	return agencyID, ok
}
